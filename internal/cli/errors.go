package cli

import "errors"

var (
	ErrModelNotFound = errors.New("model not found")
	ErrAudioNotFound = errors.New("audio file not found")
)
