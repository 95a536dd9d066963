//go:build !whisper_cpp

package whisper

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine is empty when no inference backend is linked in.
const Engine = ""

const rebuildHint = "rebuild with `-tags whisper_cpp` and whisper.cpp headers and library on the cgo search paths"

// LoadModel fails in builds without whisper.cpp linked in.
func LoadModel(path string, logger *zap.Logger) (Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("inference engine not linked", zap.String("model", path), zap.String("hint", rebuildHint))
	return nil, fmt.Errorf("%w: %s to load %s", ErrEngineUnavailable, rebuildHint, path)
}
