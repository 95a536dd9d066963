package whisper

import (
	"errors"
	"fmt"
	"strings"
)

type Strategy int

const (
	StrategyGreedy Strategy = iota
	StrategyBeamSearch
)

func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyBeamSearch:
		return "beam_search"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Params is the decoding configuration handed to State.Full.
type Params struct {
	Strategy          Strategy
	BeamSize          int
	Patience          float32
	Language          string
	Translate         bool
	SuppressBlank     bool
	SuppressNonSpeech bool
	TokenTimestamps   bool
}

// DefaultParams returns the fixed English beam-search configuration.
func DefaultParams() Params {
	return Params{
		Strategy:          StrategyBeamSearch,
		BeamSize:          5,
		Patience:          1.5,
		Language:          "en",
		Translate:         false,
		SuppressBlank:     true,
		SuppressNonSpeech: true,
		TokenTimestamps:   true,
	}
}

func (p Params) Validate() error {
	if strings.TrimSpace(p.Language) == "" {
		return errors.New("language must not be empty")
	}
	if p.Strategy == StrategyBeamSearch {
		if p.BeamSize < 1 {
			return fmt.Errorf("beam size must be at least 1, got %d", p.BeamSize)
		}
		if p.Patience <= 0 {
			return fmt.Errorf("beam patience must be positive, got %g", p.Patience)
		}
	}
	return nil
}
