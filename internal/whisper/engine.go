package whisper

import "errors"

// SampleRate is the only input rate the engine accepts.
const SampleRate = 16000

var (
	ErrEngineUnavailable = errors.New("whisper engine unavailable")
	ErrEmptyAudio        = errors.New("audio buffer is empty")
)

// Segment is one timestamped span of the transcript. Start and End are
// centisecond ticks as reported by the engine.
type Segment struct {
	Start int64
	End   int64
	Text  string
}

// Model is a loaded speech model. It is released with Close.
type Model interface {
	NewState() (State, error)
	Close() error
}

// State holds one decoding run. Full blocks until the whole buffer has been
// processed; segments are only readable afterwards.
type State interface {
	Full(params Params, samples []float32) error
	NumSegments() int
	Segment(i int) Segment
}
