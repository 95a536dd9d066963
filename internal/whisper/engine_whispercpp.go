//go:build whisper_cpp

package whisper

import (
	"errors"
	"fmt"
	"strings"

	whispercpp "github.com/ggerganov/whisper.cpp/bindings/go"
	"go.uber.org/zap"
)

// Engine names the inference backend linked into this build.
const Engine = "whisper.cpp"

type cppModel struct {
	ctx    *whispercpp.Context
	logger *zap.Logger
}

// LoadModel loads a ggml whisper model from path.
func LoadModel(path string, logger *zap.Logger) (Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx := whispercpp.Whisper_init(path)
	if ctx == nil {
		return nil, fmt.Errorf("whisper.cpp could not load model %s", path)
	}

	logger.Debug("whisper model loaded", zap.String("model", path))
	return &cppModel{ctx: ctx, logger: logger}, nil
}

func (m *cppModel) NewState() (State, error) {
	if m.ctx == nil {
		return nil, errors.New("model is closed")
	}
	return &cppState{model: m}, nil
}

func (m *cppModel) Close() error {
	if m.ctx != nil {
		m.ctx.Whisper_free()
		m.ctx = nil
	}
	return nil
}

// cppState decodes on the context's default state, so a model serves one
// run at a time.
type cppState struct {
	model *cppModel
}

func (s *cppState) Full(params Params, samples []float32) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid decoding params: %w", err)
	}
	if len(samples) == 0 {
		return ErrEmptyAudio
	}

	ctx := s.model.ctx
	if ctx == nil {
		return errors.New("model is closed")
	}

	native := ctx.Whisper_full_default_params(samplingStrategy(params.Strategy))
	native.SetBeamSize(params.BeamSize)
	native.SetTranslate(params.Translate)
	native.SetTokenTimestamps(params.TokenTimestamps)
	native.SetPrintProgress(false)
	native.SetPrintRealtime(false)

	lang := strings.ToLower(strings.TrimSpace(params.Language))
	id := -1
	if lang != "auto" {
		if id = ctx.Whisper_lang_id(lang); id < 0 {
			return fmt.Errorf("unsupported language %q", params.Language)
		}
	}
	if err := native.SetLanguage(id); err != nil {
		return fmt.Errorf("set language %q: %w", params.Language, err)
	}
	applyNativeParams(&native, params)

	s.model.logger.Debug(
		"running whisper",
		zap.Stringer("strategy", params.Strategy),
		zap.Int("beam_size", params.BeamSize),
		zap.Float32("patience", params.Patience),
		zap.String("language", lang),
		zap.Int("samples", len(samples)),
	)

	if err := ctx.Whisper_full(native, samples, nil, nil, nil); err != nil {
		return fmt.Errorf("whisper full: %w", err)
	}
	return nil
}

func (s *cppState) NumSegments() int {
	return s.model.ctx.Whisper_full_n_segments()
}

func (s *cppState) Segment(i int) Segment {
	ctx := s.model.ctx
	return Segment{
		Start: ctx.Whisper_full_get_segment_t0(i),
		End:   ctx.Whisper_full_get_segment_t1(i),
		Text:  ctx.Whisper_full_get_segment_text(i),
	}
}

func samplingStrategy(s Strategy) whispercpp.SamplingStrategy {
	if s == StrategyBeamSearch {
		return whispercpp.SAMPLING_BEAM_SEARCH
	}
	return whispercpp.SAMPLING_GREEDY
}
