package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fmueller/wavscribe/internal/audio"
	"github.com/fmueller/wavscribe/internal/logging"
	"github.com/fmueller/wavscribe/internal/report"
	"github.com/fmueller/wavscribe/internal/version"
	"github.com/fmueller/wavscribe/internal/whisper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

const (
	ModelPath  = "models/ggml-large-v3.bin"
	AudioPath  = "audio_en.wav"
	OutputPath = "transcription_en.txt"

	silenceThresholdDBFS = -65
)

var longHelp = fmt.Sprintf(`Transcribe the mono 16kHz WAV file %s with the whisper model at %s
and write timestamped segments to %s.

Convert other audio first:
  %s`, AudioPath, ModelPath, OutputPath, audio.ConversionHint(AudioPath))

type appState struct {
	verbose    bool
	jsonLogs   bool
	noProgress bool

	modelPath  string
	audioPath  string
	outputPath string

	logger *zap.Logger
	now    func() time.Time
	out    io.Writer

	loadModelFn func(path string) (whisper.Model, error)
	loadAudioFn func(path string) ([]float32, error)
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		modelPath:  ModelPath,
		audioPath:  AudioPath,
		outputPath: OutputPath,
		now:        time.Now,
		out:        os.Stdout,
	}
	app.loadModelFn = app.loadModel
	app.loadAudioFn = audio.LoadMono16k

	cmd := &cobra.Command{
		Use:           "wavscribe",
		Short:         "Transcribe " + AudioPath + " with a whisper model into " + OutputPath,
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			app.logger = logging.New(logging.Options{Verbose: app.verbose, JSON: app.jsonLogs})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.out = cmd.OutOrStdout()
			return app.run()
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindLoggingFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.Flags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
}

func bindProgressFlag(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
}

// run executes check, load, infer and report in order. The first failure
// ends the run; a report file created before the failure is left in place.
func (a *appState) run() error {
	loadModelFn := a.loadModelFn
	if loadModelFn == nil {
		loadModelFn = a.loadModel
	}

	loadAudioFn := a.loadAudioFn
	if loadAudioFn == nil {
		loadAudioFn = audio.LoadMono16k
	}

	if err := checkInputs(a.modelPath, a.audioPath); err != nil {
		return err
	}

	a.step(1, "Loading model...")
	model, err := loadModelFn(a.modelPath)
	if err != nil {
		return fmt.Errorf("load model %s: %w", a.modelPath, err)
	}
	defer func() {
		if err := model.Close(); err != nil {
			a.log().Warn("failed to release model", zap.Error(err))
		}
	}()
	a.log().Debug("model ready", zap.String("model", a.modelPath))

	a.step(2, "Analyzing audio...")
	samples, err := loadAudioFn(a.audioPath)
	if err != nil {
		return fmt.Errorf("load audio %s: %w", a.audioPath, err)
	}
	levels := a.logLevels(samples)

	params := whisper.DefaultParams()

	a.step(3, "Transcribing...")
	started := a.clock()
	state, err := model.NewState()
	if err != nil {
		return fmt.Errorf("create decoding state: %w", err)
	}

	stopSpinner := startSpinner(a.progressEnabled(), fmt.Sprintf("Transcribing %.1fs of audio", levels.Seconds()))
	err = state.Full(params, samples)
	stopSpinner()
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	a.log().Info("transcription finished",
		zap.Int("segments", state.NumSegments()),
		zap.Duration("elapsed", a.clock().Sub(started)),
	)
	if isBlankResult(state) {
		a.log().Warn(noSpeechHint(a.audioPath))
	}

	a.step(4, "Saving...")
	if err := report.WriteFile(a.outputPath, state, a.clock().Sub(started)); err != nil {
		return err
	}

	fmt.Fprintf(a.outWriter(), "Done! Results saved to %s\n", a.outputPath)
	return nil
}

func (a *appState) loadModel(path string) (whisper.Model, error) {
	return whisper.LoadModel(path, a.log())
}

func (a *appState) step(n int, msg string) {
	fmt.Fprintf(a.outWriter(), "[%d/4] %s\n", n, msg)
}

func (a *appState) logLevels(samples []float32) audio.Levels {
	levels := audio.Measure(samples)
	a.log().Info("audio loaded",
		zap.String("audio", a.audioPath),
		zap.Int("samples", levels.Samples),
		zap.Float64("seconds", levels.Seconds()),
	)
	a.log().Debug("audio levels",
		zap.Float64("rms_dbfs", levels.RMSdBFS),
		zap.Float64("peak_dbfs", levels.PeakdBFS),
	)
	if levels.Silent(silenceThresholdDBFS) {
		a.log().Warn("audio is near-silent; expect few or no segments",
			zap.Float64("threshold_dbfs", silenceThresholdDBFS),
		)
	}
	return levels
}

// checkInputs verifies the model before the audio so a missing model is
// reported without touching the audio file.
func checkInputs(modelPath, audioPath string) error {
	if err := requireFile(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s\nDownload it with:\n%s", ErrModelNotFound, modelPath, whisper.LargeV3.DownloadHint(modelPath))
		}
		return fmt.Errorf("stat model %s: %w", modelPath, err)
	}

	if err := requireFile(audioPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s\nConvert your recording with:\n%s", ErrAudioNotFound, audioPath, audio.ConversionHint(audioPath))
		}
		return fmt.Errorf("stat audio %s: %w", audioPath, err)
	}

	return nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) clock() time.Time {
	if a.now == nil {
		return time.Now()
	}
	return a.now()
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func (a *appState) outWriter() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}
