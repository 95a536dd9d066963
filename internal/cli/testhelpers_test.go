package cli

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fmueller/wavscribe/internal/whisper"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args []string) (stdout string, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)

	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// fakeEngine records every call the pipeline makes into the engine.
type fakeEngine struct {
	calls    []string
	segments []whisper.Segment
	fullErr  error

	params  whisper.Params
	samples []float32
}

func (e *fakeEngine) load(path string) (whisper.Model, error) {
	e.calls = append(e.calls, "load:"+filepath.Base(path))
	return e, nil
}

func (e *fakeEngine) NewState() (whisper.State, error) {
	e.calls = append(e.calls, "state")
	return e, nil
}

func (e *fakeEngine) Close() error {
	e.calls = append(e.calls, "close")
	return nil
}

func (e *fakeEngine) Full(params whisper.Params, samples []float32) error {
	e.calls = append(e.calls, "full")
	e.params = params
	e.samples = samples
	return e.fullErr
}

func (e *fakeEngine) NumSegments() int              { return len(e.segments) }
func (e *fakeEngine) Segment(i int) whisper.Segment { return e.segments[i] }

type testWorkspace struct {
	dir    string
	model  string
	audio  string
	output string
}

func newTestWorkspace(t *testing.T) testWorkspace {
	t.Helper()

	dir := t.TempDir()
	ws := testWorkspace{
		dir:    dir,
		model:  filepath.Join(dir, "models", "ggml-large-v3.bin"),
		audio:  filepath.Join(dir, "audio_en.wav"),
		output: filepath.Join(dir, "transcription_en.txt"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(ws.model), 0o755))
	return ws
}

func (ws testWorkspace) writeModel(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(ws.model, []byte("ggml"), 0o644))
}

func (ws testWorkspace) writeAudio(t *testing.T, samples []int16, sampleRate, channels int) {
	t.Helper()
	require.NoError(t, os.WriteFile(ws.audio, makePCM16WAVForTest(samples, sampleRate, channels), 0o644))
}

func (ws testWorkspace) app(engine *fakeEngine, out *bytes.Buffer) *appState {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &appState{
		modelPath:   ws.model,
		audioPath:   ws.audio,
		outputPath:  ws.output,
		noProgress:  true,
		out:         out,
		now:         func() time.Time { return fixed },
		loadModelFn: engine.load,
	}
}

func makePCM16WAVForTest(samples []int16, sampleRate int, channels int) []byte {
	bytesPerSample := 2
	dataSize := len(samples) * bytesPerSample
	fmtChunkSize := 16
	riffSize := 4 + (8 + fmtChunkSize) + (8 + dataSize)

	out := make([]byte, 12+8+fmtChunkSize+8+dataSize)
	off := 0

	copy(out[off:], []byte("RIFF"))
	off += 4
	binary.LittleEndian.PutUint32(out[off:], uint32(riffSize))
	off += 4
	copy(out[off:], []byte("WAVE"))
	off += 4

	copy(out[off:], []byte("fmt "))
	off += 4
	binary.LittleEndian.PutUint32(out[off:], uint32(fmtChunkSize))
	off += 4
	binary.LittleEndian.PutUint16(out[off:], 1)
	off += 2
	binary.LittleEndian.PutUint16(out[off:], uint16(channels))
	off += 2
	binary.LittleEndian.PutUint32(out[off:], uint32(sampleRate))
	off += 4
	binary.LittleEndian.PutUint32(out[off:], uint32(sampleRate*channels*bytesPerSample))
	off += 4
	binary.LittleEndian.PutUint16(out[off:], uint16(channels*bytesPerSample))
	off += 2
	binary.LittleEndian.PutUint16(out[off:], 16)
	off += 2

	copy(out[off:], []byte("data"))
	off += 4
	binary.LittleEndian.PutUint32(out[off:], uint32(dataSize))
	off += 4

	for _, s := range samples {
		binary.LittleEndian.PutUint16(out[off:], uint16(s))
		off += 2
	}

	return out
}
