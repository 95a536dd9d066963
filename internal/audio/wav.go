package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

const (
	RequiredSampleRate = 16000
	RequiredChannels   = 1
	RequiredBitDepth   = 16

	pcmFormat        = 1
	extensibleFormat = 0xFFFE
	pcm16Full        = 32768.0
)

var (
	ErrUnsupportedWAV = errors.New("unsupported wav format")
	ErrInvalidWAV     = errors.New("invalid wav file")
)

// ConversionHint returns the ffmpeg command that produces a file LoadMono16k accepts.
func ConversionHint(path string) string {
	return fmt.Sprintf("ffmpeg -i input.mp3 -ar %d -ac %d -c:a pcm_s16le %s", RequiredSampleRate, RequiredChannels, path)
}

// LoadMono16k decodes a mono 16 kHz 16-bit PCM WAV file into samples in
// [-1.0, 1.0]. Any other layout is rejected before the sample data is read.
func LoadMono16k(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}

	if err := validateFormat(dec, path); err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode wav samples: %w", err)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: no pcm data", ErrInvalidWAV)
	}
	// The decoder stops quietly at a short data chunk and turns a dangling
	// byte into a sample; both mean the declared data was not all there.
	if declared := dec.PCMLen(); declared%2 != 0 || int64(len(buf.Data))*2 != declared {
		return nil, fmt.Errorf("decode wav samples: %w", io.ErrUnexpectedEOF)
	}

	return NormalizePCM16(buf.Data), nil
}

func validateFormat(dec *wav.Decoder, path string) error {
	// go-audio does not expose the extensible subformat GUID; at 16 bits
	// only integer PCM exists.
	isPCM := dec.WavAudioFormat == pcmFormat || dec.WavAudioFormat == extensibleFormat
	if !isPCM || dec.BitDepth != RequiredBitDepth {
		return fmt.Errorf("%w: format %d with %d-bit samples; audio must be 16-bit PCM. Convert with:\n%s",
			ErrUnsupportedWAV, dec.WavAudioFormat, dec.BitDepth, ConversionHint(path))
	}
	if dec.NumChans != RequiredChannels || dec.SampleRate != RequiredSampleRate {
		return fmt.Errorf("%w: %d channel(s) at %d Hz; audio must be mono 16kHz. Convert with:\n%s",
			ErrUnsupportedWAV, dec.NumChans, dec.SampleRate, ConversionHint(path))
	}
	return nil
}

// NormalizePCM16 maps signed 16-bit sample values onto [-1.0, 1.0).
func NormalizePCM16(data []int) []float32 {
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v) / pcm16Full
	}
	return out
}
