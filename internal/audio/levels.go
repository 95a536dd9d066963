package audio

import "math"

// Levels summarizes the loudness of a normalized sample buffer.
type Levels struct {
	RMSdBFS  float64
	PeakdBFS float64
	Samples  int
}

func Measure(samples []float32) Levels {
	if len(samples) == 0 {
		return Levels{RMSdBFS: math.Inf(-1), PeakdBFS: math.Inf(-1)}
	}

	var peak, sumSquares float64
	for _, s := range samples {
		v := float64(s)
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
		sumSquares += v * v
	}

	return Levels{
		RMSdBFS:  amplitudeToDBFS(math.Sqrt(sumSquares / float64(len(samples)))),
		PeakdBFS: amplitudeToDBFS(peak),
		Samples:  len(samples),
	}
}

// Silent reports whether the buffer stays below thresholdDBFS, allowing
// peaks up to 6 dB above it.
func (l Levels) Silent(thresholdDBFS float64) bool {
	if l.Samples == 0 {
		return true
	}
	if math.IsInf(l.RMSdBFS, -1) && math.IsInf(l.PeakdBFS, -1) {
		return true
	}
	return l.RMSdBFS <= thresholdDBFS && l.PeakdBFS <= thresholdDBFS+6
}

// Seconds returns the buffer length at the required sample rate.
func (l Levels) Seconds() float64 {
	return float64(l.Samples) / RequiredSampleRate
}

func amplitudeToDBFS(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(amplitude)
}
