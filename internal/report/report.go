package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fmueller/wavscribe/internal/whisper"
)

const header = "Transcription results:"

// SegmentSource is the read side of a finished decoding run.
type SegmentSource interface {
	NumSegments() int
	Segment(i int) whisper.Segment
}

// WriteFile creates or truncates path and writes the transcript report to it.
func WriteFile(path string, src SegmentSource, elapsed time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Write(w, src, elapsed); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

func Write(w io.Writer, src SegmentSource, elapsed time.Duration) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	n := src.NumSegments()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintln(w, FormatSegment(src.Segment(i))); err != nil {
			return fmt.Errorf("write segment %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintf(w, "\nProcessing time: %.2f sec\n", elapsed.Seconds()); err != nil {
		return fmt.Errorf("write processing time: %w", err)
	}
	return nil
}

// FormatSegment renders one line as [start-end] text with times in seconds.
func FormatSegment(seg whisper.Segment) string {
	return fmt.Sprintf("[%.2fs-%.2fs] %s", ticksToSeconds(seg.Start), ticksToSeconds(seg.End), strings.TrimSpace(seg.Text))
}

func ticksToSeconds(ticks int64) float64 {
	return float64(ticks) / 100.0
}
