package cli

import (
	"fmt"
	"strings"

	"github.com/fmueller/wavscribe/internal/report"
)

const blankAudioToken = "[BLANK_AUDIO]"

func isBlankTranscript(transcript string) bool {
	trimmed := strings.TrimSpace(transcript)
	if trimmed == "" {
		return true
	}

	return strings.EqualFold(trimmed, blankAudioToken)
}

func isBlankResult(src report.SegmentSource) bool {
	for i := 0; i < src.NumSegments(); i++ {
		if !isBlankTranscript(src.Segment(i).Text) {
			return false
		}
	}
	return true
}

func noSpeechHint(audioPath string) string {
	return fmt.Sprintf("No speech detected in %s. Check the recording level and that the speech is English.", audioPath)
}
