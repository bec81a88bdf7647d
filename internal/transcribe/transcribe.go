package transcribe

import (
	"context"
	"strings"
	"time"

	"github.com/0xguv/overcue/internal/caption"
)

// transcribed audio segment
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// transcription result
type Result struct {
	Segments []Segment
	Language string
	Duration time.Duration
}

// Captions converts segments into cues, assigning sequential IDs from 1 and
// dropping empty segments.
func (r *Result) Captions() []caption.Caption {
	cues := make([]caption.Caption, 0, len(r.Segments))
	for _, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		cues = append(cues, caption.Caption{
			ID:    len(cues) + 1,
			Start: seg.Start,
			End:   seg.End,
			Text:  text,
		})
	}
	return cues
}

// interface for audio transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// transcription options
type Options struct {
	Language string // Source language of the audio
	Model    string
	Prompt   string
}
