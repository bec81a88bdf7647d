package transcribe

import (
	"testing"
	"time"
)

func TestParseVerboseJSONResponse(t *testing.T) {
	tests := []struct {
		name             string
		rawJSON          string
		fallbackDuration time.Duration
		wantCount        int
		wantErr          bool
	}{
		{
			name: "valid verbose_json with segments",
			rawJSON: `{
				"text": "Hello world. How are you today?",
				"segments": [
					{"start": 0.0, "end": 1.5, "text": "Hello world."},
					{"start": 1.5, "end": 3.0, "text": "How are you today?"}
				],
				"language": "en",
				"duration": 3.0
			}`,
			fallbackDuration: 5 * time.Second,
			wantCount:        2,
		},
		{
			name: "no segments but has text",
			rawJSON: `{
				"text": "This is a transcription without segments.",
				"segments": [],
				"language": "en",
				"duration": 2.5
			}`,
			fallbackDuration: 5 * time.Second,
			wantCount:        1,
		},
		{
			name: "empty segments filtered out",
			rawJSON: `{
				"text": "Hello world",
				"segments": [
					{"start": 0.0, "end": 0.5, "text": ""},
					{"start": 0.5, "end": 1.5, "text": "Hello world"}
				],
				"language": "en",
				"duration": 1.5
			}`,
			fallbackDuration: 5 * time.Second,
			wantCount:        1,
		},
		{
			name:    "empty response",
			rawJSON: "",
			wantErr: true,
		},
		{
			name:    "malformed json",
			rawJSON: "{not json",
			wantErr: true,
		},
		{
			name:    "no segments and no text",
			rawJSON: `{"text": "", "segments": [], "language": "en"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := parseVerboseJSONResponse(tt.rawJSON, tt.fallbackDuration)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segments) != tt.wantCount {
				t.Errorf("expected %d segments, got %d", tt.wantCount, len(segments))
			}
		})
	}
}

func TestParseVerboseJSONSegmentTiming(t *testing.T) {
	rawJSON := `{
		"text": "Hi.",
		"segments": [{"start": 1.25, "end": 3.5, "text": " Hi. "}],
		"language": "en",
		"duration": 3.5
	}`

	segments, err := parseVerboseJSONResponse(rawJSON, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segments[0].Start != 1250*time.Millisecond {
		t.Errorf("expected start 1.25s, got %v", segments[0].Start)
	}
	if segments[0].End != 3500*time.Millisecond {
		t.Errorf("expected end 3.5s, got %v", segments[0].End)
	}
	if segments[0].Text != "Hi." {
		t.Errorf("expected trimmed text, got %q", segments[0].Text)
	}
}

func TestResultCaptions(t *testing.T) {
	result := &Result{
		Segments: []Segment{
			{Start: 0, End: time.Second, Text: "First."},
			{Start: time.Second, End: 2 * time.Second, Text: "   "},
			{Start: 2 * time.Second, End: 3 * time.Second, Text: "Second."},
		},
	}

	cues := result.Captions()
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].ID != 1 || cues[1].ID != 2 {
		t.Errorf("expected dense IDs, got %d and %d", cues[0].ID, cues[1].ID)
	}
	if cues[1].Text != "Second." {
		t.Errorf("expected 'Second.', got %q", cues[1].Text)
	}
}

func TestNewOpenAITranscriberRequiresKey(t *testing.T) {
	if _, err := NewOpenAITranscriber("", Options{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
