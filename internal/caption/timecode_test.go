package caption

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:01:02,500", 62*time.Second + 500*time.Millisecond},
		{"01:00:00,000", time.Hour},
		{"02:30:45,123", 2*time.Hour + 30*time.Minute + 45*time.Second + 123*time.Millisecond},
		// field ranges are not validated; out-of-range minutes still add up
		{"00:75:00,000", 75 * time.Minute},
		{"00:00:90,000", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimecode(tt.input)
			if err != nil {
				t.Fatalf("ParseTimecode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimecode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimecodeSeconds(t *testing.T) {
	got, err := ParseTimecode("00:01:02,500")
	if err != nil {
		t.Fatalf("ParseTimecode failed: %v", err)
	}
	if got.Seconds() != 62.5 {
		t.Errorf("expected 62.5 seconds, got %v", got.Seconds())
	}
}

func TestParseTimecodeMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:01:02",
		"00:01:02.500",
		"00-01-02,500",
		"0001:02,500",
		"one:two:three,four",
		"00:01:02,500 extra",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimecode(input)
			if err == nil {
				t.Fatalf("ParseTimecode(%q) should have failed", input)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("expected *FormatError, got %T", err)
			}
		})
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00,000"},
		{62*time.Second + 500*time.Millisecond, "00:01:02,500"},
		{time.Hour + time.Minute + time.Second + time.Millisecond, "01:01:01,001"},
		{10*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond, "10:59:59,999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimecode(tt.input); got != tt.want {
				t.Errorf("FormatTimecode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	inputs := []string{"00:00:01,000", "01:23:45,678", "12:00:00,001"}
	for _, input := range inputs {
		d, err := ParseTimecode(input)
		if err != nil {
			t.Fatalf("ParseTimecode(%q) failed: %v", input, err)
		}
		if got := FormatTimecode(d); got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}
