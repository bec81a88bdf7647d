package caption

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// timestamp shape: hours:minutes:seconds,millis. Field widths and ranges are
// not validated, so values like 00:75:00,000 still parse arithmetically.
var timecodeRegex = regexp.MustCompile(`^(\d+):(\d+):(\d+),(\d+)$`)

// reported when a timestamp token does not match the HH:MM:SS,mmm shape
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed timecode %q: want HH:MM:SS,mmm", e.Input)
}

// ParseTimecode converts an SRT timestamp into a playback offset.
func ParseTimecode(s string) (time.Duration, error) {
	matches := timecodeRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, &FormatError{Input: s}
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// FormatTimecode renders a playback offset as an SRT timestamp.
func FormatTimecode(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
