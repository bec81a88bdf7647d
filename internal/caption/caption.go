package caption

import (
	"strings"
	"time"
)

// represents single timed caption cue
type Caption struct {
	ID     int
	Start  time.Duration
	End    time.Duration
	Text   string
	Active bool
}

// reports whether t falls inside the cue interval, both ends inclusive
func (c Caption) Contains(t time.Duration) bool {
	return t >= c.Start && t <= c.End
}

// text split into individual lines
func (c Caption) Lines() []string {
	return strings.Split(c.Text, "\n")
}
