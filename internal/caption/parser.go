package caption

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// one in-progress subtitle block
type block struct {
	start     time.Duration
	end       time.Duration
	timed     bool
	malformed bool
	textLines []string
}

// Parse reads SRT text and returns cues in source order. Blocks with a
// malformed time-range line are skipped and parsing continues; blocks whose
// text is empty after trimming are dropped. Cue IDs are assigned
// sequentially from 1 in commit order, ignoring source index lines.
func Parse(r io.Reader) ([]Caption, error) {
	return parse(r, false)
}

// ParseStrict aborts on the first malformed timecode or on a cue whose
// start does not precede its end.
func ParseStrict(r io.Reader) ([]Caption, error) {
	return parse(r, true)
}

func parse(r io.Reader, strict bool) ([]Caption, error) {
	var cues []Caption
	var current *block

	commit := func() error {
		if current == nil {
			return nil
		}
		b := *current
		current = nil
		if !b.timed || b.malformed || len(b.textLines) == 0 {
			return nil
		}
		if b.start >= b.end {
			if strict {
				return fmt.Errorf(
					"cue starting at %s does not end after it starts",
					FormatTimecode(b.start),
				)
			}
			// lenient mode keeps the cue as read
		}
		cues = append(cues, Caption{
			ID:    len(cues) + 1,
			Start: b.start,
			End:   b.end,
			Text:  strings.Join(b.textLines, "\n"),
		})
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err := commit(); err != nil {
				return nil, err
			}
			continue
		}

		if current == nil {
			current = &block{}
		}

		if !current.timed {
			if !strings.Contains(trimmed, "-->") {
				// index slot; the source-provided number is discarded
				continue
			}
			start, end, err := parseTimeRange(trimmed)
			if err != nil {
				if strict {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				current.malformed = true
				current.timed = true
				continue
			}
			current.start = start
			current.end = end
			current.timed = true
			continue
		}

		current.textLines = append(current.textLines, trimmed)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle text: %w", err)
	}

	// end of input terminates the final block
	if err := commit(); err != nil {
		return nil, err
	}

	return cues, nil
}

func parseTimeRange(line string) (time.Duration, time.Duration, error) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, &FormatError{Input: line}
	}

	start, err := ParseTimecode(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := ParseTimecode(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end timestamp: %w", err)
	}

	return start, end, nil
}
