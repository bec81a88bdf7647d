package caption

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write serializes cues as SRT blocks. Index lines are renumbered
// sequentially from 1 regardless of cue IDs.
func Write(w io.Writer, cues []Caption) error {
	var sb strings.Builder
	for i, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimecode(cue.Start),
			FormatTimecode(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write subtitle text: %w", err)
	}
	return nil
}

// WriteFile serializes cues to an SRT file, creating parent directories.
func WriteFile(path string, cues []Caption) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return Write(file, cues)
}
