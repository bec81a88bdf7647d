package cli

import (
	"fmt"
	"os"

	"github.com/0xguv/overcue/internal/caption"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file]",
	Short: "Parse a subtitle file and report problems",
	Long: `Parse an SRT subtitle file and report cue counts and timing issues.

By default parsing is lenient: blocks with malformed timecodes are skipped
and cues whose start does not precede their end are kept as read. With
--strict the first problem aborts the parse.

Examples:
  overcue check subs.srt
  overcue check subs.srt --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		Bool("strict", false, "Fail on the first malformed block or inverted cue interval")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	strict, _ := cmd.Flags().GetBool("strict")

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	var cues []caption.Caption
	if strict {
		cues, err = caption.ParseStrict(file)
	} else {
		cues, err = caption.Parse(file)
	}
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	inverted := 0
	for _, cue := range cues {
		if cue.Start >= cue.End {
			inverted++
			logger.Warnw("cue does not end after it starts",
				"id", cue.ID,
				"start", caption.FormatTimecode(cue.Start),
				"end", caption.FormatTimecode(cue.End),
			)
		}
	}

	fmt.Printf("%s: %d cues", path, len(cues))
	if inverted > 0 {
		fmt.Printf(", %d with inverted timing", inverted)
	}
	fmt.Println()

	return nil
}
