package cli

import (
	"fmt"
	"os"

	"github.com/0xguv/overcue/internal/caption"
	"github.com/0xguv/overcue/internal/playback"
	"github.com/spf13/cobra"
)

var atCmd = &cobra.Command{
	Use:   "at [subtitle_file]",
	Short: "Show the caption active at a playback instant",
	Long: `Show which caption is visible at a given playback position.

The position uses the SRT timestamp format. When cues overlap, the first
cue in file order wins, matching what the overlay would display.

Examples:
  overcue at subs.srt --time 00:01:02,500`,
	Args: cobra.ExactArgs(1),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)

	atCmd.Flags().StringP("time", "t", "", "Playback position as HH:MM:SS,mmm (required)")
	_ = atCmd.MarkFlagRequired("time")
}

func runAt(cmd *cobra.Command, args []string) error {
	path := args[0]
	timeStr, _ := cmd.Flags().GetString("time")

	pos, err := caption.ParseTimecode(timeStr)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	cues, err := caption.Parse(file)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	engine := playback.NewEngine(cues)
	engine.OnTimeUpdate(pos)

	text := engine.ActiveText()
	if text == "" {
		fmt.Printf("No caption active at %s\n", caption.FormatTimecode(pos))
		return nil
	}

	first := true
	for _, cue := range engine.Captions() {
		if cue.Active {
			marker := " "
			if first {
				marker = "*"
				first = false
			}
			fmt.Printf("%s %d  %s --> %s\n", marker, cue.ID,
				caption.FormatTimecode(cue.Start),
				caption.FormatTimecode(cue.End))
		}
	}
	fmt.Println(text)

	return nil
}
