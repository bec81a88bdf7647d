package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xguv/overcue/internal/caption"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [subtitle_file]",
	Short: "Rewrite a subtitle file with clean numbering and spacing",
	Long: `Parse an SRT file leniently and write it back out with sequential
cue numbers, canonical timestamps and tidy block separation. Malformed
blocks and empty cues are dropped.

Examples:
  overcue normalize subs.srt
  overcue normalize subs.srt -o clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		ext := filepath.Ext(path)
		outputPath = strings.TrimSuffix(path, ext) + ".normalized" + ext
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

	logger.Infow("Normalizing subtitle file",
		"input", path,
		"output", outputPath,
		"cues", len(cues),
	)

	if err := caption.WriteFile(outputPath, cues); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Wrote %d cues to %s\n", len(cues), absOutput)

	return nil
}
