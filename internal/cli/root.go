package cli

import (
	"github.com/0xguv/overcue/internal/config"
	"github.com/0xguv/overcue/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "overcue",
	Short: "Subtitle authoring toolkit for video overlays",
	Long: `Overcue parses SRT subtitle files into a time-indexed caption
sequence, keeps captions in sync with a playback clock, and manages a
draggable caption overlay positioned in frame-relative percentages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				// no user config dir; run on defaults
				cfg = config.Default()
				return nil
			}
		}

		var err error
		cfg, err = config.Load(path)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
