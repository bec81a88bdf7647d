package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xguv/overcue/internal/caption"
	"github.com/0xguv/overcue/internal/media"
	"github.com/0xguv/overcue/internal/transcribe"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media_file]",
	Short: "Generate an SRT file from a media file's audio",
	Long: `Extract the audio track from a media file, transcribe it with the
OpenAI Audio API and write the result as an SRT file ready for editing.

Examples:
  overcue transcribe video.mp4
  overcue transcribe video.mp4 -o subs.srt -l en
  overcue transcribe talk.mp3 --model whisper-1`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		StringP("api-key", "k", "", "API key (or set OPENAI_API_KEY env var)")
	transcribeCmd.Flags().
		String("model", "", "Transcription model (defaults from config)")
	transcribeCmd.Flags().
		String("prompt", "", "Optional prompt to guide transcription")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported media file: %s", mediaPath)
	}

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: pass --api-key or set OPENAI_API_KEY")
	}

	if model == "" {
		model = cfg.Transcribe.Model
	}
	if language == "" {
		language = cfg.Transcribe.Language
	}
	if outputPath == "" {
		ext := filepath.Ext(mediaPath)
		outputPath = strings.TrimSuffix(mediaPath, ext) + ".srt"
	}

	info, err := media.Probe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("failed to probe media: %w", err)
	}

	logger.Infow("Transcribing media",
		"media", mediaPath,
		"output", outputPath,
		"duration", info.Duration,
		"model", model,
	)

	tmpDir, err := os.MkdirTemp("", "overcue-audio-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	audioPath := filepath.Join(tmpDir, "audio.mp3")
	if err := media.ExtractAudio(
		ctx,
		mediaPath,
		audioPath,
		media.DefaultExtractAudioOptions(),
	); err != nil {
		return fmt.Errorf("audio extraction failed: %w", err)
	}

	transcriber, err := transcribe.NewOpenAITranscriber(apiKey, transcribe.Options{
		Language: language,
		Model:    model,
		Prompt:   prompt,
	})
	if err != nil {
		return err
	}

	result, err := transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	cues := result.Captions()
	if err := caption.WriteFile(outputPath, cues); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Transcribed %d cues to %s\n", len(cues), absOutput)

	return nil
}
