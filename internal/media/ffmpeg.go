package media

import (
	"fmt"
	"os"
	"os/exec"
)

// binary discovery: env override first, then $PATH
func ffmpegPath() (string, error) {
	if path := os.Getenv("OVERCUE_FFMPEG_PATH"); path != "" {
		return path, nil
	}
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found in PATH (set OVERCUE_FFMPEG_PATH to override): %w", err)
	}
	return path, nil
}

func ffprobePath() (string, error) {
	if path := os.Getenv("OVERCUE_FFPROBE_PATH"); path != "" {
		return path, nil
	}
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		return "", fmt.Errorf("ffprobe not found in PATH (set OVERCUE_FFPROBE_PATH to override): %w", err)
	}
	return path, nil
}
