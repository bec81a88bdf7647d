package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Overlay.AnchorX != 50 || cfg.Overlay.AnchorY != 15 {
		t.Errorf("unexpected default anchor: %+v", cfg.Overlay)
	}
	if cfg.Transcribe.Model != "whisper-1" {
		t.Errorf("unexpected default model %q", cfg.Transcribe.Model)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `overlay:
  anchor_x: 30
  anchor_y: 20
  width: 400
  height: 100
transcribe:
  language: fr
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Overlay.AnchorX != 30 || cfg.Overlay.Width != 400 {
		t.Errorf("overrides not applied: %+v", cfg.Overlay)
	}
	// unset fields keep their defaults
	if cfg.Transcribe.Model != "whisper-1" {
		t.Errorf("expected default model kept, got %q", cfg.Transcribe.Model)
	}
	if cfg.Transcribe.Language != "fr" {
		t.Errorf("expected language fr, got %q", cfg.Transcribe.Language)
	}
}

func TestLoadRejectsDegenerateOverlaySize(t *testing.T) {
	content := `overlay:
  width: 0
  height: 100
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for zero overlay width")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("overlay: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
