package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Width != 160 || config.Height != 36 {
		t.Fatalf("default board = %dx%d, want 160x36", config.Width, config.Height)
	}
	if config.FrameRate != 100*time.Millisecond {
		t.Fatalf("default frame rate = %s, want 100ms", config.FrameRate)
	}
	if config.MaxGenerations != 0 {
		t.Fatalf("default max generations = %d, want unlimited", config.MaxGenerations)
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"width": 20, "frame_rate": 50000000, "seed": 9}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Width != 20 || config.Height != 36 {
		t.Fatalf("board = %dx%d, want 20x36", config.Width, config.Height)
	}
	if config.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate = %s, want 50ms", config.FrameRate)
	}
	if config.RandomSeed() != 9 {
		t.Fatalf("RandomSeed() = %d, want 9", config.RandomSeed())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file error = %v, want not-exist cause", err)
	}

	tests := map[string]string{
		"malformed json":  `{"width": `,
		"zero width":      `{"width": 0}`,
		"negative height": `{"height": -4}`,
		"negative frames": `{"frame_rate": -1}`,
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, contents)); err == nil {
				t.Fatalf("LoadConfig(%s) returned nil error", contents)
			}
		})
	}
}
