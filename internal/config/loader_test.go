package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
)

func TestEmbeddedDefaultMatchesArenaDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := cfg.ToArena()
	want := arena.DefaultConfig()
	if got != want {
		t.Errorf("Embedded defaults diverge from arena defaults:\n%+v\nvs\n%+v", got, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("arena:\n  grid_size: 40\n  riders: 6\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.GridSize != 40 || cfg.Arena.Riders != 6 {
		t.Errorf("Expected custom arena values, got %+v", cfg.Arena)
	}

	// Missing custom path is a hard error, not a silent fallback.
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing custom config")
	}
}

func TestRidersForPreset(t *testing.T) {
	if RidersForPreset(DifficultyEasy) != 3 || RidersForPreset(DifficultyNormal) != 4 || RidersForPreset(DifficultyHard) != 6 {
		t.Error("Preset rider counts incorrect")
	}
	if RidersForPreset("unknown") != 0 {
		t.Error("Unknown preset must return 0")
	}
}
