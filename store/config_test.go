package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestConfigDefaults(t *testing.T) {
	s := OpenConfig(filepath.Join(t.TempDir(), "config.toml"))

	if s.Difficulty() != core.DifficultyNormal {
		t.Errorf("Expected normal, got %v", s.Difficulty())
	}
	if s.PortalMode() {
		t.Error("Expected portal mode off")
	}
	if !s.SoundEnabled() || !s.MusicEnabled() {
		t.Error("Expected sound and music on")
	}
	if s.Mode() != core.ModeClassic {
		t.Errorf("Expected classic, got %v", s.Mode())
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	s := OpenConfig(path)

	if err := s.SetDifficulty(core.DifficultyHard); err != nil {
		t.Fatalf("SetDifficulty failed: %v", err)
	}
	if on, err := s.TogglePortalMode(); err != nil || !on {
		t.Fatalf("Expected portal on, got %v (%v)", on, err)
	}
	if err := s.SetMusicEnabled(false); err != nil {
		t.Fatalf("SetMusicEnabled failed: %v", err)
	}

	reloaded := OpenConfig(path)
	if reloaded.Config() != s.Config() {
		t.Errorf("Expected %+v, got %+v", s.Config(), reloaded.Config())
	}
	if reloaded.Mode() != core.ModePortal {
		t.Errorf("Expected portal, got %v", reloaded.Mode())
	}
}

func TestConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("difficulty = \"easy\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := OpenConfig(path)
	if s.Difficulty() != core.DifficultyEasy {
		t.Errorf("Expected easy, got %v", s.Difficulty())
	}
	if !s.SoundEnabled() || !s.MusicEnabled() {
		t.Error("Expected missing keys to keep defaults")
	}
}

func TestConfigCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("difficulty = = ["), 0644); err != nil {
		t.Fatal(err)
	}

	s := OpenConfig(path)
	if s.Config() != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", s.Config())
	}
}

func TestConfigSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := OpenConfig(path)

	if err := s.Set("difficulty", "insane"); err != nil {
		t.Errorf("Expected invalid difficulty ignored, got %v", err)
	}
	if s.Difficulty() != core.DifficultyNormal {
		t.Errorf("Expected normal kept, got %v", s.Difficulty())
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected no write for an ignored value")
	}

	if err := s.Set("unknown_key", 42); err != nil {
		t.Errorf("Expected unknown key ignored, got %v", err)
	}

	if err := s.Set("sound_enabled", "yes"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}

	if err := s.Set("sound_enabled", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if s.SoundEnabled() {
		t.Error("Expected sound off")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config written, got %v", err)
	}
}

func TestConfigApplySettings(t *testing.T) {
	s := OpenConfig(filepath.Join(t.TempDir(), "config.toml"))

	err := s.ApplySettings(core.Settings{
		Difficulty:   core.DifficultyEasy,
		Mode:         core.ModePortal,
		SoundEnabled: false,
		MusicEnabled: true,
	})
	if err != nil {
		t.Fatalf("ApplySettings failed: %v", err)
	}
	if s.Difficulty() != core.DifficultyEasy || !s.PortalMode() || s.SoundEnabled() {
		t.Errorf("Expected settings applied, got %+v", s.Config())
	}

	// Survival leaves the portal flag alone
	if err := s.ApplySettings(core.Settings{Difficulty: core.DifficultyEasy, Mode: core.ModeSurvival}); err != nil {
		t.Fatal(err)
	}
	if !s.PortalMode() {
		t.Error("Expected portal flag untouched by survival")
	}
}
