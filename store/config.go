// Package store persists user settings, high scores, achievements, the leaderboard and
// lifetime statistics under the data directory
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrInvalidValue is returned by ConfigStore.Set when a value has the wrong type for its key
var ErrInvalidValue = errors.New("store: invalid value type")

// Config is the on-disk settings document
type Config struct {
	Difficulty   string `toml:"difficulty"`
	PortalMode   bool   `toml:"portal_mode"`
	SoundEnabled bool   `toml:"sound_enabled"`
	MusicEnabled bool   `toml:"music_enabled"`
	PlayerName   string `toml:"player_name"`
}

// DefaultConfig returns normal difficulty, classic mode, sound and music on
func DefaultConfig() Config {
	return Config{
		Difficulty:   core.DifficultyNormal.String(),
		SoundEnabled: true,
		MusicEnabled: true,
	}
}

// ConfigStore keeps Config in memory and writes it back on every effective change
type ConfigStore struct {
	path string
	cfg  Config
}

// OpenConfig loads path over the defaults
// A missing file keeps the defaults; a corrupt file is logged and ignored
func OpenConfig(path string) *ConfigStore {
	s := &ConfigStore{path: path, cfg: DefaultConfig()}

	loaded := DefaultConfig()
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[store] config %s unreadable, using defaults: %v", path, err)
		}
		return s
	}
	if _, ok := core.ParseDifficulty(loaded.Difficulty); !ok {
		loaded.Difficulty = s.cfg.Difficulty
	}
	s.cfg = loaded
	return s
}

// Path returns the backing file
func (s *ConfigStore) Path() string { return s.path }

// Config returns a copy of the current settings
func (s *ConfigStore) Config() Config { return s.cfg }

// Difficulty returns the stored difficulty
func (s *ConfigStore) Difficulty() core.Difficulty {
	d, _ := core.ParseDifficulty(s.cfg.Difficulty)
	return d
}

// Mode returns portal when portal mode is on, classic otherwise
func (s *ConfigStore) Mode() core.RuleMode {
	if s.cfg.PortalMode {
		return core.ModePortal
	}
	return core.ModeClassic
}

// PortalMode reports whether portal mode is stored as on
func (s *ConfigStore) PortalMode() bool { return s.cfg.PortalMode }

// SoundEnabled reports whether sound effects are on
func (s *ConfigStore) SoundEnabled() bool { return s.cfg.SoundEnabled }

// MusicEnabled reports whether background music is on
func (s *ConfigStore) MusicEnabled() bool { return s.cfg.MusicEnabled }

// PlayerName returns the leaderboard name
func (s *ConfigStore) PlayerName() string { return s.cfg.PlayerName }

// SetDifficulty persists d, out-of-range values are ignored
func (s *ConfigStore) SetDifficulty(d core.Difficulty) error {
	if d >= core.DifficultyCount {
		return nil
	}
	return s.update(func(c *Config) { c.Difficulty = d.String() })
}

// SetPortalMode persists the portal flag
func (s *ConfigStore) SetPortalMode(on bool) error {
	return s.update(func(c *Config) { c.PortalMode = on })
}

// TogglePortalMode flips portal mode and returns the new value
func (s *ConfigStore) TogglePortalMode() (bool, error) {
	on := !s.cfg.PortalMode
	return on, s.SetPortalMode(on)
}

// SetSoundEnabled persists the sound toggle
func (s *ConfigStore) SetSoundEnabled(on bool) error {
	return s.update(func(c *Config) { c.SoundEnabled = on })
}

// SetMusicEnabled persists the music toggle
func (s *ConfigStore) SetMusicEnabled(on bool) error {
	return s.update(func(c *Config) { c.MusicEnabled = on })
}

// SetPlayerName persists the leaderboard name
func (s *ConfigStore) SetPlayerName(name string) error {
	return s.update(func(c *Config) { c.PlayerName = name })
}

// ApplySettings stores controller toggles in one write
// Survival and time attack are not persisted, only the portal flag is
func (s *ConfigStore) ApplySettings(settings core.Settings) error {
	return s.update(func(c *Config) {
		c.Difficulty = settings.Difficulty.String()
		c.SoundEnabled = settings.SoundEnabled
		c.MusicEnabled = settings.MusicEnabled
		switch settings.Mode {
		case core.ModePortal:
			c.PortalMode = true
		case core.ModeClassic:
			c.PortalMode = false
		}
	})
}

// Set assigns a value by its file key
// Unknown keys and unknown difficulty names are ignored, a mistyped value returns ErrInvalidValue
func (s *ConfigStore) Set(key string, value any) error {
	switch key {
	case "difficulty":
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants string, got %T", ErrInvalidValue, key, value)
		}
		d, ok := core.ParseDifficulty(name)
		if !ok {
			return nil
		}
		return s.SetDifficulty(d)

	case "player_name":
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants string, got %T", ErrInvalidValue, key, value)
		}
		return s.SetPlayerName(name)

	case "portal_mode", "sound_enabled", "music_enabled":
		on, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", ErrInvalidValue, key, value)
		}
		switch key {
		case "portal_mode":
			return s.SetPortalMode(on)
		case "sound_enabled":
			return s.SetSoundEnabled(on)
		default:
			return s.SetMusicEnabled(on)
		}
	}
	return nil
}

func (s *ConfigStore) update(fn func(*Config)) error {
	next := s.cfg
	fn(&next)
	if next == s.cfg {
		return nil
	}
	s.cfg = next
	return s.Save()
}

// Save writes the current settings
func (s *ConfigStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
