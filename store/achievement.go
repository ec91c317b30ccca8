package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Achievement is one entry of the achievement table with its unlock state
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type achievementDef struct {
	id          string
	name        string
	description string
	check       func(core.Signals) bool
}

var achievementTable = []achievementDef{
	{"first_bite", "First Bite", "Eat your first food item",
		func(s core.Signals) bool { return s.FoodEaten >= 1 }},
	{"growing_up", "Growing Up", "Grow the snake to 10 segments",
		func(s core.Signals) bool { return s.SnakeLength >= 10 }},
	{"snake_master", "Snake Master", "Grow the snake to 30 segments",
		func(s core.Signals) bool { return s.SnakeLength >= 30 }},
	{"speed_demon", "Speed Demon", "Reach the maximum speed",
		func(s core.Signals) bool { return s.ReachedMaxSpeed }},
	{"survivor", "Survivor", "Stay alive for 5 minutes in survival mode",
		func(s core.Signals) bool {
			return s.Mode == core.ModeSurvival && s.SurvivalTime >= parameter.SurvivorThreshold
		}},
	{"time_master", "Time Master", "Score 100 points in time attack",
		func(s core.Signals) bool { return s.TimeAttackScore >= 100 }},
	{"golden_hunter", "Golden Hunter", "Collect 10 golden apples",
		func(s core.Signals) bool { return s.GoldenApples >= 10 }},
	{"invincible_pass", "Invincible", "Pass through an obstacle while invincible",
		func(s core.Signals) bool { return s.InvinciblePass }},
	{"power_collector", "Power Collector", "Collect 20 power-ups",
		func(s core.Signals) bool { return s.PowerUpsCollected >= 20 }},
	{"score_100", "Century", "Reach a score of 100",
		func(s core.Signals) bool { return s.Score >= 100 }},
	{"score_500", "High Achiever", "Reach a score of 500",
		func(s core.Signals) bool { return s.Score >= 500 }},
}

type achievementFile struct {
	Achievements []Achievement `json:"achievements"`
}

// AchievementBook evaluates the achievement table against round signals and persists unlocks
type AchievementBook struct {
	path     string
	unlocked map[string]time.Time
	now      func() time.Time
}

// OpenAchievements loads unlock state from path, unknown ids in the file are dropped
func OpenAchievements(path string) *AchievementBook {
	b := &AchievementBook{
		path:     path,
		unlocked: make(map[string]time.Time),
		now:      time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return b
	}
	var f achievementFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("[store] achievements %s unreadable, starting empty: %v", path, err)
		return b
	}

	known := make(map[string]bool, len(achievementTable))
	for _, def := range achievementTable {
		known[def.id] = true
	}
	for _, a := range f.Achievements {
		if !a.Unlocked || !known[a.ID] {
			continue
		}
		var at time.Time
		if a.UnlockedAt != nil {
			at = *a.UnlockedAt
		}
		b.unlocked[a.ID] = at
	}
	return b
}

// CheckAndUnlock unlocks every locked achievement whose predicate holds and returns only
// the newly unlocked ones, saving when any changed
func (b *AchievementBook) CheckAndUnlock(signals core.Signals) ([]Achievement, error) {
	var fresh []Achievement
	now := b.now()
	for _, def := range achievementTable {
		if _, ok := b.unlocked[def.id]; ok || !def.check(signals) {
			continue
		}
		b.unlocked[def.id] = now
		fresh = append(fresh, b.entry(def))
	}
	if len(fresh) == 0 {
		return nil, nil
	}
	return fresh, b.save()
}

// All returns the full table in definition order
func (b *AchievementBook) All() []Achievement {
	out := make([]Achievement, 0, len(achievementTable))
	for _, def := range achievementTable {
		out = append(out, b.entry(def))
	}
	return out
}

// Progress returns the unlocked and total counts
func (b *AchievementBook) Progress() (unlocked, total int) {
	return len(b.unlocked), len(achievementTable)
}

// IsUnlocked reports the state of one achievement
func (b *AchievementBook) IsUnlocked(id string) bool {
	_, ok := b.unlocked[id]
	return ok
}

// Reset locks every achievement and saves
func (b *AchievementBook) Reset() error {
	b.unlocked = make(map[string]time.Time)
	return b.save()
}

func (b *AchievementBook) entry(def achievementDef) Achievement {
	a := Achievement{ID: def.id, Name: def.name, Description: def.description}
	if at, ok := b.unlocked[def.id]; ok {
		a.Unlocked = true
		a.UnlockedAt = &at
	}
	return a
}

func (b *AchievementBook) save() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("create achievements dir: %w", err)
	}
	data, err := json.MarshalIndent(achievementFile{Achievements: b.All()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path, data, 0644)
}
