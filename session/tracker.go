// Package session persists round outcomes at controller lifecycle points
package session

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/store"
)

// Leaderboard records finished rounds by score
type Leaderboard interface {
	AddScore(name string, score int, d core.Difficulty, m core.RuleMode) (int, error)
}

// Stats records lifetime totals and bests
type Stats interface {
	RecordGame(r core.RoundSummary) error
	UpdateDifficultyHighScore(d core.Difficulty, score int) (bool, error)
	UpdateModeHighScore(m core.RuleMode, score int) (bool, error)
	RecordSurvivalTime(d time.Duration, score int) error
	Global() (store.GlobalStats, error)
}

// Stores groups the persistence targets, nil fields are skipped
type Stores struct {
	Config       *store.ConfigStore
	HighScore    *store.HighScoreStore
	Achievements *store.AchievementBook
	Leaderboard  Leaderboard
	Stats        Stats
}

// Tracker is a game.Listener that writes results to the stores
// Failures are logged and never interrupt the round
type Tracker struct {
	game.NopListener

	stores   Stores
	player   string
	lifetime store.GlobalStats

	unlocked []store.Achievement
	lastRank int
}

// NewTracker creates a tracker recording leaderboard entries under player
func NewTracker(stores Stores, player string) *Tracker {
	t := &Tracker{stores: stores, player: player}
	t.refreshLifetime()
	return t
}

// OnFoodEaten checks achievements mid-round so unlocks show immediately
func (t *Tracker) OnFoodEaten(_ bool, signals core.Signals) {
	t.checkAchievements(t.withLifetime(signals))
}

// OnGameOver stores the high score, statistics, leaderboard entry and achievements
func (t *Tracker) OnGameOver(summary core.RoundSummary, signals core.Signals) {
	if hs := t.stores.HighScore; hs != nil {
		if _, err := hs.Update(summary.Score); err != nil {
			log.Printf("[session] save high score: %v", err)
		}
	}

	recorded := false
	if st := t.stores.Stats; st != nil {
		if err := st.RecordGame(summary); err != nil {
			log.Printf("[session] record game: %v", err)
		} else {
			recorded = true
		}
		if _, err := st.UpdateDifficultyHighScore(summary.Difficulty, summary.Score); err != nil {
			log.Printf("[session] difficulty high score: %v", err)
		}
		if _, err := st.UpdateModeHighScore(summary.Mode, summary.Score); err != nil {
			log.Printf("[session] mode high score: %v", err)
		}
		if summary.Mode == core.ModeSurvival {
			if err := st.RecordSurvivalTime(summary.PlayTime, summary.Score); err != nil {
				log.Printf("[session] survival time: %v", err)
			}
		}
	}

	t.lastRank = 0
	if lb := t.stores.Leaderboard; lb != nil && summary.Score > 0 {
		rank, err := lb.AddScore(t.player, summary.Score, summary.Difficulty, summary.Mode)
		if err != nil {
			log.Printf("[session] leaderboard: %v", err)
		}
		t.lastRank = rank
	}

	if recorded {
		// Stored totals now include this round
		t.refreshLifetime()
		signals.GoldenApples = t.lifetime.GoldenApples
		signals.PowerUpsCollected = t.lifetime.PowerUps
	} else {
		signals = t.withLifetime(signals)
	}
	t.checkAchievements(signals)
}

// OnSettingsChanged persists user toggles
func (t *Tracker) OnSettingsChanged(settings core.Settings) {
	if cfg := t.stores.Config; cfg != nil {
		if err := cfg.ApplySettings(settings); err != nil {
			log.Printf("[session] save config: %v", err)
		}
	}
}

// DrainUnlocked returns achievements unlocked since the last call
func (t *Tracker) DrainUnlocked() []store.Achievement {
	out := t.unlocked
	t.unlocked = nil
	return out
}

// LastRank returns the leaderboard rank of the last finished round, 0 when unranked
func (t *Tracker) LastRank() int { return t.lastRank }

// Lifetime returns the cached lifetime totals
func (t *Tracker) Lifetime() store.GlobalStats { return t.lifetime }

func (t *Tracker) withLifetime(s core.Signals) core.Signals {
	s.GoldenApples += t.lifetime.GoldenApples
	s.PowerUpsCollected += t.lifetime.PowerUps
	return s
}

func (t *Tracker) refreshLifetime() {
	if t.stores.Stats == nil {
		return
	}
	g, err := t.stores.Stats.Global()
	if err != nil {
		log.Printf("[session] read lifetime stats: %v", err)
		return
	}
	t.lifetime = g
}

func (t *Tracker) checkAchievements(s core.Signals) {
	book := t.stores.Achievements
	if book == nil {
		return
	}
	fresh, err := book.CheckAndUnlock(s)
	if err != nil {
		log.Printf("[session] save achievements: %v", err)
	}
	for _, a := range fresh {
		log.Printf("[session] achievement unlocked: %s", a.ID)
	}
	t.unlocked = append(t.unlocked, fresh...)
}
