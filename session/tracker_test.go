package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/store"
)

func newTestStores(t *testing.T) (Stores, *store.DB) {
	t.Helper()
	dir := t.TempDir()
	db, err := store.OpenDB(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return Stores{
		Config:       store.OpenConfig(filepath.Join(dir, "config.toml")),
		HighScore:    store.NewHighScoreStore(filepath.Join(dir, "highscore.json")),
		Achievements: store.OpenAchievements(filepath.Join(dir, "achievements.json")),
		Leaderboard:  db.Leaderboard(),
		Stats:        db.Stats(),
	}, db
}

func TestGameOverPersists(t *testing.T) {
	stores, db := newTestStores(t)
	tr := NewTracker(stores, "tester")

	summary := core.RoundSummary{
		Difficulty:  core.DifficultyHard,
		Mode:        core.ModeSurvival,
		Score:       120,
		FoodEaten:   8,
		GoldenEaten: 1,
		PowerUps:    2,
		SnakeLength: 11,
		PlayTime:    42 * time.Second,
	}
	tr.OnGameOver(summary, core.Signals{Score: 120, FoodEaten: 8, SnakeLength: 11, Mode: core.ModeSurvival})

	if got := stores.HighScore.Load(); got != 120 {
		t.Errorf("Expected high score 120, got %d", got)
	}
	if tr.LastRank() != 1 {
		t.Errorf("Expected rank 1, got %d", tr.LastRank())
	}

	top, _ := db.Leaderboard().Top(store.Filter{}, 1)
	if len(top) != 1 || top[0].Name != "tester" || top[0].Mode != core.ModeSurvival {
		t.Errorf("Expected tester survival entry, got %+v", top)
	}

	g, _ := db.Stats().Global()
	if g.Games != 1 || g.GoldenApples != 1 || g.PowerUps != 2 {
		t.Errorf("Expected recorded totals, got %+v", g)
	}
	if best, _ := db.Stats().DifficultyHighScore(core.DifficultyHard); best != 120 {
		t.Errorf("Expected hard best 120, got %d", best)
	}
	if r, ok, _ := db.Stats().LongestSurvival(); !ok || r.Time != 42*time.Second {
		t.Errorf("Expected survival record 42s, got %+v", r)
	}

	unlocked := tr.DrainUnlocked()
	ids := make(map[string]bool)
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	if !ids["first_bite"] || !ids["growing_up"] || !ids["score_100"] {
		t.Errorf("Expected first_bite, growing_up and score_100, got %v", ids)
	}
	if len(tr.DrainUnlocked()) != 0 {
		t.Error("Expected drain to clear")
	}
}

func TestZeroScoreSkipsLeaderboard(t *testing.T) {
	stores, db := newTestStores(t)
	tr := NewTracker(stores, "tester")

	tr.OnGameOver(core.RoundSummary{Score: 0}, core.Signals{})
	if n, _ := db.Leaderboard().Len(); n != 0 {
		t.Errorf("Expected empty leaderboard, got %d", n)
	}
	if tr.LastRank() != 0 {
		t.Errorf("Expected rank 0, got %d", tr.LastRank())
	}
}

func TestLifetimeCounters(t *testing.T) {
	stores, _ := newTestStores(t)
	tr := NewTracker(stores, "tester")

	// Nine golden apples over earlier rounds
	tr.OnGameOver(core.RoundSummary{Score: 10, GoldenEaten: 9}, core.Signals{GoldenApples: 9})
	if stores.Achievements.IsUnlocked("golden_hunter") {
		t.Fatal("Expected golden_hunter locked at 9")
	}

	tr.OnFoodEaten(true, core.Signals{GoldenApples: 1, FoodEaten: 1})
	if !stores.Achievements.IsUnlocked("golden_hunter") {
		t.Error("Expected lifetime golden apples to unlock golden_hunter")
	}
}

func TestSettingsPersist(t *testing.T) {
	stores, _ := newTestStores(t)
	tr := NewTracker(stores, "tester")

	tr.OnSettingsChanged(core.Settings{Difficulty: core.DifficultyEasy, Mode: core.ModePortal})

	reloaded := store.OpenConfig(stores.Config.Path())
	if reloaded.Difficulty() != core.DifficultyEasy || !reloaded.PortalMode() {
		t.Errorf("Expected easy portal persisted, got %+v", reloaded.Config())
	}
	if reloaded.SoundEnabled() {
		t.Error("Expected sound off persisted")
	}
}

func TestNilStores(t *testing.T) {
	tr := NewTracker(Stores{}, "")
	tr.OnFoodEaten(false, core.Signals{FoodEaten: 1})
	tr.OnGameOver(core.RoundSummary{Score: 50}, core.Signals{})
	tr.OnSettingsChanged(core.Settings{})
	if len(tr.DrainUnlocked()) != 0 {
		t.Error("Expected nothing unlocked without an achievement book")
	}
}

func TestTrackerAsListener(t *testing.T) {
	stores, _ := newTestStores(t)
	tr := NewTracker(stores, "tester")

	clock := engine.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c := game.New(game.DefaultConfig(), clock)
	c.AddListener(tr)

	c.Handle(core.SignalStart)
	for i := 0; i < 40 && c.State() == core.StateRunning; i++ {
		clock.Advance(100 * time.Millisecond)
		c.Tick()
	}
	if c.State() != core.StateGameOver {
		t.Fatalf("Expected GAME_OVER, got %v", c.State())
	}

	g, _ := stores.Stats.Global()
	if g.Games != 1 {
		t.Errorf("Expected one recorded game, got %d", g.Games)
	}
}
