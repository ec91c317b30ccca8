package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		State:           core.StateRunning,
		Width:           10,
		Height:          8,
		Snake:           []core.Cell{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}},
		Food:            engine.Food{Position: core.Cell{X: 7, Y: 5}},
		Obstacles:       []core.Cell{{X: 0, Y: 0}},
		PendingPowerUp:  &engine.PowerUp{Type: core.PowerUpSlowMotion, Position: core.Cell{X: 9, Y: 7}},
		Score:           40,
		HighScore:       90,
		FPS:             10,
		SpeedMultiplier: 1,
		Difficulty:      core.DifficultyNormal,
		Mode:            core.ModeClassic,
		SoundEnabled:    true,
	}
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

// rowText reads width runes starting at x, y
func rowText(s tcell.Screen, x, y, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(runeAt(s, x+i, y))
	}
	return b.String()
}

func screenContains(s tcell.Screen, text string) bool {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, 0, y, w), text) {
			return true
		}
	}
	return false
}

func TestDrawBoard(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	snap := testSnapshot()
	r.Draw(snap, nil)

	if got := runeAt(screen, 0, 0); got != constants.GlyphCornerTL {
		t.Errorf("Expected top-left corner, got %q", got)
	}
	right := snap.Width*constants.CellWidth + 1
	if got := runeAt(screen, right, snap.Height+1); got != constants.GlyphCornerBR {
		t.Errorf("Expected bottom-right corner at %d, got %q", right, got)
	}

	tests := []struct {
		name string
		cell core.Cell
		want rune
	}{
		{"head", core.Cell{X: 4, Y: 3}, constants.GlyphSnakeHead},
		{"body", core.Cell{X: 3, Y: 3}, constants.GlyphSnakeBody},
		{"food", core.Cell{X: 7, Y: 5}, constants.GlyphFood},
		{"obstacle", core.Cell{X: 0, Y: 0}, constants.GlyphObstacle},
		{"powerup", core.Cell{X: 9, Y: 7}, constants.GlyphSlowMotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.CellOrigin(tt.cell)
			if got := runeAt(screen, x, y); got != tt.want {
				t.Errorf("Expected %q at %v, got %q", tt.want, tt.cell, got)
			}
		})
	}
}

func TestDrawGoldenFood(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	snap := testSnapshot()
	snap.Food.Golden = true
	r.Draw(snap, nil)

	x, y := r.CellOrigin(snap.Food.Position)
	if got := runeAt(screen, x, y); got != constants.GlyphGolden {
		t.Errorf("Expected golden glyph, got %q", got)
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	snap := testSnapshot()
	snap.Mode = core.ModeTimeAttack
	snap.TimeRemaining = 42 * time.Second
	snap.TimeBonuses = 2
	snap.Combo = true
	snap.ActiveEffects = []game.Effect{{Type: core.PowerUpSpeedBoost, Remaining: 3 * time.Second}}
	r.Draw(snap, []string{"Unlocked: First Bite"})

	for _, want := range []string{
		"Score  40", "High   90", "Length 3", "Left   0:42", "Bonus  2",
		"COMBO!", "speed_boost 3.0s", "Sound  on", "Music  off", "Unlocked: First Bite",
	} {
		if !screenContains(screen, want) {
			t.Errorf("Expected HUD to contain %q", want)
		}
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name  string
		state core.State
		setup func(*game.Snapshot)
		want  []string
	}{
		{"waiting", core.StateWaiting, nil, []string{constants.TextWaiting}},
		{"countdown", core.StateCountdown, func(s *game.Snapshot) { s.Countdown = 2 }, []string{"2"}},
		{"paused", core.StatePaused, nil, []string{constants.TextPaused}},
		{"game over", core.StateGameOver, func(s *game.Snapshot) {
			s.Cause = core.CauseWall
			s.NewHighScore = true
			s.PlayTime = 75 * time.Second
		}, []string{constants.TextGameOver, "Cause: wall", "Time: 1:15", constants.TextNewHigh, constants.TextRestart}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			snap := testSnapshot()
			snap.State = tt.state
			if tt.setup != nil {
				tt.setup(&snap)
			}
			NewRenderer(screen).Draw(snap, nil)
			for _, want := range tt.want {
				if !screenContains(screen, want) {
					t.Errorf("Expected overlay %q", want)
				}
			}
		})
	}
}

func TestRunningHasNoOverlay(t *testing.T) {
	screen := newTestScreen(t)
	NewRenderer(screen).Draw(testSnapshot(), nil)
	if screenContains(screen, constants.TextPaused) || screenContains(screen, constants.TextGameOver) {
		t.Error("Expected no overlay while running")
	}
}
