package game

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Effect is an active power-up as seen by renderers
type Effect struct {
	Type      core.PowerUpType `json:"type"`
	Remaining time.Duration    `json:"remaining"`
}

// Snapshot is a read-only copy of everything a renderer or observer needs for one frame
// Slices are owned by the snapshot and never alias controller state
type Snapshot struct {
	State   core.State `json:"state"`
	RoundID string     `json:"round_id"`
	Tick    uint64     `json:"tick"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`

	Snake     []core.Cell    `json:"snake"`
	Direction core.Direction `json:"direction"`
	Food      engine.Food    `json:"food"`
	Obstacles []core.Cell    `json:"obstacles"`

	PendingPowerUp *engine.PowerUp `json:"pending_powerup,omitempty"`
	ActiveEffects  []Effect        `json:"active_effects"`
	Invincible     bool            `json:"invincible"`

	Score        int           `json:"score"`
	HighScore    int           `json:"high_score"`
	NewHighScore bool          `json:"new_high_score"`
	FoodEaten    int           `json:"food_eaten"`
	PlayTime     time.Duration `json:"play_time"`
	Combo        bool          `json:"combo"`

	FPS             int     `json:"fps"`
	SpeedMultiplier float64 `json:"speed_multiplier"`

	Difficulty core.Difficulty `json:"difficulty"`
	Mode       core.RuleMode   `json:"mode"`
	Countdown  int             `json:"countdown"`

	TimeRemaining time.Duration `json:"time_remaining"`
	TimeBonuses   int           `json:"time_bonuses"`
	ObstacleCap   int           `json:"obstacle_cap"`

	Cause        core.GameOverCause `json:"cause"`
	SoundEnabled bool               `json:"sound_enabled"`
	MusicEnabled bool               `json:"music_enabled"`
}

// Snapshot copies the current state for rendering
func (c *Controller) Snapshot() Snapshot {
	w := c.world
	now := c.clock.Now()

	snap := Snapshot{
		State:   c.state,
		RoundID: c.roundID.String(),
		Tick:    c.ticks,
		Width:   w.Grid.Width,
		Height:  w.Grid.Height,

		Snake:     w.Snake.Body(),
		Direction: w.Snake.Direction(),
		Food:      w.Food.Food(),
		Obstacles: w.Obstacles.Cells(),

		Invincible: w.PowerUps.IsInvincible(),

		Score:        w.Score.Score(),
		HighScore:    w.Score.HighScore(),
		NewHighScore: w.Score.IsNewHighScore(),
		FoodEaten:    w.Score.FoodEaten(),
		PlayTime:     w.Score.PlayTime(now),
		Combo:        w.Score.ComboActive(),

		FPS:             c.fps,
		SpeedMultiplier: w.PowerUps.SpeedMultiplier(),

		Difficulty: c.difficulty,
		Mode:       c.mode,
		Countdown:  c.countdown,

		Cause:        c.cause,
		SoundEnabled: c.sound,
		MusicEnabled: c.music,
	}

	if p, ok := w.PowerUps.Pending(); ok {
		snap.PendingPowerUp = &p
	}
	for _, p := range w.PowerUps.Active() {
		snap.ActiveEffects = append(snap.ActiveEffects, Effect{Type: p.Type, Remaining: p.Remaining(now)})
	}

	if ms := c.modeState; ms != nil {
		snap.TimeRemaining = ms.Remaining(now)
		if ms.TimeAttack != nil {
			snap.TimeBonuses = ms.TimeAttack.BonusCount
			if !c.roundStarted() {
				snap.TimeRemaining = ms.TimeAttack.Duration
			}
		}
		if ms.Survival != nil {
			snap.ObstacleCap = ms.Survival.MaxObstacles
		}
	}
	if !c.roundStarted() {
		snap.PlayTime = 0
	}
	return snap
}
