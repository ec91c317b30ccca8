// Package rules holds the four rule variants as a dispatch table over a tagged mode state
package rules

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// State is the per-round mode state, exactly one variant pointer is set for modes that carry data
type State struct {
	Mode      core.RuleMode
	StartTime time.Time

	Survival   *SurvivalState
	TimeAttack *TimeAttackState
}

// SurvivalState tracks incremental obstacle growth
type SurvivalState struct {
	LastObstacleTime time.Time
	Interval         time.Duration
	MaxObstacles     int
	Added            int
}

// TimeAttackState tracks the extensible round duration
type TimeAttackState struct {
	Duration   time.Duration
	BonusCount int
}

// Remaining returns the time left in a time-attack round, zero for other modes
func (s *State) Remaining(now time.Time) time.Duration {
	if s.TimeAttack == nil {
		return 0
	}
	return max(s.TimeAttack.Duration-now.Sub(s.StartTime), 0)
}

// Outcome is the result of a game-over evaluation
type Outcome struct {
	Over  bool
	Cause core.GameOverCause

	// PassedObstacle is set when an invincible head sits on an obstacle
	PassedObstacle bool
}

// Rules is the capability set of one mode
type Rules struct {
	Mode       core.RuleMode
	Wrap       bool
	Multiplier float64

	// Setup initializes variant state at round start
	Setup func(s *State, w *engine.World, now time.Time)

	// Update runs once per tick after consumption and expiry
	Update func(s *State, w *engine.World, now time.Time) Outcome

	// CheckGameOver runs right after the snake moves
	CheckGameOver func(s *State, w *engine.World, now time.Time) Outcome

	// OnFood runs after food is scored
	OnFood func(s *State, golden bool)
}

var table = [core.ModeCount]Rules{
	core.ModeClassic: {
		Mode:          core.ModeClassic,
		Wrap:          false,
		Multiplier:    1.0,
		Setup:         setupNone,
		Update:        updateNone,
		CheckGameOver: checkBounded,
		OnFood:        onFoodNone,
	},
	core.ModePortal: {
		Mode:          core.ModePortal,
		Wrap:          true,
		Multiplier:    1.3,
		Setup:         setupNone,
		Update:        updateNone,
		CheckGameOver: checkWrapped,
		OnFood:        onFoodNone,
	},
	core.ModeSurvival: {
		Mode:          core.ModeSurvival,
		Wrap:          false,
		Multiplier:    1.2,
		Setup:         setupSurvival,
		Update:        updateSurvival,
		CheckGameOver: checkBounded,
		OnFood:        onFoodNone,
	},
	core.ModeTimeAttack: {
		Mode:          core.ModeTimeAttack,
		Wrap:          false,
		Multiplier:    1.5,
		Setup:         setupTimeAttack,
		Update:        updateTimeAttack,
		CheckGameOver: checkTimeAttack,
		OnFood:        onFoodTimeAttack,
	},
}

// For resolves the rules of a mode, unknown modes resolve to classic
func For(m core.RuleMode) *Rules {
	if m >= core.ModeCount {
		m = core.ModeClassic
	}
	return &table[m]
}

// NewState runs the mode's setup and returns the fresh state
func NewState(m core.RuleMode, w *engine.World, now time.Time) *State {
	r := For(m)
	s := &State{Mode: r.Mode, StartTime: now}
	r.Setup(s, w, now)
	return s
}

func setupNone(*State, *engine.World, time.Time) {}

func updateNone(*State, *engine.World, time.Time) Outcome { return Outcome{} }

func onFoodNone(*State, bool) {}

// collisions evaluates wall, self and obstacle hits; invincibility skips self and obstacle
func collisions(w *engine.World, walls bool) Outcome {
	if walls && w.Snake.CheckWallCollision(w.Grid) {
		return Outcome{Over: true, Cause: core.CauseWall}
	}

	onObstacle := w.Obstacles.Contains(w.Snake.Head())
	if w.PowerUps.IsInvincible() {
		return Outcome{PassedObstacle: onObstacle}
	}

	if w.Snake.CheckSelfCollision() {
		return Outcome{Over: true, Cause: core.CauseSelf}
	}
	if onObstacle {
		return Outcome{Over: true, Cause: core.CauseObstacle}
	}
	return Outcome{}
}

func checkBounded(_ *State, w *engine.World, _ time.Time) Outcome {
	return collisions(w, true)
}

// Wrapping has already been applied by the move, so the head can never be out of bounds
func checkWrapped(_ *State, w *engine.World, _ time.Time) Outcome {
	return collisions(w, false)
}
