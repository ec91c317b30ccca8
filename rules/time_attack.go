package rules

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

func setupTimeAttack(s *State, _ *engine.World, _ time.Time) {
	s.TimeAttack = &TimeAttackState{Duration: parameter.TimeAttackDuration}
}

func timeUp(s *State, now time.Time) bool {
	return now.Sub(s.StartTime) >= s.TimeAttack.Duration
}

func updateTimeAttack(s *State, _ *engine.World, now time.Time) Outcome {
	if timeUp(s, now) {
		return Outcome{Over: true, Cause: core.CauseTimeUp}
	}
	return Outcome{}
}

func checkTimeAttack(s *State, w *engine.World, now time.Time) Outcome {
	out := collisions(w, true)
	if !out.Over && timeUp(s, now) {
		out = Outcome{Over: true, Cause: core.CauseTimeUp}
	}
	return out
}

// Golden apples extend the clock
func onFoodTimeAttack(s *State, golden bool) {
	if !golden {
		return
	}
	s.TimeAttack.Duration += parameter.TimeAttackBonus
	s.TimeAttack.BonusCount++
}
