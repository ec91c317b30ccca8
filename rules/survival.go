package rules

import (
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

func setupSurvival(s *State, _ *engine.World, now time.Time) {
	s.Survival = &SurvivalState{
		LastObstacleTime: now,
		Interval:         parameter.SurvivalObstacleInterval,
		MaxObstacles:     parameter.SurvivalMaxObstacles,
	}
}

// updateSurvival adds one obstacle per elapsed interval until the cap
// The interval restarts even when placement gives up on a crowded grid
func updateSurvival(s *State, w *engine.World, now time.Time) Outcome {
	sv := s.Survival
	if now.Sub(sv.LastObstacleTime) < sv.Interval {
		return Outcome{}
	}
	sv.LastObstacleTime = now

	if w.Obstacles.Len() >= sv.MaxObstacles {
		return Outcome{}
	}
	if w.Obstacles.AddOne(w.OccupiedForObstacle(), w.RNG) {
		sv.Added++
	}
	return Outcome{}
}
