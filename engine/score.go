package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// ScoreEngine accumulates points for one round and tracks play time
// High score never decreases for the lifetime of the engine
type ScoreEngine struct {
	score       int
	highScore   int
	initialHigh int
	foodEaten   int
	goldenEaten int

	comboActive  bool
	lastFoodTime time.Time

	startTime time.Time
	endTime   time.Time
	ended     bool

	multiplier float64
}

// NewScoreEngine starts a round at now with the persisted high score
func NewScoreEngine(highScore int, now time.Time) *ScoreEngine {
	highScore = max(highScore, 0)
	return &ScoreEngine{
		highScore:   highScore,
		initialHigh: highScore,
		startTime:   now,
		multiplier:  1,
	}
}

// Reset starts a new round at now, keeping the high score
func (s *ScoreEngine) Reset(now time.Time) {
	*s = ScoreEngine{
		highScore:   s.highScore,
		initialHigh: s.highScore,
		startTime:   now,
		multiplier:  s.multiplier,
	}
}

// SetMultiplier scales subsequent point awards, non-positive values reset to 1
func (s *ScoreEngine) SetMultiplier(m float64) {
	if m <= 0 {
		m = 1
	}
	s.multiplier = m
}

// Multiplier returns the active point scale
func (s *ScoreEngine) Multiplier() float64 {
	return s.multiplier
}

// AddFood scores a normal food: base points plus the combo bonus when eaten within the
// combo window of the previous food, returns the points awarded
func (s *ScoreEngine) AddFood(now time.Time) int {
	points := parameter.FoodScore
	if s.foodEaten > 0 && now.Sub(s.lastFoodTime) <= parameter.ComboWindow {
		points += parameter.ComboBonus
		s.comboActive = true
	} else {
		s.comboActive = false
	}

	s.foodEaten++
	s.lastFoodTime = now
	return s.award(points)
}

// AddGolden scores a golden apple directly, combo state untouched
func (s *ScoreEngine) AddGolden() int {
	s.foodEaten++
	s.goldenEaten++
	return s.award(parameter.GoldenScore)
}

// AddPoints awards a flat amount, used for power-ups
func (s *ScoreEngine) AddPoints(points int) int {
	return s.award(points)
}

func (s *ScoreEngine) award(points int) int {
	scaled := int(math.Round(float64(points) * s.multiplier))
	s.score += scaled
	if s.score > s.highScore {
		s.highScore = s.score
	}
	return scaled
}

// EndGame freezes play time at now, later calls are ignored; reports whether this call ended the round
func (s *ScoreEngine) EndGame(now time.Time) bool {
	if s.ended {
		return false
	}
	s.ended = true
	s.endTime = now
	return true
}

// PlayTime returns elapsed round time truncated to whole seconds, frozen after EndGame
func (s *ScoreEngine) PlayTime(now time.Time) time.Duration {
	end := now
	if s.ended {
		end = s.endTime
	}
	return max(end.Sub(s.startTime), 0).Truncate(time.Second)
}

// Score returns the round score
func (s *ScoreEngine) Score() int { return s.score }

// HighScore returns the session high score
func (s *ScoreEngine) HighScore() int { return s.highScore }

// IsNewHighScore reports whether this round beat the high score it started with
func (s *ScoreEngine) IsNewHighScore() bool { return s.score > s.initialHigh }

// FoodEaten returns the food count, golden apples included
func (s *ScoreEngine) FoodEaten() int { return s.foodEaten }

// GoldenEaten returns the golden apple count
func (s *ScoreEngine) GoldenEaten() int { return s.goldenEaten }

// ComboActive reports whether the last normal food landed inside the combo window
func (s *ScoreEngine) ComboActive() bool { return s.comboActive }

// Ended reports whether EndGame was called
func (s *ScoreEngine) Ended() bool { return s.ended }

// StartTime returns the round start
func (s *ScoreEngine) StartTime() time.Time { return s.startTime }
