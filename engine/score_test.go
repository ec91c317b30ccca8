package engine

import (
	"testing"
	"time"
)

func TestComboScoring(t *testing.T) {
	start := testEpoch()

	t.Run("first food scores base", func(t *testing.T) {
		s := NewScoreEngine(0, start)
		if got := s.AddFood(start.Add(time.Second)); got != 10 {
			t.Errorf("Expected 10, got %d", got)
		}
		if s.ComboActive() {
			t.Error("Expected no combo on first food")
		}
	})

	t.Run("second food inside window", func(t *testing.T) {
		s := NewScoreEngine(0, start)
		s.AddFood(start.Add(time.Second))
		s.AddFood(start.Add(3 * time.Second))
		if s.Score() != 25 {
			t.Errorf("Expected 25, got %d", s.Score())
		}
		if !s.ComboActive() {
			t.Error("Expected combo active")
		}
	})

	t.Run("second food after window", func(t *testing.T) {
		s := NewScoreEngine(0, start)
		s.AddFood(start.Add(time.Second))
		s.AddFood(start.Add(5 * time.Second))
		if s.Score() != 20 {
			t.Errorf("Expected 20, got %d", s.Score())
		}
		if s.ComboActive() {
			t.Error("Expected combo inactive")
		}
	})
}

func TestGoldenBypassesCombo(t *testing.T) {
	start := testEpoch()
	s := NewScoreEngine(0, start)

	s.AddFood(start)
	if got := s.AddGolden(); got != 50 {
		t.Errorf("Expected golden worth 50, got %d", got)
	}
	if s.Score() != 60 {
		t.Errorf("Expected 60, got %d", s.Score())
	}
	if s.GoldenEaten() != 1 || s.FoodEaten() != 2 {
		t.Errorf("Expected 1 golden of 2 food, got %d of %d", s.GoldenEaten(), s.FoodEaten())
	}

	// Combo window is still measured from the last normal food
	s.AddFood(start.Add(4 * time.Second))
	if s.ComboActive() {
		t.Error("Expected combo measured from last normal food")
	}
}

func TestMultiplierScalesAwards(t *testing.T) {
	s := NewScoreEngine(0, testEpoch())
	s.SetMultiplier(1.3)

	if got := s.AddFood(testEpoch()); got != 13 {
		t.Errorf("Expected 13, got %d", got)
	}
	if got := s.AddGolden(); got != 65 {
		t.Errorf("Expected 65, got %d", got)
	}
	if got := s.AddPoints(15); got != 20 {
		t.Errorf("Expected 20 (19.5 rounded), got %d", got)
	}

	s.SetMultiplier(0)
	if s.Multiplier() != 1 {
		t.Errorf("Expected non-positive multiplier reset to 1, got %f", s.Multiplier())
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	start := testEpoch()
	s := NewScoreEngine(30, start)

	s.AddFood(start)
	s.AddFood(start.Add(10 * time.Second))
	if s.HighScore() != 30 {
		t.Errorf("Expected high score 30, got %d", s.HighScore())
	}
	if s.IsNewHighScore() {
		t.Error("Expected no new high score at 20")
	}

	s.AddGolden()
	if s.HighScore() != 70 {
		t.Errorf("Expected high score 70, got %d", s.HighScore())
	}
	if !s.IsNewHighScore() {
		t.Error("Expected new high score")
	}

	s.Reset(start.Add(time.Minute))
	if s.Score() != 0 || s.HighScore() != 70 {
		t.Errorf("Expected reset score 0 with high 70, got %d/%d", s.Score(), s.HighScore())
	}
	if s.IsNewHighScore() {
		t.Error("Expected fresh round to start without a new high score")
	}
}

func TestNegativeHighScoreClamped(t *testing.T) {
	s := NewScoreEngine(-5, testEpoch())
	if s.HighScore() != 0 {
		t.Errorf("Expected 0, got %d", s.HighScore())
	}
}

func TestEndGameIdempotent(t *testing.T) {
	start := testEpoch()
	s := NewScoreEngine(0, start)

	if got := s.PlayTime(start.Add(2500 * time.Millisecond)); got != 2*time.Second {
		t.Errorf("Expected 2s truncated, got %v", got)
	}

	if !s.EndGame(start.Add(7900 * time.Millisecond)) {
		t.Error("Expected first EndGame to end the round")
	}
	if s.EndGame(start.Add(20 * time.Second)) {
		t.Error("Expected second EndGame to be ignored")
	}

	if got := s.PlayTime(start.Add(time.Hour)); got != 7*time.Second {
		t.Errorf("Expected play time frozen at 7s, got %v", got)
	}
	if !s.Ended() {
		t.Error("Expected ended")
	}
}
