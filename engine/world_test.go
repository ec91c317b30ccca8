package engine

import (
	"testing"
	"time"
)

func TestWorldPopulate(t *testing.T) {
	now := testEpoch()
	w := NewWorld(NewGrid(30, 30), NewRNG(17), 0, now)

	placed := w.Populate(10, now)
	if placed != 10 {
		t.Fatalf("Expected 10 obstacles, got %d", placed)
	}

	food := w.Food.Food().Position
	if w.Snake.Occupies(food) {
		t.Errorf("Food %v spawned on snake", food)
	}
	if w.Obstacles.Contains(food) {
		t.Errorf("Obstacle placed on food %v", food)
	}
	for _, c := range w.Obstacles.Cells() {
		if w.Snake.Occupies(c) {
			t.Errorf("Obstacle %v placed on snake", c)
		}
	}
}

func TestWorldReset(t *testing.T) {
	now := testEpoch()
	w := NewWorld(NewGrid(30, 30), NewRNG(3), 0, now)
	w.Populate(5, now)

	w.Score.AddGolden()
	w.Snake.Grow()
	w.Snake.Move(w.Grid, false)

	w.Reset(now.Add(time.Minute))

	if w.Snake.Len() != 3 {
		t.Errorf("Expected fresh snake of length 3, got %d", w.Snake.Len())
	}
	if w.Obstacles.Len() != 0 {
		t.Errorf("Expected obstacles cleared, got %d", w.Obstacles.Len())
	}
	if w.Score.Score() != 0 || w.Score.HighScore() != 50 {
		t.Errorf("Expected score 0 with high 50, got %d/%d", w.Score.Score(), w.Score.HighScore())
	}
}

func TestOccupiedSets(t *testing.T) {
	now := testEpoch()
	w := NewWorld(NewGrid(30, 30), NewRNG(8), 0, now)
	w.Populate(3, now)

	food := w.Food.Food().Position
	if w.OccupiedForFood().Size() != w.Snake.Len()+w.Obstacles.Len() {
		t.Errorf("Expected food set to cover snake and obstacles, got %d", w.OccupiedForFood().Size())
	}
	if !w.OccupiedForPowerUp().Has(food) {
		t.Error("Expected power-up set to include the food")
	}
	if !w.OccupiedForObstacle().Has(food) {
		t.Error("Expected obstacle set to include the food")
	}
}
