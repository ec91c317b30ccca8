package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// World groups the per-round entities owned by the controller
// Exactly one goroutine mutates a World; readers take snapshots between ticks
type World struct {
	Grid      Grid
	RNG       RNG
	Snake     *Snake
	Food      *FoodSpawner
	Obstacles *ObstacleField
	PowerUps  *PowerUpManager
	Score     *ScoreEngine
}

// NewWorld creates the entities for a round; food and obstacles are placed by Populate
func NewWorld(g Grid, rng RNG, highScore int, now time.Time) *World {
	return &World{
		Grid:      g,
		RNG:       rng,
		Snake:     NewSnake(g, parameter.SnakeInitialLength),
		Food:      NewFoodSpawner(g, rng),
		Obstacles: NewObstacleField(g),
		PowerUps:  NewPowerUpManager(g, rng),
		Score:     NewScoreEngine(highScore, now),
	}
}

// Reset replaces the snake and clears items for a new round, keeping the high score
func (w *World) Reset(now time.Time) {
	w.Snake = NewSnake(w.Grid, parameter.SnakeInitialLength)
	w.Food = NewFoodSpawner(w.Grid, w.RNG)
	w.Obstacles.Clear()
	w.PowerUps.Reset()
	w.Score.Reset(now)
}

// Populate spawns the first food, then places obstacles clear of the snake and food
// Returns the number of obstacles placed
func (w *World) Populate(obstacles int, now time.Time) int {
	w.Food.Spawn(w.OccupiedForFood(), now)

	occupied := NewCellSet()
	w.Snake.AddTo(occupied)
	occupied.Put(w.Food.Food().Position)
	return w.Obstacles.Place(obstacles, occupied, w.RNG)
}

// OccupiedForFood is snake ∪ obstacles ∪ pending power-up
func (w *World) OccupiedForFood() CellSet {
	set := NewCellSet()
	w.Snake.AddTo(set)
	w.Obstacles.AddTo(set)
	if p, ok := w.PowerUps.Pending(); ok {
		set.Put(p.Position)
	}
	return set
}

// OccupiedForPowerUp is snake ∪ obstacles ∪ food
func (w *World) OccupiedForPowerUp() CellSet {
	set := NewCellSet()
	w.Snake.AddTo(set)
	w.Obstacles.AddTo(set)
	set.Put(w.Food.Food().Position)
	return set
}

// OccupiedForObstacle is snake ∪ food ∪ pending power-up, existing obstacles are checked by the field
func (w *World) OccupiedForObstacle() CellSet {
	set := NewCellSet()
	w.Snake.AddTo(set)
	set.Put(w.Food.Food().Position)
	if p, ok := w.PowerUps.Pending(); ok {
		set.Put(p.Position)
	}
	return set
}
