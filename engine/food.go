package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Food is the single consumable on the grid
type Food struct {
	Position  core.Cell `json:"position"`
	Golden    bool      `json:"golden"`
	SpawnTime time.Time `json:"-"`
}

// ShouldRespawn reports whether a golden apple outlived its timeout, always false for normal food
func (f Food) ShouldRespawn(now time.Time) bool {
	return f.Golden && now.Sub(f.SpawnTime) >= parameter.GoldenTimeout
}

// FoodSpawner owns the active food item and places replacements
type FoodSpawner struct {
	grid Grid
	rng  RNG
	food Food

	goldenChance float64
}

// NewFoodSpawner creates a spawner with no food placed
func NewFoodSpawner(g Grid, rng RNG) *FoodSpawner {
	return &FoodSpawner{grid: g, rng: rng, goldenChance: parameter.GoldenProbability}
}

// Spawn places a new food on a uniformly chosen cell outside occupied
// Rejection sampling is capped, past the cap free cells are enumerated so the draw stays uniform
// Returns false only when no free cell exists, the previous food is kept in that case
func (f *FoodSpawner) Spawn(occupied CellSet, now time.Time) bool {
	attempts := f.grid.Area() * parameter.FoodSpawnAttemptFactor
	pos, ok := f.grid.sampleFree(occupied, f.rng, attempts)
	if !ok {
		free := f.grid.FreeCells(occupied)
		if len(free) == 0 {
			return false
		}
		pos = free[f.rng.Intn(len(free))]
	}

	f.food = Food{
		Position:  pos,
		Golden:    f.rng.Float64() < f.goldenChance,
		SpawnTime: now,
	}
	return true
}

// Place puts food on the board as given, replacing the current one
func (f *FoodSpawner) Place(food Food) {
	f.food = food
}

// Restamp restarts the golden timeout of the current food at now
func (f *FoodSpawner) Restamp(now time.Time) {
	f.food.SpawnTime = now
}

// ShouldRespawn reports whether the active golden apple timed out
func (f *FoodSpawner) ShouldRespawn(now time.Time) bool {
	return f.food.ShouldRespawn(now)
}

// Food returns the active food item
func (f *FoodSpawner) Food() Food {
	return f.food
}

// At reports whether the active food sits on c
func (f *FoodSpawner) At(c core.Cell) bool {
	return f.food.Position == c
}
