package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ObstacleField is the set of blocking cells, kept in placement order
type ObstacleField struct {
	grid  Grid
	cells []core.Cell
	set   CellSet
}

// NewObstacleField creates an empty field
func NewObstacleField(g Grid) *ObstacleField {
	return &ObstacleField{grid: g, set: NewCellSet()}
}

// Place adds up to n obstacles outside occupied and existing obstacles
// Sampling stops after ObstaclePlacementAttempts draws, so fewer than n may be placed
// Returns the number placed
func (o *ObstacleField) Place(n int, occupied CellSet, rng RNG) int {
	placed := 0
	for attempts := 0; placed < n && attempts < parameter.ObstaclePlacementAttempts; attempts++ {
		c := o.grid.RandomCell(rng)
		if occupied.Has(c) || o.set.Has(c) {
			continue
		}
		o.Add(c)
		placed++
	}
	return placed
}

// AddOne places a single obstacle with the same bounded sampling, reports success
func (o *ObstacleField) AddOne(occupied CellSet, rng RNG) bool {
	return o.Place(1, occupied, rng) == 1
}

// Add blocks c, reports false when c is outside the grid or already blocked
func (o *ObstacleField) Add(c core.Cell) bool {
	if !o.grid.InBounds(c) || o.set.Has(c) {
		return false
	}
	o.cells = append(o.cells, c)
	o.set.Put(c)
	return true
}

// Contains reports whether c is blocked
func (o *ObstacleField) Contains(c core.Cell) bool {
	return o.set.Has(c)
}

// Len returns the obstacle count
func (o *ObstacleField) Len() int {
	return len(o.cells)
}

// Cells returns a copy of the obstacle cells in placement order
func (o *ObstacleField) Cells() []core.Cell {
	out := make([]core.Cell, len(o.cells))
	copy(out, o.cells)
	return out
}

// AddTo inserts every obstacle into set
func (o *ObstacleField) AddTo(set CellSet) {
	for _, c := range o.cells {
		set.Put(c)
	}
}

// Clear removes all obstacles
func (o *ObstacleField) Clear() {
	o.cells = nil
	o.set = NewCellSet()
}
