package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/zyedidia/generic/mapset"
)

// CellSet is a set of occupied grid cells
type CellSet = mapset.Set[core.Cell]

// NewCellSet returns a set holding cells
func NewCellSet(cells ...core.Cell) CellSet {
	s := mapset.New[core.Cell]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

// Grid is the fixed W×H playfield, all methods are pure
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid, panics on non-positive dimensions
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("engine: grid dimensions must be positive")
	}
	return Grid{Width: width, Height: height}
}

// InBounds reports whether c lies within [0,W)×[0,H)
func (g Grid) InBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap maps c to (x mod W, y mod H) using a non-negative modulus
func (g Grid) Wrap(c core.Cell) core.Cell {
	return core.Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Area returns the cell count
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the middle cell
func (g Grid) Center() core.Cell {
	return core.Cell{X: g.Width / 2, Y: g.Height / 2}
}

// RandomCell draws a uniform cell
func (g Grid) RandomCell(rng RNG) core.Cell {
	return core.Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// FreeCells enumerates cells absent from occupied in row-major order
func (g Grid) FreeCells(occupied CellSet) []core.Cell {
	free := make([]core.Cell, 0, max(g.Area()-occupied.Size(), 0))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// sampleFree rejection-samples a free cell with at most attempts draws
func (g Grid) sampleFree(occupied CellSet, rng RNG, attempts int) (core.Cell, bool) {
	for i := 0; i < attempts; i++ {
		c := g.RandomCell(rng)
		if !occupied.Has(c) {
			return c, true
		}
	}
	return core.Cell{}, false
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
