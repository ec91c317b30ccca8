package engine

import "github.com/lixenwraith/vi-snake/core"

// Snake is the player actor: ordered body with head first, heading and deferred growth
type Snake struct {
	body        []core.Cell
	direction   core.Direction
	lastMove    core.Direction // Heading of the most recent completed move
	growPending bool
}

// NewSnake creates a snake centered on the grid facing right, body extending left
func NewSnake(g Grid, length int) *Snake {
	if length < 1 {
		length = 1
	}
	head := g.Center()
	body := make([]core.Cell, length)
	for i := range body {
		body[i] = core.Cell{X: head.X - i, Y: head.Y}
	}
	return &Snake{body: body, direction: core.Right, lastMove: core.Right}
}

// NewSnakeFromBody creates a snake with an explicit body and heading
// Panics on an empty body or non-unit direction
func NewSnakeFromBody(body []core.Cell, dir core.Direction) *Snake {
	if len(body) == 0 {
		panic("engine: snake body must not be empty")
	}
	if !dir.IsUnit() {
		panic("engine: snake direction must be a unit vector")
	}
	b := make([]core.Cell, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir, lastMove: dir}
}

// Head returns the first body cell
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// ChangeDirection sets the heading unless d reverses the current heading or the last move
// Rejected or invalid requests are silently ignored, the return reports acceptance
func (s *Snake) ChangeDirection(d core.Direction) bool {
	if !d.IsUnit() {
		return false
	}
	if d == s.direction.Opposite() || d == s.lastMove.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Grow requests one segment of growth, applied on the next move
func (s *Snake) Grow() {
	s.growPending = true
}

// GrowPending reports whether growth is queued for the next move
func (s *Snake) GrowPending() bool {
	return s.growPending
}

// Move advances the head one cell, wrapping when wrap is set, and drops the tail unless growing
func (s *Snake) Move(g Grid, wrap bool) {
	next := s.body[0].Step(s.direction)
	if wrap {
		next = g.Wrap(next)
	}

	if s.growPending {
		s.growPending = false
		s.body = append(s.body, core.Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
	s.lastMove = s.direction
}

// CheckWallCollision reports whether the head left the grid
func (s *Snake) CheckWallCollision(g Grid) bool {
	return !g.InBounds(s.body[0])
}

// CheckSelfCollision reports whether the head overlaps body[1:]
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals c
func (s *Snake) Occupies(c core.Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// AddTo inserts every body cell into set
func (s *Snake) AddTo(set CellSet) {
	for _, c := range s.body {
		set.Put(c)
	}
}
