package core

import "fmt"

// Cell is a discrete grid coordinate
type Cell struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Step returns the neighbouring cell in direction d, without bounds handling
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit vector along one grid axis
type Direction struct {
	DX int `json:"dx" msgpack:"dx"`
	DY int `json:"dy" msgpack:"dy"`
}

// Cardinal directions, screen coordinates (Y grows downward)
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the negated direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsUnit reports whether d is one of the four cardinal directions
func (d Direction) IsUnit() bool {
	return (d.DX == 0) != (d.DY == 0) && d.DX*d.DX+d.DY*d.DY == 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
}
