// Package navigation moves a point on an integer grid one step at a time.
package navigation

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts full names or their first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if v == name || (len(v) == 1 && v[0] == name[0]) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Point is a grid position. North and East are positive.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Move shifts p one unit towards d. Unknown directions leave p unchanged.
func (p *Point) Move(d Direction) {
	switch d {
	case East:
		p.X++
	case North:
		p.Y++
	case West:
		p.X--
	case South:
		p.Y--
	}
}

// Walk applies every direction in order.
func (p *Point) Walk(ds ...Direction) {
	for _, d := range ds {
		p.Move(d)
	}
}
