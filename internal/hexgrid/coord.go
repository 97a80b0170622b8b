// Package hexgrid implements cube-coordinate math for hexagonal boards.
// Coordinates are (q, r, s) triples with the invariant q + r + s == 0.
//
// See https://www.redblobgames.com/grids/hexagons/ for the underlying
// geometry.
package hexgrid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoord reports a coordinate whose components do not sum to
// zero. This is a programming error and is never retried.
var ErrInvalidCoord = errors.New("hexgrid: coordinate components must sum to zero")

// Coord is an immutable cube coordinate. The zero value is the origin.
// Coord is comparable and can be used as a map key.
type Coord struct {
	Q, R, S int
}

// New constructs a coordinate, validating the zero-sum invariant.
func New(q, r, s int) (Coord, error) {
	if q+r+s != 0 {
		return Coord{}, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCoord, q, r, s)
	}
	return Coord{Q: q, R: r, S: s}, nil
}

// FromAxial constructs a coordinate from the two axial components,
// deriving s = -(q + r) so the invariant holds by construction.
func FromAxial(q, r int) Coord {
	return Coord{Q: q, R: r, S: -(q + r)}
}

// String formats the coordinate as "(q, r, s)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Q, c.R, c.S)
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R, S: c.S + d.S}
}

// Sub returns the component-wise difference of c and d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{Q: c.Q - d.Q, R: c.R - d.R, S: c.S - d.S}
}

// Neg returns the component-wise negation of c.
func (c Coord) Neg() Coord {
	return Coord{Q: -c.Q, R: -c.R, S: -c.S}
}

// unitVectors are the six neighbor directions in cube coordinates.
var unitVectors = [6]Coord{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// Neighbors returns the six directly adjacent coordinates.
func (c Coord) Neighbors() [6]Coord {
	var res [6]Coord
	for i, v := range unitVectors {
		res[i] = c.Add(v)
	}
	return res
}

// Length is the distance from the origin: max(|q|, |r|, |s|).
func (c Coord) Length() int {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

// Distance is the grid distance between c and d.
func (c Coord) Distance(d Coord) int {
	return c.Sub(d).Length()
}

// Neighborhood returns every coordinate within radius rings of c,
// including c itself.
func (c Coord) Neighborhood(radius int) []Coord {
	res := make([]Coord, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			res = append(res, c.Add(FromAxial(q, r)))
		}
	}
	return res
}

// RotateClockwise60 rotates the coordinate 60 degrees clockwise around
// the origin: (q, r, s) -> (-r, -s, -q). Six applications are the
// identity, exactly, for any integer coordinate.
func (c Coord) RotateClockwise60() Coord {
	return Coord{Q: -c.R, R: -c.S, S: -c.Q}
}

// Rotate applies RotateClockwise60 n times.
func (c Coord) Rotate(n int) Coord {
	for i := 0; i < n%6; i++ {
		c = c.RotateClockwise60()
	}
	return c
}

// Nearest rounds fractional cube coordinates to the nearest valid grid
// coordinate. The axis with the largest rounding error is recomputed
// from the other two so the zero-sum invariant holds exactly. Required
// whenever continuous (pixel) coordinates convert back to the grid.
func Nearest(qf, rf, sf float64) Coord {
	q := int(math.Round(qf))
	r := int(math.Round(rf))
	s := int(math.Round(sf))

	qd := math.Abs(float64(q) - qf)
	rd := math.Abs(float64(r) - rf)
	sd := math.Abs(float64(s) - sf)

	switch {
	case qd > rd && qd > sd:
		q = -(r + s)
	case rd > sd:
		r = -(q + s)
	default:
		s = -(q + r)
	}
	return Coord{Q: q, R: r, S: s}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
