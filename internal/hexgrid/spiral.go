package hexgrid

import "iter"

// ringDirections is the side-walk order for a clockwise ring traversal
// that starts at the ring's north cell (0, -k, k).
var ringDirections = [6]Coord{
	{Q: 1, R: 0, S: -1},
	{Q: 0, R: 1, S: -1},
	{Q: -1, R: 1, S: 0},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: -1, S: 1},
	{Q: 1, R: -1, S: 0},
}

// Ring returns the coordinates of ring k around the origin, walked
// clockwise from the north cell. Ring 0 is just the origin.
func Ring(k int) []Coord {
	if k <= 0 {
		return []Coord{{}}
	}
	res := make([]Coord, 0, 6*k)
	c := Coord{Q: 0, R: -k, S: k}
	for _, dir := range ringDirections {
		for step := 0; step < k; step++ {
			res = append(res, c)
			c = c.Add(dir)
		}
	}
	return res
}

// Spiral returns an infinite, restartable sequence of coordinates that
// starts at the origin and spirals outward ring by ring, each ring
// walked clockwise from its north cell. The order is canonical: flat
// tile lists serialized against it round-trip exactly.
func Spiral() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if !yield(Coord{}) {
			return
		}
		for k := 1; ; k++ {
			for _, c := range Ring(k) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// SpiralCoords returns the first n coordinates of the spiral traversal.
func SpiralCoords(n int) []Coord {
	res := make([]Coord, 0, n)
	for c := range Spiral() {
		if len(res) == n {
			break
		}
		res = append(res, c)
	}
	return res
}
