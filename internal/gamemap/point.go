package gamemap

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the 4-directional distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Neighbors4 lists the orthogonal offsets in the order they are explored.
var Neighbors4 = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
