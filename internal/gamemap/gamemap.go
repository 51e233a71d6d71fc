package gamemap

// Rect is an axis-aligned rectangle used for rooms. Both corners are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle covering a w×h room whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Center returns the room anchor: top-left plus half the size, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X1 + r.Width()/2, Y: r.Y1 + r.Height()/2}
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X1, r.Y1},
		{r.X2, r.Y1},
		{r.X1, r.Y2},
		{r.X2, r.Y2},
	}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// GameMap holds the tile grid and room anchors for one dungeon level.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
	Spawn         Point
	Stairs        Point
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as walls.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and not a wall.
func (m *GameMap) IsWalkable(x, y int) bool {
	return m.At(x, y).Walkable()
}

// IsFloor returns true only for plain floor cells.
func (m *GameMap) IsFloor(x, y int) bool {
	return m.At(x, y) == TileFloor
}

// Count returns how many cells hold tile t.
func (m *GameMap) Count(t Tile) int {
	n := 0
	for y := range m.Tiles {
		for _, c := range m.Tiles[y] {
			if c == t {
				n++
			}
		}
	}
	return n
}

// FloorCells lists every TileFloor cell in row-major order.
func (m *GameMap) FloorCells() []Point {
	var out []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileFloor {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Clone returns a deep copy of m.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{
		Width:  m.Width,
		Height: m.Height,
		Tiles:  make([][]Tile, m.Height),
		Rooms:  append([]Rect(nil), m.Rooms...),
		Spawn:  m.Spawn,
		Stairs: m.Stairs,
	}
	for y := range m.Tiles {
		c.Tiles[y] = append([]Tile(nil), m.Tiles[y]...)
	}
	return c
}
