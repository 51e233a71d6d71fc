package render

import "dungeon-crawler/internal/gamemap"

// Camera is the viewport onto the map. Each tile is two terminal columns
// wide, so Cols holds Cols/2 tiles.
type Camera struct {
	Origin     gamemap.Point // top-left tile shown
	Cols, Rows int
}

// Resize sets the viewport size in terminal cells.
func (c *Camera) Resize(cols, rows int) {
	c.Cols, c.Rows = cols, rows
}

// Follow keeps focus near the middle of the view without scrolling past the
// map edges. An axis that fits entirely is pinned to zero.
func (c *Camera) Follow(mapW, mapH int, focus gamemap.Point) {
	c.Origin = gamemap.Point{
		X: followAxis(mapW, c.Cols/2, focus.X),
		Y: followAxis(mapH, c.Rows, focus.Y),
	}
}

func followAxis(size, view, focus int) int {
	if size <= view {
		return 0
	}
	return min(max(focus-view/2, 0), size-view)
}

// Project maps a tile to its screen cell; ok is false when any part of the
// two-column glyph would fall outside the view.
func (c *Camera) Project(p gamemap.Point) (sx, sy int, ok bool) {
	sx = (p.X - c.Origin.X) * 2
	sy = p.Y - c.Origin.Y
	ok = sx >= 0 && sx+1 < c.Cols && sy >= 0 && sy < c.Rows
	return sx, sy, ok
}

// Unproject maps a screen cell back to the tile under it.
func (c *Camera) Unproject(sx, sy int) gamemap.Point {
	return gamemap.Point{X: c.Origin.X + sx/2, Y: c.Origin.Y + sy}
}
