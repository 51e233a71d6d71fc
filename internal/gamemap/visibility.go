package gamemap

// Visibility is the fog-of-war mask for one level. Cells only ever go from
// hidden to revealed; Reset is the single way back.
type Visibility struct {
	Width, Height int
	cells         [][]bool
}

// NewVisibility creates an all-hidden mask.
func NewVisibility(width, height int) *Visibility {
	v := &Visibility{Width: width, Height: height}
	v.Reset()
	return v
}

// Reset hides every cell.
func (v *Visibility) Reset() {
	v.cells = make([][]bool, v.Height)
	for y := range v.cells {
		v.cells[y] = make([]bool, v.Width)
	}
}

// Reveal marks every in-bounds cell within the square of half-width radius
// around center as visible.
func (v *Visibility) Reveal(center Point, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := center.X+dx, center.Y+dy
			if x >= 0 && x < v.Width && y >= 0 && y < v.Height {
				v.cells[y][x] = true
			}
		}
	}
}

// Visible reports whether (x, y) has been revealed.
func (v *Visibility) Visible(x, y int) bool {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return false
	}
	return v.cells[y][x]
}

// Count returns the number of revealed cells.
func (v *Visibility) Count() int {
	n := 0
	for y := range v.cells {
		for _, c := range v.cells[y] {
			if c {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the mask.
func (v *Visibility) Clone() *Visibility {
	c := &Visibility{Width: v.Width, Height: v.Height, cells: make([][]bool, v.Height)}
	for y := range v.cells {
		c.cells[y] = append([]bool(nil), v.cells[y]...)
	}
	return c
}
