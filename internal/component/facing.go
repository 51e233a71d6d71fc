package component

import "dungeon-crawler/internal/gamemap"

// Facing is the direction a sprite is drawn toward.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	default:
		return "right"
	}
}

// FacingFor maps a step (dx, dy) to a facing. Horizontal movement wins.
func FacingFor(dx, dy int) Facing {
	switch {
	case dx > 0:
		return FacingRight
	case dx < 0:
		return FacingLeft
	case dy > 0:
		return FacingDown
	default:
		return FacingUp
	}
}

// HorizontalFacing faces target from pos using only left/right.
func HorizontalFacing(pos, target gamemap.Point) Facing {
	if target.X-pos.X > 0 {
		return FacingRight
	}
	return FacingLeft
}
