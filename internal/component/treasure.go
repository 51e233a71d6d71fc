package component

import "dungeon-crawler/internal/gamemap"

// Treasure is a chest placed in a room corner. It opens once per level.
type Treasure struct {
	Pos    gamemap.Point
	Open   bool
	Facing Facing // cosmetic; FacingRight for left corners, FacingLeft for right corners
}
