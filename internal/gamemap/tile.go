package gamemap

// Tile is the code stored in one grid cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileStair
)

// Walkable reports whether actors may stand on the tile.
func (t Tile) Walkable() bool {
	return t != TileWall
}

func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileStair:
		return "stair"
	default:
		return "wall"
	}
}
