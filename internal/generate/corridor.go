package generate

import "dungeon-crawler/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between a and b. The bend is
// horizontal-then-vertical or vertical-then-horizontal with equal odds.
func carveCorridor(gmap *gamemap.GameMap, a, b gamemap.Point, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(gmap, a.X, b.X, a.Y)
		carveV(gmap, a.Y, b.Y, b.X)
	} else {
		carveV(gmap, a.Y, b.Y, a.X)
		carveH(gmap, a.X, b.X, b.Y)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
