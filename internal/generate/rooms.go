package generate

import (
	"dungeon-crawler/internal/gamemap"
	"errors"
	"math/rand"
)

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int
	Rand          *rand.Rand
}

// Generate places up to cfg.MaxRooms non-overlapping rooms, joins each room
// to the previous one with an L-shaped corridor and marks the stair at the
// centre of the last room. The player spawns at the centre of the first.
func Generate(cfg *Config) (*gamemap.GameMap, error) {
	gmap := gamemap.New(cfg.Width, cfg.Height)

	for range cfg.MaxRooms {
		room, ok := sampleRoom(cfg)
		if !ok || overlapsAny(room, gmap.Rooms) {
			continue
		}
		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			prev := gmap.Rooms[n-1].Center()
			carveCorridor(gmap, prev, room.Center(), cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	if len(gmap.Rooms) == 0 {
		return nil, &GenerationError{Width: cfg.Width, Height: cfg.Height, Err: ErrNoRooms}
	}

	gmap.Spawn = gmap.Rooms[0].Center()
	gmap.Stairs = gmap.Rooms[len(gmap.Rooms)-1].Center()
	gmap.Set(gmap.Stairs.X, gmap.Stairs.Y, gamemap.TileStair)

	if !gmap.Connected(gmap.Spawn) {
		return nil, &GenerationError{Width: cfg.Width, Height: cfg.Height, Rooms: len(gmap.Rooms), Err: ErrUnreachable}
	}
	return gmap, nil
}

// GenerateWithRetry reruns Generate on the same random stream until a level
// is produced or attempts runs out, in which case the last GenerationError
// is returned.
func GenerateWithRetry(cfg *Config, attempts int) (*gamemap.GameMap, error) {
	var err error
	for range max(attempts, 1) {
		var gmap *gamemap.GameMap
		gmap, err = Generate(cfg)
		if err == nil {
			return gmap, nil
		}
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			return nil, err
		}
	}
	return nil, err
}

// sampleRoom draws a size in [MinRoomSize, MaxRoomSize] and a top-left corner
// leaving a one-cell wall border. It fails when the room cannot fit.
func sampleRoom(cfg *Config) (gamemap.Rect, bool) {
	span := cfg.MaxRoomSize - cfg.MinRoomSize + 1
	if span < 1 {
		return gamemap.Rect{}, false
	}
	w := cfg.MinRoomSize + cfg.Rand.Intn(span)
	h := cfg.MinRoomSize + cfg.Rand.Intn(span)

	xs := cfg.Width - w - 1
	ys := cfg.Height - h - 1
	if xs < 1 || ys < 1 {
		return gamemap.Rect{}, false
	}
	x := 1 + cfg.Rand.Intn(xs)
	y := 1 + cfg.Rand.Intn(ys)
	return gamemap.NewRect(x, y, w, h), true
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
