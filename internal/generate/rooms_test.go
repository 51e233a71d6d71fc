package generate

import (
	"dungeon-crawler/internal/gamemap"
	"errors"
	"math/rand"
	"testing"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		Width:       37,
		Height:      18,
		MaxRooms:    50,
		MinRoomSize: 3,
		MaxRoomSize: 15,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateRoomsDisjointAndBordered(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := defaultTestConfig(seed)
		gmap, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		if len(gmap.Rooms) == 0 || len(gmap.Rooms) > cfg.MaxRooms {
			t.Fatalf("seed=%d: got %d rooms", seed, len(gmap.Rooms))
		}
		for i, a := range gmap.Rooms {
			if a.X1 < 1 || a.Y1 < 1 || a.X2 > cfg.Width-2 || a.Y2 > cfg.Height-2 {
				t.Errorf("seed=%d: room %d %+v touches the map edge", seed, i, a)
			}
			if a.Width() < cfg.MinRoomSize || a.Width() > cfg.MaxRoomSize ||
				a.Height() < cfg.MinRoomSize || a.Height() > cfg.MaxRoomSize {
				t.Errorf("seed=%d: room %d %+v has out-of-range size", seed, i, a)
			}
			for j := i + 1; j < len(gmap.Rooms); j++ {
				if a.Intersects(gmap.Rooms[j]) {
					t.Errorf("seed=%d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestGenerateSpawnAndStairs(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gmap, err := Generate(defaultTestConfig(seed))
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		first := gmap.Rooms[0]
		last := gmap.Rooms[len(gmap.Rooms)-1]
		if gmap.Spawn != first.Center() {
			t.Errorf("seed=%d: spawn %v, want first room center %v", seed, gmap.Spawn, first.Center())
		}
		if gmap.Stairs != last.Center() {
			t.Errorf("seed=%d: stairs %v, want last room center %v", seed, gmap.Stairs, last.Center())
		}
		if n := gmap.Count(gamemap.TileStair); n != 1 {
			t.Errorf("seed=%d: %d stair tiles, want exactly 1", seed, n)
		}
		if len(gmap.Rooms) > 1 && !gmap.IsFloor(gmap.Spawn.X, gmap.Spawn.Y) {
			t.Errorf("seed=%d: spawn %v is not floor", seed, gmap.Spawn)
		}
	}
}

// TestGenerateAllCellsReachable verifies that every floor tile and the stair
// are reachable from the spawn by 4-directional steps.
func TestGenerateAllCellsReachable(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gmap, err := Generate(defaultTestConfig(seed))
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		reached := gmap.Reachable(gmap.Spawn)
		if !reached.Has(gmap.Stairs) {
			t.Errorf("seed=%d: stair unreachable from spawn", seed)
		}
		for _, p := range gmap.FloorCells() {
			if !reached.Has(p) {
				t.Errorf("seed=%d: floor %v unreachable from spawn", seed, p)
				break
			}
		}
	}
}

func TestGenerateSingleRoom(t *testing.T) {
	// A 17x17 grid fits any 3..15 room but never two, so one room is carved
	// and no corridor is dug.
	for seed := int64(0); seed < 10; seed++ {
		cfg := &Config{
			Width: 17, Height: 17, MaxRooms: 1,
			MinRoomSize: 3, MaxRoomSize: 15,
			Rand: rand.New(rand.NewSource(seed)),
		}
		gmap, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		if len(gmap.Rooms) != 1 {
			t.Fatalf("seed=%d: got %d rooms, want 1", seed, len(gmap.Rooms))
		}
		room := gmap.Rooms[0]
		if gmap.Stairs != room.Center() {
			t.Errorf("seed=%d: stairs %v, want %v", seed, gmap.Stairs, room.Center())
		}
		area := room.Width() * room.Height()
		walkable := gmap.Count(gamemap.TileFloor) + gmap.Count(gamemap.TileStair)
		if walkable != area {
			t.Errorf("seed=%d: %d walkable cells, want room area %d (no corridors)", seed, walkable, area)
		}
	}
}

func TestGenerateNoRooms(t *testing.T) {
	// A 4x4 grid leaves no room for a 3x3 room inside a one-cell border.
	cfg := &Config{
		Width: 4, Height: 4, MaxRooms: 10,
		MinRoomSize: 3, MaxRoomSize: 3,
		Rand: rand.New(rand.NewSource(1)),
	}
	_, err := Generate(cfg)
	if !errors.Is(err, ErrNoRooms) {
		t.Fatalf("expected ErrNoRooms, got %v", err)
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if genErr.Width != 4 || genErr.Height != 4 {
		t.Errorf("GenerationError dims = %dx%d; want 4x4", genErr.Width, genErr.Height)
	}
}

func TestGenerateWithRetryReturnsLastError(t *testing.T) {
	cfg := &Config{
		Width: 4, Height: 4, MaxRooms: 5,
		MinRoomSize: 3, MaxRoomSize: 3,
		Rand: rand.New(rand.NewSource(1)),
	}
	_, err := GenerateWithRetry(cfg, 3)
	if !errors.Is(err, ErrNoRooms) {
		t.Fatalf("expected ErrNoRooms after retries, got %v", err)
	}
}

func TestGenerateWithRetrySucceeds(t *testing.T) {
	gmap, err := GenerateWithRetry(defaultTestConfig(7), 5)
	if err != nil {
		t.Fatalf("GenerateWithRetry: %v", err)
	}
	if len(gmap.Rooms) == 0 {
		t.Fatal("expected at least one room")
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a, err := Generate(defaultTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(defaultTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Fatalf("room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}
