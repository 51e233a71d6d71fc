package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
	"errors"
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// twoRoomMap builds a fixed map with two 4x4 rooms joined by a corridor.
func twoRoomMap() *gamemap.GameMap {
	gmap := gamemap.New(20, 10)
	rooms := []gamemap.Rect{gamemap.NewRect(1, 1, 4, 4), gamemap.NewRect(10, 3, 4, 4)}
	for _, r := range rooms {
		carveRoom(gmap, r)
	}
	carveH(gmap, rooms[0].Center().X, rooms[1].Center().X, rooms[0].Center().Y)
	carveV(gmap, rooms[0].Center().Y, rooms[1].Center().Y, rooms[1].Center().X)
	gmap.Rooms = rooms
	gmap.Spawn = rooms[0].Center()
	gmap.Stairs = rooms[1].Center()
	gmap.Set(gmap.Stairs.X, gmap.Stairs.Y, gamemap.TileStair)
	return gmap
}

func TestSpawnTreasuresOnCorners(t *testing.T) {
	gmap := twoRoomMap()
	spawns, err := SpawnTreasures(gmap, 5, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("SpawnTreasures: %v", err)
	}
	if len(spawns) != 5 {
		t.Fatalf("got %d treasures, want 5", len(spawns))
	}
	seen := mapset.New[gamemap.Point]()
	for _, s := range spawns {
		if seen.Has(s.Pos) {
			t.Fatalf("treasure position %v used twice", s.Pos)
		}
		seen.Put(s.Pos)

		var owner *gamemap.Rect
		for i := range gmap.Rooms {
			for _, c := range gmap.Rooms[i].Corners() {
				if c == s.Pos {
					owner = &gmap.Rooms[i]
				}
			}
		}
		if owner == nil {
			t.Fatalf("treasure %v is not on a room corner", s.Pos)
		}
		want := component.FacingRight
		if s.Pos.X == owner.X2 {
			want = component.FacingLeft
		}
		if s.Facing != want {
			t.Errorf("treasure at %v faces %v, want %v", s.Pos, s.Facing, want)
		}
	}
}

func TestSpawnTreasuresCapped(t *testing.T) {
	gmap := twoRoomMap()
	spawns, err := SpawnTreasures(gmap, 12, rand.New(rand.NewSource(1)))
	var space *InsufficientSpaceError
	if !errors.As(err, &space) {
		t.Fatalf("expected InsufficientSpaceError, got %v", err)
	}
	if space.Requested != 12 || space.Available != 8 {
		t.Errorf("error = %+v; want requested 12, available 8", space)
	}
	if len(spawns) != 8 {
		t.Errorf("got %d treasures, want the 8 available corners", len(spawns))
	}
}

func TestSpawnEnemiesAvoidsOccupied(t *testing.T) {
	gmap := twoRoomMap()
	occupied := mapset.New[gamemap.Point]()
	occupied.Put(gmap.Spawn)
	for _, c := range gmap.Rooms[0].Corners() {
		occupied.Put(c)
	}

	for seed := int64(0); seed < 20; seed++ {
		spawns, err := SpawnEnemies(gmap, 6, 1, 3, occupied, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed=%d: SpawnEnemies: %v", seed, err)
		}
		if len(spawns) != 6 {
			t.Fatalf("seed=%d: got %d enemies, want 6", seed, len(spawns))
		}
		taken := mapset.New[gamemap.Point]()
		for _, s := range spawns {
			switch {
			case occupied.Has(s.Pos):
				t.Fatalf("seed=%d: enemy on occupied cell %v", seed, s.Pos)
			case !gmap.IsFloor(s.Pos.X, s.Pos.Y):
				t.Fatalf("seed=%d: enemy on non-floor cell %v", seed, s.Pos)
			case taken.Has(s.Pos):
				t.Fatalf("seed=%d: two enemies on %v", seed, s.Pos)
			case s.Boss:
				t.Fatalf("seed=%d: boss spawned off the boss depth", seed)
			}
			taken.Put(s.Pos)
		}
	}
}

func TestSpawnEnemiesBossTakesSlot(t *testing.T) {
	gmap := twoRoomMap()
	spawns, err := SpawnEnemies(gmap, 8, 3, 3, mapset.New[gamemap.Point](), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("SpawnEnemies: %v", err)
	}
	if len(spawns) != 8 {
		t.Fatalf("got %d enemies, want 8 including the boss", len(spawns))
	}
	bosses := 0
	for _, s := range spawns {
		if s.Boss {
			bosses++
			if s.Kind != component.BossKind {
				t.Errorf("boss kind = %v; want %v", s.Kind, component.BossKind)
			}
		}
	}
	if bosses != 1 {
		t.Errorf("got %d bosses, want 1", bosses)
	}
}

func TestSpawnEnemiesInsufficientSpace(t *testing.T) {
	gmap := gamemap.New(5, 5)
	carveRoom(gmap, gamemap.NewRect(1, 1, 3, 1))
	spawns, err := SpawnEnemies(gmap, 10, 1, 3, mapset.New[gamemap.Point](), rand.New(rand.NewSource(0)))
	var space *InsufficientSpaceError
	if !errors.As(err, &space) {
		t.Fatalf("expected InsufficientSpaceError, got %v", err)
	}
	if space.Available != 3 || len(spawns) != 3 {
		t.Errorf("available=%d spawned=%d; want 3 and 3", space.Available, len(spawns))
	}
}

func TestPopulateKeepsSpawnAndTreasuresClear(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gmap, err := Generate(&Config{Width: 37, Height: 18, MaxRooms: 50, MinRoomSize: 3, MaxRoomSize: 15, Rand: rng})
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		res, err := Populate(gmap, &PopulateConfig{Treasures: 3, Enemies: 6, Depth: 1, BossDepth: 3, Rand: rng})
		var space *InsufficientSpaceError
		if err != nil && !errors.As(err, &space) {
			t.Fatalf("seed=%d: Populate: %v", seed, err)
		}
		chests := mapset.New[gamemap.Point]()
		for _, tr := range res.Treasures {
			chests.Put(tr.Pos)
		}
		for _, e := range res.Enemies {
			if e.Pos == gmap.Spawn {
				t.Errorf("seed=%d: enemy placed on player spawn", seed)
			}
			if chests.Has(e.Pos) {
				t.Errorf("seed=%d: enemy placed on a treasure at %v", seed, e.Pos)
			}
		}
	}
}
