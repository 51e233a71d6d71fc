package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"math/rand"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 7
	return cfg
}

// newTestSession starts a session and swaps its first level for a 12×8
// open room with the stairs at (10,6) and the player at (2,2).
func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := testConfig()
	s, err := NewSession(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	gmap := gamemap.New(12, 8)
	for y := 1; y < 7; y++ {
		for x := 1; x < 11; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	gmap.Rooms = []gamemap.Rect{gamemap.NewRect(1, 1, 10, 6)}
	gmap.Spawn = gamemap.Point{X: 2, Y: 2}
	gmap.Stairs = gamemap.Point{X: 10, Y: 6}
	gmap.Set(10, 6, gamemap.TileStair)

	s.level = &level{
		gmap:      gmap,
		visible:   gamemap.NewVisibility(12, 8),
		enemies:   ecs.NewWorld[component.Enemy](),
		treasures: ecs.NewWorld[component.Treasure](),
	}
	s.player.Pos = gmap.Spawn
	return s
}

func addEnemy(s *Session, kind component.EnemyKind, x, y int) ecs.EntityID {
	st := kind.Stats()
	return s.level.enemies.Create(component.Enemy{
		Kind:   kind,
		Pos:    gamemap.Point{X: x, Y: y},
		Health: component.Health{Current: st.Health, Max: st.Health},
		Damage: st.Damage,
	})
}

// tickUntil ticks until the session reaches want, failing after limit ticks.
func tickUntil(t *testing.T, s *Session, want TurnState, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if s.State() == want {
			return i
		}
	}
	t.Fatalf("state %v not reached after %d ticks (now %v)", want, limit, s.State())
	return 0
}

func logged(s *Session, msg string) bool {
	return slices.Contains(s.log.Recent(s.log.Len()), msg)
}

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}
