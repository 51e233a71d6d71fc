package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"testing"
)

func TestProcessEnemiesAdjacentAttacks(t *testing.T) {
	gmap := openMap(10, 10)
	enemies := ecs.NewWorld[component.Enemy]()
	p := newPlayer(5, 5)
	id := addEnemy(enemies, component.KindGoblin, 4, 5)

	res := ProcessEnemies(DefaultRules(), gmap, enemies, p)

	if len(res.Hits) != 1 || res.Hits[0].AttackerID != id || res.Hits[0].Damage != 2 {
		t.Fatalf("hits = %+v; want one 2-damage hit from %d", res.Hits, id)
	}
	if p.Health.Current != 48 {
		t.Errorf("player HP = %d; want 48", p.Health.Current)
	}
	e := enemies.Get(id)
	if e.Pos != (gamemap.Point{X: 4, Y: 5}) {
		t.Errorf("attacking enemy moved to %v", e.Pos)
	}
	if e.Facing != component.FacingRight {
		t.Errorf("enemy left of the player should face right, got %v", e.Facing)
	}
	if !AnyAttacking(enemies) {
		t.Error("expected an attacking enemy after the hit")
	}
}

func TestProcessEnemiesStepAlongLargerAxis(t *testing.T) {
	tests := []struct {
		name       string
		from, want gamemap.Point
	}{
		{"horizontal", gamemap.Point{X: 1, Y: 4}, gamemap.Point{X: 2, Y: 4}},
		{"vertical", gamemap.Point{X: 5, Y: 1}, gamemap.Point{X: 5, Y: 2}},
		{"tie goes vertical", gamemap.Point{X: 8, Y: 8}, gamemap.Point{X: 8, Y: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gmap := openMap(10, 10)
			enemies := ecs.NewWorld[component.Enemy]()
			p := newPlayer(5, 5)
			id := addEnemy(enemies, component.KindSlime, tt.from.X, tt.from.Y)

			ProcessEnemies(DefaultRules(), gmap, enemies, p)
			if got := enemies.Get(id).Pos; got != tt.want {
				t.Errorf("enemy moved to %v; want %v", got, tt.want)
			}
		})
	}
}

func TestProcessEnemiesBlockedStep(t *testing.T) {
	gmap := openMap(10, 10)
	gmap.Set(3, 4, gamemap.TileWall)
	gmap.Set(6, 6, gamemap.TileStair)
	enemies := ecs.NewWorld[component.Enemy]()
	p := newPlayer(5, 4)

	walled := addEnemy(enemies, component.KindGoblin, 2, 4)
	stairs := addEnemy(enemies, component.KindGoblin, 6, 7)
	blocker := addEnemy(enemies, component.KindSlime, 5, 2)
	behind := addEnemy(enemies, component.KindSlime, 5, 1)

	ProcessEnemies(DefaultRules(), gmap, enemies, p)

	if got := enemies.Get(walled).Pos; got != (gamemap.Point{X: 2, Y: 4}) {
		t.Errorf("enemy walked into a wall: %v", got)
	}
	if got := enemies.Get(stairs).Pos; got != (gamemap.Point{X: 6, Y: 7}) {
		t.Errorf("enemy stepped onto the stairs: %v", got)
	}
	// The slime at (5,2) moves first to (5,3); the one behind then takes (5,2).
	if got := enemies.Get(blocker).Pos; got != (gamemap.Point{X: 5, Y: 3}) {
		t.Errorf("front slime at %v; want (5,3)", got)
	}
	if got := enemies.Get(behind).Pos; got != (gamemap.Point{X: 5, Y: 2}) {
		t.Errorf("rear slime at %v; want (5,2)", got)
	}
}

func TestProcessEnemiesOccupiedCell(t *testing.T) {
	gmap := openMap(10, 10)
	enemies := ecs.NewWorld[component.Enemy]()
	p := newPlayer(5, 5)
	rear := addEnemy(enemies, component.KindGoblin, 5, 1)
	front := addEnemy(enemies, component.KindGoblin, 5, 2)
	enemies.Get(front).Anim.Play(component.AnimDying, 12, 3)

	ProcessEnemies(DefaultRules(), gmap, enemies, p)

	if got := enemies.Get(rear).Pos; got != (gamemap.Point{X: 5, Y: 1}) {
		t.Errorf("enemy stepped onto an occupied cell: %v", got)
	}
	if got := enemies.Get(front).Pos; got != (gamemap.Point{X: 5, Y: 2}) {
		t.Errorf("dying enemy should not act, moved to %v", got)
	}
}

func TestProcessEnemiesStopsOnPlayerDeath(t *testing.T) {
	gmap := openMap(10, 10)
	enemies := ecs.NewWorld[component.Enemy]()
	p := newPlayer(5, 5)
	p.Health.Current = 1
	addEnemy(enemies, component.KindGoblin, 4, 5)
	second := addEnemy(enemies, component.KindGoblin, 6, 5)

	res := ProcessEnemies(DefaultRules(), gmap, enemies, p)

	if !res.PlayerDied {
		t.Fatal("expected the player to die")
	}
	if len(res.Hits) != 1 {
		t.Errorf("got %d hits; processing should stop after the killing blow", len(res.Hits))
	}
	if enemies.Get(second).Anim.State == component.AnimAttacking {
		t.Error("second enemy should not have attacked")
	}
}
