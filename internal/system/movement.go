package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, closed chest or out-of-bounds
	MoveAttack                    // bumped a living enemy
)

// EnemyAt returns the enemy standing on p that is not already dying.
func EnemyAt(enemies *ecs.World[component.Enemy], p gamemap.Point) ecs.EntityID {
	found := ecs.NilEntity
	enemies.Each(func(id ecs.EntityID, e *component.Enemy) {
		if found == ecs.NilEntity && e.Pos == p && !e.Dying() {
			found = id
		}
	})
	return found
}

// ClosedTreasureAt returns the unopened chest on p, if any.
func ClosedTreasureAt(treasures *ecs.World[component.Treasure], p gamemap.Point) ecs.EntityID {
	found := ecs.NilEntity
	treasures.Each(func(id ecs.EntityID, t *component.Treasure) {
		if found == ecs.NilEntity && t.Pos == p && !t.Open {
			found = id
		}
	})
	return found
}

// TryMove attempts to move the player by (dx, dy) on gmap.
// Returns the outcome and, for MoveAttack, the enemy that was bumped.
func TryMove(gmap *gamemap.GameMap, enemies *ecs.World[component.Enemy], treasures *ecs.World[component.Treasure], p *component.Player, dx, dy int) (MoveResult, ecs.EntityID) {
	target := p.Pos.Add(dx, dy)

	if id := EnemyAt(enemies, target); id != ecs.NilEntity {
		p.Facing = component.FacingFor(dx, dy)
		return MoveAttack, id
	}
	if ClosedTreasureAt(treasures, target) != ecs.NilEntity {
		return MoveBlocked, ecs.NilEntity
	}
	if !gmap.IsWalkable(target.X, target.Y) {
		return MoveBlocked, ecs.NilEntity
	}

	p.Pos = target
	p.Facing = component.FacingFor(dx, dy)
	return MoveOK, ecs.NilEntity
}
