package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

// EnemyHitResult holds information about an enemy attack on the player.
type EnemyHitResult struct {
	AttackerID ecs.EntityID
	Kind       component.EnemyKind
	Damage     int
}

// AIResult summarises one enemy turn.
type AIResult struct {
	Hits       []EnemyHitResult
	PlayerDied bool
}

// ProcessEnemies runs one turn for every enemy that is neither dying nor
// mid-attack. Each faces the player, attacks when orthogonally adjacent and
// otherwise steps once toward the player along the axis with the larger
// distance (vertical on ties). Processing stops as soon as the player dies.
func ProcessEnemies(r Rules, gmap *gamemap.GameMap, enemies *ecs.World[component.Enemy], p *component.Player) AIResult {
	var res AIResult
	enemies.Each(func(id ecs.EntityID, e *component.Enemy) {
		if res.PlayerDied || e.Busy() {
			return
		}
		e.Facing = component.HorizontalFacing(e.Pos, p.Pos)

		if e.Pos.Manhattan(p.Pos) == 1 {
			dmg, died := EnemyAttack(r, e, p)
			res.Hits = append(res.Hits, EnemyHitResult{AttackerID: id, Kind: e.Kind, Damage: dmg})
			res.PlayerDied = died
			return
		}
		chase(gmap, enemies, e, p.Pos)
	})
	return res
}

// AnyAttacking reports whether an enemy is still playing its attack.
func AnyAttacking(enemies *ecs.World[component.Enemy]) bool {
	busy := false
	enemies.Each(func(_ ecs.EntityID, e *component.Enemy) {
		if e.Anim.State == component.AnimAttacking {
			busy = true
		}
	})
	return busy
}

func chase(gmap *gamemap.GameMap, enemies *ecs.World[component.Enemy], e *component.Enemy, target gamemap.Point) {
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y

	next := e.Pos
	if abs(dx) > abs(dy) {
		next.X += sign(dx)
	} else {
		next.Y += sign(dy)
	}
	if next == e.Pos || !gmap.IsFloor(next.X, next.Y) || occupied(enemies, next) {
		return
	}
	e.Pos = next
}

// occupied reports any enemy on p, dying ones included.
func occupied(enemies *ecs.World[component.Enemy], p gamemap.Point) bool {
	hit := false
	enemies.Each(func(_ ecs.EntityID, e *component.Enemy) {
		if e.Pos == p {
			hit = true
		}
	})
	return hit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
