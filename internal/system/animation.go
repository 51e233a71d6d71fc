package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
)

// AdvanceEffects runs once per tick regardless of turn state. It steps every
// enemy hurt or death sequence and the player's hurt sequence, and marks
// enemies whose death sequence has finished for removal. The caller compacts
// the registry afterwards.
func AdvanceEffects(enemies *ecs.World[component.Enemy], p *component.Player) {
	enemies.Each(func(id ecs.EntityID, e *component.Enemy) {
		switch e.Anim.State {
		case component.AnimDamaged:
			e.Anim.Step()
		case component.AnimDying:
			if e.Anim.Step() {
				enemies.Destroy(id)
			}
		}
	})
	if p.Anim.State == component.AnimDamaged {
		p.Anim.Step()
	}
}

// AdvancePlayerAttack steps the player's attack animation and reports
// whether it has finished.
func AdvancePlayerAttack(p *component.Player) bool {
	if p.Anim.State != component.AnimAttacking {
		return true
	}
	return p.Anim.Step()
}

// AdvanceEnemyAttacks steps every attacking enemy and reports whether the
// enemy phase may end: no enemy is attacking or dying any more.
func AdvanceEnemyAttacks(enemies *ecs.World[component.Enemy]) bool {
	settled := true
	enemies.Each(func(_ ecs.EntityID, e *component.Enemy) {
		if e.Anim.State == component.AnimAttacking {
			e.Anim.Step()
		}
		if e.Anim.State == component.AnimAttacking || e.Anim.State == component.AnimDying {
			settled = false
		}
	})
	return settled
}
