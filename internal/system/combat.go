package system

import "dungeon-crawler/internal/component"

// AttackResult holds the outcome of the player striking an enemy.
type AttackResult struct {
	Damage      int
	Killed      bool
	XP          int
	LevelUps    []LevelUp
	Retaliation int // damage taken back when the enemy survives
	PlayerDied  bool
}

// PlayerAttack resolves one bump attack at depth. The player starts the
// attack animation; the enemy plays its hurt sequence, or its death sequence
// when health drops to zero, in which case XP is awarded. A surviving enemy
// strikes back immediately.
func PlayerAttack(r Rules, p *component.Player, e *component.Enemy, depth int) AttackResult {
	dmg := r.BaseAttack + p.Strength
	e.Health.Hurt(dmg)
	p.Anim.Play(component.AnimAttacking, component.PlayerAttackFrames, component.PlayerFrameTicks)

	stats := e.Kind.Stats()
	if stats.DamageFrames > 0 {
		e.Anim.Play(component.AnimDamaged, stats.DamageFrames, component.EffectFrameTicks)
	}

	result := AttackResult{Damage: dmg}
	if e.Health.Dead() {
		e.Anim.Play(component.AnimDying, stats.DeathFrames, component.EffectFrameTicks)
		result.Killed = true
		result.XP = e.Kind.XPReward(depth)
		result.LevelUps = AwardXP(r, p, result.XP)
		return result
	}

	result.Retaliation = max(r.MinDamage, e.Damage-p.Strength)
	p.Health.Hurt(result.Retaliation)
	result.PlayerDied = p.Health.Dead()
	return result
}

// EnemyAttack resolves an adjacent enemy striking the player and returns the
// damage dealt and whether the player died.
func EnemyAttack(r Rules, e *component.Enemy, p *component.Player) (int, bool) {
	e.Anim.Play(component.AnimAttacking, e.Kind.Stats().AttackFrames, component.EnemyAttackFrameTicks)
	dmg := max(r.MinDamage, e.Damage-p.Strength)
	p.Health.Hurt(dmg)
	p.Anim.Play(component.AnimDamaged, component.PlayerDamageFrames, component.PlayerFrameTicks)
	return dmg, p.Health.Dead()
}
