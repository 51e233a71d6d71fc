package component

import "dungeon-crawler/internal/gamemap"

// EnemyKind identifies an enemy type.
type EnemyKind uint8

const (
	KindGoblin EnemyKind = iota
	KindSlime
	KindWarg
)

// EnemyStats holds the unscaled values for one kind.
type EnemyStats struct {
	Name         string
	Health       int
	Damage       int
	Speed        int
	XPBase       int
	XPPerDepth   int
	AttackFrames int
	DamageFrames int // 0: the kind has no hurt sequence
	DeathFrames  int
}

var enemyStats = [...]EnemyStats{
	KindGoblin: {Name: "goblin", Health: 10, Damage: 3, Speed: 1, XPBase: 10, XPPerDepth: 1, AttackFrames: 4, DamageFrames: 4, DeathFrames: 12},
	KindSlime:  {Name: "slime", Health: 5, Damage: 5, Speed: 1, XPBase: 20, XPPerDepth: 2, AttackFrames: 4, DeathFrames: 9},
	KindWarg:   {Name: "warg", Health: 100, Damage: 15, Speed: 2, XPBase: 20, XPPerDepth: 2, AttackFrames: 4, DamageFrames: 4, DeathFrames: 12},
}

// Roster lists the kinds regular spawns are drawn from.
var Roster = []EnemyKind{KindGoblin, KindSlime}

// BossKind is the fixed boss spawned on the boss depth.
const BossKind = KindWarg

// Stats returns the static table entry for k.
func (k EnemyKind) Stats() EnemyStats { return enemyStats[k] }

func (k EnemyKind) String() string { return enemyStats[k].Name }

// XPReward returns the experience granted for killing k on the given depth.
func (k EnemyKind) XPReward(depth int) int {
	s := enemyStats[k]
	return s.XPBase + s.XPPerDepth*depth
}

// Enemy is one hostile actor in the registry.
type Enemy struct {
	Kind   EnemyKind
	Pos    gamemap.Point
	Health Health
	Damage int
	Boss   bool
	Facing Facing
	Anim   Animation
}

// Dying reports whether the enemy has been killed and is playing out its
// death sequence.
func (e *Enemy) Dying() bool { return e.Anim.State == AnimDying }

// Busy reports whether the enemy skips its turn.
func (e *Enemy) Busy() bool {
	return e.Anim.State == AnimDying || e.Anim.State == AnimAttacking
}
