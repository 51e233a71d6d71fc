package factory

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
)

// PlayerStart holds the values a fresh player begins with.
type PlayerStart struct {
	Health      int
	NextLevelXP int
	Strength    int
	Vitality    int
}

// Scaling controls how enemy stats grow with depth.
type Scaling struct {
	HealthMultiplier int
	DamageIncrement  int
	MinDamage        int
}

// NewPlayer creates the player at pos with an empty inventory.
func NewPlayer(pos gamemap.Point, start PlayerStart) *component.Player {
	return &component.Player{
		Pos:         pos,
		Health:      component.Health{Current: start.Health, Max: start.Health},
		NextLevelXP: start.NextLevelXP,
		Level:       1,
		Attributes:  component.Attributes{Strength: start.Strength, Vitality: start.Vitality},
		Facing:      component.FacingRight,
	}
}

// EnemyHealth returns the starting health of kind on depth. The boss gets
// double base health and ignores depth.
func EnemyHealth(kind component.EnemyKind, boss bool, depth int, sc Scaling) int {
	base := kind.Stats().Health
	if boss {
		return base * 2
	}
	return base * (1 + (depth-1)*sc.HealthMultiplier)
}

// EnemyDamage returns the attack damage of kind on depth, never below
// sc.MinDamage. The boss uses its base damage.
func EnemyDamage(kind component.EnemyKind, boss bool, depth int, sc Scaling) int {
	base := kind.Stats().Damage
	if boss {
		return base
	}
	return max(sc.MinDamage, base+(depth-1)*sc.DamageIncrement)
}

// NewEnemy creates an enemy entity from a spawn record.
func NewEnemy(w *ecs.World[component.Enemy], spawn generate.EnemySpawn, depth int, sc Scaling) ecs.EntityID {
	hp := EnemyHealth(spawn.Kind, spawn.Boss, depth, sc)
	return w.Create(component.Enemy{
		Kind:   spawn.Kind,
		Pos:    spawn.Pos,
		Health: component.Health{Current: hp, Max: hp},
		Damage: EnemyDamage(spawn.Kind, spawn.Boss, depth, sc),
		Boss:   spawn.Boss,
		Facing: component.FacingRight,
	})
}

// NewTreasure creates a closed chest from a spawn record.
func NewTreasure(w *ecs.World[component.Treasure], spawn generate.TreasureSpawn) ecs.EntityID {
	return w.Create(component.Treasure{Pos: spawn.Pos, Facing: spawn.Facing})
}
