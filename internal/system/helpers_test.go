package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

// openMap creates a w×h map with a one-cell wall border and floor inside.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	return gmap
}

func newPlayer(x, y int) *component.Player {
	return &component.Player{
		Pos:         gamemap.Point{X: x, Y: y},
		Health:      component.Health{Current: 50, Max: 50},
		NextLevelXP: 10,
		Level:       1,
		Attributes:  component.Attributes{Strength: 1, Vitality: 1},
	}
}

// addEnemy registers an enemy of kind at (x, y) with unscaled depth-1 stats.
func addEnemy(w *ecs.World[component.Enemy], kind component.EnemyKind, x, y int) ecs.EntityID {
	s := kind.Stats()
	return w.Create(component.Enemy{
		Kind:   kind,
		Pos:    gamemap.Point{X: x, Y: y},
		Health: component.Health{Current: s.Health, Max: s.Health},
		Damage: s.Damage,
	})
}
