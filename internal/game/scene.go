package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/render"
)

// Scene snapshots the session for drawing. It copies the map, the fog mask
// and every actor so the renderer never aliases live state.
func (s *Session) Scene(logLines int) render.Scene {
	p := s.player
	pv := render.PlayerView{
		Pos:         p.Pos,
		Health:      p.Health,
		XP:          p.XP,
		NextLevelXP: p.NextLevelXP,
		Level:       p.Level,
		StatPoints:  p.StatPoints,
		Attributes:  p.Attributes,
		Potions:     p.Potions,
		Facing:      p.Facing,
		State:       p.Anim.State,
		Frame:       p.Anim.Frame(),
	}
	for i, a := range p.Armor {
		if a != nil {
			pv.Armor[i] = a.Name
		}
	}

	sc := render.Scene{
		Map:            s.level.gmap.Clone(),
		Visible:        s.level.visible.Clone(),
		Player:         pv,
		Log:            s.log.Recent(logLines),
		Depth:          s.depth,
		InventoryOpen:  s.inventoryOpen,
		PotionMenuOpen: s.potionMenu,
		GameOver:       s.state == StateGameOver,
	}

	s.level.enemies.Each(func(_ ecs.EntityID, e *component.Enemy) {
		sc.Enemies = append(sc.Enemies, render.EnemyView{
			Pos:    e.Pos,
			Kind:   e.Kind,
			State:  e.Anim.State,
			Frame:  e.Anim.Frame(),
			Facing: e.Facing,
			Boss:   e.Boss,
			Speed:  e.Kind.Stats().Speed,
		})
		if e.Boss && !e.Dying() && e.Health.Max > 0 {
			sc.BossAlive = true
			sc.BossHealth = float64(max(e.Health.Current, 0)) / float64(e.Health.Max)
		}
	})
	s.level.treasures.Each(func(_ ecs.EntityID, t *component.Treasure) {
		sc.Treasures = append(sc.Treasures, render.TreasureView{Pos: t.Pos, Open: t.Open, Facing: t.Facing})
	})
	return sc
}
