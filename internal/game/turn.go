package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/render"
	"dungeon-crawler/internal/system"
)

var potionIntents = map[Intent]component.PotionTier{
	IntentPotionSmall:  component.PotionSmall,
	IntentPotionMedium: component.PotionMedium,
	IntentPotionLarge:  component.PotionLarge,
}

// Apply feeds one decoded intent into the state machine. Restart is honoured
// in every state; everything else is ignored unless it is the player's turn.
func (s *Session) Apply(in Intent) error {
	if in == IntentRestart {
		return s.Restart()
	}
	if s.state != StatePlayerTurn {
		return nil
	}

	switch in {
	case IntentInventory:
		s.inventoryOpen = !s.inventoryOpen
	case IntentStrength:
		s.allocate(system.StatStrength)
	case IntentVitality:
		s.allocate(system.StatVitality)
	case IntentInteract:
		s.interact()
	case IntentPotionMenu:
		s.togglePotionMenu()
	case IntentPotionSmall, IntentPotionMedium, IntentPotionLarge:
		s.drink(potionIntents[in])
	case IntentMoveUp, IntentMoveDown, IntentMoveLeft, IntentMoveRight:
		dx, dy := intentToDelta(in)
		s.move(dx, dy)
	}
	return nil
}

func (s *Session) allocate(st system.Stat) {
	v, ok := system.AllocateStat(s.rules, s.player, st)
	if !ok {
		return
	}
	s.log.Addf("You increased %s to %d!", titleStat(st), v)
}

func titleStat(st system.Stat) string {
	if st == system.StatVitality {
		return "Vitality"
	}
	return "Strength"
}

// interact opens nearby chests. It does not end the turn.
func (s *Session) interact() {
	for _, res := range system.OpenTreasures(s.rules, s.level.treasures, s.player, s.rng) {
		s.log.Addf("Found %s!", render.PotionName(res.Tier))
		s.logLevelUps(res.LevelUps)
	}
}

func (s *Session) togglePotionMenu() {
	if s.inventoryOpen {
		return
	}
	if s.potionMenu {
		s.potionMenu = false
		return
	}
	if s.player.TotalPotions() == 0 {
		s.log.Add("No potions in inventory!")
		return
	}
	s.potionMenu = true
}

// drink consumes a potion while the potion menu is open; it ends the turn.
func (s *Session) drink(tier component.PotionTier) {
	if !s.potionMenu {
		return
	}
	heal, ok := system.UsePotion(s.player, tier)
	if !ok {
		return
	}
	s.log.Addf("Used %s (+%d HP)!", render.PotionName(tier), heal)
	s.potionMenu = false
	s.state = StateEnemyTurn
}

func (s *Session) move(dx, dy int) {
	res, target := system.TryMove(s.level.gmap, s.level.enemies, s.level.treasures, s.player, dx, dy)
	switch res {
	case system.MoveOK:
		s.level.visible.Reveal(s.player.Pos, s.cfg.RevealRadius)
		s.moved = true
		s.state = StateEnemyTurn
	case system.MoveAttack:
		e := s.level.enemies.Get(target)
		if e == nil {
			return
		}
		ar := system.PlayerAttack(s.rules, s.player, e, s.depth)
		s.log.Addf("You hit a %s for %d damage!", e.Kind, ar.Damage)
		if ar.Killed {
			s.log.Addf("Gained %d XP!", ar.XP)
			s.logLevelUps(ar.LevelUps)
		} else {
			s.log.Addf("The %s retaliates for %d damage!", e.Kind, ar.Retaliation)
		}
		if ar.PlayerDied {
			s.log.Add("You died!")
			s.state = StateGameOver
			return
		}
		s.state = StatePlayerAnimating
	}
}

func (s *Session) logLevelUps(ups []system.LevelUp) {
	for _, u := range ups {
		s.log.Addf("Level up! Now level %d with %d stat points!", u.Level, u.StatPoints)
	}
}

// Tick advances the simulation by one fixed step: the turn state first,
// then hurt and death sequences, then the stair check.
func (s *Session) Tick() error {
	switch s.state {
	case StatePlayerAnimating:
		if system.AdvancePlayerAttack(s.player) {
			s.state = StateEnemyTurn
		}
	case StateEnemyTurn:
		s.enemyTurn()
	case StateEnemyAnimating:
		if system.AdvanceEnemyAttacks(s.level.enemies) {
			s.state = StatePlayerTurn
		}
	}

	system.AdvanceEffects(s.level.enemies, s.player)
	s.level.enemies.Compact()

	if s.state != StateGameOver && s.moved && s.player.Pos == s.level.gmap.Stairs {
		return s.descend()
	}
	return nil
}

func (s *Session) enemyTurn() {
	res := system.ProcessEnemies(s.rules, s.level.gmap, s.level.enemies, s.player)
	for _, hit := range res.Hits {
		s.log.Addf("A %s attacks you for %d damage!", hit.Kind, hit.Damage)
	}
	switch {
	case res.PlayerDied:
		s.log.Add("You died!")
		s.state = StateGameOver
	case system.AnyAttacking(s.level.enemies):
		s.state = StateEnemyAnimating
	default:
		s.state = StatePlayerTurn
	}
}
