package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/system"
	"math/rand"
)

// TurnState tracks the turn state machine.
type TurnState uint8

const (
	StatePlayerTurn TurnState = iota
	StatePlayerAnimating
	StateEnemyTurn
	StateEnemyAnimating
	StateGameOver
)

func (s TurnState) String() string {
	switch s {
	case StatePlayerAnimating:
		return "player animating"
	case StateEnemyTurn:
		return "enemy turn"
	case StateEnemyAnimating:
		return "enemy animating"
	case StateGameOver:
		return "game over"
	default:
		return "player turn"
	}
}

// Session owns all simulation state of one run. Only the turn state machine
// mutates it; the front end reads it through Scene.
type Session struct {
	cfg   config.Config
	rules system.Rules
	rng   *rand.Rand

	depth  int
	level  *level
	player *component.Player
	log    MessageLog
	state  TurnState

	inventoryOpen bool
	potionMenu    bool
	moved         bool // the player has left the spawn cell on this level
}

// NewSession starts a run at depth 1.
func NewSession(cfg config.Config, rng *rand.Rand) (*Session, error) {
	s := &Session{
		cfg: cfg,
		rules: system.Rules{
			BaseAttack:     cfg.BaseAttack,
			MinDamage:      cfg.MinEnemyDamage,
			TreasureXP:     cfg.TreasureXP,
			LevelUpHealth:  cfg.LevelUpHealth,
			VitalityHealth: cfg.VitalityHealth,
		},
		rng: rng,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart resets the player, depth, log, visibility and registries and
// builds a fresh first level. On error the previous run is left untouched.
func (s *Session) Restart() error {
	lv, err := buildLevel(s.cfg, 1, s.rng)
	if err != nil {
		return err
	}
	s.depth = 1
	s.level = lv
	s.player = factory.NewPlayer(lv.gmap.Spawn, factory.PlayerStart{
		Health:      s.cfg.StartHealth,
		NextLevelXP: s.cfg.StartNextLevel,
		Strength:    s.cfg.StartStrength,
		Vitality:    s.cfg.StartVitality,
	})
	s.log.Clear()
	s.state = StatePlayerTurn
	s.inventoryOpen = false
	s.potionMenu = false
	s.moved = false
	return nil
}

// descend replaces the level with the next depth, keeping the player.
func (s *Session) descend() error {
	lv, err := buildLevel(s.cfg, s.depth+1, s.rng)
	if err != nil {
		return err
	}
	s.depth++
	s.level = lv
	s.player.Pos = lv.gmap.Spawn
	s.moved = false
	s.state = StatePlayerTurn
	s.log.Addf("Descended to dungeon level %d!", s.depth)
	s.log.Add("Enemies grow stronger!")
	return nil
}

// State returns the current turn state.
func (s *Session) State() TurnState { return s.state }

// Depth returns the 1-indexed dungeon level.
func (s *Session) Depth() int { return s.depth }

// Player returns the player. Callers outside the package treat it as read-only.
func (s *Session) Player() *component.Player { return s.player }

// Map returns the current level's grid.
func (s *Session) Map() *gamemap.GameMap { return s.level.gmap }

// Visibility returns the current level's fog-of-war mask.
func (s *Session) Visibility() *gamemap.Visibility { return s.level.visible }

// Enemies returns the enemy registry of the current level.
func (s *Session) Enemies() *ecs.World[component.Enemy] { return s.level.enemies }

// Treasures returns the treasure registry of the current level.
func (s *Session) Treasures() *ecs.World[component.Treasure] { return s.level.treasures }

// Log returns the message log.
func (s *Session) Log() *MessageLog { return &s.log }

// InventoryOpen reports whether the stats/inventory window is shown.
func (s *Session) InventoryOpen() bool { return s.inventoryOpen }

// PotionMenuOpen reports whether the potion selection is shown.
func (s *Session) PotionMenuOpen() bool { return s.potionMenu }
