package render

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
)

// PlayerView is the read-only player state shown on screen.
type PlayerView struct {
	Pos         gamemap.Point
	Health      component.Health
	XP          int
	NextLevelXP int
	Level       int
	StatPoints  int
	Attributes  component.Attributes
	Potions     [component.NumPotionTiers]int
	Armor       [component.NumArmorSlots]string // empty when the slot is bare
	Facing      component.Facing
	State       component.AnimState
	Frame       int
}

// EnemyView is one enemy as the renderer sees it.
type EnemyView struct {
	Pos    gamemap.Point
	Kind   component.EnemyKind
	State  component.AnimState
	Frame  int
	Facing component.Facing
	Boss   bool
	Speed  int // fast enemies are drawn bold
}

// TreasureView is one chest as the renderer sees it.
type TreasureView struct {
	Pos    gamemap.Point
	Open   bool
	Facing component.Facing
}

// Scene is a snapshot of everything drawn in one frame. It is built after
// all per-tick mutations and owns copies of the data it references.
type Scene struct {
	Map       *gamemap.GameMap
	Visible   *gamemap.Visibility
	Player    PlayerView
	Enemies   []EnemyView
	Treasures []TreasureView
	Log       []string
	Depth     int

	InventoryOpen  bool
	PotionMenuOpen bool
	GameOver       bool

	BossAlive  bool
	BossHealth float64 // current/max, only meaningful when BossAlive
}
