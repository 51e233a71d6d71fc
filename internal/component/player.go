package component

import "dungeon-crawler/internal/gamemap"

// Attributes are the two allocatable stats.
type Attributes struct {
	Strength int
	Vitality int
}

// Player is the single player-controlled actor.
type Player struct {
	Pos         gamemap.Point
	Health      Health
	XP          int
	NextLevelXP int
	Level       int
	StatPoints  int
	Attributes
	Inventory
	Facing Facing
	Anim   Animation
}
