package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable value of the game. Fields are read from
// DUNGEON_* environment variables.
type Config struct {
	// Dungeon layout.
	MapWidth        int `env:"DUNGEON_MAP_WIDTH" envDefault:"37"`
	MapHeight       int `env:"DUNGEON_MAP_HEIGHT" envDefault:"18"`
	MinRoomSize     int `env:"DUNGEON_MIN_ROOM_SIZE" envDefault:"3"`
	MaxRoomSize     int `env:"DUNGEON_MAX_ROOM_SIZE" envDefault:"15"`
	FirstLevelRooms int `env:"DUNGEON_FIRST_LEVEL_ROOMS" envDefault:"50"`
	LaterLevelRooms int `env:"DUNGEON_LATER_LEVEL_ROOMS" envDefault:"20"`
	GenAttempts     int `env:"DUNGEON_GEN_ATTEMPTS" envDefault:"10"`
	RevealRadius    int `env:"DUNGEON_REVEAL_RADIUS" envDefault:"5"`

	// Spawning.
	BaseEnemies          int `env:"DUNGEON_BASE_ENEMIES" envDefault:"5"`
	FirstLevelTreasures  int `env:"DUNGEON_FIRST_LEVEL_TREASURES" envDefault:"3"`
	LaterLevelTreasures  int `env:"DUNGEON_LATER_LEVEL_TREASURES" envDefault:"5"`
	BossDepth            int `env:"DUNGEON_BOSS_DEPTH" envDefault:"3"`
	EnemyHealthScale     int `env:"DUNGEON_ENEMY_HEALTH_SCALE" envDefault:"1"`
	EnemyDamageIncrement int `env:"DUNGEON_ENEMY_DAMAGE_INCREMENT" envDefault:"1"`
	MinEnemyDamage       int `env:"DUNGEON_MIN_ENEMY_DAMAGE" envDefault:"1"`

	// Player.
	StartHealth    int `env:"DUNGEON_START_HEALTH" envDefault:"50"`
	StartNextLevel int `env:"DUNGEON_START_NEXT_LEVEL_XP" envDefault:"10"`
	StartStrength  int `env:"DUNGEON_START_STRENGTH" envDefault:"1"`
	StartVitality  int `env:"DUNGEON_START_VITALITY" envDefault:"1"`
	BaseAttack     int `env:"DUNGEON_BASE_ATTACK" envDefault:"5"`
	TreasureXP     int `env:"DUNGEON_TREASURE_XP" envDefault:"5"`
	LevelUpHealth  int `env:"DUNGEON_LEVEL_UP_HEALTH" envDefault:"5"`
	VitalityHealth int `env:"DUNGEON_VITALITY_HEALTH" envDefault:"5"`

	// Runtime.
	TickRate int    `env:"DUNGEON_TICK_RATE" envDefault:"15"`
	LogLines int    `env:"DUNGEON_LOG_LINES" envDefault:"3"`
	Seed     int64  `env:"DUNGEON_SEED" envDefault:"0"` // 0 seeds from the clock
	LogFile  string `env:"DUNGEON_LOG_FILE"`
}

// Load reads the process environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the stock configuration without consulting the process
// environment.
func Default() Config {
	var cfg Config
	opts := env.Options{Environment: map[string]string{}}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// TickInterval is the wall-clock length of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// MaxRooms returns the room placement attempts for a dungeon depth.
func (c Config) MaxRooms(depth int) int {
	if depth <= 1 {
		return c.FirstLevelRooms
	}
	return c.LaterLevelRooms
}

// Treasures returns the chest count for a dungeon depth.
func (c Config) Treasures(depth int) int {
	if depth <= 1 {
		return c.FirstLevelTreasures
	}
	return c.LaterLevelTreasures
}

// Enemies returns the enemy count for a dungeon depth.
func (c Config) Enemies(depth int) int {
	return c.BaseEnemies + depth
}

// Validate rejects configurations the generator or loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MinRoomSize < 1 {
		errs = append(errs, fmt.Errorf("min room size %d must be positive", c.MinRoomSize))
	}
	if c.MinRoomSize > c.MaxRoomSize {
		errs = append(errs, fmt.Errorf("min room size %d exceeds max room size %d", c.MinRoomSize, c.MaxRoomSize))
	}
	if c.MapWidth < c.MinRoomSize+2 || c.MapHeight < c.MinRoomSize+2 {
		errs = append(errs, fmt.Errorf("map %dx%d cannot hold a %d-cell room with a wall border", c.MapWidth, c.MapHeight, c.MinRoomSize))
	}
	if c.FirstLevelRooms < 1 || c.LaterLevelRooms < 1 {
		errs = append(errs, errors.New("room attempts must be positive"))
	}
	if c.GenAttempts < 1 {
		errs = append(errs, fmt.Errorf("generation attempts %d must be positive", c.GenAttempts))
	}
	if c.RevealRadius < 0 {
		errs = append(errs, fmt.Errorf("reveal radius %d must not be negative", c.RevealRadius))
	}
	if c.TickRate < 1 {
		errs = append(errs, fmt.Errorf("tick rate %d must be positive", c.TickRate))
	}
	if c.StartHealth < 1 || c.StartNextLevel < 1 {
		errs = append(errs, errors.New("start health and next level XP must be positive"))
	}
	if c.LogLines < 0 {
		errs = append(errs, fmt.Errorf("log lines %d must not be negative", c.LogLines))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
