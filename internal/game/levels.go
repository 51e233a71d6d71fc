package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"errors"
	"fmt"
	"log"
	"math/rand"
)

// level is everything that is replaced wholesale on a transition.
type level struct {
	gmap      *gamemap.GameMap
	visible   *gamemap.Visibility
	enemies   *ecs.World[component.Enemy]
	treasures *ecs.World[component.Treasure]
}

// levelConfig builds a generate.Config for the given depth.
func levelConfig(cfg config.Config, depth int, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Width:       cfg.MapWidth,
		Height:      cfg.MapHeight,
		MaxRooms:    cfg.MaxRooms(depth),
		MinRoomSize: cfg.MinRoomSize,
		MaxRoomSize: cfg.MaxRoomSize,
		Rand:        rng,
	}
}

func scalingFor(cfg config.Config) factory.Scaling {
	return factory.Scaling{
		HealthMultiplier: cfg.EnemyHealthScale,
		DamageIncrement:  cfg.EnemyDamageIncrement,
		MinDamage:        cfg.MinEnemyDamage,
	}
}

// buildLevel generates and populates one depth. Nothing outside the
// returned value is touched, so a failure leaves the caller's state intact.
func buildLevel(cfg config.Config, depth int, rng *rand.Rand) (*level, error) {
	gmap, err := generate.GenerateWithRetry(levelConfig(cfg, depth, rng), cfg.GenAttempts)
	if err != nil {
		return nil, fmt.Errorf("generate level %d: %w", depth, err)
	}

	pop, err := generate.Populate(gmap, &generate.PopulateConfig{
		Treasures: cfg.Treasures(depth),
		Enemies:   cfg.Enemies(depth),
		Depth:     depth,
		BossDepth: cfg.BossDepth,
		Rand:      rng,
	})
	var space *generate.InsufficientSpaceError
	if errors.As(err, &space) {
		log.Printf("level %d: %v", depth, err)
	} else if err != nil {
		return nil, fmt.Errorf("populate level %d: %w", depth, err)
	}

	lv := &level{
		gmap:      gmap,
		visible:   gamemap.NewVisibility(gmap.Width, gmap.Height),
		enemies:   ecs.NewWorld[component.Enemy](),
		treasures: ecs.NewWorld[component.Treasure](),
	}
	sc := scalingFor(cfg)
	for _, es := range pop.Enemies {
		factory.NewEnemy(lv.enemies, es, depth, sc)
	}
	for _, ts := range pop.Treasures {
		factory.NewTreasure(lv.treasures, ts)
	}
	lv.visible.Reveal(gmap.Spawn, cfg.RevealRadius)
	return lv, nil
}
