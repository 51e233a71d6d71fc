package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// TreasureSpawn describes one chest to create.
type TreasureSpawn struct {
	Pos    gamemap.Point
	Facing component.Facing
}

// EnemySpawn describes one enemy to create. Stats are scaled by the factory.
type EnemySpawn struct {
	Kind component.EnemyKind
	Pos  gamemap.Point
	Boss bool
}

// PopulateConfig sets the spawn counts for one level.
type PopulateConfig struct {
	Treasures int
	Enemies   int
	Depth     int
	BossDepth int
	Rand      *rand.Rand
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Treasures []TreasureSpawn
	Enemies   []EnemySpawn
}

// Populate places treasures in room corners and then enemies on the
// remaining floor. Space shortfalls are returned as InsufficientSpaceError
// values alongside the capped result.
func Populate(gmap *gamemap.GameMap, cfg *PopulateConfig) (PopulateResult, error) {
	var result PopulateResult
	treasures, tErr := SpawnTreasures(gmap, cfg.Treasures, cfg.Rand)
	result.Treasures = treasures

	occupied := mapset.New[gamemap.Point]()
	occupied.Put(gmap.Spawn)
	for _, t := range treasures {
		occupied.Put(t.Pos)
	}
	enemies, eErr := SpawnEnemies(gmap, cfg.Enemies, cfg.Depth, cfg.BossDepth, occupied, cfg.Rand)
	result.Enemies = enemies
	return result, errors.Join(tErr, eErr)
}

// SpawnTreasures picks up to n distinct room corners that sit on floor.
// Left corners face east and right corners face west.
func SpawnTreasures(gmap *gamemap.GameMap, n int, rng *rand.Rand) ([]TreasureSpawn, error) {
	seen := mapset.New[gamemap.Point]()
	var candidates []TreasureSpawn
	for _, room := range gmap.Rooms {
		for i, c := range room.Corners() {
			if !gmap.IsFloor(c.X, c.Y) || seen.Has(c) {
				continue
			}
			seen.Put(c)
			facing := component.FacingRight
			if i == 1 || i == 3 { // top-right, bottom-right
				facing = component.FacingLeft
			}
			candidates = append(candidates, TreasureSpawn{Pos: c, Facing: facing})
		}
	}

	var err error
	if n > len(candidates) {
		err = &InsufficientSpaceError{What: "treasures", Requested: n, Available: len(candidates)}
		n = len(candidates)
	}
	out := make([]TreasureSpawn, 0, n)
	for _, i := range pickIndices(len(candidates), n, rng) {
		out = append(out, candidates[i])
	}
	return out, err
}

// SpawnEnemies places up to n enemies on distinct floor cells not in
// occupied. On the boss depth the boss is placed first and takes one of the
// n slots.
func SpawnEnemies(gmap *gamemap.GameMap, n, depth, bossDepth int, occupied mapset.Set[gamemap.Point], rng *rand.Rand) ([]EnemySpawn, error) {
	var candidates []gamemap.Point
	for _, p := range gmap.FloorCells() {
		if !occupied.Has(p) {
			candidates = append(candidates, p)
		}
	}

	var err error
	if n > len(candidates) {
		err = &InsufficientSpaceError{What: "enemies", Requested: n, Available: len(candidates)}
		n = len(candidates)
	}

	out := make([]EnemySpawn, 0, n)
	for _, i := range pickIndices(len(candidates), n, rng) {
		if len(out) == 0 && depth == bossDepth {
			out = append(out, EnemySpawn{Kind: component.BossKind, Pos: candidates[i], Boss: true})
			continue
		}
		kind := component.Roster[rng.Intn(len(component.Roster))]
		out = append(out, EnemySpawn{Kind: kind, Pos: candidates[i]})
	}
	return out, err
}

// pickIndices returns n distinct indices in [0, total) using a partial
// Fisher-Yates shuffle.
func pickIndices(total, n int, rng *rand.Rand) []int {
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := range n {
		j := i + rng.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n]
}
