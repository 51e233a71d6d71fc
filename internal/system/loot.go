package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"math/rand"
)

// ChooseLoot performs a weighted pick from table.
func ChooseLoot(table []component.LootEntry, rng *rand.Rand) component.PotionTier {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	if total <= 0 {
		return component.PotionSmall
	}
	r := rng.Intn(total)
	upto := 0
	for _, e := range table {
		if upto+e.Weight > r {
			return e.Tier
		}
		upto += e.Weight
	}
	return table[len(table)-1].Tier
}

// TreasureResult describes one chest opened by the player.
type TreasureResult struct {
	ID       ecs.EntityID
	Tier     component.PotionTier
	XP       int
	LevelUps []LevelUp
}

// interactOffsets are checked in order: west, east, north, south, underfoot.
var interactOffsets = [5]gamemap.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {}}

// OpenTreasures opens every closed chest next to or under the player,
// adding one weighted potion and treasure XP per chest.
func OpenTreasures(r Rules, treasures *ecs.World[component.Treasure], p *component.Player, rng *rand.Rand) []TreasureResult {
	var results []TreasureResult
	for _, off := range interactOffsets {
		spot := p.Pos.Add(off.X, off.Y)
		treasures.Each(func(id ecs.EntityID, t *component.Treasure) {
			if t.Pos != spot || t.Open {
				return
			}
			t.Open = true
			tier := ChooseLoot(component.TreasureLoot, rng)
			p.Potions[tier]++
			results = append(results, TreasureResult{
				ID:       id,
				Tier:     tier,
				XP:       r.TreasureXP,
				LevelUps: AwardXP(r, p, r.TreasureXP),
			})
		})
	}
	return results
}
