package system

import "dungeon-crawler/internal/component"

// LevelUp records one level gained.
type LevelUp struct {
	Level      int
	StatPoints int
}

// AwardXP adds xp and applies every level-up it pays for. Each level spends
// the current threshold, doubles it, grants a stat point and raises maximum
// and current health.
func AwardXP(r Rules, p *component.Player, xp int) []LevelUp {
	p.XP += xp
	var ups []LevelUp
	for p.NextLevelXP > 0 && p.XP >= p.NextLevelXP {
		p.XP -= p.NextLevelXP
		p.Level++
		p.NextLevelXP *= 2
		p.StatPoints++
		p.Health.Grow(r.LevelUpHealth)
		ups = append(ups, LevelUp{Level: p.Level, StatPoints: p.StatPoints})
	}
	return ups
}

// Stat names an allocatable attribute.
type Stat uint8

const (
	StatStrength Stat = iota
	StatVitality
)

func (s Stat) String() string {
	if s == StatVitality {
		return "vitality"
	}
	return "strength"
}

// AllocateStat spends one stat point on s and returns the new value. It is
// a no-op returning false when no points are available.
func AllocateStat(r Rules, p *component.Player, s Stat) (int, bool) {
	if p.StatPoints <= 0 {
		return 0, false
	}
	p.StatPoints--
	if s == StatVitality {
		p.Vitality++
		p.Health.Grow(r.VitalityHealth)
		return p.Vitality, true
	}
	p.Strength++
	return p.Strength, true
}

// UsePotion drinks one potion of tier and returns the tier's heal amount.
// Health never exceeds its maximum. With none of that tier in the pack it
// does nothing and returns false.
func UsePotion(p *component.Player, tier component.PotionTier) (int, bool) {
	if tier >= component.NumPotionTiers || p.Potions[tier] <= 0 {
		return 0, false
	}
	p.Potions[tier]--
	p.Health.Heal(tier.Heal())
	return tier.Heal(), true
}

// Equip wears a in its slot and returns whatever was there before.
func Equip(p *component.Player, a component.Armor) *component.Armor {
	prev := p.Armor[a.Slot]
	p.Armor[a.Slot] = &a
	return prev
}
