package component

// LootEntry is one weighted potion outcome.
type LootEntry struct {
	Tier   PotionTier
	Weight int
}

// TreasureLoot is the potion table rolled when a chest is opened.
var TreasureLoot = []LootEntry{
	{Tier: PotionSmall, Weight: 60},
	{Tier: PotionMedium, Weight: 30},
	{Tier: PotionLarge, Weight: 10},
}
