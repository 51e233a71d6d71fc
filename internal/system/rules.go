package system

// Rules holds the tunable numbers of combat and progression.
type Rules struct {
	BaseAttack     int // player damage is BaseAttack + strength
	MinDamage      int // floor for any damage dealt to the player
	TreasureXP     int
	LevelUpHealth  int
	VitalityHealth int
}

// DefaultRules returns the stock balance.
func DefaultRules() Rules {
	return Rules{
		BaseAttack:     5,
		MinDamage:      1,
		TreasureXP:     5,
		LevelUpHealth:  5,
		VitalityHealth: 5,
	}
}
