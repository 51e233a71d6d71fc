package component

// Inventory holds potion counts by tier and one armor item per slot.
type Inventory struct {
	Potions [NumPotionTiers]int
	Armor   [NumArmorSlots]*Armor
}

// TotalPotions sums every tier.
func (inv Inventory) TotalPotions() int {
	n := 0
	for _, c := range inv.Potions {
		n += c
	}
	return n
}
