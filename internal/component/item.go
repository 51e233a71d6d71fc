package component

// PotionTier is the size of a healing potion.
type PotionTier uint8

const (
	PotionSmall PotionTier = iota
	PotionMedium
	PotionLarge
	NumPotionTiers
)

var potionHeal = [NumPotionTiers]int{10, 20, 30}

// Heal returns the hit points restored by one potion of tier t.
func (t PotionTier) Heal() int { return potionHeal[t] }

func (t PotionTier) String() string {
	switch t {
	case PotionMedium:
		return "medium"
	case PotionLarge:
		return "large"
	default:
		return "small"
	}
}

// ArmorSlot categorises where a piece of armor is worn.
type ArmorSlot uint8

const (
	SlotHelmet ArmorSlot = iota
	SlotChestplate
	SlotLeggings
	SlotBoots
	NumArmorSlots
)

func (s ArmorSlot) String() string {
	switch s {
	case SlotChestplate:
		return "chestplate"
	case SlotLeggings:
		return "leggings"
	case SlotBoots:
		return "boots"
	default:
		return "helmet"
	}
}

// Armor is one wearable item.
type Armor struct {
	Name string
	Slot ArmorSlot
}
