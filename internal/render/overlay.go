package render

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"fmt"
)

// PotionName is the display name of a potion tier, e.g. "Small Potion".
func PotionName(t component.PotionTier) string {
	return titleCase(t.String()) + " Potion"
}

// drawInventory shows character stats, potion counts and armor slots.
func (r *Renderer) drawInventory(s Scene) {
	sw, sh := r.screen.Size()
	w, h := 56, 13
	x0, y0 := r.drawBox(max(0, (sw-w)/2), max(0, (sh-h)/2), w, h, "Character Stats & Inventory")
	p := s.Player

	stats := []string{
		fmt.Sprintf("Health: %d/%d", p.Health.Current, p.Health.Max),
		fmt.Sprintf("Level: %d", p.Level),
		fmt.Sprintf("XP: %d/%d", p.XP, p.NextLevelXP),
		fmt.Sprintf("Strength: %d", p.Attributes.Strength),
		fmt.Sprintf("Vitality: %d", p.Attributes.Vitality),
		fmt.Sprintf("Stat Points: %d", p.StatPoints),
	}
	y := y0
	for _, line := range stats {
		r.drawText(x0, y, line, styleText)
		y++
	}
	y++
	r.drawText(x0, y, "Inventory:", styleTitle)
	y++
	for tier := range component.NumPotionTiers {
		col := r.drawText(x0, y, assets.PotionGlyphs[tier], styleText)
		r.drawText(col+1, y, fmt.Sprintf("%s: %d", PotionName(tier), p.Potions[tier]), styleText)
		y++
	}

	ax := x0 + 28
	r.drawText(ax, y0, "Armor:", styleTitle)
	for slot := range component.NumArmorSlots {
		row := y0 + 1 + int(slot)
		col := r.drawText(ax, row, assets.ArmorGlyphs[slot], styleText)
		col = r.drawText(col+1, row, titleCase(slot.String()), styleText)
		name, style := p.Armor[slot], styleText
		if name == "" {
			name, style = assets.GlyphEmptyArmorSlot, styleDim
		}
		r.drawText(max(col+1, ax+15), row, name, style)
	}
}

// drawPotionMenu lists the three potion tiers with their hotkeys.
func (r *Renderer) drawPotionMenu(s Scene) {
	sw, sh := r.screen.Size()
	w, h := 32, 6
	x0, y0 := r.drawBox(max(0, (sw-w)/2), max(0, (sh-h)/2), w, h, "Select Potion")
	for tier := range component.NumPotionTiers {
		style := styleText
		if s.Player.Potions[tier] == 0 {
			style = styleDim
		}
		col := r.drawText(x0, y0+int(tier), fmt.Sprintf("%d. ", tier+1), style)
		col = r.drawText(col, y0+int(tier), assets.PotionGlyphs[tier], style)
		r.drawText(col+1, y0+int(tier), fmt.Sprintf("%s (%d)", PotionName(tier), s.Player.Potions[tier]), style)
	}
}
