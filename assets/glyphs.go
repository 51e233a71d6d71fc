package assets

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer         = "🧙"
	GlyphPlayerHurt     = "🤕"
	GlyphGoblin         = "👺"
	GlyphSlime          = "🟢"
	GlyphWarg           = "🐺"
	GlyphDeathFlash     = "💥"
	GlyphDeathRemains   = "💀"
	GlyphChestClosed    = "🎁"
	GlyphChestOpen      = "📭"
	GlyphStairsDown     = "🔽"
	GlyphSwordRight     = "🗡️"
	GlyphImpact         = "💢"
	GlyphPotionSmall    = "🧪"
	GlyphPotionMedium   = "🍶"
	GlyphPotionLarge    = "🏺"
	GlyphEmptyArmorSlot = "▫️"
)

// EnemyGlyphs maps an enemy kind index to its glyph. The order matches
// component.EnemyKind.
var EnemyGlyphs = [...]string{GlyphGoblin, GlyphSlime, GlyphWarg}

// PotionGlyphs maps a potion tier index to its glyph.
var PotionGlyphs = [...]string{GlyphPotionSmall, GlyphPotionMedium, GlyphPotionLarge}

// ArmorGlyphs maps an armor slot index to its glyph.
var ArmorGlyphs = [...]string{"⛑️", "🦺", "👖", "🥾"}

// TileSet holds the emoji glyphs used to draw one depth's terrain.
// Emoji carry their own colors, so fogged cells use distinct glyphs instead
// of a tinted foreground.
type TileSet struct {
	Wall  string
	Floor string
	Stair string
}

// TileSets cycle with dungeon depth.
var TileSets = []TileSet{
	{Wall: "🧱", Floor: "🟫", Stair: GlyphStairsDown},
	{Wall: "🪨", Floor: "⬛", Stair: GlyphStairsDown},
	{Wall: "🌋", Floor: "🟥", Stair: GlyphStairsDown},
	{Wall: "🧊", Floor: "🟦", Stair: GlyphStairsDown},
}

// TileSetFor returns the tile set for a 1-indexed depth.
func TileSetFor(depth int) TileSet {
	if depth < 1 {
		depth = 1
	}
	return TileSets[(depth-1)%len(TileSets)]
}
