package render

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// bossBarRows is the space kept above the map for the boss health bar.
const bossBarRows = 2

// Renderer draws a Scene onto a tcell screen.
type Renderer struct {
	screen   tcell.Screen
	camera   *Camera
	logLines int
}

// NewRenderer creates a Renderer for the given screen that shows logLines
// lines of the message log.
func NewRenderer(screen tcell.Screen, logLines int) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{}, logLines: logLines}
	r.resize()
	return r
}

// hudRows is the separator, the status line, the XP line and the log.
func (r *Renderer) hudRows() int { return 3 + r.logLines }

func (r *Renderer) resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-r.hudRows()-bossBarRows))
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx, sy, visible = r.camera.Project(gamemap.Point{X: wx, Y: wy})
	return sx, sy + bossBarRows, visible
}

// Draw renders one full frame and shows it.
func (r *Renderer) Draw(s Scene) {
	r.resize()
	r.screen.Clear()
	if s.Map != nil {
		r.camera.Follow(s.Map.Width, s.Map.Height, s.Player.Pos)
		r.drawMap(s)
		r.drawTreasures(s)
		r.drawEnemies(s)
		r.drawPlayer(s)
	}
	if s.BossAlive {
		r.drawBossBar(s.BossHealth)
	}
	r.drawHUD(s)
	if s.InventoryOpen {
		r.drawInventory(s)
	}
	if s.PotionMenuOpen {
		r.drawPotionMenu(s)
	}
	r.screen.Show()
}

// drawMap renders revealed tiles; everything else stays blank.
func (r *Renderer) drawMap(s Scene) {
	theme := assets.TileSetFor(s.Depth)
	for y := 0; y < s.Map.Height; y++ {
		for x := 0; x < s.Map.Width; x++ {
			if !s.Visible.Visible(x, y) {
				continue
			}
			sx, sy, onScreen := r.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph := theme.Floor
			switch s.Map.At(x, y) {
			case gamemap.TileWall:
				glyph = theme.Wall
			case gamemap.TileStair:
				glyph = theme.Stair
			}
			r.putGlyph(sx, sy, glyph, styleBase)
		}
	}
}

func (r *Renderer) drawTreasures(s Scene) {
	for _, t := range s.Treasures {
		glyph := assets.GlyphChestClosed
		if t.Open {
			glyph = assets.GlyphChestOpen
		}
		r.putWorld(s, t.Pos, glyph, styleBase)
	}
}

func (r *Renderer) drawEnemies(s Scene) {
	for _, e := range s.Enemies {
		glyph := EnemyGlyph(e)
		style := styleBase
		if e.State == component.AnimDamaged || e.State == component.AnimAttacking {
			style = styleHurt
		}
		if e.Speed > 1 {
			style = style.Bold(true)
		}
		r.putWorld(s, e.Pos, glyph, style)
	}
}

func (r *Renderer) drawPlayer(s Scene) {
	p := s.Player
	glyph := assets.GlyphPlayer
	style := styleBase
	if p.State == component.AnimDamaged {
		glyph = assets.GlyphPlayerHurt
		style = styleHurt
	}
	r.putWorld(s, p.Pos, glyph, style)

	// The swing is drawn on the cell being struck.
	if p.State == component.AnimAttacking {
		swing := assets.GlyphSwordRight
		if p.Frame%2 == 1 {
			swing = assets.GlyphImpact
		}
		r.putWorld(s, p.Pos.Add(facingStep(p.Facing)), swing, styleBase)
	}
}

// EnemyGlyph picks the glyph for an enemy's current animation frame.
func EnemyGlyph(e EnemyView) string {
	if e.State == component.AnimDying {
		if e.Frame < e.Kind.Stats().DeathFrames/2 {
			return assets.GlyphDeathFlash
		}
		return assets.GlyphDeathRemains
	}
	return assets.EnemyGlyphs[e.Kind]
}

func facingStep(f component.Facing) (int, int) {
	switch f {
	case component.FacingLeft:
		return -1, 0
	case component.FacingUp:
		return 0, -1
	case component.FacingDown:
		return 0, 1
	}
	return 1, 0
}

// putWorld draws glyph at a world position when it is revealed and on screen.
func (r *Renderer) putWorld(s Scene, p gamemap.Point, glyph string, style tcell.Style) {
	if !s.Visible.Visible(p.X, p.Y) {
		return
	}
	sx, sy, onScreen := r.WorldToScreen(p.X, p.Y)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
