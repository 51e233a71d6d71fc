package render

import (
	"dungeon-crawler/internal/component"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// barWidth is the width in columns of the HP and XP bars.
const barWidth = 20

// drawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) drawHUD(s Scene) {
	_, screenH := r.screen.Size()
	hudY := screenH - r.hudRows()
	if hudY < 0 {
		return
	}
	p := s.Player

	r.drawHLine(hudY, tcell.ColorGray)

	col := r.drawText(0, hudY+1, "HP ", styleText)
	col = r.drawBar(col, hudY+1, p.Health.Current, p.Health.Max, styleBarFull)
	r.drawText(col+1, hudY+1, fmt.Sprintf("%d/%d  Player: %d | Dungeon: %d", p.Health.Current, p.Health.Max, p.Level, s.Depth), styleText)

	col = r.drawText(0, hudY+2, "XP ", styleText)
	col = r.drawBar(col, hudY+2, p.XP, p.NextLevelXP, tcell.StyleDefault.Background(tcell.ColorGreen))
	status := fmt.Sprintf("%d/%d  STR %d  VIT %d", p.XP, p.NextLevelXP, p.Attributes.Strength, p.Attributes.Vitality)
	if p.StatPoints > 0 {
		status += fmt.Sprintf("  +%d points (s/v)", p.StatPoints)
	}
	r.drawText(col+1, hudY+2, status, styleText)

	for i, msg := range s.Log {
		r.drawText(0, hudY+3+i, msg, styleLog)
	}
}

// drawBar draws a filled/empty bar of barWidth columns and returns the
// column after it.
func (r *Renderer) drawBar(x, y, cur, maxVal int, fill tcell.Style) int {
	filled := 0
	if maxVal > 0 {
		filled = min(barWidth, max(0, cur*barWidth/maxVal))
	}
	for i := range barWidth {
		style := styleBarEmpty
		if i < filled {
			style = fill
		}
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	return x + barWidth
}

// drawBossBar draws the boss health bar centered above the map.
func (r *Renderer) drawBossBar(ratio float64) {
	w, _ := r.screen.Size()
	width := min(40, w-4)
	if width <= 0 {
		return
	}
	x := (w - width) / 2
	label := strings.ToUpper(component.BossKind.String())
	r.drawText((w-len(label))/2, 0, label, styleBad)
	filled := int(ratio * float64(width))
	for i := range width {
		style := styleBarEmpty
		if i < filled {
			style = styleBarFull
		}
		r.screen.SetContent(x+i, 1, ' ', nil, style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawBox clears a bordered rectangle and returns its inner origin.
func (r *Renderer) drawBox(x, y, w, h int, title string) (int, int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			ch := ' '
			switch {
			case (row == y || row == y+h-1) && (col == x || col == x+w-1):
				ch = '+'
			case row == y || row == y+h-1:
				ch = '-'
			case col == x || col == x+w-1:
				ch = '|'
			}
			r.screen.SetContent(col, row, ch, nil, styleText)
		}
	}
	if title != "" {
		r.drawText(x+2, y, " "+strings.TrimSpace(title)+" ", styleTitle)
	}
	return x + 2, y + 1
}
