package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleCase capitalises each word of s for display.
func titleCase(s string) string { return titleCaser.String(s) }

// Menu is a full-screen list of choices with one highlighted entry.
type Menu struct {
	Title    string
	Subtitle string
	Items    []string
	Selected int
	Footer   []string
}

// Move shifts the highlight by delta, wrapping around.
func (m *Menu) Move(delta int) {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%len(m.Items) + len(m.Items)) % len(m.Items)
}

// Current returns the highlighted item.
func (m *Menu) Current() string {
	if len(m.Items) == 0 {
		return ""
	}
	return m.Items[m.Selected]
}

// DrawMenu clears the screen and renders m centered.
func (r *Renderer) DrawMenu(m Menu) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	y := max(0, sh/2-len(m.Items)-2)

	r.drawCentered(sw, y, m.Title, styleTitle)
	y += 2
	if m.Subtitle != "" {
		r.drawCentered(sw, y, m.Subtitle, styleText)
		y += 2
	}
	for i, item := range m.Items {
		label := "  " + item + "  "
		style := styleText
		if i == m.Selected {
			label = "> " + item + " <"
			style = styleSelected
		}
		r.drawCentered(sw, y, label, style)
		y++
	}
	y++
	for _, line := range m.Footer {
		r.drawCentered(sw, y, line, styleDim)
		y++
	}
	r.screen.Show()
}

func (r *Renderer) drawCentered(sw, y int, text string, style tcell.Style) {
	r.drawText(max(0, (sw-runewidth.StringWidth(text))/2), y, text, style)
}
