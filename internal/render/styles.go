package render

import "github.com/gdamore/tcell/v2"

var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLog      = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHurt     = tcell.StyleDefault.Background(tcell.ColorDarkRed)
	styleBarFull  = tcell.StyleDefault.Background(tcell.ColorRed)
	styleBarEmpty = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleBad      = tcell.StyleDefault.Foreground(tcell.ColorRed)
)
