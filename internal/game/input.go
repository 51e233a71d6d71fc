package game

import "github.com/gdamore/tcell/v2"

// Intent is a player request decoded from one key press.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentInteract
	IntentInventory
	IntentPotionMenu
	IntentPotionSmall
	IntentPotionMedium
	IntentPotionLarge
	IntentStrength
	IntentVitality
	IntentRestart
	IntentMenu
	IntentQuit
)

// keyToIntent maps a tcell key event to a game intent.
func keyToIntent(ev *tcell.EventKey) Intent {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyRight:
		return IntentMoveRight
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyEscape:
		return IntentMenu
	case tcell.KeyRune:
	default:
		return IntentNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return IntentMoveUp
	case 'j', 'J':
		return IntentMoveDown
	case 'l', 'L':
		return IntentMoveRight
	case 'h', 'H':
		return IntentMoveLeft
	case 'e', 'E':
		return IntentInteract
	case 'i', 'I':
		return IntentInventory
	case 'u', 'U':
		return IntentPotionMenu
	case '1':
		return IntentPotionSmall
	case '2':
		return IntentPotionMedium
	case '3':
		return IntentPotionLarge
	case 's', 'S':
		return IntentStrength
	case 'v', 'V':
		return IntentVitality
	case 'r', 'R':
		return IntentRestart
	case 'q', 'Q':
		return IntentQuit
	}
	return IntentNone
}

// intentToDelta converts a movement intent to (dx, dy).
func intentToDelta(in Intent) (int, int) {
	switch in {
	case IntentMoveUp:
		return 0, -1
	case IntentMoveDown:
		return 0, 1
	case IntentMoveRight:
		return 1, 0
	case IntentMoveLeft:
		return -1, 0
	}
	return 0, 0
}
