package assets

// Title is shown on the main menu.
const Title = "DUNGEON CRAWLER"

// MainMenuItems are the entries of the start screen.
var MainMenuItems = []string{"Play", "Quit"}

// OptionsMenuItems are the entries of the in-game options screen.
var OptionsMenuItems = []string{"Main Menu", "Restart", "Back"}

// GameOverItems are the entries of the game-over screen.
var GameOverItems = []string{"Restart", "Quit"}

// ControlsHelp is printed beneath the main menu.
var ControlsHelp = []string{
	"Arrows/hjkl move and attack   e open chest",
	"i inventory   u potions (1-3 to drink)",
	"s/v spend a point on strength/vitality",
	"r restart   Esc options   q quit",
}
