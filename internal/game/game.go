package game

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/render"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Mode is the screen the front end is showing.
type Mode uint8

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModeOptions
	ModeGameOver
)

// Game is the top-level orchestrator: it owns the terminal, routes key
// events to menus or the session, and ticks the simulation at a fixed rate.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	cfg      config.Config
	mode     Mode
	menu     render.Menu
	started  bool // a run is in progress; Play resumes it
	done     bool
}

// New creates and returns a Game on the real terminal.
func New(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an already initialised screen. A zero
// Seed seeds the generator from the clock.
func NewWithScreen(cfg config.Config, screen tcell.Screen) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess, err := NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.LogLines),
		session:  sess,
		cfg:      cfg,
	}
	g.showMainMenu()
	return g, nil
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Mode returns the current screen.
func (g *Game) Mode() Mode { return g.mode }

// Done reports whether the player asked to quit.
func (g *Game) Done() bool { return g.done }

// Run drives the event loop until the player quits or a level fails to
// build. The screen is finalised on return.
func (g *Game) Run() error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.pollEvents(events, quit)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	g.draw()
	for !g.done {
		select {
		case ev := <-events:
			if err := g.handleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			if err := g.step(); err != nil {
				return err
			}
		}
		g.draw()
	}
	return nil
}

// pollEvents forwards terminal events until the screen is finalised.
func (g *Game) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (g *Game) showMainMenu() {
	g.mode = ModeMainMenu
	g.menu = render.Menu{Title: assets.Title, Items: assets.MainMenuItems, Footer: assets.ControlsHelp}
}

func (g *Game) showOptions() {
	g.mode = ModeOptions
	g.menu = render.Menu{Title: "OPTIONS", Items: assets.OptionsMenuItems}
}

func (g *Game) showGameOver() {
	g.mode = ModeGameOver
	g.menu = render.Menu{
		Title:    "GAME OVER",
		Subtitle: fmt.Sprintf("You died on dungeon level %d at player level %d.", g.session.Depth(), g.session.Player().Level),
		Items:    assets.GameOverItems,
	}
}

// handleEvent routes one terminal event according to the current mode.
func (g *Game) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch g.mode {
		case ModeMainMenu:
			return g.mainMenuKey(ev)
		case ModeOptions:
			return g.optionsKey(ev)
		case ModeGameOver:
			return g.gameOverKey(ev)
		default:
			return g.playingKey(ev)
		}
	}
	return nil
}

func (g *Game) playingKey(ev *tcell.EventKey) error {
	switch in := keyToIntent(ev); in {
	case IntentQuit:
		g.done = true
	case IntentMenu:
		g.showOptions()
	case IntentNone:
	default:
		return g.session.Apply(in)
	}
	return nil
}

func (g *Game) mainMenuKey(ev *tcell.EventKey) error {
	choice, ok := g.navigate(ev)
	if !ok {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			g.done = true
		}
		return nil
	}
	switch choice {
	case "Play":
		if !g.started || g.session.State() == StateGameOver {
			if err := g.session.Restart(); err != nil {
				return err
			}
			g.started = true
		}
		g.mode = ModePlaying
	case "Quit":
		g.done = true
	}
	return nil
}

func (g *Game) optionsKey(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyEscape {
		g.mode = ModePlaying
		return nil
	}
	choice, ok := g.navigate(ev)
	if !ok {
		return nil
	}
	switch choice {
	case "Main Menu":
		g.showMainMenu()
	case "Restart":
		if err := g.session.Restart(); err != nil {
			return err
		}
		g.mode = ModePlaying
	case "Back":
		g.mode = ModePlaying
	}
	return nil
}

func (g *Game) gameOverKey(ev *tcell.EventKey) error {
	choice, ok := g.navigate(ev)
	if !ok {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q', ev.Rune() == 'Q':
			choice = "Quit"
		case ev.Rune() == 'r', ev.Rune() == 'R':
			choice = "Restart"
		default:
			return nil
		}
	}
	switch choice {
	case "Restart":
		if err := g.session.Restart(); err != nil {
			return err
		}
		g.mode = ModePlaying
	case "Quit":
		g.done = true
	}
	return nil
}

// navigate moves the menu highlight and returns the chosen item on Enter.
func (g *Game) navigate(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		g.menu.Move(-1)
	case tcell.KeyDown:
		g.menu.Move(1)
	case tcell.KeyEnter:
		return g.menu.Current(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			g.menu.Move(-1)
		case 'j':
			g.menu.Move(1)
		}
	}
	return "", false
}

// step advances the simulation by one tick while a run is on screen.
func (g *Game) step() error {
	if g.mode != ModePlaying {
		return nil
	}
	if err := g.session.Tick(); err != nil {
		return err
	}
	if g.session.State() == StateGameOver {
		g.showGameOver()
	}
	return nil
}

func (g *Game) draw() {
	if g.mode == ModePlaying {
		g.renderer.Draw(g.session.Scene(g.cfg.LogLines))
		return
	}
	g.renderer.DrawMenu(g.menu)
}
