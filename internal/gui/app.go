package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"memmatch/internal/config"
	"memmatch/internal/game"
	"memmatch/internal/layout"
	"memmatch/internal/logger"
)

type screen int

const (
	screenMenu screen = iota
	screenGridSelect
	screenPlaying
	screenGameOver
)

// App drives the windowed frontend: one Update/Draw pass per frame,
// no state shared outside the loop.
type App struct {
	cfg    *config.Config
	colors themeColors
	log    *logger.Logger
	seed   int64

	screen screen
	board  *game.Board
	lay    layout.Layout
	font   rl.Font
	faces  *faceCache

	quit bool

	startBtn  *Button
	grid4Btn  *Button
	grid6Btn  *Button
	backBtn   *Button
	resetBtn  *Button
	replayBtn *Button
}

// Run opens the window and blocks until the player quits.
func Run(cfg *config.Config, seed int64, log *logger.Logger) error {
	colors, err := cfg.Theme.Colors()
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Memory Match - Playing Cards")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	app := newApp(cfg, colors, seed, log)
	defer app.unload()

	if cfg.Window.Fullscreen {
		app.toggleFullscreen()
	}

	app.RunLoop()
	return nil
}

func newApp(cfg *config.Config, colors config.ThemeColors, seed int64, log *logger.Logger) *App {
	a := &App{
		cfg:    cfg,
		colors: newThemeColors(colors),
		log:    log,
		seed:   seed,
		screen: screenMenu,
		font:   loadFont(cfg.FontPath, log),
	}
	a.faces = newFaceCache(a.font, a.colors)

	a.startBtn = NewButton("Start Game", AnchorCenter, 0)
	a.grid4Btn = NewButton("4x4 Grid (8 Pairs)", AnchorCenter, -30)
	a.grid6Btn = NewButton("6x6 Grid (18 Pairs)", AnchorCenter, 30)
	a.backBtn = NewButton("Back to Menu", AnchorCenter, 90)
	a.resetBtn = NewButton("Reset Game", AnchorTopCenter, 0)
	a.replayBtn = NewButton("Play Again", AnchorCenter, 60)

	a.relayout()
	return a
}

// loadFont tries the configured font path and falls back to raylib's
// built-in font if it cannot be used.
func loadFont(path string, log *logger.Logger) rl.Font {
	if path == "" {
		return rl.GetFontDefault()
	}
	if _, err := os.Stat(path); err != nil {
		log.WithFields(map[string]any{"path": path}).Debug("font not found, using default")
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 96, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func (a *App) unload() {
	a.faces.unload()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) relayout() {
	gridSize := a.cfg.GridSize
	if a.board != nil {
		gridSize = a.board.GridSize
	}
	a.lay = layout.Compute(rl.GetScreenWidth(), rl.GetScreenHeight(), gridSize)

	for _, b := range a.buttons() {
		b.Layout(a.lay)
	}
	if a.board != nil {
		a.faces.rebuild(a.board.TotalPairs(), a.lay.CardSize)
	}
}

func (a *App) buttons() []*Button {
	return []*Button{a.startBtn, a.grid4Btn, a.grid6Btn, a.backBtn, a.resetBtn, a.replayBtn}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.relayout()
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		a.toggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if rl.IsWindowFullscreen() {
			a.toggleFullscreen()
		} else {
			a.quit = true
			return
		}
	}

	switch a.screen {
	case screenMenu:
		a.updateMenu()
	case screenGridSelect:
		a.updateGridSelect()
	case screenPlaying:
		a.updatePlaying()
	case screenGameOver:
		a.updateGameOver()
	}
}

func (a *App) updateMenu() {
	if a.startBtn.Update() {
		a.screen = screenGridSelect
	}
}

func (a *App) updateGridSelect() {
	switch {
	case a.grid4Btn.Update():
		a.startGame(4)
	case a.grid6Btn.Update():
		a.startGame(6)
	case a.backBtn.Update():
		a.screen = screenMenu
	}
}

func (a *App) startGame(gridSize int) {
	board, err := game.NewBoard(gridSize, a.seed, a.cfg.Rules())
	if err != nil {
		// Grid size comes from our own buttons, so this cannot happen
		// outside a programming error.
		a.log.WithFields(map[string]any{"error": err.Error()}).Error("board setup failed")
		return
	}
	a.board = board
	a.screen = screenPlaying
	a.relayout()
	a.log.WithFields(map[string]any{"grid": gridSize}).Debug("game started")
}

func (a *App) updatePlaying() {
	a.board.Tick(float64(rl.GetFrameTime()))

	if a.board.Won() {
		a.screen = screenGameOver
		a.log.Debug("all pairs matched")
		return
	}

	if a.resetBtn.Update() {
		a.board.Reset()
		a.log.Debug("board reset")
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if row, col, ok := a.lay.CellAt(int(pos.X), int(pos.Y)); ok {
			res := a.board.Click(row, col)
			if res != game.ClickIgnored {
				a.log.WithFields(map[string]any{
					"cell":   fmt.Sprintf("%d,%d", row, col),
					"result": res,
					"score":  a.board.MatchedPairs,
				}).Debug("card clicked")
			}
		}
	}
}

func (a *App) updateGameOver() {
	// The board keeps animating under the overlay.
	a.board.Tick(float64(rl.GetFrameTime()))

	if a.replayBtn.Update() || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		a.board.Reset()
		a.screen = screenPlaying
		a.log.Debug("replay")
	}
}

func (a *App) toggleFullscreen() {
	if rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
		rl.SetWindowSize(int(a.cfg.Window.Width), int(a.cfg.Window.Height))
	} else {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		rl.ToggleFullscreen()
	}
	a.relayout()
}

func rlColor(c config.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
