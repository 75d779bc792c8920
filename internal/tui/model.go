// Package tui is the terminal frontend: the same board logic as the
// windowed game, rendered with lipgloss and driven by bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memmatch/internal/config"
	"memmatch/internal/game"
	"memmatch/internal/logger"
)

type screen int

const (
	screenMenu screen = iota
	screenGridSelect
	screenPlaying
	screenWon
)

// tickInterval drives board animation. 50ms keeps flips smooth enough
// for a terminal without flooding the renderer.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

var menuItems = []string{"start game", "quit"}

var gridItems = []struct {
	label string
	size  int
}{
	{"4x4 grid   8 pairs", 4},
	{"6x6 grid   18 pairs", 6},
	{"back", 0},
}

type model struct {
	cfg  *config.Config
	log  *logger.Logger
	seed int64

	screen screen
	cursor int

	board  *game.Board
	curRow int
	curCol int

	width  int
	height int
}

func NewModel(cfg *config.Config, seed int64, log *logger.Logger) model {
	return model{
		cfg:    cfg,
		log:    log,
		seed:   seed,
		screen: screenMenu,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenPlaying {
			return m, nil
		}
		m.board.Tick(tickInterval.Seconds())
		if m.board.Won() {
			m.screen = screenWon
			m.log.Debug("all pairs matched")
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenGridSelect:
		return m.gridSelectKey(msg)
	case screenPlaying:
		return m.playingKey(msg)
	case screenWon:
		return m.wonKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		if menuItems[m.cursor] == "quit" {
			return m, tea.Quit
		}
		m.screen = screenGridSelect
		m.cursor = 0
	}
	return m, nil
}

func (m model) gridSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.screen = screenMenu
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(gridItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		item := gridItems[m.cursor]
		if item.size == 0 {
			m.screen = screenMenu
			m.cursor = 0
			return m, nil
		}
		return m.startGame(item.size)
	}
	return m, nil
}

func (m model) startGame(gridSize int) (tea.Model, tea.Cmd) {
	board, err := game.NewBoard(gridSize, m.seed, m.cfg.Rules())
	if err != nil {
		m.log.WithFields(map[string]any{"error": err.Error()}).Error("board setup failed")
		return m, tea.Quit
	}
	m.board = board
	m.screen = screenPlaying
	m.curRow, m.curCol = 0, 0
	m.log.WithFields(map[string]any{"grid": gridSize}).Debug("game started")
	return m, tea.Batch(tea.ClearScreen, tick())
}

func (m model) playingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.screen = screenMenu
		m.cursor = 0
		m.board = nil
		return m, tea.ClearScreen
	case "r":
		m.board.Reset()
		m.log.Debug("board reset")
	case "up", "k":
		if m.curRow > 0 {
			m.curRow--
		}
	case "down", "j":
		if m.curRow < m.board.GridSize-1 {
			m.curRow++
		}
	case "left", "h":
		if m.curCol > 0 {
			m.curCol--
		}
	case "right", "l":
		if m.curCol < m.board.GridSize-1 {
			m.curCol++
		}
	case "enter", " ":
		m.click(m.curRow, m.curCol)
	}
	return m, nil
}

func (m model) wonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.screen = screenMenu
		m.cursor = 0
		m.board = nil
		return m, tea.ClearScreen
	case "enter", " ", "r":
		m.board.Reset()
		m.screen = screenPlaying
		m.log.Debug("replay")
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenPlaying {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if row, col, ok := cellAt(msg.X, msg.Y, m.board.GridSize); ok {
		m.curRow, m.curCol = row, col
		m.click(row, col)
	}
	return m, nil
}

func (m *model) click(row, col int) {
	res := m.board.Click(row, col)
	if res != game.ClickIgnored {
		m.log.WithFields(map[string]any{
			"row":    row,
			"col":    col,
			"result": res,
			"score":  m.board.MatchedPairs,
		}).Debug("card clicked")
	}
}

// Run starts the terminal frontend and blocks until the player quits.
func Run(cfg *config.Config, seed int64, log *logger.Logger) error {
	p := tea.NewProgram(NewModel(cfg, seed, log),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
