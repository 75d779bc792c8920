package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memmatch/internal/game"
)

var (
	gold   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	back   = lipgloss.NewStyle().Foreground(lipgloss.Color("25"))
)

// Card cells in the playing view. Each card is cardW x cardH characters
// including its border; cells are spaced one column apart.
const (
	gridLeft = 3
	gridTop  = 3
	cardW    = 5
	cardH    = 3
	cellW    = cardW + 1
	cellH    = cardH
)

// cellAt maps a terminal coordinate to a grid cell, reporting ok=false
// for the gap columns and anything outside the grid.
func cellAt(x, y, gridSize int) (row, col int, ok bool) {
	x -= gridLeft
	y -= gridTop
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	if x%cellW >= cardW {
		return 0, 0, false
	}
	row, col = y/cellH, x/cellW
	if row >= gridSize || col >= gridSize {
		return 0, 0, false
	}
	return row, col, true
}

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenGridSelect:
		return m.viewGridSelect()
	case screenPlaying:
		return m.viewPlaying()
	case screenWon:
		return m.viewWon()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + gold.Render("m e m o r y  m a t c h") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")
	b.WriteString(dim.Render("      flip cards, find every pair") + "\n\n")

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString("      " + gold.Render("▸ ") + white.Render(item) + "\n")
		} else {
			b.WriteString("        " + dim.Render(item) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter confirm   q quit") + "\n")
	return b.String()
}

func (m model) viewGridSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + gold.Render("choose grid size") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 24)) + "\n\n")

	for i, item := range gridItems {
		if i == m.cursor {
			b.WriteString("      " + gold.Render("▸ ") + white.Render(item.label) + "\n")
		} else {
			b.WriteString("        " + dim.Render(item.label) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   esc back") + "\n")
	return b.String()
}

func (m model) viewPlaying() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + white.Render(m.board.ScoreLine()) +
		dim.Render("    r reset   q menu") + "\n")
	b.WriteString("\n")
	b.WriteString(m.viewBoard(true))
	b.WriteString("\n" + dim.Render("   ↑↓←→ move   enter/click flip") + "\n")
	return b.String()
}

func (m model) viewWon() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + gold.Render("GAME COMPLETE!") +
		white.Render(fmt.Sprintf("  all %d pairs matched", m.board.TotalPairs())) + "\n")
	b.WriteString("\n")
	b.WriteString(m.viewBoard(false))
	b.WriteString("\n" + dim.Render("   enter play again   q menu") + "\n")
	return b.String()
}

// viewBoard renders the grid so that card (r,c) occupies the cell
// cellAt expects, keeping mouse clicks aligned with the drawing.
func (m model) viewBoard(showCursor bool) string {
	var b strings.Builder
	for r := 0; r < m.board.GridSize; r++ {
		lines := [cardH]string{}
		for c := 0; c < m.board.GridSize; c++ {
			card := m.board.CardAt(r, c)
			cursor := showCursor && r == m.curRow && c == m.curCol
			for i, line := range cardLines(card, cursor) {
				if c > 0 {
					lines[i] += " "
				}
				lines[i] += line
			}
		}
		for _, line := range lines {
			b.WriteString(strings.Repeat(" ", gridLeft) + line + "\n")
		}
	}
	return b.String()
}

// cardLines renders one card as cardH rows of cardW characters.
func cardLines(c *game.Card, cursor bool) [cardH]string {
	border := back
	label := "░░░"
	labelStyle := back

	switch {
	case c.State == game.CardMatched:
		border = gold
		label = fmt.Sprintf("%-3s", c.Symbol)
		labelStyle = gold
	case c.ShowFront():
		border = white
		label = fmt.Sprintf("%-3s", c.Symbol)
		labelStyle = red
	case c.Animating():
		label = "▒▒▒"
	}
	if cursor {
		border = cyan
	}

	return [cardH]string{
		border.Render("╭───╮"),
		border.Render("│") + labelStyle.Render(label) + border.Render("│"),
		border.Render("╰───╯"),
	}
}
