package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"memmatch/internal/game"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.colors.background)

	switch a.screen {
	case screenMenu:
		a.drawMenu()
	case screenGridSelect:
		a.drawGridSelect()
	case screenPlaying:
		a.drawGame()
	case screenGameOver:
		a.drawGameOver()
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y, size int, col rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
}

func (a *App) drawTextCentered(text string, y, size int, col rl.Color) {
	w := rl.MeasureTextEx(a.font, text, float32(size), 1).X
	a.drawText(text, (a.lay.WindowW-int(w))/2, y, size, col)
}

func (a *App) drawMenu() {
	a.drawTextCentered("PLAYING CARD MEMORY", a.lay.WindowH/4, a.lay.FontTitle, a.colors.text)
	a.drawTextCentered("MATCH ALL THE PAIRS!", a.lay.WindowH/4+a.lay.FontTitle+16, a.lay.FontSubtitle, a.colors.accent)

	instructions := []string{
		"Click cards to reveal their rank and suit",
		"Find both copies of every card to win",
		"F11: toggle fullscreen",
		"ESC: quit (or leave fullscreen)",
	}
	y := a.lay.WindowH/4 + a.lay.FontTitle + a.lay.FontSubtitle + 48
	for _, line := range instructions {
		a.drawTextCentered(line, y, a.lay.FontSubtitle, a.colors.text)
		y += a.lay.FontSubtitle + 8
	}

	a.startBtn.Draw(a.font, a.colors)
}

func (a *App) drawGridSelect() {
	a.drawTextCentered("CHOOSE GRID SIZE", a.lay.WindowH/5, a.lay.FontTitle, a.colors.text)
	a.drawTextCentered("Select your preferred difficulty level",
		a.lay.WindowH/5+a.lay.FontTitle+16, a.lay.FontSubtitle, a.colors.accent)

	a.grid4Btn.Draw(a.font, a.colors)
	a.grid6Btn.Draw(a.font, a.colors)
	a.backBtn.Draw(a.font, a.colors)
}

func (a *App) drawGame() {
	a.drawBoard()
	a.drawText(a.board.ScoreLine(), 20, 20, a.lay.FontScore, a.colors.text)
	a.resetBtn.Draw(a.font, a.colors)
}

func (a *App) drawGameOver() {
	a.drawBoard()

	// Translucent overlay keeps the finished board visible underneath.
	rl.DrawRectangle(0, 0, int32(a.lay.WindowW), int32(a.lay.WindowH), rl.NewColor(0, 0, 0, 153))

	centerY := a.lay.WindowH / 2
	a.drawTextCentered("GAME COMPLETE!", centerY-a.lay.FontMessage-24, a.lay.FontMessage, a.colors.text)
	a.drawTextCentered(
		fmt.Sprintf("ALL %d PAIRS MATCHED!", a.board.TotalPairs()),
		centerY-12, a.lay.FontSubtitle, a.colors.accent,
	)

	a.replayBtn.Draw(a.font, a.colors)
	a.drawTextCentered("SPACE / ENTER: play again", a.lay.WindowH-60, a.lay.FontSubtitle, a.colors.text)
}

func (a *App) drawBoard() {
	mouse := rl.GetMousePosition()
	hoverRow, hoverCol, hoverOK := a.lay.CellAt(int(mouse.X), int(mouse.Y))

	for i := range a.board.Cards {
		card := &a.board.Cards[i]
		hovered := hoverOK && card.Row == hoverRow && card.Col == hoverCol
		a.drawCard(card, hovered)
	}
}

func (a *App) drawCard(c *game.Card, hovered bool) {
	x, y, size := a.lay.CardRect(c.Row, c.Col)

	// Flip animation narrows the card around its vertical center line.
	w := float32(size) * float32(c.ScaleX())
	if w < 1 {
		w = 1
	}
	rect := rl.NewRectangle(
		float32(x)+(float32(size)-w)/2,
		float32(y),
		w,
		float32(size),
	)

	if hovered && c.State != game.CardMatched {
		shadow := rect
		shadow.X += 4
		shadow.Y += 4
		rl.DrawRectangleRounded(shadow, cardRoundness, 8, rl.NewColor(0, 0, 0, 50))
	}

	if c.ShowFront() {
		tex := a.faces.texture(c.Symbol)
		// Render textures are stored upside down; flip the source rect.
		src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
		rl.DrawTexturePro(tex, src, rect, rl.NewVector2(0, 0), 0, rl.White)
	} else {
		rl.DrawRectangleRounded(rect, cardRoundness, 8, a.colors.cardBack)
		if w > 20 {
			center := rl.NewVector2(rect.X+rect.Width/2, rect.Y+rect.Height/2)
			rl.DrawPoly(center, 4, float32(size)/6, 0, a.colors.accent)
		}
	}

	border := a.colors.cardBack
	if c.ShowFront() {
		border = a.colors.cardFront
	}
	if c.State == game.CardMatched || hovered {
		border = a.colors.accent
	}
	if w > 2 {
		rl.DrawRectangleRoundedLinesEx(rect, cardRoundness, 8, 3, border)
	}
}
