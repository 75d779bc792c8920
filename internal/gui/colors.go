package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"memmatch/internal/config"
	"memmatch/internal/game"
)

const (
	buttonRoundness = 0.35
	cardRoundness   = 0.2
)

// themeColors is the parsed theme in raylib form.
type themeColors struct {
	background rl.Color
	accent     rl.Color
	cardFront  rl.Color
	cardBack   rl.Color
	text       rl.Color
}

func newThemeColors(c config.ThemeColors) themeColors {
	return themeColors{
		background: rlColor(c.Background),
		accent:     rlColor(c.Accent),
		cardFront:  rlColor(c.CardFront),
		cardBack:   rlColor(c.CardBack),
		text:       rlColor(c.Text),
	}
}

// glyphColor is the rank and pip color on every face. All suits stay
// red for visibility on the tinted backgrounds.
var glyphColor = rl.NewColor(255, 0, 0, 255)

// suitTint gives each suit its own face background.
func suitTint(s game.Suit) rl.Color {
	switch s {
	case game.Hearts:
		return rl.NewColor(200, 230, 200, 255)
	case game.Diamonds:
		return rl.NewColor(200, 220, 240, 255)
	case game.Spades:
		return rl.NewColor(220, 220, 180, 255)
	case game.Clubs:
		return rl.NewColor(240, 200, 220, 255)
	}
	return rl.White
}
