package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"memmatch/internal/layout"
)

type Anchor int

const (
	AnchorTopCenter Anchor = iota
	AnchorCenter
)

// Button is a rounded rect with a label. Size and position come from
// the layout; OffsetY shifts it from its anchor so stacked buttons
// don't overlap.
type Button struct {
	Label   string
	Anchor  Anchor
	OffsetY int

	rect     rl.Rectangle
	fontSize int
	pressed  bool
}

func NewButton(label string, anchor Anchor, offsetY int) *Button {
	return &Button{Label: label, Anchor: anchor, OffsetY: offsetY}
}

func (b *Button) Layout(l layout.Layout) {
	w, h := float32(l.ButtonW), float32(l.ButtonH)
	x := (float32(l.WindowW) - w) / 2
	var y float32
	switch b.Anchor {
	case AnchorTopCenter:
		y = float32(l.ButtonY + b.OffsetY)
	default:
		y = (float32(l.WindowH)-h)/2 + float32(b.OffsetY)
	}
	b.rect = rl.NewRectangle(x, y, w, h)
	b.fontSize = l.FontButton
}

// Update polls the mouse and reports a completed click: press and
// release both inside the rect.
func (b *Button) Update() bool {
	pos := rl.GetMousePosition()
	inside := rl.CheckCollisionPointRec(pos, b.rect)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && inside {
		b.pressed = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		wasPressed := b.pressed
		b.pressed = false
		return wasPressed && inside
	}
	return false
}

func (b *Button) hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), b.rect)
}

func (b *Button) Draw(font rl.Font, colors themeColors) {
	rect := b.rect
	if b.pressed {
		rect.X += 2
		rect.Y += 2
	} else {
		shadow := rect
		shadow.X += 4
		shadow.Y += 4
		rl.DrawRectangleRounded(shadow, buttonRoundness, 8, rl.NewColor(0, 0, 0, 50))
	}

	fill := colors.accent
	if b.hovered() {
		fill = dimmed(colors.accent, 30)
	}
	rl.DrawRectangleRounded(rect, buttonRoundness, 8, fill)
	rl.DrawRectangleRoundedLinesEx(rect, buttonRoundness, 8, 2, colors.text)

	size := float32(b.fontSize)
	textSize := rl.MeasureTextEx(font, b.Label, size, 1)
	pos := rl.NewVector2(
		rect.X+(rect.Width-textSize.X)/2,
		rect.Y+(rect.Height-textSize.Y)/2,
	)
	rl.DrawTextEx(font, b.Label, pos, size, 1, colors.background)
}

func dimmed(c rl.Color, by uint8) rl.Color {
	sub := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return rl.NewColor(sub(c.R), sub(c.G), sub(c.B), c.A)
}
