package game

type CardState int

const (
	CardHidden CardState = iota
	CardFlippingUp
	CardFaceUp
	CardFlippingDown
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardHidden:
		return "hidden"
	case CardFlippingUp:
		return "flipping_up"
	case CardFaceUp:
		return "face_up"
	case CardFlippingDown:
		return "flipping_down"
	case CardMatched:
		return "matched"
	}
	return "unknown"
}

// Card is one cell of the board. Progress runs 0..1 across a flip
// animation and is meaningful only in the two flipping states.
type Card struct {
	Row, Col int
	Symbol   Symbol
	State    CardState
	Progress float64
}

// FlipUp starts the reveal animation on a hidden card.
func (c *Card) FlipUp() {
	if c.State == CardHidden {
		c.State = CardFlippingUp
		c.Progress = 0
	}
}

// FlipDown starts the hide animation. A card still flipping up reverses
// in place so the animation stays continuous.
func (c *Card) FlipDown() {
	switch c.State {
	case CardFaceUp:
		c.State = CardFlippingDown
		c.Progress = 0
	case CardFlippingUp:
		c.State = CardFlippingDown
		c.Progress = 1 - c.Progress
	}
}

// SetMatched locks the card face up permanently.
func (c *Card) SetMatched() {
	c.State = CardMatched
	c.Progress = 0
}

// Tick advances the flip animation by dt seconds against the given
// flip duration.
func (c *Card) Tick(dt, flipDuration float64) {
	if !c.Animating() {
		return
	}
	if flipDuration <= 0 {
		c.Progress = 1
	} else {
		c.Progress += dt / flipDuration
	}
	if c.Progress >= 1 {
		if c.State == CardFlippingUp {
			c.State = CardFaceUp
		} else {
			c.State = CardHidden
		}
		c.Progress = 0
	}
}

// FaceUp reports whether the face is showing (revealed or matched).
func (c *Card) FaceUp() bool {
	return c.State == CardFaceUp || c.State == CardMatched
}

// Clickable reports whether a click may flip this card.
func (c *Card) Clickable() bool { return c.State == CardHidden }

func (c *Card) Animating() bool {
	return c.State == CardFlippingUp || c.State == CardFlippingDown
}

// ScaleX is the horizontal scale for the flip animation: the card
// narrows to zero width at the midpoint and widens back out.
func (c *Card) ScaleX() float64 {
	if !c.Animating() {
		return 1
	}
	if c.Progress <= 0.5 {
		return 1 - c.Progress*2
	}
	return (c.Progress - 0.5) * 2
}

// ShowFront reports which side to draw. Mid-flip the face swaps at the
// animation midpoint, when the card is edge-on.
func (c *Card) ShowFront() bool {
	switch c.State {
	case CardFaceUp, CardMatched:
		return true
	case CardFlippingUp:
		return c.Progress > 0.5
	case CardFlippingDown:
		return c.Progress <= 0.5
	}
	return false
}
