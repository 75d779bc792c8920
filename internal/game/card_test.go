package game

import (
	"math"
	"testing"
)

func TestCard_FlipAnimation(t *testing.T) {
	c := Card{Symbol: Symbol{"A", Spades}}

	c.FlipUp()
	if c.State != CardFlippingUp {
		t.Fatalf("expected flipping_up, got %s", c.State)
	}

	c.Tick(0.1, 0.2)
	if math.Abs(c.Progress-0.5) > 1e-9 {
		t.Errorf("expected progress 0.5, got %f", c.Progress)
	}

	c.Tick(0.1, 0.2)
	if c.State != CardFaceUp {
		t.Errorf("expected face_up after full duration, got %s", c.State)
	}
	if c.Progress != 0 {
		t.Errorf("expected progress reset, got %f", c.Progress)
	}
}

func TestCard_ScaleX(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0.0, 1.0},
		{0.25, 0.5},
		{0.5, 0.0},
		{0.75, 0.5},
		{1.0, 1.0},
	}
	for _, tt := range tests {
		c := Card{State: CardFlippingUp, Progress: tt.progress}
		if got := c.ScaleX(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("progress %.2f: scale %.3f, want %.3f", tt.progress, got, tt.want)
		}
	}

	idle := Card{State: CardHidden}
	if idle.ScaleX() != 1.0 {
		t.Error("non-animating card should have scale 1")
	}
}

func TestCard_ShowFront(t *testing.T) {
	tests := []struct {
		name     string
		state    CardState
		progress float64
		want     bool
	}{
		{"hidden", CardHidden, 0, false},
		{"face up", CardFaceUp, 0, true},
		{"matched", CardMatched, 0, true},
		{"flip up early", CardFlippingUp, 0.3, false},
		{"flip up late", CardFlippingUp, 0.7, true},
		{"flip down early", CardFlippingDown, 0.3, true},
		{"flip down late", CardFlippingDown, 0.7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Card{State: tt.state, Progress: tt.progress}
			if got := c.ShowFront(); got != tt.want {
				t.Errorf("ShowFront() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCard_FlipDownReversesMidFlip(t *testing.T) {
	c := Card{State: CardFlippingUp, Progress: 0.75}
	c.FlipDown()
	if c.State != CardFlippingDown {
		t.Fatalf("expected flipping_down, got %s", c.State)
	}
	if math.Abs(c.Progress-0.25) > 1e-9 {
		t.Errorf("expected reversed progress 0.25, got %f", c.Progress)
	}
}

func TestCard_FlipUpOnlyFromHidden(t *testing.T) {
	for _, state := range []CardState{CardFaceUp, CardMatched, CardFlippingDown} {
		c := Card{State: state}
		c.FlipUp()
		if c.State != state {
			t.Errorf("FlipUp from %s should be a no-op, got %s", state, c.State)
		}
	}
}
