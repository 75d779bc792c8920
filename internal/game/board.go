package game

import (
	"fmt"
	"math/rand"
	"time"
)

type BoardState int

const (
	BoardIdle BoardState = iota
	BoardOneFlipped
	BoardEvaluating
	BoardWon
)

func (s BoardState) String() string {
	switch s {
	case BoardIdle:
		return "idle"
	case BoardOneFlipped:
		return "one_flipped"
	case BoardEvaluating:
		return "evaluating"
	case BoardWon:
		return "won"
	}
	return "unknown"
}

// ClickResult reports what a click did, mostly for event logging.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickFlipped
	ClickMatched
	ClickMismatch
)

func (r ClickResult) String() string {
	switch r {
	case ClickIgnored:
		return "ignored"
	case ClickFlipped:
		return "flipped"
	case ClickMatched:
		return "matched"
	case ClickMismatch:
		return "mismatch"
	}
	return "unknown"
}

// Rules holds the timing knobs, in seconds.
type Rules struct {
	FlipDuration  float64
	MismatchDelay float64
	WinDelay      float64
}

func DefaultRules() Rules {
	return Rules{FlipDuration: 0.2, MismatchDelay: 1.0, WinDelay: 1.0}
}

// Board is the grid state machine. Selected cards are tracked as
// indices into Cards, -1 meaning no selection, so reset never leaves a
// stale reference behind.
type Board struct {
	GridSize     int
	Cards        []Card
	Rules        Rules
	MatchedPairs int

	first, second int
	mismatchLeft  float64
	winLeft       float64
	won           bool
	rng           *rand.Rand
}

// NewBoard creates a shuffled board. Grid size must be 4 or 6. A zero
// seed draws one from the clock; any other seed reproduces the same
// sequence of shuffles.
func NewBoard(gridSize int, seed int64, rules Rules) (*Board, error) {
	if gridSize != 4 && gridSize != 6 {
		return nil, fmt.Errorf("unsupported grid size: %d", gridSize)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b := &Board{
		GridSize: gridSize,
		Rules:    rules,
		rng:      rand.New(rand.NewSource(seed)),
	}
	b.Reset()
	return b, nil
}

// Reset deals a fresh shuffle with every card face down.
func (b *Board) Reset() {
	symbols := Shuffled(b.TotalPairs(), b.rng)
	b.Cards = make([]Card, len(symbols))
	for i, sym := range symbols {
		b.Cards[i] = Card{
			Row:    i / b.GridSize,
			Col:    i % b.GridSize,
			Symbol: sym,
		}
	}
	b.MatchedPairs = 0
	b.first, b.second = -1, -1
	b.mismatchLeft = 0
	b.winLeft = 0
	b.won = false
}

func (b *Board) TotalPairs() int { return PairsFor(b.GridSize) }

func (b *Board) Won() bool { return b.won }

// State derives the board's position in the flip/match state machine.
func (b *Board) State() BoardState {
	switch {
	case b.won:
		return BoardWon
	case b.mismatchLeft > 0 || b.winLeft > 0:
		return BoardEvaluating
	case b.first >= 0:
		return BoardOneFlipped
	default:
		return BoardIdle
	}
}

func (b *Board) Index(row, col int) int { return row*b.GridSize + col }

// CardAt returns the card at the given cell, or nil if out of range.
func (b *Board) CardAt(row, col int) *Card {
	if row < 0 || row >= b.GridSize || col < 0 || col >= b.GridSize {
		return nil
	}
	return &b.Cards[b.Index(row, col)]
}

// Click flips the card at the given cell if the state machine allows
// it. Clicks during evaluation, on matched or face-up cards, or after
// the win are dropped.
func (b *Board) Click(row, col int) ClickResult {
	if b.won || b.mismatchLeft > 0 || b.winLeft > 0 {
		return ClickIgnored
	}
	card := b.CardAt(row, col)
	if card == nil || !card.Clickable() {
		return ClickIgnored
	}
	idx := b.Index(row, col)
	if idx == b.first {
		return ClickIgnored
	}

	card.FlipUp()
	if b.first < 0 {
		b.first = idx
		return ClickFlipped
	}
	b.second = idx
	return b.evaluate()
}

func (b *Board) evaluate() ClickResult {
	c1, c2 := &b.Cards[b.first], &b.Cards[b.second]
	if c1.Symbol == c2.Symbol {
		c1.SetMatched()
		c2.SetMatched()
		b.MatchedPairs++
		b.first, b.second = -1, -1
		if b.MatchedPairs == b.TotalPairs() {
			// Hold the board briefly so the final match stays visible
			// before the win screen takes over.
			b.winLeft = b.Rules.WinDelay
			if b.winLeft <= 0 {
				b.won = true
			}
		}
		return ClickMatched
	}
	b.mismatchLeft = b.Rules.MismatchDelay
	return ClickMismatch
}

// Tick advances animations and countdowns by dt seconds.
func (b *Board) Tick(dt float64) {
	for i := range b.Cards {
		b.Cards[i].Tick(dt, b.Rules.FlipDuration)
	}

	if b.mismatchLeft > 0 {
		b.mismatchLeft -= dt
		if b.mismatchLeft <= 0 {
			b.mismatchLeft = 0
			b.Cards[b.first].FlipDown()
			b.Cards[b.second].FlipDown()
			b.first, b.second = -1, -1
		}
	}

	if b.winLeft > 0 {
		b.winLeft -= dt
		if b.winLeft <= 0 {
			b.winLeft = 0
			b.won = true
		}
	}
}

// ScoreLine formats the score display.
func (b *Board) ScoreLine() string {
	return fmt.Sprintf("Pairs Found: %d/%d", b.MatchedPairs, b.TotalPairs())
}

// FaceUpCount returns the number of cards currently showing a face.
func (b *Board) FaceUpCount() int {
	n := 0
	for i := range b.Cards {
		if b.Cards[i].FaceUp() {
			n++
		}
	}
	return n
}
