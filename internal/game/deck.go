package game

import "math/rand"

type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Rune returns the suit pip character.
func (s Suit) Rune() rune {
	switch s {
	case Spades:
		return '♠'
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	}
	return '?'
}

type Rank string

// Symbol identifies a card face. Two cards form a pair when their
// symbols are equal in both rank and suit.
type Symbol struct {
	Rank Rank
	Suit Suit
}

func (s Symbol) String() string {
	return string(s.Rank) + string(s.Suit.Rune())
}

// deck lists the available card faces in priority order. Number ranks
// repeat with alternating suits so a board never holds two pairs that
// differ only by suit color.
var deck = []Symbol{
	{"A", Spades}, {"K", Hearts}, {"Q", Diamonds}, {"J", Clubs},
	{"10", Spades}, {"10", Hearts},
	{"9", Diamonds}, {"9", Clubs},
	{"8", Spades}, {"8", Hearts},
	{"7", Diamonds}, {"7", Clubs},
	{"6", Spades}, {"6", Hearts},
	{"5", Diamonds}, {"5", Clubs},
	{"4", Spades}, {"4", Hearts},
	{"3", Diamonds}, {"3", Clubs},
	{"2", Spades}, {"2", Hearts},
}

// DeckSize is the number of distinct symbols available.
func DeckSize() int { return len(deck) }

// PairsFor returns the pair count for a square grid of the given size.
func PairsFor(gridSize int) int { return gridSize * gridSize / 2 }

// Pairs returns the first n distinct symbols of the deck.
func Pairs(n int) []Symbol {
	if n > len(deck) {
		n = len(deck)
	}
	out := make([]Symbol, n)
	copy(out, deck[:n])
	return out
}

// Shuffled returns 2n symbols, each of the first n deck symbols exactly
// twice, in a uniform random permutation drawn from rng.
func Shuffled(n int, rng *rand.Rand) []Symbol {
	pairs := Pairs(n)
	out := make([]Symbol, 0, 2*len(pairs))
	for _, s := range pairs {
		out = append(out, s, s)
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
