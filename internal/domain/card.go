package domain

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Suit identifies the color of a card. Rocket is the trump suit.
type Suit int

const (
	Blue Suit = iota
	Yellow
	Pink
	Green
	Rocket
)

// RegularSuits lists the four non-trump suits in deck order.
var RegularSuits = [...]Suit{Blue, Yellow, Pink, Green}

const (
	// MaxRegularRank is the highest rank of a non-trump suit.
	MaxRegularRank = 9
	// MaxRocketRank is the highest rank of the trump suit.
	MaxRocketRank = 4
	// DeckSize is the number of cards in the full deck.
	DeckSize = len(RegularSuits)*MaxRegularRank + MaxRocketRank
)

func (s Suit) String() string {
	switch s {
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	case Pink:
		return "PINK"
	case Green:
		return "GREEN"
	case Rocket:
		return "ROCKET"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// IsTrump reports whether the suit beats every other suit.
func (s Suit) IsTrump() bool {
	return s == Rocket
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit
	Rank int
}

// Captain is the card whose holder leads the first round.
var Captain = Card{Suit: Rocket, Rank: MaxRocketRank}

func (c Card) String() string {
	return fmt.Sprintf("%s_%d", c.Suit, c.Rank)
}

// Valid reports whether the card exists in the deck.
func (c Card) Valid() bool {
	switch {
	case c.Suit.IsTrump():
		return c.Rank >= 1 && c.Rank <= MaxRocketRank
	case c.Suit >= Blue && c.Suit <= Green:
		return c.Rank >= 1 && c.Rank <= MaxRegularRank
	default:
		return false
	}
}

// Index maps a valid card to its position in AllCards.
func (c Card) Index() int {
	if c.Suit.IsTrump() {
		return len(RegularSuits)*MaxRegularRank + c.Rank - 1
	}
	return int(c.Suit)*MaxRegularRank + c.Rank - 1
}

// AllCards is the full deck in canonical order. It must not be modified.
var AllCards = buildDeck()

func buildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range RegularSuits {
		for r := 1; r <= MaxRegularRank; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	for r := 1; r <= MaxRocketRank; r++ {
		deck = append(deck, Card{Suit: Rocket, Rank: r})
	}
	return deck
}

// Deck returns a fresh copy of the full deck.
func Deck() []Card {
	out := make([]Card, len(AllCards))
	copy(out, AllCards)
	return out
}

// CardsWithRank returns the non-trump cards of the given rank.
func CardsWithRank(rank int) CardSet {
	var set CardSet
	if rank < 1 || rank > MaxRegularRank {
		return set
	}
	for _, s := range RegularSuits {
		set = set.Add(Card{Suit: s, Rank: rank})
	}
	return set
}

// CardSet is an immutable set of deck cards stored as a bitmask over Card.Index.
// Being comparable, it can be embedded in map keys.
type CardSet uint64

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...Card) CardSet {
	var set CardSet
	for _, c := range cards {
		set = set.Add(c)
	}
	return set
}

// Add returns a copy of the set containing c.
func (s CardSet) Add(c Card) CardSet {
	return s | 1<<uint(c.Index())
}

// Has reports whether c is in the set.
func (s CardSet) Has(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Contains reports whether every card of other is in s.
func (s CardSet) Contains(other CardSet) bool {
	return s&other == other
}

// Len returns the number of cards in the set.
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Cards lists the set members in deck order.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for _, c := range AllCards {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// ParseCard reads a card written as SUIT_RANK, e.g. "PINK_7" or "ROCKET_4".
func ParseCard(s string) (Card, error) {
	i := strings.LastIndexByte(s, '_')
	if i <= 0 {
		return Card{}, fmt.Errorf("parse card %q: %w", s, ErrInvalidCard)
	}
	rank, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, ErrInvalidCard)
	}
	for suit := Blue; suit <= Rocket; suit++ {
		if strings.EqualFold(suit.String(), s[:i]) {
			c := Card{Suit: suit, Rank: rank}
			if !c.Valid() {
				break
			}
			return c, nil
		}
	}
	return Card{}, fmt.Errorf("parse card %q: %w", s, ErrInvalidCard)
}
