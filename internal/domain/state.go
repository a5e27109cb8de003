package domain

import "fmt"

// Phase represents the lifecycle stage of a single playthrough.
type Phase string

const (
	// PhaseNotStarted is the state before cards are dealt.
	PhaseNotStarted Phase = "not_started"
	// PhasePlaying is the state while rounds are being played.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the state after the game is decided or rounds run out.
	PhaseFinished Phase = "finished"
)

// PlayerID is the stable identity of a player within a game.
type PlayerID int

// Hand is the multiset of cards held by one player.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding the given cards.
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: append([]Card(nil), cards...)}
}

// Add puts a card into the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Remove takes one copy of c out of the hand.
func (h *Hand) Remove(c Card) error {
	for i, held := range h.cards {
		if held == c {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s: %w", c, ErrCardNotInHand)
}

// Has reports whether the hand holds c.
func (h *Hand) Has(c Card) bool {
	for _, held := range h.cards {
		if held == c {
			return true
		}
	}
	return false
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards in the order received.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Playable returns the cards of the led suit, or the whole hand when none match.
func (h *Hand) Playable(led Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.Suit == led {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return h.Cards()
	}
	return out
}

// Player is a participant identified by ID. Hand contents never take part in identity.
type Player struct {
	ID   PlayerID
	Name string
	Hand *Hand
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{ID: id, Name: name, Hand: NewHand()}
}

// Receive adds a dealt card to the player's hand.
func (p *Player) Receive(c Card) {
	p.Hand.Add(c)
}

// Play removes c from the player's hand.
func (p *Player) Play(c Card) error {
	if err := p.Hand.Remove(c); err != nil {
		return fmt.Errorf("player %s: %w", p.Name, err)
	}
	return nil
}

// IsCaptain reports whether the player holds the highest trump card.
func (p *Player) IsCaptain() bool {
	return p.Hand.Has(Captain)
}

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("player-%d", p.ID)
}

// IDs returns the identities of the given players in order.
func IDs(players []*Player) []PlayerID {
	out := make([]PlayerID, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
