package app

import (
	"fmt"
	"math/rand"
	"time"

	"crew/internal/domain"
)

// Dealer distributes shuffled copies of the deck.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer constructs a Dealer with provided rng or a time-seeded default.
func NewDealer(rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dealer{rng: rng}
}

// Shuffled returns a shuffled copy of the full deck.
func (d *Dealer) Shuffled() []domain.Card {
	deck := domain.Deck()
	d.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// Deal hands out a shuffled deck round-robin and returns the captain.
func (d *Dealer) Deal(players []*domain.Player) (*domain.Player, error) {
	if len(players) < MinPlayersToStartGame {
		return nil, ErrTooFewPlayers
	}
	if len(players) > MaxPlayersPerGame {
		return nil, ErrTooManyPlayers
	}

	for i, c := range d.Shuffled() {
		players[i%len(players)].Receive(c)
	}

	for _, p := range players {
		if p.IsCaptain() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("deal: %w", ErrNoCaptain)
}

// MissionCards draws count distinct non-trump cards to be handed out as missions.
func (d *Dealer) MissionCards(count int) []domain.Card {
	out := make([]domain.Card, 0, count)
	for _, c := range d.Shuffled() {
		if len(out) == count {
			break
		}
		if !c.Suit.IsTrump() {
			out = append(out, c)
		}
	}
	return out
}
