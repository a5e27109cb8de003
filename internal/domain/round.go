package domain

import "fmt"

// Play is a single card put on the table by a player.
type Play struct {
	Player PlayerID
	Card   Card
}

// Round is one trick: every expected player plays exactly one card.
type Round struct {
	players []PlayerID
	plays   []Play
	led     Suit
	byID    map[PlayerID]Card
}

// NewRound starts a trick that expects one card from each of the given players.
func NewRound(players []PlayerID) *Round {
	return &Round{
		players: append([]PlayerID(nil), players...),
		byID:    make(map[PlayerID]Card, len(players)),
	}
}

// RecordPlay takes card out of the player's hand and records it for this trick.
func (r *Round) RecordPlay(p *Player, card Card) error {
	if err := r.check(p.ID, card); err != nil {
		return err
	}
	if err := p.Play(card); err != nil {
		return err
	}
	r.record(p.ID, card)
	return nil
}

// Play records a card for the player without touching any hand.
func (r *Round) Play(id PlayerID, card Card) error {
	if err := r.check(id, card); err != nil {
		return err
	}
	r.record(id, card)
	return nil
}

func (r *Round) check(id PlayerID, card Card) error {
	if !card.Valid() {
		return fmt.Errorf("%v: %w", card, ErrInvalidCard)
	}
	if !r.expects(id) {
		return fmt.Errorf("player %d: %w", id, ErrUnknownPlayer)
	}
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("player %d: %w", id, ErrDuplicatePlay)
	}
	if r.HasCard(card) {
		return fmt.Errorf("%s: %w", card, ErrDuplicateCard)
	}
	return nil
}

func (r *Round) record(id PlayerID, card Card) {
	if len(r.plays) == 0 {
		r.led = card.Suit
	}
	r.plays = append(r.plays, Play{Player: id, Card: card})
	r.byID[id] = card
}

func (r *Round) expects(id PlayerID) bool {
	for _, p := range r.players {
		if p == id {
			return true
		}
	}
	return false
}

// LedSuit returns the suit of the first card played. It is meaningless before any play.
func (r *Round) LedSuit() (Suit, bool) {
	return r.led, len(r.plays) > 0
}

// Plays returns the cards in the order they were played.
func (r *Round) Plays() []Play {
	return append([]Play(nil), r.plays...)
}

// CardOf returns the card played by the given player, if any.
func (r *Round) CardOf(id PlayerID) (Card, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// PlayedCards returns the set of cards on the table.
func (r *Round) PlayedCards() CardSet {
	var set CardSet
	for _, p := range r.plays {
		set = set.Add(p.Card)
	}
	return set
}

// HasCard reports whether card was played in this trick.
func (r *Round) HasCard(card Card) bool {
	for _, p := range r.plays {
		if p.Card == card {
			return true
		}
	}
	return false
}

// Complete reports whether every expected player has played.
func (r *Round) Complete() bool {
	return len(r.plays) == len(r.players)
}

// Winner determines who takes the trick. Rockets beat everything; otherwise only
// cards of the led suit compete and the highest rank wins.
func (r *Round) Winner() (Play, error) {
	if !r.Complete() || len(r.plays) == 0 {
		return Play{}, fmt.Errorf("%d of %d played: %w", len(r.plays), len(r.players), ErrIncompleteRound)
	}

	winning := r.led
	for _, p := range r.plays {
		if p.Card.Suit.IsTrump() {
			winning = Rocket
			break
		}
	}

	var best Play
	found := false
	for _, p := range r.plays {
		if p.Card.Suit != winning {
			continue
		}
		if !found || p.Card.Rank > best.Card.Rank {
			best = p
			found = true
		}
	}
	return best, nil
}
