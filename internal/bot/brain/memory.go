package brain

import (
	"crew/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // Someone else holds it
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Already won in a trick
)

// GameMemory stores the bot's private "view" of the game.
type GameMemory struct {
	// DeckStatus tracks all cards. Index = Card.Index().
	DeckStatus [domain.DeckSize]CardStatus
	// missions maps each open card mission to the player who must win it.
	missions map[domain.Card]domain.PlayerID
	// avoid is the player bound by a never-win mission, if any.
	avoid    domain.PlayerID
	hasAvoid bool
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{missions: make(map[domain.Card]domain.PlayerID)}
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
	m.missions = make(map[domain.Card]domain.PlayerID)
	m.avoid, m.hasAvoid = 0, false
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	for _, c := range cards {
		m.DeckStatus[c.Index()] = StatusMine
	}
}

// MarkPlayed records cards that have been played on the table.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	for _, c := range cards {
		m.DeckStatus[c.Index()] = StatusPlayed
	}
}

// UpdateHand synchronization. Marks current hand as Mine and others that were Mine as Played.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	for i, status := range m.DeckStatus {
		if status == StatusMine {
			m.DeckStatus[i] = StatusPlayed
		}
	}
	m.MarkMine(hand)
}

// IsBoss returns true if no higher card of the same suit is still out of the bot's hand.
// Rockets can still trump a boss of a regular suit.
func (m *GameMemory) IsBoss(c domain.Card) bool {
	max := domain.MaxRegularRank
	if c.Suit.IsTrump() {
		max = domain.MaxRocketRank
	}
	for r := c.Rank + 1; r <= max; r++ {
		if m.DeckStatus[domain.Card{Suit: c.Suit, Rank: r}.Index()] == StatusUnknown {
			return false
		}
	}
	return true
}

// IsPlayed returns true if the card is already out of the game.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.DeckStatus[c.Index()] == StatusPlayed
}

// RememberMission records a newly assigned mission.
func (m *GameMemory) RememberMission(r domain.Rule) {
	switch r.Kind {
	case domain.RulePlayerMustWinCard:
		m.missions[r.Card] = r.Player
	case domain.RulePlayerMustNeverWin:
		m.avoid, m.hasAvoid = r.Player, true
	}
}

// ForgetMission drops a mission that has been decided.
func (m *GameMemory) ForgetMission(r domain.Rule) {
	if r.Kind == domain.RulePlayerMustWinCard {
		delete(m.missions, r.Card)
	}
}

// MissionOwner returns who must win c, if c is an open mission card.
func (m *GameMemory) MissionOwner(c domain.Card) (domain.PlayerID, bool) {
	p, ok := m.missions[c]
	return p, ok
}

// MustNotWin reports whether p is bound by a never-win mission.
func (m *GameMemory) MustNotWin(p domain.PlayerID) bool {
	return m.hasAvoid && m.avoid == p
}
