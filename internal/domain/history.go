package domain

import "fmt"

// TotalRounds is the number of tricks a deck supports for the given table size.
func TotalRounds(deckSize, playerCount int) int {
	if playerCount <= 0 {
		return 0
	}
	return deckSize / playerCount
}

// CompletedRound is a finished trick together with its resolved winner.
type CompletedRound struct {
	Round  *Round
	Winner Play
}

// History is the append-only log of completed rounds of one playthrough.
type History struct {
	total  int
	rounds []CompletedRound
}

// NewHistory creates an empty log for a game of total rounds.
func NewHistory(total int) *History {
	return &History{total: total}
}

// Append resolves the round winner and adds the round to the log.
func (h *History) Append(r *Round) error {
	if h.Finished() {
		return ErrHistoryFull
	}
	w, err := r.Winner()
	if err != nil {
		return fmt.Errorf("append round %d: %w", len(h.rounds)+1, err)
	}
	h.rounds = append(h.rounds, CompletedRound{Round: r, Winner: w})
	return nil
}

// Last returns the most recently completed round.
func (h *History) Last() (CompletedRound, error) {
	if len(h.rounds) == 0 {
		return CompletedRound{}, ErrEmptyHistory
	}
	return h.rounds[len(h.rounds)-1], nil
}

// Rounds returns the completed rounds in play order.
func (h *History) Rounds() []CompletedRound {
	return append([]CompletedRound(nil), h.rounds...)
}

// Len returns the number of completed rounds.
func (h *History) Len() int {
	return len(h.rounds)
}

// TotalRounds returns the number of rounds fixed at game start.
func (h *History) TotalRounds() int {
	return h.total
}

// Finished reports whether every round of the game has been played.
func (h *History) Finished() bool {
	return len(h.rounds) == h.total
}

// WinningCards returns the set of cards that won a round.
func (h *History) WinningCards() CardSet {
	var set CardSet
	for _, cr := range h.rounds {
		set = set.Add(cr.Winner.Card)
	}
	return set
}

// PlayedCards returns every card played so far.
func (h *History) PlayedCards() CardSet {
	var set CardSet
	for _, cr := range h.rounds {
		set |= cr.Round.PlayedCards()
	}
	return set
}

// WonWithRank reports whether any round was won by a card of the given rank.
func (h *History) WonWithRank(rank int) bool {
	for _, cr := range h.rounds {
		if cr.Winner.Card.Rank == rank {
			return true
		}
	}
	return false
}

// HasWon reports whether the player has taken any round.
func (h *History) HasWon(id PlayerID) bool {
	for _, cr := range h.rounds {
		if cr.Winner.Player == id {
			return true
		}
	}
	return false
}
