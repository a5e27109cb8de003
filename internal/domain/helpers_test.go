package domain

import "testing"

var (
	blue   = func(r int) Card { return Card{Suit: Blue, Rank: r} }
	yellow = func(r int) Card { return Card{Suit: Yellow, Rank: r} }
	pink   = func(r int) Card { return Card{Suit: Pink, Rank: r} }
	green  = func(r int) Card { return Card{Suit: Green, Rank: r} }
	rocket = func(r int) Card { return Card{Suit: Rocket, Rank: r} }
)

// playRound builds a complete round from plays given in table order.
func playRound(t *testing.T, plays ...Play) *Round {
	t.Helper()
	r := NewRound(playIDs(plays))
	for _, p := range plays {
		if err := r.Play(p.Player, p.Card); err != nil {
			t.Fatalf("play %v: %v", p, err)
		}
	}
	return r
}

func playIDs(plays []Play) []PlayerID {
	ids := make([]PlayerID, len(plays))
	for i, p := range plays {
		ids[i] = p.Player
	}
	return ids
}

// historyOf builds a history of total rounds from the given rounds.
func historyOf(t *testing.T, total int, rounds ...*Round) *History {
	t.Helper()
	h := NewHistory(total)
	for _, r := range rounds {
		if err := h.Append(r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return h
}
