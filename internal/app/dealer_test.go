package app

import (
	"errors"
	"math/rand"
	"testing"

	"crew/internal/domain"
)

func TestDealIsBijection(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		players := seatedPlayers(make([][]domain.Card, n)...)
		dealer := NewDealer(rand.New(rand.NewSource(int64(n))))

		captain, err := dealer.Deal(players)
		if err != nil {
			t.Fatalf("deal error: %v", err)
		}

		seen := make(map[domain.Card]int)
		captains := 0
		for _, p := range players {
			if p.IsCaptain() {
				captains++
			}
			for _, c := range p.Hand.Cards() {
				seen[c]++
			}
			if d := p.Hand.Len() - domain.DeckSize/n; d < 0 || d > 1 {
				t.Fatalf("%d players: %s holds %d cards", n, p, p.Hand.Len())
			}
		}
		if len(seen) != domain.DeckSize {
			t.Fatalf("%d players: dealt %d distinct cards, want %d", n, len(seen), domain.DeckSize)
		}
		for c, count := range seen {
			if count != 1 {
				t.Fatalf("%s dealt %d times", c, count)
			}
		}
		if captains != 1 || !captain.IsCaptain() {
			t.Fatalf("captain = %s, %d captains", captain, captains)
		}
	}
}

func TestDealRejectsTableSize(t *testing.T) {
	dealer := NewDealer(nil)
	if _, err := dealer.Deal(seatedPlayers(nil)); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("err = %v, want ErrTooFewPlayers", err)
	}
	if _, err := dealer.Deal(seatedPlayers(make([][]domain.Card, 6)...)); !errors.Is(err, ErrTooManyPlayers) {
		t.Fatalf("err = %v, want ErrTooManyPlayers", err)
	}
}

func TestShuffledLeavesDeckUntouched(t *testing.T) {
	dealer := NewDealer(rand.New(rand.NewSource(3)))
	_ = dealer.Shuffled()
	for i, c := range domain.AllCards {
		if c.Index() != i {
			t.Fatalf("canonical deck was modified at %d", i)
		}
	}
}

func TestMissionCards(t *testing.T) {
	dealer := NewDealer(rand.New(rand.NewSource(11)))
	cards := dealer.MissionCards(5)
	if len(cards) != 5 {
		t.Fatalf("got %d cards, want 5", len(cards))
	}
	if domain.NewCardSet(cards...).Len() != 5 {
		t.Fatalf("mission cards must be distinct: %v", cards)
	}
	for _, c := range cards {
		if c.Suit.IsTrump() {
			t.Fatalf("rocket drawn as mission card: %s", c)
		}
	}
}
