package brain

import (
	"testing"

	"crew/internal/domain"
)

func TestGameMemory(t *testing.T) {
	m := NewMemory()

	for i := 0; i < domain.DeckSize; i++ {
		if m.DeckStatus[i] != StatusUnknown {
			t.Errorf("Index %d should be Unknown, got %d", i, m.DeckStatus[i])
		}
	}

	blue3 := domain.Card{Suit: domain.Blue, Rank: 3}
	m.MarkMine([]domain.Card{blue3})
	if m.DeckStatus[blue3.Index()] != StatusMine {
		t.Errorf("BLUE_3 should be StatusMine")
	}

	m.UpdateHand(nil)
	if !m.IsPlayed(blue3) {
		t.Errorf("a card leaving the hand should count as played")
	}

	m.Reset()
	if m.DeckStatus[blue3.Index()] != StatusUnknown {
		t.Errorf("After reset, BLUE_3 should be StatusUnknown")
	}
}

func TestIsBoss(t *testing.T) {
	m := NewMemory()
	pink8 := domain.Card{Suit: domain.Pink, Rank: 8}
	pink9 := domain.Card{Suit: domain.Pink, Rank: 9}

	if m.IsBoss(pink8) {
		t.Fatal("PINK_8 cannot be boss while PINK_9 is out")
	}
	m.MarkPlayed([]domain.Card{pink9})
	if !m.IsBoss(pink8) {
		t.Fatal("PINK_8 should be boss once PINK_9 is played")
	}
	if !m.IsBoss(domain.Captain) {
		t.Fatal("the captain card is always boss")
	}
}

func TestMissionMemory(t *testing.T) {
	m := NewMemory()
	green5 := domain.Card{Suit: domain.Green, Rank: 5}
	rule := domain.PlayerMustWinCard(2, green5)

	m.RememberMission(rule)
	m.RememberMission(domain.PlayerMustNeverWin(3))

	if owner, ok := m.MissionOwner(green5); !ok || owner != 2 {
		t.Fatalf("owner = %d, %v", owner, ok)
	}
	if !m.MustNotWin(3) || m.MustNotWin(2) {
		t.Fatal("only player 3 is bound by the never-win mission")
	}

	m.ForgetMission(rule)
	if _, ok := m.MissionOwner(green5); ok {
		t.Fatal("decided mission should be forgotten")
	}
}
