package app

import (
	"fmt"

	"crew/internal/domain"
)

var (
	blue   = func(r int) domain.Card { return domain.Card{Suit: domain.Blue, Rank: r} }
	yellow = func(r int) domain.Card { return domain.Card{Suit: domain.Yellow, Rank: r} }
	pink   = func(r int) domain.Card { return domain.Card{Suit: domain.Pink, Rank: r} }
	green  = func(r int) domain.Card { return domain.Card{Suit: domain.Green, Rank: r} }
	rocket = func(r int) domain.Card { return domain.Card{Suit: domain.Rocket, Rank: r} }
)

// scripted plays queued cards per player and falls back to the first playable card.
type scripted struct {
	cards         map[domain.PlayerID][]domain.Card
	missionPicks  []domain.Card // nil entries are skips when allowed
	skips         map[domain.PlayerID]bool
	blocked       []domain.PlayerID
	neverWin      domain.PlayerID
	selectCalls   []domain.PlayerID
	missionOffers []bool
}

func (s *scripted) SelectCard(p *domain.Player, r *domain.Round) (domain.Card, error) {
	s.selectCalls = append(s.selectCalls, p.ID)
	if queue := s.cards[p.ID]; len(queue) > 0 {
		s.cards[p.ID] = queue[1:]
		return queue[0], nil
	}
	led, ok := r.LedSuit()
	var options []domain.Card
	if ok {
		options = p.Hand.Playable(led)
	} else {
		options = p.Hand.Cards()
	}
	if len(options) == 0 {
		return domain.Card{}, fmt.Errorf("%s has no cards", p)
	}
	return options[0], nil
}

func (s *scripted) SelectMission(id domain.PlayerID, remaining []domain.Card, canSkip bool) (domain.Card, bool, error) {
	s.missionOffers = append(s.missionOffers, canSkip)
	if canSkip && s.skips[id] {
		return domain.Card{}, false, nil
	}
	if len(s.missionPicks) > 0 {
		c := s.missionPicks[0]
		s.missionPicks = s.missionPicks[1:]
		return c, true, nil
	}
	return remaining[0], true, nil
}

func (s *scripted) SelectBlockedPlayers(players []*domain.Player, count int) ([]*domain.Player, error) {
	var out []*domain.Player
	for _, p := range players {
		for _, id := range s.blocked {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (s *scripted) SelectPlayerThatShouldNotWin(players []*domain.Player) (*domain.Player, error) {
	for _, p := range players {
		if p.ID == s.neverWin {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no player %d", s.neverWin)
}

// seatedPlayers builds players 1..n holding the given hands.
func seatedPlayers(hands ...[]domain.Card) []*domain.Player {
	players := make([]*domain.Player, len(hands))
	for i, h := range hands {
		players[i] = domain.NewPlayer(domain.PlayerID(i+1), fmt.Sprintf("player_%d", i+1))
		for _, c := range h {
			players[i].Receive(c)
		}
	}
	return players
}

// fixedDeal is a fixed four-player deal; player 1 is captain.
func fixedDeal() []*domain.Player {
	return seatedPlayers(
		[]domain.Card{yellow(2), green(5), pink(1), blue(1), rocket(4), pink(4), green(4), yellow(9), blue(4), pink(9)},
		[]domain.Card{blue(7), yellow(4), rocket(1), green(3), pink(8), green(2), pink(6), yellow(5), blue(3), green(8)},
		[]domain.Card{green(9), blue(2), blue(5), yellow(1), rocket(3), green(6), pink(3), yellow(6), blue(6), yellow(7)},
		[]domain.Card{rocket(2), green(7), yellow(3), blue(8), pink(2), yellow(8), pink(5), pink(7), green(1), blue(9)},
	)
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
