package app

import (
	"fmt"

	"crew/internal/domain"
)

// RoundEngine plays one trick by asking each player for a card in turn order.
type RoundEngine struct {
	selector CardSelector
}

// NewRoundEngine returns a RoundEngine backed by the given selector.
func NewRoundEngine(selector CardSelector) *RoundEngine {
	return &RoundEngine{selector: selector}
}

// PlayRound runs a trick starting with leader and moving through players in seat order.
func (e *RoundEngine) PlayRound(players []*domain.Player, leader *domain.Player) (*domain.Round, error) {
	start := indexOf(players, leader.ID)
	if start < 0 {
		return nil, fmt.Errorf("leader %s: %w", leader, domain.ErrUnknownPlayer)
	}

	round := domain.NewRound(domain.IDs(players))
	for offset := range players {
		current := players[(start+offset)%len(players)]
		card, err := e.selector.SelectCard(current, round)
		if err != nil {
			return nil, fmt.Errorf("select card for %s: %w", current, err)
		}
		if err := round.RecordPlay(current, card); err != nil {
			return nil, err
		}
	}
	return round, nil
}

func indexOf(players []*domain.Player, id domain.PlayerID) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
