package app

import (
	"fmt"

	"crew/internal/domain"
)

// CommunicationResult says how a player may talk in a given round.
type CommunicationResult string

const (
	CommunicationEnabled  CommunicationResult = "enabled"
	CommunicationDisabled CommunicationResult = "disabled"
	CommunicationLimited  CommunicationResult = "limited"
)

// CommunicationPolicy decides per round whether a player may communicate.
// Rounds are numbered from 1.
type CommunicationPolicy interface {
	CanCommunicate(player domain.PlayerID, round int) CommunicationResult
}

// EnabledCommunication lets everyone talk every round.
type EnabledCommunication struct{}

func (EnabledCommunication) CanCommunicate(domain.PlayerID, int) CommunicationResult {
	return CommunicationEnabled
}

// LimitedCommunication is the dead zone: players may only give restricted hints.
type LimitedCommunication struct{}

func (LimitedCommunication) CanCommunicate(domain.PlayerID, int) CommunicationResult {
	return CommunicationLimited
}

// BlockedPlayersCommunication silences a fixed set of players for the whole game.
type BlockedPlayersCommunication struct {
	Blocked map[domain.PlayerID]bool
}

func (c BlockedPlayersCommunication) CanCommunicate(player domain.PlayerID, _ int) CommunicationResult {
	if c.Blocked[player] {
		return CommunicationDisabled
	}
	return CommunicationEnabled
}

// BlockedUntilRound silences everyone before StartingRound.
type BlockedUntilRound struct {
	StartingRound int
}

func (c BlockedUntilRound) CanCommunicate(_ domain.PlayerID, round int) CommunicationResult {
	if round < c.StartingRound {
		return CommunicationDisabled
	}
	return CommunicationEnabled
}

// NewCommunicationPolicy builds the policy a level asks for, consulting the selector
// when the level blocks chosen players.
func NewCommunicationPolicy(players []*domain.Player, level LevelDefinition, selector SetupSelector) (CommunicationPolicy, error) {
	switch level.Communication {
	case CommunicationRegular, "":
		return EnabledCommunication{}, nil
	case CommunicationDeadZone:
		return LimitedCommunication{}, nil
	case CommunicationBlockedPlayers:
		chosen, err := selector.SelectBlockedPlayers(players, level.BlockedPlayers)
		if err != nil {
			return nil, fmt.Errorf("select blocked players: %w", err)
		}
		if len(chosen) != level.BlockedPlayers {
			return nil, fmt.Errorf("got %d blocked players, want %d: %w", len(chosen), level.BlockedPlayers, ErrInvalidSelection)
		}
		blocked := make(map[domain.PlayerID]bool, len(chosen))
		for _, p := range chosen {
			if indexOf(players, p.ID) < 0 {
				return nil, fmt.Errorf("blocked player %s: %w", p, ErrInvalidSelection)
			}
			blocked[p.ID] = true
		}
		return BlockedPlayersCommunication{Blocked: blocked}, nil
	case CommunicationBlockedUntilRound:
		return BlockedUntilRound{StartingRound: level.StartingRound}, nil
	}
	return nil, fmt.Errorf("%q: %w", level.Communication, ErrUnsupportedComm)
}
