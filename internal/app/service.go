package app

import (
	"fmt"
	"math/rand"
	"time"

	"crew/internal/domain"
)

// Service runs complete level playthroughs.
type Service struct {
	rng    *rand.Rand
	policy domain.ValidationPolicy
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// WithPolicy sets the mission validation interleaving for subsequent games.
func (s *Service) WithPolicy(p domain.ValidationPolicy) *Service {
	s.policy = p
	return s
}

// NewPlayers seats one player per name, with ids starting at 1.
func NewPlayers(names []string) ([]*domain.Player, error) {
	if len(names) < MinPlayersToStartGame {
		return nil, ErrTooFewPlayers
	}
	if len(names) > MaxPlayersPerGame {
		return nil, ErrTooManyPlayers
	}
	players := make([]*domain.Player, len(names))
	for i, n := range names {
		players[i] = domain.NewPlayer(domain.PlayerID(i+1), n)
	}
	return players, nil
}

// PlayLevel deals, sets up the level's missions and communication, and plays the game.
// Mission picking starts with the captain and goes around the table.
func (s *Service) PlayLevel(level LevelDefinition, players []*domain.Player, pi PlayerInterface) (*Result, error) {
	dealer := NewDealer(s.rng)
	engine := NewEngine(dealer, NewRoundEngine(pi)).WithPolicy(s.policy)
	if o, ok := pi.(EventObserver); ok {
		engine.WithObserver(o)
	}

	captain, events, err := engine.Deal(players)
	if err != nil {
		return nil, err
	}

	missions, err := NewMissionRuleListBuilder(pi).Build(fromCaptain(players, captain), level, dealer.MissionCards(level.CardMissionCount()))
	if err != nil {
		return nil, fmt.Errorf("level %d missions: %w", level.Number, err)
	}
	for _, m := range missions.Rules {
		engine.record(&events, Event{Kind: EventMissionAssigned, Payload: MissionAssignedPayload{Mission: m}})
	}

	comm, err := NewCommunicationPolicy(players, level, pi)
	if err != nil {
		return nil, fmt.Errorf("level %d communication: %w", level.Number, err)
	}
	engine.WithCommunication(comm)

	res, err := engine.Play(players, captain, missions.Rules, missions.Order)
	if err != nil {
		return nil, err
	}
	res.Events = append(events, res.Events...)
	res.Communication = comm
	return res, nil
}

// fromCaptain rotates the seating so the captain comes first.
func fromCaptain(players []*domain.Player, captain *domain.Player) []*domain.Player {
	start := indexOf(players, captain.ID)
	out := make([]*domain.Player, 0, len(players))
	for i := range players {
		out = append(out, players[(start+i)%len(players)])
	}
	return out
}
