package app

import (
	"fmt"

	"crew/internal/domain"
)

// Result is the record of one playthrough.
type Result struct {
	Players []*domain.Player
	History *domain.History
	Tracker *domain.Tracker
	Outcome domain.Outcome
	Phase   domain.Phase
	Events  []Event
	// Communication is the policy the game was played under.
	Communication CommunicationPolicy
}

// Engine drives a game: deal, play rounds and validate missions after each one.
type Engine struct {
	dealer        *Dealer
	rounds        *RoundEngine
	policy        domain.ValidationPolicy
	communication CommunicationPolicy
	observer      EventObserver
	phase         domain.Phase
}

// NewEngine wires an Engine from its collaborators.
func NewEngine(dealer *Dealer, rounds *RoundEngine) *Engine {
	return &Engine{dealer: dealer, rounds: rounds, communication: EnabledCommunication{}, phase: domain.PhaseNotStarted}
}

// Phase reports where the engine is in its game.
func (e *Engine) Phase() domain.Phase {
	return e.phase
}

// WithPolicy sets how break and satisfaction checks interleave.
func (e *Engine) WithPolicy(p domain.ValidationPolicy) *Engine {
	e.policy = p
	return e
}

// WithCommunication sets the per-round communication policy reported on round start.
func (e *Engine) WithCommunication(c CommunicationPolicy) *Engine {
	if c == nil {
		c = EnabledCommunication{}
	}
	e.communication = c
	return e
}

// WithObserver streams every event to o as it happens, in addition to collecting it
// in the Result.
func (e *Engine) WithObserver(o EventObserver) *Engine {
	e.observer = o
	return e
}

func (e *Engine) record(events *[]Event, ev Event) {
	*events = append(*events, ev)
	if e.observer != nil {
		e.observer.OnEvent(ev)
	}
}

// PlayGame deals the cards and plays until the missions are decided or the rounds run out.
func (e *Engine) PlayGame(players []*domain.Player, missions []domain.Rule, order domain.OrderConstraints) (*Result, error) {
	captain, events, err := e.Deal(players)
	if err != nil {
		return nil, err
	}
	res, err := e.Play(players, captain, missions, order)
	if err != nil {
		return nil, err
	}
	res.Events = append(events, res.Events...)
	return res, nil
}

// Deal distributes the deck and returns the captain with one private event per hand.
func (e *Engine) Deal(players []*domain.Player) (*domain.Player, []Event, error) {
	captain, err := e.dealer.Deal(players)
	if err != nil {
		return nil, nil, err
	}
	events := make([]Event, 0, len(players))
	for _, p := range players {
		e.record(&events, Event{
			Kind:       EventCardsDealt,
			Payload:    CardsDealtPayload{Player: p.ID, Hand: p.Hand.Cards()},
			Recipients: []domain.PlayerID{p.ID},
		})
	}
	return captain, events, nil
}

// Play runs the round loop on already dealt hands with captain leading round one.
func (e *Engine) Play(players []*domain.Player, captain *domain.Player, missions []domain.Rule, order domain.OrderConstraints) (*Result, error) {
	history := domain.NewHistory(domain.TotalRounds(domain.DeckSize, len(players)))
	tracker := domain.NewTracker(missions)
	tracker.SetPolicy(e.policy)

	e.phase = domain.PhasePlaying
	res := &Result{
		Players: players,
		History: history,
		Tracker: tracker,
		Phase:   e.phase,
	}

	leader := captain
	for !history.Finished() {
		number := history.Len() + 1
		e.record(&res.Events, Event{
			Kind:    EventRoundStarted,
			Round:   number,
			Payload: RoundStartedPayload{Leader: leader.ID, Communication: e.communicationFor(players, number)},
		})

		round, err := e.rounds.PlayRound(players, leader)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", number, err)
		}
		if err := history.Append(round); err != nil {
			return nil, err
		}
		last, err := history.Last()
		if err != nil {
			return nil, err
		}
		for _, p := range round.Plays() {
			e.record(&res.Events, Event{Kind: EventCardPlayed, Round: number, Payload: CardPlayedPayload{Player: p.Player, Card: p.Card}})
		}
		e.record(&res.Events, Event{Kind: EventRoundWon, Round: number, Payload: RoundWonPayload{Winner: last.Winner.Player, Card: last.Winner.Card}})

		before := len(tracker.Succeeded())
		resolution, err := tracker.Validate(history, order)
		if err != nil {
			return nil, fmt.Errorf("validate round %d: %w", number, err)
		}
		for i, m := range resolution.Succeeded {
			e.record(&res.Events, Event{Kind: EventMissionSucceeded, Round: number, Payload: MissionPayload{Mission: m, Position: before + i + 1}})
		}
		for _, m := range resolution.Failed {
			e.record(&res.Events, Event{Kind: EventMissionFailed, Round: number, Payload: MissionPayload{Mission: m}})
		}
		if resolution.Outcome != domain.OutcomeContinue {
			break
		}

		leader = players[indexOf(players, last.Winner.Player)]
	}

	res.Outcome = tracker.Outcome()
	e.phase = domain.PhaseFinished
	res.Phase = e.phase
	e.record(&res.Events, Event{
		Kind:    EventGameEnded,
		Round:   history.Len(),
		Payload: GameEndedPayload{Outcome: res.Outcome, RoundsPlayed: history.Len(), TotalRounds: history.TotalRounds()},
	})
	return res, nil
}

func (e *Engine) communicationFor(players []*domain.Player, round int) map[domain.PlayerID]CommunicationResult {
	out := make(map[domain.PlayerID]CommunicationResult, len(players))
	for _, p := range players {
		out[p.ID] = e.communication.CanCommunicate(p.ID, round)
	}
	return out
}
