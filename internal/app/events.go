package app

import "crew/internal/domain"

// EventKind identifies emitted game events for dispatch by a port.
type EventKind string

const (
	EventCardsDealt       EventKind = "cards_dealt"
	EventMissionAssigned  EventKind = "mission_assigned"
	EventRoundStarted     EventKind = "round_started"
	EventCardPlayed       EventKind = "card_played"
	EventRoundWon         EventKind = "round_won"
	EventMissionSucceeded EventKind = "mission_succeeded"
	EventMissionFailed    EventKind = "mission_failed"
	EventGameEnded        EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Round      int
	Payload    any
	Recipients []domain.PlayerID // empty means broadcast
}

type CardsDealtPayload struct {
	Player domain.PlayerID
	Hand   []domain.Card
}

type MissionAssignedPayload struct {
	Mission domain.Rule
}

type RoundStartedPayload struct {
	Leader        domain.PlayerID
	Communication map[domain.PlayerID]CommunicationResult
}

type CardPlayedPayload struct {
	Player domain.PlayerID
	Card   domain.Card
}

type RoundWonPayload struct {
	Winner domain.PlayerID
	Card   domain.Card
}

type MissionPayload struct {
	Mission  domain.Rule
	Position int // success position, 0 for failures
}

type GameEndedPayload struct {
	Outcome      domain.Outcome
	RoundsPlayed int
	TotalRounds  int
}
