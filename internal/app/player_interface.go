package app

import "crew/internal/domain"

// CardSelector picks the next card a player puts on the table. The card must be
// in the player's hand; the engine reports anything else as ErrCardNotInHand.
type CardSelector interface {
	SelectCard(player *domain.Player, round *domain.Round) (domain.Card, error)
}

// SetupSelector makes the pre-game choices of a level.
type SetupSelector interface {
	// SelectMission picks one of remaining for the player. ok=false means skip and
	// is only honored when canSkip is true.
	SelectMission(player domain.PlayerID, remaining []domain.Card, canSkip bool) (card domain.Card, ok bool, err error)
	// SelectBlockedPlayers picks count players who may not communicate.
	SelectBlockedPlayers(players []*domain.Player, count int) ([]*domain.Player, error)
	// SelectPlayerThatShouldNotWin picks the player bound by a never-win mission.
	SelectPlayerThatShouldNotWin(players []*domain.Player) (*domain.Player, error)
}

// PlayerInterface is the full decision source for a game: human, bot or scripted.
type PlayerInterface interface {
	CardSelector
	SetupSelector
}

// EventObserver receives game events as the engine produces them. A
// PlayerInterface that also implements it is notified during PlayLevel.
type EventObserver interface {
	OnEvent(Event)
}
