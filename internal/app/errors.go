package app

import "errors"

var (
	ErrTooFewPlayers        = errors.New("not enough players to start")
	ErrTooManyPlayers       = errors.New("too many players for one deck")
	ErrNoCaptain            = errors.New("no player holds the captain card")
	ErrUnknownLevel         = errors.New("level not found")
	ErrUnsupportedMission   = errors.New("unsupported mission type")
	ErrUnsupportedComm      = errors.New("unsupported communication type")
	ErrMissionCards         = errors.New("mission cards do not match the level")
	ErrTooManyOrderTokens   = errors.New("more order tokens than card missions")
	ErrIllegalSkip          = errors.New("mission skip not allowed")
	ErrInvalidSelection     = errors.New("selection not among the offered choices")
	ErrCommunicationBlocked = errors.New("player cannot communicate this round")
	ErrUnknownOrderToken    = errors.New("unknown order token")
	ErrStaticMissionCount   = errors.New("static missions are listed once with count 1")
	ErrMissionRank          = errors.New("mission rank must be a regular card rank")
)
