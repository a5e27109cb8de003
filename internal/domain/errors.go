package domain

import "errors"

var (
	ErrDuplicatePlay   = errors.New("player already played this round")
	ErrDuplicateCard   = errors.New("card already played this round")
	ErrUnknownPlayer   = errors.New("player is not part of this round")
	ErrIncompleteRound = errors.New("not all players have played")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrInvalidCard     = errors.New("card is not part of the deck")
	ErrEmptyHistory    = errors.New("no rounds played")
	ErrHistoryFull     = errors.New("all rounds already played")
	ErrUnknownRule     = errors.New("unknown mission rule kind")
	ErrUnknownMission  = errors.New("mission is not tracked")
)
