package app

import (
	"fmt"

	"crew/internal/domain"
)

// OrderToken marks a card mission with an ordering requirement.
type OrderToken string

const (
	FirstAbsolute  OrderToken = "first_absolute"
	SecondAbsolute OrderToken = "second_absolute"
	ThirdAbsolute  OrderToken = "third_absolute"
	FourthAbsolute OrderToken = "fourth_absolute"
	FifthAbsolute  OrderToken = "fifth_absolute"
	LastAbsolute   OrderToken = "last_absolute"
	FirstRelative  OrderToken = "first_relative"
	SecondRelative OrderToken = "second_relative"
	ThirdRelative  OrderToken = "third_relative"
	FourthRelative OrderToken = "fourth_relative"
)

// absolutePosition returns the fixed success position of an absolute token.
// LastAbsolute resolves against the total mission count.
func (t OrderToken) absolutePosition(missionCount int) (int, bool) {
	switch t {
	case FirstAbsolute:
		return 1, true
	case SecondAbsolute:
		return 2, true
	case ThirdAbsolute:
		return 3, true
	case FourthAbsolute:
		return 4, true
	case FifthAbsolute:
		return 5, true
	case LastAbsolute:
		return missionCount, true
	}
	return 0, false
}

// relativeRank returns the chain position of a relative token.
func (t OrderToken) relativeRank() (int, bool) {
	switch t {
	case FirstRelative:
		return 1, true
	case SecondRelative:
		return 2, true
	case ThirdRelative:
		return 3, true
	case FourthRelative:
		return 4, true
	}
	return 0, false
}

// MissionType names a mission rule family member in level files.
type MissionType string

const (
	MissionPlayerHasToWinCard   MissionType = "player_has_to_win_card"
	MissionNeverWinWithNumber   MissionType = "never_win_with_number"
	MissionWinOnceWithNumber    MissionType = "win_once_with_number"
	MissionWinWithAllTheseCards MissionType = "win_with_all_these_cards"
	MissionPlayerShouldNeverWin MissionType = "player_should_never_win"
)

// CommunicationType names a communication restriction in level files.
type CommunicationType string

const (
	CommunicationRegular           CommunicationType = "regular"
	CommunicationDeadZone          CommunicationType = "dead_zone"
	CommunicationBlockedPlayers    CommunicationType = "blocked_for_number_of_player"
	CommunicationBlockedUntilRound CommunicationType = "blocked_until_round"
)

// MissionCount asks for Count missions of Type.
type MissionCount struct {
	Type  MissionType `json:"type"`
	Count int         `json:"count"`
}

// MissionMetadata carries the parameters of static missions.
type MissionMetadata struct {
	NeverWinNumber int      `json:"never_win_number,omitempty"`
	WinOnceNumber  int      `json:"win_once_number,omitempty"`
	CardsToWin     []string `json:"cards_to_win,omitempty"`
}

// LevelDefinition describes the missions and restrictions of one level.
type LevelDefinition struct {
	Number         int               `json:"number"`
	OrderTokens    []OrderToken      `json:"order_tokens,omitempty"`
	Missions       []MissionCount    `json:"missions"`
	Communication  CommunicationType `json:"communication"`
	BlockedPlayers int               `json:"blocked_players,omitempty"`
	StartingRound  int               `json:"starting_round,omitempty"`
	Metadata       MissionMetadata   `json:"metadata"`
}

// CardMissionCount returns how many player-must-win-card missions the level needs.
func (l LevelDefinition) CardMissionCount() int {
	n := 0
	for _, m := range l.Missions {
		if m.Type == MissionPlayerHasToWinCard {
			n += m.Count
		}
	}
	return n
}

// Validate checks that the level only names known missions, tokens and restrictions.
func (l LevelDefinition) Validate() error {
	static := make(map[MissionType]bool)
	for _, m := range l.Missions {
		switch m.Type {
		case MissionPlayerHasToWinCard:
			continue
		case MissionNeverWinWithNumber, MissionWinOnceWithNumber,
			MissionWinWithAllTheseCards, MissionPlayerShouldNeverWin:
		default:
			return fmt.Errorf("level %d mission %q: %w", l.Number, m.Type, ErrUnsupportedMission)
		}
		// A static mission is a single rule; asking for it twice would track one rule
		// while counting two positions.
		if m.Count != 1 || static[m.Type] {
			return fmt.Errorf("level %d mission %q: %w", l.Number, m.Type, ErrStaticMissionCount)
		}
		static[m.Type] = true

		switch m.Type {
		case MissionWinWithAllTheseCards:
			if _, err := parseCards(l.Metadata.CardsToWin); err != nil {
				return fmt.Errorf("level %d: %w", l.Number, err)
			}
		case MissionNeverWinWithNumber:
			if !validRank(l.Metadata.NeverWinNumber) {
				return fmt.Errorf("level %d never_win_number %d: %w", l.Number, l.Metadata.NeverWinNumber, ErrMissionRank)
			}
		case MissionWinOnceWithNumber:
			if !validRank(l.Metadata.WinOnceNumber) {
				return fmt.Errorf("level %d win_once_number %d: %w", l.Number, l.Metadata.WinOnceNumber, ErrMissionRank)
			}
		}
	}
	if len(l.OrderTokens) > l.CardMissionCount() {
		return fmt.Errorf("level %d has %d tokens for %d card missions: %w", l.Number, len(l.OrderTokens), l.CardMissionCount(), ErrTooManyOrderTokens)
	}
	for _, t := range l.OrderTokens {
		if _, ok := t.absolutePosition(0); ok {
			continue
		}
		if _, ok := t.relativeRank(); !ok {
			return fmt.Errorf("level %d token %q: %w", l.Number, t, ErrUnknownOrderToken)
		}
	}
	switch l.Communication {
	case CommunicationRegular, CommunicationDeadZone, CommunicationBlockedUntilRound, CommunicationBlockedPlayers, "":
	default:
		return fmt.Errorf("level %d communication %q: %w", l.Number, l.Communication, ErrUnsupportedComm)
	}
	return nil
}

// DefaultLevels are the built-in levels.
var DefaultLevels = []LevelDefinition{
	{
		Number:        1,
		Missions:      []MissionCount{{Type: MissionPlayerHasToWinCard, Count: 1}},
		Communication: CommunicationRegular,
	},
	{
		Number:        2,
		Missions:      []MissionCount{{Type: MissionPlayerHasToWinCard, Count: 2}},
		Communication: CommunicationRegular,
	},
	{
		Number:        3,
		OrderTokens:   []OrderToken{FirstAbsolute, SecondAbsolute},
		Missions:      []MissionCount{{Type: MissionPlayerHasToWinCard, Count: 2}},
		Communication: CommunicationRegular,
	},
	{
		Number:        4,
		Missions:      []MissionCount{{Type: MissionPlayerHasToWinCard, Count: 3}},
		Communication: CommunicationRegular,
	},
	{
		Number:        5,
		Missions:      []MissionCount{{Type: MissionPlayerShouldNeverWin, Count: 1}},
		Communication: CommunicationRegular,
	},
}

// FindLevel returns the level with the given number.
func FindLevel(levels []LevelDefinition, number int) (LevelDefinition, error) {
	for _, l := range levels {
		if l.Number == number {
			return l, nil
		}
	}
	return LevelDefinition{}, fmt.Errorf("level %d: %w", number, ErrUnknownLevel)
}

func validRank(rank int) bool {
	return rank >= 1 && rank <= domain.MaxRegularRank
}

func parseCards(names []string) (domain.CardSet, error) {
	var set domain.CardSet
	for _, n := range names {
		c, err := domain.ParseCard(n)
		if err != nil {
			return 0, err
		}
		set = set.Add(c)
	}
	return set, nil
}
