package bot

import (
	"errors"
	"fmt"
	"strings"

	"crew/internal/app"
	"crew/internal/domain"
)

var (
	ErrNoAgent      = errors.New("no agent seated for player")
	ErrNoCards      = errors.New("player has no cards left")
	ErrUnknownLevel = errors.New("unknown bot level")
)

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(player *domain.Player, round *domain.Round) (domain.Card, error)
	OnEvent(event app.Event)
}

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelRandom BotLevel = iota
	BotLevelGood
	BotLevelSmart
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelRandom:
		return "random"
	case BotLevelGood:
		return "good"
	case BotLevelSmart:
		return "smart"
	default:
		return fmt.Sprintf("BotLevel(%d)", int(l))
	}
}

// ParseLevel accepts level names and the difficulty labels used in identity files.
func ParseLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "easy":
		return BotLevelRandom, nil
	case "good", "medium":
		return BotLevelGood, nil
	case "smart", "hard", "":
		return BotLevelSmart, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
}
