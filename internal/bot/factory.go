package bot

import (
	"fmt"
	"math/rand"
	"time"

	"crew/internal/bot/brain"
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case BotLevelRandom:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return &RandomBot{rng: rng}, nil
	case BotLevelGood:
		return &GoodBot{}, nil
	case BotLevelSmart:
		return &SmartBot{Memory: brain.NewMemory()}, nil
	default:
		return nil, fmt.Errorf("level %d: %w", level, ErrUnknownLevel)
	}
}
