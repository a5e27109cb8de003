package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type BotIdentity struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy", "medium", "hard"
	AvatarIndex int    `json:"avatar_index"`
}

// Level maps the identity's difficulty to a strategy.
func (b BotIdentity) Level() (BotLevel, error) {
	return ParseLevel(b.Difficulty)
}

var (
	botIdentities []BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index. Once the pool runs out,
// identities repeat with a lap number appended so every seat stays distinct.
func GetBotIdentity(index int) BotIdentity {
	return identityAt(botIdentities, index)
}

func identityAt(pool []BotIdentity, index int) BotIdentity {
	if len(pool) == 0 {
		return BotIdentity{
			Username:    fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
		}
	}
	id := pool[index%len(pool)]
	if lap := index / len(pool); lap > 0 {
		id.Username = fmt.Sprintf("%s_%d", id.Username, lap+1)
		id.DisplayName = fmt.Sprintf("%s %d", id.DisplayName, lap+1)
	}
	return id
}
