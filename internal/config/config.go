package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"crew/internal/app"
	"crew/internal/domain"
)

var ErrInvalidConfig = errors.New("invalid game config")

// VoiceConfig holds the voice chat signing parameters. The secret is usually
// left empty here and supplied through the runtime environment.
type VoiceConfig struct {
	Issuer string `json:"issuer"`
	Domain string `json:"domain"`
	Secret string `json:"secret"`
}

type GameConfig struct {
	Levels []app.LevelDefinition `json:"levels"`
	// DefaultBotLevel is used by playthroughs that do not ask for a level.
	DefaultBotLevel string `json:"default_bot_level"`
	// ValidationPolicy is "break_first" (default) or "interleaved".
	ValidationPolicy string      `json:"validation_policy"`
	Voice            VoiceConfig `json:"voice"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ParseGameConfig decodes and validates a configuration document.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects duplicate or malformed levels and unknown policy names.
func (c *GameConfig) Validate() error {
	seen := make(map[int]bool, len(c.Levels))
	for _, l := range c.Levels {
		if seen[l.Number] {
			return fmt.Errorf("level %d defined twice: %w", l.Number, ErrInvalidConfig)
		}
		seen[l.Number] = true
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := parsePolicy(c.ValidationPolicy); err != nil {
		return err
	}
	return nil
}

// GetLevels returns the configured levels, or the built-in ones when none are loaded.
func GetLevels() []app.LevelDefinition {
	if cfg == nil || len(cfg.Levels) == 0 {
		return app.DefaultLevels
	}
	return cfg.Levels
}

// GetValidationPolicy returns the configured policy, defaulting to break-first.
func GetValidationPolicy() domain.ValidationPolicy {
	if cfg == nil {
		return domain.PolicyBreakFirst
	}
	p, _ := parsePolicy(cfg.ValidationPolicy)
	return p
}

// GetVoiceConfig returns the voice settings, empty when no config is loaded.
func GetVoiceConfig() VoiceConfig {
	if cfg == nil {
		return VoiceConfig{}
	}
	return cfg.Voice
}

// GetDefaultBotLevel returns the configured bot level name, or "smart".
func GetDefaultBotLevel() string {
	if cfg == nil || cfg.DefaultBotLevel == "" {
		return "smart"
	}
	return cfg.DefaultBotLevel
}

func parsePolicy(name string) (domain.ValidationPolicy, error) {
	switch name {
	case "", "break_first":
		return domain.PolicyBreakFirst, nil
	case "interleaved":
		return domain.PolicyInterleaved, nil
	}
	return domain.PolicyBreakFirst, fmt.Errorf("validation policy %q: %w", name, ErrInvalidConfig)
}
