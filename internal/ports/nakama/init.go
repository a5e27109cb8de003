package nakama

import (
	"context"
	"database/sql"

	"crew/internal/bot"
	"crew/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads configuration and wires the crew RPCs into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("InitModule: Could not load game config, using built-in levels: %v", err)
	}
	if err := bot.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.WithField("levels", len(config.GetLevels())).Info("Crew Go module loaded.")
	return nil
}
