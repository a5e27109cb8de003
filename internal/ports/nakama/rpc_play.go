package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"crew/internal/app"
	"crew/internal/bot"
	"crew/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

type playLevelRequest struct {
	Level   int    `json:"level"`
	Players int    `json:"players"`
	Seed    int64  `json:"seed"`
	Bot     string `json:"bot"`
	// Seat is the player the caller follows, and the seat voice tokens are issued for.
	Seat int `json:"seat"`
}

// loggedTable is a bot table that also writes every game event to the runtime log.
type loggedTable struct {
	*bot.Table
	logger runtime.Logger
}

func (t loggedTable) OnEvent(ev app.Event) {
	t.logger.WithFields(map[string]interface{}{
		"event": string(ev.Kind),
		"round": ev.Round,
	}).Debug("%+v", ev.Payload)
	t.Table.OnEvent(ev)
}

// RpcPlayLevelHandler plays a level with a crew of bots and returns the result.
//
// Payload: {"level": 3, "players": 4, "seed": 42, "bot": "smart", "seat": 1}
// Returns: the playthrough summary as JSON. The game is recorded for the caller.
func RpcPlayLevelHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	req := playLevelRequest{Players: defaultCrewSize, Seat: 1}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}

	level, err := findLevel(req.Level)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeNotFound)
	}

	botLevel, err := bot.ParseLevel(botLevelName(ctx, req.Bot))
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log := logger.WithFields(map[string]interface{}{
		"user":  userID,
		"level": level.Number,
		"bot":   botLevel.String(),
		"seed":  seed,
	})

	players, table, err := bot.NewCrew(req.Players, botLevel, rng)
	if err != nil {
		if errors.Is(err, app.ErrTooFewPlayers) || errors.Is(err, app.ErrTooManyPlayers) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		log.Error("RpcPlayLevel: Failed to seat bots: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	if req.Seat < 1 || req.Seat > len(players) {
		return "", runtime.NewError("Seat is not at the table", codeInvalidArgument)
	}

	res, err := app.NewService(rng).
		WithPolicy(config.GetValidationPolicy()).
		PlayLevel(level, players, loggedTable{Table: table, logger: log})
	if err != nil {
		log.Error("RpcPlayLevel: Playthrough failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	log.WithField("outcome", res.Outcome.String()).Info("RpcPlayLevel: %d of %d rounds played", res.History.Len(), res.History.TotalRounds())

	if userID != "" {
		if err := writeSession(ctx, nk, userID, newCrewSession(level, players[req.Seat-1].ID, res)); err != nil {
			log.Error("RpcPlayLevel: %v", err)
			return "", runtime.NewError("Internal error", codeInternal)
		}
	}

	st, err := resultToStruct(level, res)
	if err != nil {
		log.Error("RpcPlayLevel: Failed to convert result: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return marshal(log, st)
}

// botLevelName picks the request's level, then the runtime env, then the config.
func botLevelName(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok && env[EnvBotLevel] != "" {
		return env[EnvBotLevel]
	}
	return config.GetDefaultBotLevel()
}

var (
	_ app.PlayerInterface = loggedTable{}
	_ app.EventObserver   = loggedTable{}
)
