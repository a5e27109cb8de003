package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"crew/internal/app"
	"crew/internal/config"
	"crew/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

type voiceTokenRequest struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// presetSetup replays the blocked players chosen when the game was set up.
type presetSetup struct {
	blocked []domain.PlayerID
}

func (p presetSetup) SelectMission(domain.PlayerID, []domain.Card, bool) (domain.Card, bool, error) {
	return domain.Card{}, false, app.ErrInvalidSelection
}

func (p presetSetup) SelectBlockedPlayers(players []*domain.Player, count int) ([]*domain.Player, error) {
	out := make([]*domain.Player, 0, len(p.blocked))
	for _, pl := range players {
		for _, id := range p.blocked {
			if pl.ID == id {
				out = append(out, pl)
			}
		}
	}
	return out, nil
}

func (p presetSetup) SelectPlayerThatShouldNotWin([]*domain.Player) (*domain.Player, error) {
	return nil, app.ErrInvalidSelection
}

// newVoiceService builds the signer from the config file, overridden by the runtime env.
func newVoiceService(ctx context.Context) *app.VoiceService {
	vc := config.GetVoiceConfig()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if v := env[EnvVoiceSecret]; v != "" {
			vc.Secret = v
		}
		if v := env[EnvVoiceIssuer]; v != "" {
			vc.Issuer = v
		}
		if v := env[EnvVoiceDomain]; v != "" {
			vc.Domain = v
		}
	}
	return app.NewVoiceService(vc.Secret, vc.Issuer, vc.Domain)
}

// RpcVoiceTokenHandler signs a voice chat token for the calling user. The seat,
// round and restrictions come from the user's last crew_play_level game.
//
// Payload: {"action": "login" | "join", "channel": "..."}
// Returns: {"token": "..."}
func RpcVoiceTokenHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("User required", codeInvalidArgument)
	}

	var req voiceTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	session, err := readSession(ctx, nk, userID)
	if err != nil {
		if errors.Is(err, errNoSession) {
			return "", runtime.NewError("No crew game in progress", codeFailedPrecondition)
		}
		logger.WithField("user", userID).Error("RpcVoiceToken: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	policy, err := session.policy()
	if err != nil {
		logger.WithField("user", userID).Warn("RpcVoiceToken: Recorded game no longer valid: %v", err)
		return "", runtime.NewError("No crew game in progress", codeFailedPrecondition)
	}

	token, err := newVoiceService(ctx).GenerateRoundToken(policy, session.Seat, session.Round, userID, req.Action, req.Channel)
	if err != nil {
		if errors.Is(err, app.ErrCommunicationBlocked) {
			return "", runtime.NewError("Communication is blocked this round", codeFailedPrecondition)
		}
		logger.WithField("user", userID).Warn("RpcVoiceToken: Failed to generate token: %v", err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	res, _ := json.Marshal(map[string]string{"token": token})
	return string(res), nil
}
