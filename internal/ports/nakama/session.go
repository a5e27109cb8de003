package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crew/internal/app"
	"crew/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	sessionCollection = "crew_sessions"
	sessionKey        = "current"
)

var errNoSession = errors.New("no crew game recorded for user")

// crewSession is the server's record of the last game a user played. Voice
// tokens are checked against it, never against what the client reports.
type crewSession struct {
	Level   int               `json:"level"`
	Players int               `json:"players"`
	Seat    domain.PlayerID   `json:"seat"`
	Round   int               `json:"round"`
	Blocked []domain.PlayerID `json:"blocked,omitempty"`
}

func newCrewSession(level app.LevelDefinition, seat domain.PlayerID, res *app.Result) crewSession {
	s := crewSession{
		Level:   level.Number,
		Players: len(res.Players),
		Seat:    seat,
		Round:   res.History.Len(),
	}
	if bp, ok := res.Communication.(app.BlockedPlayersCommunication); ok {
		for _, p := range res.Players {
			if bp.Blocked[p.ID] {
				s.Blocked = append(s.Blocked, p.ID)
			}
		}
	}
	return s
}

// policy rebuilds the communication policy the recorded game was played under.
func (s crewSession) policy() (app.CommunicationPolicy, error) {
	level, err := findLevel(s.Level)
	if err != nil {
		return nil, err
	}
	players := make([]*domain.Player, 0, s.Players)
	for i := 1; i <= s.Players; i++ {
		players = append(players, domain.NewPlayer(domain.PlayerID(i), ""))
	}
	return app.NewCommunicationPolicy(players, level, presetSetup{blocked: s.Blocked})
}

// writeSession stores s for userID. Clients may read their record but never write it.
func writeSession(ctx context.Context, nk runtime.NakamaModule, userID string, s crewSession) error {
	value, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal crew session: %w", err)
	}
	_, err = nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      sessionCollection,
			Key:             sessionKey,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write crew session: %w", err)
	}
	return nil
}

// readSession returns the record of userID, or errNoSession when none exists.
func readSession(ctx context.Context, nk runtime.NakamaModule, userID string) (crewSession, error) {
	objects, err := nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: sessionCollection,
			Key:        sessionKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return crewSession{}, fmt.Errorf("failed to read crew session: %w", err)
	}
	if len(objects) == 0 {
		return crewSession{}, errNoSession
	}
	var s crewSession
	if err := json.Unmarshal([]byte(objects[0].Value), &s); err != nil {
		return crewSession{}, fmt.Errorf("failed to unmarshal crew session: %w", err)
	}
	return s, nil
}
