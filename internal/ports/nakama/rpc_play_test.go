package nakama

import (
	"testing"

	"crew/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRpcPlayLevel(t *testing.T) {
	withLevels(t, app.DefaultLevels)
	ctx := rpcContext("user123", map[string]string{EnvBotLevel: "good"})

	raw, err := RpcPlayLevelHandler(ctx, noopLogger{}, nil, &memoryStorage{}, `{"level": 2, "seed": 42}`)
	if err != nil {
		t.Fatalf("RpcPlayLevel error: %v", err)
	}

	fields := decode(t, raw).GetFields()
	if got := fields["level"].GetNumberValue(); got != 2 {
		t.Fatalf("level = %v, want 2", got)
	}
	if got := fields["outcome"].GetStringValue(); got != "won" && got != "lost" {
		t.Fatalf("outcome = %q", got)
	}
	missions := fields["missions"].GetListValue().GetValues()
	if len(missions) != 2 {
		t.Fatalf("missions = %d, want 2", len(missions))
	}
	for _, m := range missions {
		switch status := m.GetStructValue().GetFields()["status"].GetStringValue(); status {
		case "pending", "succeeded", "failed":
		default:
			t.Fatalf("mission status = %q", status)
		}
	}
	if got := len(fields["players"].GetListValue().GetValues()); got != defaultCrewSize {
		t.Fatalf("players = %d, want %d", got, defaultCrewSize)
	}
	played := fields["rounds_played"].GetNumberValue()
	if got := len(fields["rounds"].GetListValue().GetValues()); float64(got) != played {
		t.Fatalf("rounds listed = %d, rounds_played = %v", got, played)
	}
}

func TestRpcPlayLevelIsDeterministicForSeed(t *testing.T) {
	withLevels(t, app.DefaultLevels)
	ctx := rpcContext("user123", nil)

	first, err := RpcPlayLevelHandler(ctx, noopLogger{}, nil, &memoryStorage{}, `{"level": 4, "seed": 7, "bot": "smart"}`)
	if err != nil {
		t.Fatalf("RpcPlayLevel error: %v", err)
	}
	second, err := RpcPlayLevelHandler(ctx, noopLogger{}, nil, &memoryStorage{}, `{"level": 4, "seed": 7, "bot": "smart"}`)
	if err != nil {
		t.Fatalf("RpcPlayLevel error: %v", err)
	}
	if !proto.Equal(decode(t, first), decode(t, second)) {
		t.Fatal("same seed should replay the same game")
	}
}

func TestRpcPlayLevelRejects(t *testing.T) {
	withLevels(t, app.DefaultLevels)
	cases := []struct {
		name    string
		payload string
		code    int
	}{
		{name: "malformed", payload: `{"level":`, code: codeInvalidArgument},
		{name: "unknown level", payload: `{"level": 99}`, code: codeNotFound},
		{name: "unknown bot", payload: `{"level": 1, "bot": "oracle"}`, code: codeInvalidArgument},
		{name: "crew too large", payload: `{"level": 1, "players": 6}`, code: codeInvalidArgument},
		{name: "seat off the table", payload: `{"level": 1, "players": 3, "seat": 4}`, code: codeInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RpcPlayLevelHandler(rpcContext("user123", nil), noopLogger{}, nil, &memoryStorage{}, tc.payload)
			rerr, ok := err.(*runtime.Error)
			if !ok {
				t.Fatalf("err = %v, want *runtime.Error", err)
			}
			if int(rerr.Code) != tc.code {
				t.Fatalf("code = %d, want %d", rerr.Code, tc.code)
			}
		})
	}
}

func TestRpcPlayLevelRecordsSession(t *testing.T) {
	withLevels(t, app.DefaultLevels)
	store := &memoryStorage{}
	ctx := rpcContext("user123", nil)

	raw, err := RpcPlayLevelHandler(ctx, noopLogger{}, nil, store, `{"level": 3, "players": 5, "seed": 11, "seat": 4}`)
	if err != nil {
		t.Fatalf("RpcPlayLevel error: %v", err)
	}
	w, ok := store.objects[storageKey(sessionCollection, sessionKey, "user123")]
	if !ok {
		t.Fatal("no session stored for user")
	}
	if w.PermissionWrite != runtime.STORAGE_PERMISSION_NO_WRITE {
		t.Fatalf("write permission = %d, want no client writes", w.PermissionWrite)
	}

	s, err := readSession(ctx, store, "user123")
	if err != nil {
		t.Fatalf("readSession error: %v", err)
	}
	played := decode(t, raw).GetFields()["rounds_played"].GetNumberValue()
	if s.Level != 3 || s.Players != 5 || s.Seat != 4 || float64(s.Round) != played {
		t.Fatalf("session = %+v, rounds played %v", s, played)
	}
}

func decode(t *testing.T, raw string) *structpb.Struct {
	t.Helper()
	var st structpb.Struct
	if err := protojson.Unmarshal([]byte(raw), &st); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return &st
}
