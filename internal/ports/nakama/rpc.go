package nakama

import (
	"context"
	"database/sql"

	"crew/internal/app"
	"crew/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// levelSource supplies the level catalogue; tests swap it.
var levelSource = config.GetLevels

// RegisterRPCs registers every crew RPC with the initializer.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcPlayLevel:  RpcPlayLevelHandler,
		RpcListLevels: RpcListLevelsHandler,
		RpcVoiceToken: RpcVoiceTokenHandler,
	}
	for _, id := range []string{RpcPlayLevel, RpcListLevels, RpcVoiceToken} {
		if err := initializer.RegisterRpc(id, rpcs[id]); err != nil {
			return err
		}
	}
	return nil
}

// RpcListLevelsHandler returns the configured levels.
//
// Returns: {"levels": [{"number": 1, "card_missions": 1, ...}]}
func RpcListLevelsHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	levels := levelSource()
	st, err := levelsToStruct(levels)
	if err != nil {
		logger.Error("RpcListLevels: Failed to convert levels: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return marshal(logger, st)
}

func findLevel(number int) (app.LevelDefinition, error) {
	return app.FindLevel(levelSource(), number)
}

func marshal(logger runtime.Logger, st *structpb.Struct) (string, error) {
	out, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(st)
	if err != nil {
		logger.Error("Failed to marshal response: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(out), nil
}
