package nakama

import (
	"context"
	"database/sql"

	"crew/internal/app"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type rpcFunc = func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)

// recordingInitializer captures registered RPCs. Calling any other method panics.
type recordingInitializer struct {
	runtime.Initializer
	rpcs map[string]rpcFunc
}

func (r *recordingInitializer) RegisterRpc(id string, fn rpcFunc) error {
	if r.rpcs == nil {
		r.rpcs = make(map[string]rpcFunc)
	}
	r.rpcs[id] = fn
	return nil
}

// withLevels swaps the level catalogue for the duration of a test.
func withLevels(t interface{ Cleanup(func()) }, levels []app.LevelDefinition) {
	prev := levelSource
	levelSource = func() []app.LevelDefinition { return levels }
	t.Cleanup(func() { levelSource = prev })
}

func rpcContext(user string, env map[string]string) context.Context {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, user)
	if env != nil {
		ctx = context.WithValue(ctx, runtime.RUNTIME_CTX_ENV, env)
	}
	return ctx
}

// memoryStorage keeps storage objects in a map. Calling any other module method panics.
type memoryStorage struct {
	runtime.NakamaModule
	objects map[string]*runtime.StorageWrite
}

func storageKey(collection, key, userID string) string {
	return collection + "/" + key + "/" + userID
}

func (m *memoryStorage) StorageWrite(_ context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if m.objects == nil {
		m.objects = make(map[string]*runtime.StorageWrite)
	}
	acks := make([]*api.StorageObjectAck, 0, len(writes))
	for _, w := range writes {
		m.objects[storageKey(w.Collection, w.Key, w.UserID)] = w
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key, UserId: w.UserID})
	}
	return acks, nil
}

func (m *memoryStorage) StorageRead(_ context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	var out []*api.StorageObject
	for _, r := range reads {
		w, ok := m.objects[storageKey(r.Collection, r.Key, r.UserID)]
		if !ok {
			continue
		}
		out = append(out, &api.StorageObject{
			Collection:      w.Collection,
			Key:             w.Key,
			UserId:          w.UserID,
			Value:           w.Value,
			PermissionRead:  int32(w.PermissionRead),
			PermissionWrite: int32(w.PermissionWrite),
		})
	}
	return out, nil
}
