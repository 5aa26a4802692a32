package kv

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"kanban-cli/internal/model"
)

// DefaultKey is the key the board snapshot lives under.
const DefaultKey = "kanbanItems"

func EncodeSnapshot(s model.Snapshot) ([]byte, error) {
	return json.Marshal(s.Normalized())
}

func DecodeSnapshot(b []byte) (model.Snapshot, error) {
	var s model.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s.Normalized(), nil
}

// LoadSnapshot reads the snapshot stored under key. A missing key, or bytes
// that don't decode, yield an empty snapshot; only backend failures are
// returned as errors.
func LoadSnapshot(ctx context.Context, store KV, key string) (model.Snapshot, error) {
	b, ok, err := store.Read(ctx, key)
	if err != nil {
		return model.Snapshot{}.Normalized(), fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return model.Snapshot{}.Normalized(), nil
	}
	s, err := DecodeSnapshot(b)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("ignoring malformed board snapshot")
		return model.Snapshot{}.Normalized(), nil
	}
	return s, nil
}

func SaveSnapshot(ctx context.Context, store KV, key string, s model.Snapshot) error {
	b, err := EncodeSnapshot(s)
	if err != nil {
		return err
	}
	if err := store.Write(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
