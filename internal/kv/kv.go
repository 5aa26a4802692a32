// Package kv is the persistent key-value store the board mirrors itself into.
//
// Every backend satisfies the same contract: Read reports ok=false for an
// absent key (never an error), and a Read after a Write returns the written
// bytes exactly.
package kv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type KV interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

var ErrClosed = errors.New("kv: store closed")

// Options selects and configures a backend.
type Options struct {
	Backend Backend

	// Dir holds the sqlite db (kanban.sqlite) or the file backend's kv/ directory.
	Dir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// RedisPrefix namespaces keys ("kanban:" when empty).
	RedisPrefix string
}

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown backend: %s (want sqlite|file|redis|memory)", s)
	}
}

// Open returns the configured backend. Callers own the result and must Close it.
func Open(ctx context.Context, opts Options) (KV, error) {
	backend, err := ParseBackend(string(opts.Backend))
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		if strings.TrimSpace(opts.Dir) == "" {
			return nil, errors.New("kv: file backend needs a data dir")
		}
		return NewFile(filepath.Join(opts.Dir, "kv"))
	case BackendRedis:
		return OpenRedis(ctx, opts)
	default:
		if strings.TrimSpace(opts.Dir) == "" {
			return nil, errors.New("kv: sqlite backend needs a data dir")
		}
		return OpenSQLite(ctx, filepath.Join(opts.Dir, "kanban.sqlite"))
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("kv: empty key")
	}
	return nil
}
