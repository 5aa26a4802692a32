package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "kanban:"

// Redis stores each key as a plain string value under Prefix+key, no TTL.
type Redis struct {
	client *redis.Client
	Prefix string
}

// OpenRedis connects using opts.RedisAddr, which may be a host:port or a
// redis:// URL, and pings the server before returning.
func OpenRedis(ctx context.Context, opts Options) (*Redis, error) {
	addr := strings.TrimSpace(opts.RedisAddr)
	if addr == "" {
		return nil, errors.New("kv: redis backend needs an address")
	}
	ropts, err := redis.ParseURL(addr)
	if err != nil {
		ropts = &redis.Options{Addr: addr}
	}
	if opts.RedisPassword != "" {
		ropts.Password = opts.RedisPassword
	}
	if opts.RedisDB != 0 {
		ropts.DB = opts.RedisDB
	}
	client := redis.NewClient(ropts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kv: redis ping %s: %w", ropts.Addr, err)
	}
	return NewRedis(client, opts.RedisPrefix), nil
}

// NewRedis wraps an existing client; the Redis value takes ownership of it.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{client: client, Prefix: prefix}
}

func (s *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	b, err := s.client.Get(ctx, s.Prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, true, nil
}

func (s *Redis) Write(ctx context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.client.Set(ctx, s.Prefix+key, value, 0).Err()
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.client.Del(ctx, s.Prefix+key).Err()
}

func (s *Redis) Close() error { return s.client.Close() }
