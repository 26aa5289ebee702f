// Package rediskv stores the console session in Redis so several operator
// shells can share one login.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// DefaultPrefix namespaces every key written by the console.
const DefaultPrefix = "wevraa:admin:"

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

var _ credentials.Backend = (*Repository)(nil)

type Repository struct {
	client *redis.Client
	prefix string
}

// NewRepository wraps client. An empty prefix selects DefaultPrefix.
func NewRepository(client *redis.Client, prefix string) *Repository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Repository{client: client, prefix: prefix}
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// SetMany writes all entries in a MULTI/EXEC block.
func (r *Repository) SetMany(ctx context.Context, entries ...credentials.Entry) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, e := range entries {
			p.Set(ctx, r.key(e.Key), e.Value, e.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (r *Repository) key(k string) string {
	return r.prefix + k
}
