package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/forkfeed/forkfeed/pkg/config"
	"github.com/forkfeed/forkfeed/pkg/logging"
)

// ErrMirrorDisabled is returned when mirror operations are attempted but the
// mirror is disabled
var ErrMirrorDisabled = fmt.Errorf("collection mirror is disabled")

// ErrMiss is returned when a (kind, scope) key has no mirrored value
var ErrMiss = fmt.Errorf("collection not mirrored")

// Mirror keeps JSON copies of fetched collections in Redis so a restarted
// client can serve reads before its first backend round trip. It is
// best-effort and never the source of truth: the query layer overwrites it
// on every successful fetch and drops it on invalidation.
type Mirror struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates the collection mirror. Returns (nil, nil) when disabled by
// configuration; a nil *Mirror is safe to call.
func New(cfg *config.RedisConfig) (*Mirror, error) {
	if !cfg.Enabled {
		logging.GetLogger().Info("Collection mirror disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Collection mirror connected")

	return &Mirror{
		client: client,
		ttl:    24 * time.Hour,
	}, nil
}

// Key builds the mirror key for a (kind, scope) fetch
func Key(kind, scope string) string {
	if scope == "" {
		return "collection:" + kind
	}
	return "collection:" + kind + ":" + scope
}

// Put stores a collection under its (kind, scope) key
func (m *Mirror) Put(ctx context.Context, kind, scope string, collection interface{}) error {
	if m == nil || m.client == nil {
		return ErrMirrorDisabled
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to marshal %s collection: %w", kind, err)
	}
	return m.client.Set(ctx, Key(kind, scope), data, m.ttl).Err()
}

// Get loads a mirrored collection into out. Returns ErrMiss when the key is
// absent.
func (m *Mirror) Get(ctx context.Context, kind, scope string, out interface{}) error {
	if m == nil || m.client == nil {
		return ErrMirrorDisabled
	}
	data, err := m.client.Get(ctx, Key(kind, scope)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// Drop removes a mirrored collection
func (m *Mirror) Drop(ctx context.Context, kind, scope string) error {
	if m == nil || m.client == nil {
		return ErrMirrorDisabled
	}
	return m.client.Del(ctx, Key(kind, scope)).Err()
}

// Close closes the Redis connection
func (m *Mirror) Close() error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Close()
}

// Health checks mirror health
func (m *Mirror) Health(ctx context.Context) error {
	if m == nil || m.client == nil {
		return ErrMirrorDisabled
	}
	return m.client.Ping(ctx).Err()
}
