package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "pricing:snapshot:"

// RedisSnapshotStore implements PriceSnapshotStore using Redis. Suitable
// for distributed deployments where multiple instances share quote state.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a Redis-backed snapshot store
func NewRedisSnapshotStore(cfg config.RedisConfig) (*RedisSnapshotStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotStore{client: client}, nil
}

// NewRedisSnapshotStoreWithClient creates a store with an existing client.
// Useful for testing or sharing a client across components.
func NewRedisSnapshotStoreWithClient(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func snapshotKey(cruiseID uuid.UUID, category catalog.CabinCategory) string {
	return snapshotKeyPrefix + cruiseID.String() + ":" + category.String()
}

// Get returns the snapshot for a pair; the boolean is false on a miss
func (s *RedisSnapshotStore) Get(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*PriceSnapshot, bool, error) {
	data, err := s.client.Get(ctx, snapshotKey(cruiseID, category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read price snapshot: %w", err)
	}

	var snapshot PriceSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupt entry is treated as a miss and dropped
		_ = s.client.Del(ctx, snapshotKey(cruiseID, category)).Err()
		return nil, false, nil
	}
	return &snapshot, true, nil
}

// Set stores a snapshot with the given TTL
func (s *RedisSnapshotStore) Set(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, snapshot PriceSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode price snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(cruiseID, category), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store price snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot for a pair
func (s *RedisSnapshotStore) Invalidate(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) error {
	return s.client.Del(ctx, snapshotKey(cruiseID, category)).Err()
}

// Ping reports whether Redis is reachable
func (s *RedisSnapshotStore) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}

// Ensure RedisSnapshotStore implements PriceSnapshotStore
var _ PriceSnapshotStore = (*RedisSnapshotStore)(nil)
