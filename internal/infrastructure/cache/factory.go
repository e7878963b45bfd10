package cache

import (
	"github.com/cruisehub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSnapshotStore creates a price snapshot store based on configuration.
// When Redis is enabled it is tried first; an unreachable Redis falls
// back to the in-memory store with a warning, since a quote cache is a
// performance concern, not a correctness one.
func NewSnapshotStore(cfg config.RedisConfig, logger *zap.Logger) PriceSnapshotStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.Enabled {
		logger.Info("using in-memory price snapshot store")
		return NewInMemorySnapshotStore()
	}

	store, err := NewRedisSnapshotStore(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory price snapshot store",
			zap.Error(err),
		)
		return NewInMemorySnapshotStore()
	}

	logger.Info("using Redis price snapshot store", zap.String("addr", cfg.Addr()))
	return store
}
