package session

import (
	"fmt"

	"github.com/telco/backend/internal/application/chat"
	"github.com/telco/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// StoreFactory creates session stores based on configuration
type StoreFactory struct {
	sessionConfig config.SessionConfig
	redisConfig   config.RedisConfig
	logger        *zap.Logger
	allowFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether a configured Redis store may fall
// back to in-memory when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowFallback = allow
	}
}

// NewStoreFactory creates a new session store factory
func NewStoreFactory(sessionCfg config.SessionConfig, redisCfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		sessionConfig: sessionCfg,
		redisConfig:   redisCfg,
		logger:        zap.NewNop(),
		allowFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateStore creates the session store named by configuration. With store
// "redis" and fallback enabled, an unreachable Redis degrades to in-memory;
// conversations then stop sharing state across instances.
func (f *StoreFactory) CreateStore() (chat.SessionStore, error) {
	switch f.sessionConfig.Store {
	case "memory":
		f.logger.Info("using in-memory session store",
			zap.Duration("ttl", f.sessionConfig.TTL))
		return NewInMemoryStore(f.sessionConfig.TTL), nil

	case "redis":
		store, err := NewRedisStore(RedisConfig{
			Host:     f.redisConfig.Host,
			Port:     f.redisConfig.Port,
			Password: f.redisConfig.Password,
			DB:       f.redisConfig.DB,
		}, f.sessionConfig.TTL)
		if err == nil {
			f.logger.Info("using Redis session store",
				zap.String("addr", f.redisConfig.Addr()),
				zap.Duration("ttl", f.sessionConfig.TTL))
			return store, nil
		}

		if !f.allowFallback {
			return nil, fmt.Errorf("Redis required for sessions but unavailable: %w", err)
		}

		f.logger.Warn("Redis unavailable, falling back to in-memory session store. "+
			"Conversations will not be shared across instances.",
			zap.Error(err),
		)
		return NewInMemoryStore(f.sessionConfig.TTL), nil

	default:
		return nil, fmt.Errorf("unknown session store %q", f.sessionConfig.Store)
	}
}
