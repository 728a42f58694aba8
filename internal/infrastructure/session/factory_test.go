package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telco/backend/internal/infrastructure/config"
)

func TestStoreFactory_CreateStore(t *testing.T) {
	t.Run("memory store", func(t *testing.T) {
		factory := NewStoreFactory(
			config.SessionConfig{Store: "memory", TTL: time.Minute},
			config.RedisConfig{},
		)

		store, err := factory.CreateStore()
		require.NoError(t, err)
		assert.IsType(t, &InMemoryStore{}, store)
		require.NoError(t, store.(*InMemoryStore).Close())
	})

	t.Run("unknown store name", func(t *testing.T) {
		factory := NewStoreFactory(
			config.SessionConfig{Store: "dynamo", TTL: time.Minute},
			config.RedisConfig{},
		)

		store, err := factory.CreateStore()
		assert.Nil(t, store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dynamo")
	})

	t.Run("redis falls back to memory when unreachable", func(t *testing.T) {
		factory := NewStoreFactory(
			config.SessionConfig{Store: "redis", TTL: time.Minute},
			config.RedisConfig{Host: "127.0.0.1", Port: 1}, // nothing listens here
		)

		store, err := factory.CreateStore()
		require.NoError(t, err)
		assert.IsType(t, &InMemoryStore{}, store)
		require.NoError(t, store.(*InMemoryStore).Close())
	})

	t.Run("redis without fallback surfaces the error", func(t *testing.T) {
		factory := NewStoreFactory(
			config.SessionConfig{Store: "redis", TTL: time.Minute},
			config.RedisConfig{Host: "127.0.0.1", Port: 1},
			WithInMemoryFallback(false),
		)

		store, err := factory.CreateStore()
		assert.Nil(t, store)
		require.Error(t, err)
	})
}
