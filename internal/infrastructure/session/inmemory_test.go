package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telco/backend/internal/application/chat"
)

func TestInMemoryStore_GetOrCreate(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	t.Run("unknown conversation starts fresh", func(t *testing.T) {
		session, err := store.GetOrCreate(ctx, "conv-1")
		require.NoError(t, err)
		assert.Equal(t, chat.StateInitial, session.State)
		assert.Empty(t, session.Context)
	})

	t.Run("saved session round-trips", func(t *testing.T) {
		session := chat.NewSession()
		session.State = chat.StateAwaitingField
		session.SelectedOption = 2
		session.Context["customer_id"] = "some-id"
		require.NoError(t, store.Save(ctx, "conv-2", session))

		loaded, err := store.GetOrCreate(ctx, "conv-2")
		require.NoError(t, err)
		assert.Equal(t, chat.StateAwaitingField, loaded.State)
		assert.Equal(t, 2, loaded.SelectedOption)
		assert.Equal(t, "some-id", loaded.Context["customer_id"])
	})

	t.Run("loaded session is a copy", func(t *testing.T) {
		session := chat.NewSession()
		session.State = chat.StateAwaitingOption
		require.NoError(t, store.Save(ctx, "conv-3", session))

		first, err := store.GetOrCreate(ctx, "conv-3")
		require.NoError(t, err)
		first.State = chat.StateAwaitingEmail
		first.Context["oib"] = "12345678903"

		second, err := store.GetOrCreate(ctx, "conv-3")
		require.NoError(t, err)
		assert.Equal(t, chat.StateAwaitingOption, second.State)
		assert.Empty(t, second.Context)
	})
}

func TestInMemoryStore_Expiry(t *testing.T) {
	store := NewInMemoryStore(10 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	session := chat.NewSession()
	session.State = chat.StateAwaitingIdent
	require.NoError(t, store.Save(ctx, "conv-1", session))

	time.Sleep(20 * time.Millisecond)

	loaded, err := store.GetOrCreate(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, chat.StateInitial, loaded.State, "expired session starts fresh")
}

func TestInMemoryStore_SaveResetsTTL(t *testing.T) {
	store := NewInMemoryStore(30 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	session := chat.NewSession()
	session.State = chat.StateAwaitingName
	require.NoError(t, store.Save(ctx, "conv-1", session))

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.Save(ctx, "conv-1", session))
	time.Sleep(20 * time.Millisecond)

	loaded, err := store.GetOrCreate(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, chat.StateAwaitingName, loaded.State)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "conv-1", chat.NewSession()))
	assert.Equal(t, 1, store.Size())

	require.NoError(t, store.Delete(ctx, "conv-1"))
	assert.Equal(t, 0, store.Size())

	require.NoError(t, store.Delete(ctx, "conv-1"), "deleting absent session is not an error")
}

func TestInMemoryStore_Cleanup(t *testing.T) {
	store := NewInMemoryStore(time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "conv-1", chat.NewSession()))
	require.NoError(t, store.Save(ctx, "conv-2", chat.NewSession()))

	time.Sleep(5 * time.Millisecond)
	store.cleanup()

	assert.Equal(t, 0, store.Size())
}

func TestInMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
