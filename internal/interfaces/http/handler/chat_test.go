package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/telco/backend/internal/application/chat"
	"github.com/telco/backend/internal/infrastructure/persistence"
	"github.com/telco/backend/internal/infrastructure/session"
)

// newChatBackend wires the chat endpoint against SQLite and an in-memory
// session store
func newChatBackend(t *testing.T) *testBackend {
	backend := newTestBackend(t)

	store := session.NewInMemoryStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	engine := chat.NewEngine(persistence.NewChatDirectory(backend.db), store, nil)

	api := backend.router.Group("/api/v1")
	NewChatHandler(engine).RegisterRoutes(api)
	return backend
}

type chatTurn struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

func TestChatHandler_HandleMessage(t *testing.T) {
	backend := newChatBackend(t)

	t.Run("first contact presents the menu", func(t *testing.T) {
		w, resp := backend.do(t, http.MethodPost, "/api/v1/chat",
			chatTurn{ConversationID: "conv-1", Message: "hello"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "conv-1", data["conversation_id"])
		assert.Contains(t, data["reply"], "**What can I help you with?**")
		assert.Equal(t, "awaiting_option", data["state"])
		assert.NotEmpty(t, data["timestamp"])
	})

	t.Run("state persists across turns", func(t *testing.T) {
		backend.do(t, http.MethodPost, "/api/v1/chat",
			chatTurn{ConversationID: "conv-2", Message: "hi"})
		w, resp := backend.do(t, http.MethodPost, "/api/v1/chat",
			chatTurn{ConversationID: "conv-2", Message: "4"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "awaiting_ba_for_bills", data["state"])
		assert.Contains(t, data["reply"], "Billing Account number")
	})

	t.Run("conversations are independent", func(t *testing.T) {
		_, resp := backend.do(t, http.MethodPost, "/api/v1/chat",
			chatTurn{ConversationID: "conv-3", Message: "anything"})

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "awaiting_option", data["state"])
	})

	t.Run("missing conversation ID rejected", func(t *testing.T) {
		w, resp := backend.do(t, http.MethodPost, "/api/v1/chat",
			chatTurn{Message: "hello"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
	})
}

func TestChatHandler_ResetConversation(t *testing.T) {
	backend := newChatBackend(t)

	backend.do(t, http.MethodPost, "/api/v1/chat",
		chatTurn{ConversationID: "conv-1", Message: "hi"})
	backend.do(t, http.MethodPost, "/api/v1/chat",
		chatTurn{ConversationID: "conv-1", Message: "2"})

	w, resp := backend.do(t, http.MethodPost, "/api/v1/chat/conv-1/reset", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "awaiting_option", data["state"])
	assert.Contains(t, data["reply"], "**What can I help you with?**")
}

func TestChatHandler_RoutesRegistered(t *testing.T) {
	backend := newChatBackend(t)

	routes := make(map[string]bool)
	for _, route := range backend.router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	assert.True(t, routes[http.MethodPost+" /api/v1/chat"])
	assert.True(t, routes[http.MethodPost+" /api/v1/chat/:id/reset"])
}
