package chat

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// resetKeywords discard the session and start over regardless of state
var resetKeywords = map[string]struct{}{
	"restart": {},
	"reset":   {},
	"start":   {},
	"menu":    {},
	"0":       {},
}

// Turn is the outcome of processing one inbound message. State names the
// state the conversation is in after the turn, so stateless callers can
// display it.
type Turn struct {
	Reply     string    `json:"reply"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// stepResult is the tagged per-state outcome: the reply, the next state, an
// optional replacement context, and whether the conversation resets (which
// wipes selected option and context before the next turn).
type stepResult struct {
	reply   string
	next    State
	context map[string]string
	reset   bool
}

// Engine is the dialogue state machine. It owns no mutable state of its own:
// each turn is a pure function of (session, message, directory results), with
// the session read from and written back to the store.
type Engine struct {
	dir      Directory
	sessions SessionStore
	logger   *zap.Logger
}

// NewEngine creates a dialogue engine
func NewEngine(dir Directory, sessions SessionStore, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{dir: dir, sessions: sessions, logger: logger}
}

// HandleMessage processes one inbound message for a conversation and returns
// the reply plus the resulting state.
func (e *Engine) HandleMessage(ctx context.Context, conversationID, message string) (*Turn, error) {
	session, err := e.sessions.GetOrCreate(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	// Reset commands take priority over whatever state the conversation
	// was in.
	if isResetCommand(message) {
		if err := e.sessions.Delete(ctx, conversationID); err != nil {
			return nil, err
		}
		session = NewSession()
	}

	result := e.step(ctx, session, message)

	if result.reset {
		// Replace the session wholesale: selected option and context
		// must not survive a flow-terminal reply.
		if err := e.sessions.Delete(ctx, conversationID); err != nil {
			return nil, err
		}
		session = NewSession()
		session.State = result.next
	} else {
		session.State = result.next
		if result.context != nil {
			session.Context = result.context
		}
	}

	if err := e.sessions.Save(ctx, conversationID, session); err != nil {
		return nil, err
	}

	e.logger.Debug("chat turn processed",
		zap.String("conversation_id", conversationID),
		zap.String("state", string(session.State)),
	)

	return &Turn{
		Reply:     result.reply,
		State:     string(session.State),
		Timestamp: time.Now().UTC(),
	}, nil
}

// step dispatches the message to the handler for the session's state. The
// switch is exhaustive over State; an unknown state degrades to the menu.
func (e *Engine) step(ctx context.Context, session *Session, message string) stepResult {
	switch session.State {
	case StateInitial:
		return presentMenu()
	case StateAwaitingOption:
		return e.handleOption(ctx, session, message)
	case StateAwaitingOIB:
		return e.verifyOIBForUpdate(ctx, message)
	case StateAwaitingField:
		return handleFieldSelection(message, session.Context)
	case StateAwaitingName:
		return e.applyNameUpdate(ctx, session, message)
	case StateAwaitingEmail:
		return e.applyEmailUpdate(ctx, session, message)
	case StateAwaitingIdent:
		return e.fetchCustomerInfo(ctx, message)
	case StateAwaitingBABills:
		return e.fetchOpenBills(ctx, message)
	case StateAwaitingBALatest:
		return e.fetchLatestOpenBill(ctx, message)
	default:
		return stepResult{reply: MenuText(), next: StateAwaitingOption, reset: true}
	}
}

func isResetCommand(message string) bool {
	_, ok := resetKeywords[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// presentMenu is the initial-state handler: any input produces the menu
func presentMenu() stepResult {
	return stepResult{reply: MenuText(), next: StateAwaitingOption}
}
