package chat

import (
	"context"
)

// State identifies where a conversation currently is in the dialogue flow.
// There is no terminal state: every flow loops back to the menu.
type State string

const (
	StateInitial           State = "initial"
	StateAwaitingOption    State = "awaiting_option"
	StateAwaitingOIB       State = "awaiting_oib_for_update"
	StateAwaitingField     State = "awaiting_field_selection"
	StateAwaitingName      State = "awaiting_name_update"
	StateAwaitingEmail     State = "awaiting_email_update"
	StateAwaitingIdent     State = "awaiting_identifier"
	StateAwaitingBABills   State = "awaiting_ba_for_bills"
	StateAwaitingBALatest  State = "awaiting_ba_for_last_bill"
)

// Context keys carried between the verify-identifier and apply-update states
const (
	ctxCustomerID = "customer_id"
	ctxOIB        = "oib"
)

// Session is the per-conversation state persisted between turns. It is
// replaced wholesale on every reset; the store owns expiry.
type Session struct {
	State          State             `json:"state"`
	SelectedOption int               `json:"selected_option,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

// NewSession creates a fresh session in the initial state
func NewSession() *Session {
	return &Session{
		State:   StateInitial,
		Context: make(map[string]string),
	}
}

// SessionStore persists conversation sessions keyed by conversation ID.
// Implementations must not interleave a read-then-write for the same
// conversation with another turn; the engine assumes single writer per
// session.
type SessionStore interface {
	GetOrCreate(ctx context.Context, conversationID string) (*Session, error)
	Save(ctx context.Context, conversationID string, session *Session) error
	Delete(ctx context.Context, conversationID string) error
}
