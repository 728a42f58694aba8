package subscriber

import (
	"time"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/subscriber"
)

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=120"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	OIB       string    `json:"oib,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SimResponse represents a SIM card in API responses
type SimResponse struct {
	ID        uuid.UUID  `json:"id"`
	ICCID     string     `json:"iccid"`
	MSISDN    string     `json:"msisdn,omitempty"`
	Carrier   string     `json:"carrier,omitempty"`
	Status    string     `json:"status"`
	SimTypeID *uuid.UUID `json:"sim_type_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// AssignedSimResponse is a SIM together with its assignment details
type AssignedSimResponse struct {
	SimResponse
	AssignedAt time.Time `json:"assigned_at"`
	Note       string    `json:"note,omitempty"`
}

func toCustomerResponse(c *subscriber.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		OIB:       c.OIB,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSimResponse(s *subscriber.Sim) SimResponse {
	return SimResponse{
		ID:        s.ID,
		ICCID:     s.ICCID,
		MSISDN:    s.MSISDN,
		Carrier:   s.Carrier,
		Status:    string(s.Status),
		SimTypeID: s.SimTypeID,
		CreatedAt: s.CreatedAt,
	}
}

func toAssignedSimResponse(a subscriber.AssignedSim) AssignedSimResponse {
	return AssignedSimResponse{
		SimResponse: toSimResponse(&a.Sim),
		AssignedAt:  a.Assignment.AssignedAt,
		Note:        a.Assignment.Note,
	}
}
