package subscriber

import (
	"time"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/shared"
)

// Assignment links one Customer to one Sim. The (customer, sim) pair is
// unique: a SIM cannot be assigned twice to the same customer.
type Assignment struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	SimID      uuid.UUID
	AssignedAt time.Time
	Note       string
}

// NewAssignment creates a new customer-SIM assignment
func NewAssignment(customerID, simID uuid.UUID, note string) (*Assignment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if simID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SIM", "SIM ID is required")
	}

	return &Assignment{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		SimID:      simID,
		AssignedAt: time.Now(),
		Note:       note,
	}, nil
}

// AssignedSim pairs an assignment with the SIM it points at, as returned by
// the joined assignment lookups.
type AssignedSim struct {
	Assignment Assignment
	Sim        Sim
}
