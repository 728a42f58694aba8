package subscriber

import (
	"context"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByOIB(ctx context.Context, oib string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmailExcluding(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SimRepository defines persistence operations for SIM cards
type SimRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sim, error)
	FindByICCID(ctx context.Context, iccid string) (*Sim, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sim, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, sim *Sim) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SimTypeRepository defines persistence operations for the SIM type catalog
type SimTypeRepository interface {
	FindAll(ctx context.Context) ([]SimType, error)
	Save(ctx context.Context, simType *SimType) error
}

// AssignmentRepository defines persistence operations for assignments
type AssignmentRepository interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]AssignedSim, error)
	ExistsByPair(ctx context.Context, customerID, simID uuid.UUID) (bool, error)
	Save(ctx context.Context, assignment *Assignment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
