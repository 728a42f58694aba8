package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/subscriber"
)

// Directory is the data access collaborator consumed by the dialogue engine.
// Lookups return shared.ErrNotFound when nothing matches; the email update
// returns shared.ErrAlreadyExists when another customer owns the address and
// must commit atomically or not at all.
type Directory interface {
	FindCustomerByOIB(ctx context.Context, oib string) (*subscriber.Customer, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*subscriber.Customer, error)
	ListAssignments(ctx context.Context, customerID uuid.UUID) ([]subscriber.AssignedSim, error)
	ListSimTypes(ctx context.Context) ([]subscriber.SimType, error)

	UpdateCustomerName(ctx context.Context, id uuid.UUID, name string) (*subscriber.Customer, error)
	UpdateCustomerEmail(ctx context.Context, id uuid.UUID, email string) (*subscriber.Customer, error)

	FindBillingAccount(ctx context.Context, accountNumber string) (*billing.BillingAccount, error)
	ListOpenBills(ctx context.Context, accountID uuid.UUID) ([]billing.Bill, error)
	LatestOpenBill(ctx context.Context, accountID uuid.UUID) (*billing.Bill, error)
	ListInvoiceItems(ctx context.Context, billID uuid.UUID) ([]billing.InvoiceItem, error)
	FindPlan(ctx context.Context, id uuid.UUID) (*billing.Plan, error)
}
