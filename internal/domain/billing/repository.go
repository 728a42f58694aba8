package billing

import (
	"context"

	"github.com/google/uuid"
)

// BillingAccountRepository defines persistence operations for billing accounts
type BillingAccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BillingAccount, error)
	FindByNumber(ctx context.Context, accountNumber string) (*BillingAccount, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]BillingAccount, error)
	Save(ctx context.Context, account *BillingAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BillRepository defines persistence operations for bills.
// Open-bill queries order by bill month descending.
type BillRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	FindOpenByAccount(ctx context.Context, accountID uuid.UUID) ([]Bill, error)
	FindLatestOpenByAccount(ctx context.Context, accountID uuid.UUID) (*Bill, error)
	Save(ctx context.Context, bill *Bill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceItemRepository defines persistence operations for invoice items
type InvoiceItemRepository interface {
	FindByBill(ctx context.Context, billID uuid.UUID) ([]InvoiceItem, error)
	Save(ctx context.Context, item *InvoiceItem) error
}

// PlanRepository defines persistence operations for the plan catalog
type PlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	FindAll(ctx context.Context) ([]Plan, error)
	Save(ctx context.Context, plan *Plan) error
}
