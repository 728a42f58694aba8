package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/domain/subscriber"
	"gorm.io/gorm"
)

// ChatDirectory is the dialogue engine's data access collaborator, backed by
// the GORM repositories. Updates that need a read-check-write sequence run
// inside a transaction so a conflict leaves nothing behind.
type ChatDirectory struct {
	db          *gorm.DB
	customers   *GormCustomerRepository
	assignments *GormAssignmentRepository
	simTypes    *GormSimTypeRepository
	accounts    *GormBillingAccountRepository
	bills       *GormBillRepository
	items       *GormInvoiceItemRepository
	plans       *GormPlanRepository
}

// NewChatDirectory creates a ChatDirectory on one database handle
func NewChatDirectory(db *gorm.DB) *ChatDirectory {
	return &ChatDirectory{
		db:          db,
		customers:   NewGormCustomerRepository(db),
		assignments: NewGormAssignmentRepository(db),
		simTypes:    NewGormSimTypeRepository(db),
		accounts:    NewGormBillingAccountRepository(db),
		bills:       NewGormBillRepository(db),
		items:       NewGormInvoiceItemRepository(db),
		plans:       NewGormPlanRepository(db),
	}
}

// FindCustomerByOIB looks a customer up by national identifier
func (d *ChatDirectory) FindCustomerByOIB(ctx context.Context, oib string) (*subscriber.Customer, error) {
	return d.customers.FindByOIB(ctx, oib)
}

// FindCustomerByID looks a customer up by primary key
func (d *ChatDirectory) FindCustomerByID(ctx context.Context, id uuid.UUID) (*subscriber.Customer, error) {
	return d.customers.FindByID(ctx, id)
}

// ListAssignments returns the customer's SIM assignments with SIM details
func (d *ChatDirectory) ListAssignments(ctx context.Context, customerID uuid.UUID) ([]subscriber.AssignedSim, error) {
	return d.assignments.FindByCustomer(ctx, customerID)
}

// ListSimTypes returns the SIM type catalog
func (d *ChatDirectory) ListSimTypes(ctx context.Context) ([]subscriber.SimType, error) {
	return d.simTypes.FindAll(ctx)
}

// UpdateCustomerName renames a customer and returns the updated record
func (d *ChatDirectory) UpdateCustomerName(ctx context.Context, id uuid.UUID, name string) (*subscriber.Customer, error) {
	var updated *subscriber.Customer
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewGormCustomerRepository(tx)
		customer, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := customer.Rename(name); err != nil {
			return err
		}
		if err := repo.Save(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateCustomerEmail changes a customer's email. The uniqueness check and
// the write share one transaction; on conflict nothing is committed.
func (d *ChatDirectory) UpdateCustomerEmail(ctx context.Context, id uuid.UUID, email string) (*subscriber.Customer, error) {
	var updated *subscriber.Customer
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewGormCustomerRepository(tx)
		customer, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByEmailExcluding(ctx, email, id)
		if err != nil {
			return err
		}
		if taken {
			return shared.ErrAlreadyExists
		}
		if err := customer.ChangeEmail(email); err != nil {
			return err
		}
		if err := repo.Save(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindBillingAccount looks a billing account up by account number
func (d *ChatDirectory) FindBillingAccount(ctx context.Context, accountNumber string) (*billing.BillingAccount, error) {
	return d.accounts.FindByNumber(ctx, accountNumber)
}

// ListOpenBills returns an account's open bills, newest month first
func (d *ChatDirectory) ListOpenBills(ctx context.Context, accountID uuid.UUID) ([]billing.Bill, error) {
	return d.bills.FindOpenByAccount(ctx, accountID)
}

// LatestOpenBill returns the most recent open bill for an account
func (d *ChatDirectory) LatestOpenBill(ctx context.Context, accountID uuid.UUID) (*billing.Bill, error) {
	return d.bills.FindLatestOpenByAccount(ctx, accountID)
}

// ListInvoiceItems returns the invoice items on a bill
func (d *ChatDirectory) ListInvoiceItems(ctx context.Context, billID uuid.UUID) ([]billing.InvoiceItem, error) {
	return d.items.FindByBill(ctx, billID)
}

// FindPlan looks a plan up by primary key
func (d *ChatDirectory) FindPlan(ctx context.Context, id uuid.UUID) (*billing.Plan, error) {
	return d.plans.FindByID(ctx, id)
}
