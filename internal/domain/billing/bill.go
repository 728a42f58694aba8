package billing

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/shared"
)

// BillStatus is the payment status of a bill
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// billMonthPattern matches zero-padded YYYY-MM month strings. Keeping the
// format zero-padded makes lexicographic ordering chronological.
var billMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Bill is one monthly invoice on a billing account. Its total amount is the
// sum of its invoice items' amounts.
type Bill struct {
	shared.BaseEntity
	BillingAccountID uuid.UUID
	BillMonth        string // YYYY-MM
	TotalAmount      decimal.Decimal
	Status           BillStatus
	IssueDate        time.Time
	DueDate          *time.Time
}

// NewBill creates a new bill for a billing account
func NewBill(accountID uuid.UUID, billMonth string, status BillStatus) (*Bill, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Billing account ID is required")
	}
	if !billMonthPattern.MatchString(billMonth) {
		return nil, shared.NewDomainError("INVALID_BILL_MONTH", "Bill month must be in YYYY-MM format")
	}

	return &Bill{
		BaseEntity:       shared.NewBaseEntity(),
		BillingAccountID: accountID,
		BillMonth:        billMonth,
		TotalAmount:      decimal.Zero,
		Status:           status,
		IssueDate:        time.Now(),
	}, nil
}

// IsOpen reports whether the bill still awaits payment
func (b *Bill) IsOpen() bool {
	return b.Status == BillStatusPending || b.Status == BillStatusOverdue
}

// SetDueDate sets the payment deadline
func (b *Bill) SetDueDate(due time.Time) {
	b.DueDate = &due
}

// AddAmount increases the bill total by an item's amount
func (b *Bill) AddAmount(amount decimal.Decimal) {
	b.TotalAmount = b.TotalAmount.Add(amount)
	b.UpdatedAt = time.Now()
}

// MarkPaid settles the bill
func (b *Bill) MarkPaid() {
	b.Status = BillStatusPaid
	b.UpdatedAt = time.Now()
}
