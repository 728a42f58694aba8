package billing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/shared"
)

// InvoiceItemType distinguishes plan charges from extra costs
type InvoiceItemType string

const (
	InvoiceItemTypePlan      InvoiceItemType = "plan"
	InvoiceItemTypeExtraCost InvoiceItemType = "extra_cost"
)

// InvoiceItem is one charge line on a bill: either a plan charge referencing
// a Plan, or a free-text extra cost.
type InvoiceItem struct {
	shared.BaseEntity
	BillID        uuid.UUID
	ItemType      InvoiceItemType
	PlanID        *uuid.UUID // set for plan charges
	ExtraCostType string     // set for extra costs, e.g. "SMS Parking"
	Description   string
	Amount        decimal.Decimal
}

// NewPlanCharge creates an invoice item charging a subscription plan
func NewPlanCharge(billID, planID uuid.UUID, amount decimal.Decimal) (*InvoiceItem, error) {
	if billID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BILL", "Bill ID is required")
	}
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan ID is required")
	}

	return &InvoiceItem{
		BaseEntity: shared.NewBaseEntity(),
		BillID:     billID,
		ItemType:   InvoiceItemTypePlan,
		PlanID:     &planID,
		Amount:     amount,
	}, nil
}

// NewExtraCost creates an invoice item for a one-off charge
func NewExtraCost(billID uuid.UUID, costType, description string, amount decimal.Decimal) (*InvoiceItem, error) {
	if billID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BILL", "Bill ID is required")
	}
	if strings.TrimSpace(costType) == "" {
		return nil, shared.NewDomainError("INVALID_COST_TYPE", "Extra cost type is required")
	}

	return &InvoiceItem{
		BaseEntity:    shared.NewBaseEntity(),
		BillID:        billID,
		ItemType:      InvoiceItemTypeExtraCost,
		ExtraCostType: costType,
		Description:   description,
		Amount:        amount,
	}, nil
}

// Plan is a catalog entry for a subscription plan, used for display
type Plan struct {
	shared.BaseEntity
	Name         string
	Description  string
	MonthlyPrice decimal.Decimal // EUR
}

// NewPlan creates a new plan catalog entry
func NewPlan(name, description string, monthlyPrice decimal.Decimal) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Plan name cannot be empty")
	}
	if monthlyPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Plan price cannot be negative")
	}

	return &Plan{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Description:  description,
		MonthlyPrice: monthlyPrice,
	}, nil
}
