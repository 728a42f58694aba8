package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/billing"
)

// PlanModel is the persistence model for the Plan catalog entry
type PlanModel struct {
	BaseModel
	Name         string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description  string          `gorm:"type:text"`
	MonthlyPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts the persistence model to a domain Plan entity
func (m *PlanModel) ToDomain() *billing.Plan {
	return &billing.Plan{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Description:  m.Description,
		MonthlyPrice: m.MonthlyPrice,
	}
}

// FromDomain populates the persistence model from a domain Plan entity
func (m *PlanModel) FromDomain(p *billing.Plan) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.MonthlyPrice = p.MonthlyPrice
}

// BillingAccountModel is the persistence model for the BillingAccount entity
type BillingAccountModel struct {
	BaseModel
	AccountNumber string    `gorm:"type:char(10);not null;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BillingAccountModel) TableName() string {
	return "billing_accounts"
}

// ToDomain converts the persistence model to a domain BillingAccount entity
func (m *BillingAccountModel) ToDomain() *billing.BillingAccount {
	return &billing.BillingAccount{
		BaseEntity:    m.BaseModel.ToDomain(),
		AccountNumber: m.AccountNumber,
		CustomerID:    m.CustomerID,
		Status:        billing.AccountStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain BillingAccount entity
func (m *BillingAccountModel) FromDomain(a *billing.BillingAccount) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.AccountNumber = a.AccountNumber
	m.CustomerID = a.CustomerID
	m.Status = string(a.Status)
}

// BillModel is the persistence model for the Bill entity. One bill per
// account per month.
type BillModel struct {
	BaseModel
	BillingAccountID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bill_account_month,priority:1"`
	BillMonth        string          `gorm:"type:char(7);not null;uniqueIndex:idx_bill_account_month,priority:2"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	IssueDate        time.Time       `gorm:"not null"`
	DueDate          *time.Time

	BillingAccount *BillingAccountModel `gorm:"foreignKey:BillingAccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill entity
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		BaseEntity:       m.BaseModel.ToDomain(),
		BillingAccountID: m.BillingAccountID,
		BillMonth:        m.BillMonth,
		TotalAmount:      m.TotalAmount,
		Status:           billing.BillStatus(m.Status),
		IssueDate:        m.IssueDate,
		DueDate:          m.DueDate,
	}
}

// FromDomain populates the persistence model from a domain Bill entity
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.BillingAccountID = b.BillingAccountID
	m.BillMonth = b.BillMonth
	m.TotalAmount = b.TotalAmount
	m.Status = string(b.Status)
	m.IssueDate = b.IssueDate
	m.DueDate = b.DueDate
}

// InvoiceItemModel is the persistence model for the InvoiceItem entity
type InvoiceItemModel struct {
	BaseModel
	BillID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemType      string          `gorm:"type:varchar(20);not null"`
	PlanID        *uuid.UUID      `gorm:"type:uuid;index"`
	ExtraCostType string          `gorm:"type:varchar(100)"`
	Description   string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Bill *BillModel `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	Plan *PlanModel `gorm:"foreignKey:PlanID"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem entity
func (m *InvoiceItemModel) ToDomain() *billing.InvoiceItem {
	return &billing.InvoiceItem{
		BaseEntity:    m.BaseModel.ToDomain(),
		BillID:        m.BillID,
		ItemType:      billing.InvoiceItemType(m.ItemType),
		PlanID:        m.PlanID,
		ExtraCostType: m.ExtraCostType,
		Description:   m.Description,
		Amount:        m.Amount,
	}
}

// FromDomain populates the persistence model from a domain InvoiceItem entity
func (m *InvoiceItemModel) FromDomain(i *billing.InvoiceItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.BillID = i.BillID
	m.ItemType = string(i.ItemType)
	m.PlanID = i.PlanID
	m.ExtraCostType = i.ExtraCostType
	m.Description = i.Description
	m.Amount = i.Amount
}
