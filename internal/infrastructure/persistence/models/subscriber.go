package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/subscriber"
)

// CustomerModel is the persistence model for the Customer domain entity.
// Email and OIB are unique when present; NULL rows stay out of the index.
type CustomerModel struct {
	BaseModel
	Name  string  `gorm:"type:varchar(120);not null"`
	Email *string `gorm:"type:varchar(255);uniqueIndex"`
	OIB   *string `gorm:"type:char(11);uniqueIndex"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *subscriber.Customer {
	return &subscriber.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      deref(m.Email),
		OIB:        deref(m.OIB),
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *subscriber.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = optional(c.Email)
	m.OIB = optional(c.OIB)
}

// SimTypeModel is the persistence model for the SimType catalog entry
type SimTypeModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (SimTypeModel) TableName() string {
	return "sim_types"
}

// ToDomain converts the persistence model to a domain SimType entity
func (m *SimTypeModel) ToDomain() *subscriber.SimType {
	return &subscriber.SimType{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
	}
}

// FromDomain populates the persistence model from a domain SimType entity
func (m *SimTypeModel) FromDomain(st *subscriber.SimType) {
	m.FromDomainBaseEntity(st.BaseEntity)
	m.Name = st.Name
	m.Description = st.Description
	m.Price = st.Price
}

// SimModel is the persistence model for the Sim domain entity
type SimModel struct {
	BaseModel
	ICCID     string     `gorm:"column:iccid;type:varchar(32);not null;uniqueIndex"`
	MSISDN    *string    `gorm:"type:varchar(20);uniqueIndex"`
	Carrier   string     `gorm:"type:varchar(100);index"`
	Status    string     `gorm:"type:varchar(20);not null;index"`
	SimTypeID *uuid.UUID `gorm:"type:uuid;index"`

	SimType *SimTypeModel `gorm:"foreignKey:SimTypeID"`
}

// TableName returns the table name for GORM
func (SimModel) TableName() string {
	return "sims"
}

// ToDomain converts the persistence model to a domain Sim entity
func (m *SimModel) ToDomain() *subscriber.Sim {
	return &subscriber.Sim{
		BaseEntity: m.BaseModel.ToDomain(),
		ICCID:      m.ICCID,
		MSISDN:     deref(m.MSISDN),
		Carrier:    m.Carrier,
		Status:     subscriber.SimStatus(m.Status),
		SimTypeID:  m.SimTypeID,
	}
}

// FromDomain populates the persistence model from a domain Sim entity
func (m *SimModel) FromDomain(s *subscriber.Sim) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ICCID = s.ICCID
	m.MSISDN = optional(s.MSISDN)
	m.Carrier = s.Carrier
	m.Status = string(s.Status)
	m.SimTypeID = s.SimTypeID
}

// AssignmentModel is the persistence model for the Assignment domain entity.
// A SIM is assigned to a customer at most once.
type AssignmentModel struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_pair,priority:1"`
	SimID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_pair,priority:2"`
	AssignedAt time.Time `gorm:"not null"`
	Note       string    `gorm:"type:text"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Sim      *SimModel      `gorm:"foreignKey:SimID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return "assignments"
}

// ToDomain converts the persistence model to a domain Assignment entity
func (m *AssignmentModel) ToDomain() *subscriber.Assignment {
	return &subscriber.Assignment{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		SimID:      m.SimID,
		AssignedAt: m.AssignedAt,
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain Assignment entity
func (m *AssignmentModel) FromDomain(a *subscriber.Assignment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CustomerID = a.CustomerID
	m.SimID = a.SimID
	m.AssignedAt = a.AssignedAt
	m.Note = a.Note
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
