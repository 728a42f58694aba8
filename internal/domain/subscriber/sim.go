package subscriber

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/shared"
)

// SimStatus is a short free-form lifecycle code for a SIM card
type SimStatus string

const (
	SimStatusActive       SimStatus = "active"
	SimStatusInactive     SimStatus = "inactive"
	SimStatusProvisioning SimStatus = "provisioning"
)

// Sim represents a physical or embedded SIM card
type Sim struct {
	shared.BaseEntity
	ICCID     string // unique card identifier
	MSISDN    string // optional phone number, unique when present
	Carrier   string
	Status    SimStatus
	SimTypeID *uuid.UUID // optional catalog reference
}

// NewSim creates a new SIM card record
func NewSim(iccid, msisdn, carrier string, status SimStatus) (*Sim, error) {
	iccid = strings.TrimSpace(iccid)
	if iccid == "" {
		return nil, shared.NewDomainError("INVALID_ICCID", "ICCID cannot be empty")
	}
	if len(iccid) > 32 {
		return nil, shared.NewDomainError("INVALID_ICCID", "ICCID cannot exceed 32 characters")
	}

	return &Sim{
		BaseEntity: shared.NewBaseEntity(),
		ICCID:      iccid,
		MSISDN:     strings.TrimSpace(msisdn),
		Carrier:    carrier,
		Status:     status,
	}, nil
}

// SetType links the SIM to a catalog SimType
func (s *Sim) SetType(simTypeID uuid.UUID) {
	s.SimTypeID = &simTypeID
	s.UpdatedAt = time.Now()
}

// SimType is a catalog entry describing a purchasable SIM card type.
// Used for display only.
type SimType struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal // EUR
}

// NewSimType creates a new SIM type catalog entry
func NewSimType(name, description string, price decimal.Decimal) (*SimType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "SIM type name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "SIM type price cannot be negative")
	}

	return &SimType{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
	}, nil
}
