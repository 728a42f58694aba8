package subscriber

import (
	"strings"
	"time"

	"github.com/telco/backend/internal/domain/shared"
)

// Customer represents a subscriber account holder.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string // optional, unique when present
	OIB   string // optional 11-digit national identifier, unique when present
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email, oib string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if oib != "" {
		if _, err := ValidateOIB(oib); err != nil {
			return nil, err
		}
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		OIB:        NormalizeOIB(oib),
	}, nil
}

// Rename updates the customer's display name
func (c *Customer) Rename(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	return nil
}

// ChangeEmail updates the customer's email address.
// Uniqueness against other customers is enforced by the repository.
func (c *Customer) ChangeEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}

	c.Email = email
	c.UpdatedAt = time.Now()
	return nil
}

func validateCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 120 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 120 characters")
	}
	return nil
}
