package billing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/shared"
)

// AccountStatus is the lifecycle status of a billing account
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusClosed    AccountStatus = "closed"
)

// AccountNumberPrefix is the fixed prefix of every billing account number
const AccountNumberPrefix = "900"

// ErrAccountNotDigits is returned when an account number contains non-digits
var ErrAccountNotDigits = shared.NewDomainError("BA_NOT_DIGITS", "Billing Account number must contain only digits.")

// ErrAccountPrefix is returned when an account number lacks the 900 prefix
var ErrAccountPrefix = shared.NewDomainError("BA_PREFIX", "Billing Account number must start with 900.")

// BillingAccount groups a customer's bills under one account number
type BillingAccount struct {
	shared.BaseEntity
	AccountNumber string // 10 digits, "900" prefix, unique
	CustomerID    uuid.UUID
	Status        AccountStatus
}

// NewBillingAccount creates a new billing account for a customer
func NewBillingAccount(customerID uuid.UUID, accountNumber string) (*BillingAccount, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	number, err := ValidateAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	return &BillingAccount{
		BaseEntity:    shared.NewBaseEntity(),
		AccountNumber: number,
		CustomerID:    customerID,
		Status:        AccountStatusActive,
	}, nil
}

// Suspend marks the account as suspended
func (a *BillingAccount) Suspend() {
	a.Status = AccountStatusSuspended
}

// Close marks the account as closed
func (a *BillingAccount) Close() {
	a.Status = AccountStatusClosed
}

// ValidateAccountNumber checks a billing account number: all digits, exactly
// 10 characters, "900" prefix. Each failure mode has its own message.
// Returns the trimmed value on success.
func ValidateAccountNumber(raw string) (string, error) {
	number := strings.TrimSpace(raw)

	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return "", ErrAccountNotDigits
		}
	}
	if number == "" {
		return "", ErrAccountNotDigits
	}
	if len(number) != 10 {
		return "", shared.NewDomainError("BA_LENGTH",
			fmt.Sprintf("Billing Account number must be exactly 10 digits. You provided %d.", len(number)))
	}
	if !strings.HasPrefix(number, AccountNumberPrefix) {
		return "", ErrAccountPrefix
	}
	return number, nil
}
