package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountNumber(t *testing.T) {
	t.Run("accepts a well-formed number", func(t *testing.T) {
		number, err := ValidateAccountNumber("9001242277")
		require.NoError(t, err)
		assert.Equal(t, "9001242277", number)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		number, err := ValidateAccountNumber("  9001242277 ")
		require.NoError(t, err)
		assert.Equal(t, "9001242277", number)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		_, err := ValidateAccountNumber("90012422a7")
		assert.ErrorIs(t, err, ErrAccountNotDigits)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ValidateAccountNumber("   ")
		assert.ErrorIs(t, err, ErrAccountNotDigits)
	})

	t.Run("rejects wrong length with actual count", func(t *testing.T) {
		_, err := ValidateAccountNumber("90012")
		require.Error(t, err)
		assert.Equal(t, "Billing Account number must be exactly 10 digits. You provided 5.", err.Error())

		_, err = ValidateAccountNumber("90012422778")
		require.Error(t, err)
		assert.Equal(t, "Billing Account number must be exactly 10 digits. You provided 11.", err.Error())
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := ValidateAccountNumber("1234567890")
		assert.ErrorIs(t, err, ErrAccountPrefix)

		// The prefix check only matters at the start.
		_, err = ValidateAccountNumber("1239004567")
		assert.ErrorIs(t, err, ErrAccountPrefix)
	})
}

func TestNewBillingAccount(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates an active account", func(t *testing.T) {
		account, err := NewBillingAccount(customerID, "9001242277")
		require.NoError(t, err)

		assert.Equal(t, "9001242277", account.AccountNumber)
		assert.Equal(t, customerID, account.CustomerID)
		assert.Equal(t, AccountStatusActive, account.Status)
		assert.NotEmpty(t, account.ID)
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := NewBillingAccount(uuid.Nil, "9001242277")
		assert.Error(t, err)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		_, err := NewBillingAccount(customerID, "12345")
		assert.Error(t, err)
	})

	t.Run("lifecycle transitions", func(t *testing.T) {
		account, err := NewBillingAccount(customerID, "9001242277")
		require.NoError(t, err)

		account.Suspend()
		assert.Equal(t, AccountStatusSuspended, account.Status)
		account.Close()
		assert.Equal(t, AccountStatusClosed, account.Status)
	})
}
