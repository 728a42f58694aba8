package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOIB(t *testing.T) {
	t.Run("accepts a valid identifier", func(t *testing.T) {
		oib, err := ValidateOIB("12345678903")
		require.NoError(t, err)
		assert.Equal(t, "12345678903", oib)
	})

	t.Run("normalizes hyphens and spaces", func(t *testing.T) {
		oib, err := ValidateOIB(" 123-456 789-03 ")
		require.NoError(t, err)
		assert.Equal(t, "12345678903", oib)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		_, err := ValidateOIB("12345abc903")
		require.Error(t, err)
		assert.Equal(t, "OIB must contain only digits.", err.Error())
	})

	t.Run("rejects wrong length with actual count", func(t *testing.T) {
		_, err := ValidateOIB("12345")
		require.Error(t, err)
		assert.Equal(t, "OIB must be exactly 11 digits. You provided 5.", err.Error())

		_, err = ValidateOIB("123456789012")
		require.Error(t, err)
		assert.Equal(t, "OIB must be exactly 11 digits. You provided 12.", err.Error())
	})

	t.Run("rejects bad check digit", func(t *testing.T) {
		_, err := ValidateOIB("12345678900")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOIBCheckDigit)
	})

	t.Run("rejects empty input as non-digit", func(t *testing.T) {
		_, err := ValidateOIB("")
		assert.ErrorIs(t, err, ErrOIBNotDigits)
	})

	t.Run("known check digits", func(t *testing.T) {
		for _, valid := range []string{"12345678903", "00000000001", "99988877711"} {
			_, err := ValidateOIB(valid)
			assert.NoError(t, err, valid)
		}
	})
}

func TestGenerateOIB(t *testing.T) {
	t.Run("generated identifiers validate", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			oib, err := GenerateOIB("")
			require.NoError(t, err)
			require.Len(t, oib, 11)
			_, err = ValidateOIB(oib)
			assert.NoError(t, err, oib)
		}
	})

	t.Run("deterministic for a fixed base", func(t *testing.T) {
		oib, err := GenerateOIB("1234567890")
		require.NoError(t, err)
		assert.Equal(t, "12345678903", oib)
	})

	t.Run("rejects malformed base", func(t *testing.T) {
		_, err := GenerateOIB("12345")
		assert.Error(t, err)

		_, err = GenerateOIB("12345abcde")
		assert.Error(t, err)
	})
}
