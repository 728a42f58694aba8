package subscriber

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/telco/backend/internal/domain/shared"
)

// OIB validation errors; each failure mode carries its own message so the
// assistant can tell the user what exactly is wrong.
var (
	ErrOIBNotDigits  = shared.NewDomainError("OIB_NOT_DIGITS", "OIB must contain only digits.")
	ErrOIBCheckDigit = shared.NewDomainError("OIB_CHECK_DIGIT", "Invalid OIB check digit. Please verify the number.")
)

// NormalizeOIB strips hyphens and spaces from a raw identifier string.
func NormalizeOIB(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// ValidateOIB checks a normalized national identifier: exactly 11 digits with
// a valid ISO 7064 MOD 11-10 check digit over the first 10. Returns the
// normalized value on success.
func ValidateOIB(raw string) (string, error) {
	oib := NormalizeOIB(raw)

	if !isDigits(oib) {
		return "", ErrOIBNotDigits
	}
	if len(oib) != 11 {
		return "", shared.NewDomainError("OIB_LENGTH",
			fmt.Sprintf("OIB must be exactly 11 digits. You provided %d.", len(oib)))
	}

	if oibCheckDigit(oib[:10]) != int(oib[10]-'0') {
		return "", ErrOIBCheckDigit
	}
	return oib, nil
}

// GenerateOIB produces a valid identifier from a 10-digit base by running the
// checksum forward. An empty base generates a random one. Used by the seed
// tooling; ValidateOIB holds for every generated value.
func GenerateOIB(base string) (string, error) {
	if base == "" {
		var b strings.Builder
		for i := 0; i < 10; i++ {
			b.WriteByte(byte('0' + rand.Intn(10)))
		}
		base = b.String()
	}
	if len(base) != 10 || !isDigits(base) {
		return "", shared.NewDomainError("OIB_BASE", "Base must be exactly 10 digits")
	}
	return base + string(byte('0'+oibCheckDigit(base))), nil
}

// oibCheckDigit implements ISO 7064 MOD 11-10 over a 10-digit string.
func oibCheckDigit(base string) int {
	a := 10
	for i := 0; i < 10; i++ {
		a = (a + int(base[i]-'0')) % 10
		if a == 0 {
			a = 10
		}
		a = (a * 2) % 11
	}
	return (11 - a) % 10
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
