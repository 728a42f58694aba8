package subscriber

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhnChecksum(t *testing.T) {
	// Classic vector: 7992739871 carries check digit 3.
	assert.Equal(t, 3, LuhnChecksum("7992739871"))
	assert.True(t, ValidLuhn("79927398713"))
	assert.False(t, ValidLuhn("79927398710"))
}

func TestValidLuhn(t *testing.T) {
	t.Run("rejects non-numeric and too-short input", func(t *testing.T) {
		assert.False(t, ValidLuhn(""))
		assert.False(t, ValidLuhn("7"))
		assert.False(t, ValidLuhn("79927a98713"))
	})

	t.Run("round-trips appended checksums", func(t *testing.T) {
		for _, base := range []string{"893851234567890123", "0", "123456", "893859999999999999"} {
			full := base + strconv.Itoa(LuhnChecksum(base))
			assert.True(t, ValidLuhn(full), full)
		}
	})
}
