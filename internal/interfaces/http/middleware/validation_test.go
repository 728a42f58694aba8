package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NotNil(t, v)
}

func TestValidationMessage_UsesJSONFieldNames(t *testing.T) {
	SetupValidator()

	type request struct {
		ConversationID string `json:"conversation_id" binding:"required"`
		Message        string `json:"message" binding:"max=5"`
	}

	v := binding.Validator.Engine().(*validator.Validate)
	err := v.Struct(request{Message: "too long for the rule"})
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "conversation_id: this field is required")
	assert.Contains(t, msg, "message: must be at most 5 characters")
}

func TestValidationMessage_NonValidationError(t *testing.T) {
	msg := ValidationMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "Request body could not be parsed", msg)
}
