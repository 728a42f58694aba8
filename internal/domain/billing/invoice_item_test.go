package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanCharge(t *testing.T) {
	billID := uuid.New()
	planID := uuid.New()

	t.Run("creates a plan item", func(t *testing.T) {
		item, err := NewPlanCharge(billID, planID, decimal.NewFromFloat(29.99))
		require.NoError(t, err)

		assert.Equal(t, InvoiceItemTypePlan, item.ItemType)
		require.NotNil(t, item.PlanID)
		assert.Equal(t, planID, *item.PlanID)
		assert.Empty(t, item.ExtraCostType)
	})

	t.Run("requires bill and plan", func(t *testing.T) {
		_, err := NewPlanCharge(uuid.Nil, planID, decimal.Zero)
		assert.Error(t, err)
		_, err = NewPlanCharge(billID, uuid.Nil, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestNewExtraCost(t *testing.T) {
	billID := uuid.New()

	t.Run("creates an extra cost item", func(t *testing.T) {
		item, err := NewExtraCost(billID, "roaming", "Data roaming in Austria", decimal.NewFromFloat(22.50))
		require.NoError(t, err)

		assert.Equal(t, InvoiceItemTypeExtraCost, item.ItemType)
		assert.Equal(t, "roaming", item.ExtraCostType)
		assert.Equal(t, "Data roaming in Austria", item.Description)
		assert.Nil(t, item.PlanID)
	})

	t.Run("requires a cost type", func(t *testing.T) {
		_, err := NewExtraCost(billID, "  ", "", decimal.Zero)
		assert.Error(t, err)
	})
}

func TestNewPlan(t *testing.T) {
	t.Run("creates a plan", func(t *testing.T) {
		plan, err := NewPlan("Unlimited 5G", "Unlimited data", decimal.NewFromFloat(29.99))
		require.NoError(t, err)
		assert.Equal(t, "Unlimited 5G", plan.Name)
	})

	t.Run("rejects empty name and negative price", func(t *testing.T) {
		_, err := NewPlan("", "", decimal.Zero)
		assert.Error(t, err)
		_, err = NewPlan("Basic", "", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}
