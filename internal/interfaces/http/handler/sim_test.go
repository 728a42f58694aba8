package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telco/backend/internal/domain/subscriber"
	"github.com/telco/backend/internal/infrastructure/persistence"
)

func TestSimHandler_List(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	sims := persistence.NewGormSimRepository(backend.db)
	assignments := persistence.NewGormAssignmentRepository(backend.db)

	assigned, err := subscriber.NewSim("8938501000000000017", "+385911234567", "HT", subscriber.SimStatusActive)
	require.NoError(t, err)
	spare, err := subscriber.NewSim("8938501000000000025", "", "A1", subscriber.SimStatusProvisioning)
	require.NoError(t, err)
	require.NoError(t, sims.Save(ctx, assigned))
	require.NoError(t, sims.Save(ctx, spare))

	holder := backend.seedCustomer(t, "Ana Horvat", "", "")
	assignment, err := subscriber.NewAssignment(holder.ID, assigned.ID, "")
	require.NoError(t, err)
	require.NoError(t, assignments.Save(ctx, assignment))

	t.Run("lists everything", func(t *testing.T) {
		w, resp := backend.do(t, http.MethodGet, "/api/v1/sims", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(2), resp.Meta.Total)
	})

	t.Run("unassigned filter", func(t *testing.T) {
		w, resp := backend.do(t, http.MethodGet, "/api/v1/sims?unassigned=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items := resp.Data.([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "8938501000000000025", items[0].(map[string]interface{})["iccid"])
	})

	t.Run("carrier substring filter", func(t *testing.T) {
		w, resp := backend.do(t, http.MethodGet, "/api/v1/sims?carrier=ht", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items := resp.Data.([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "8938501000000000017", items[0].(map[string]interface{})["iccid"])
	})

	t.Run("bad unassigned value", func(t *testing.T) {
		w, _ := backend.do(t, http.MethodGet, "/api/v1/sims?unassigned=sometimes", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
