package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	subscriberapp "github.com/telco/backend/internal/application/subscriber"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/interfaces/http/dto"
	"github.com/telco/backend/internal/interfaces/http/middleware"
)

// SimHandler handles SIM inventory API endpoints
type SimHandler struct {
	BaseHandler
	simService *subscriberapp.SimService
}

// NewSimHandler creates a new SimHandler
func NewSimHandler(simService *subscriberapp.SimService) *SimHandler {
	return &SimHandler{simService: simService}
}

// List returns a paginated SIM inventory listing. Supported filters are
// status (exact), carrier (substring) and unassigned=true.
func (h *SimHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if carrier := c.Query("carrier"); carrier != "" {
		filter.Filters["carrier"] = carrier
	}
	if raw := c.Query("unassigned"); raw != "" {
		unassigned, err := strconv.ParseBool(raw)
		if err != nil {
			h.BadRequest(c, "unassigned must be a boolean")
			return
		}
		filter.Filters["unassigned"] = unassigned
	}

	result, err := h.simService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// RegisterRoutes registers the SIM routes
func (h *SimHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sims := rg.Group("/sims")
	{
		sims.GET("", h.List)
	}
}
