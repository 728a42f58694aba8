package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	subscriberapp "github.com/telco/backend/internal/application/subscriber"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/interfaces/http/dto"
	"github.com/telco/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *subscriberapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *subscriberapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns a paginated customer list, optionally narrowed by a
// case-insensitive search over name and email
func (h *CustomerHandler) List(c *gin.Context) {
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
		Search:   req.Search,
	}

	result, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns one customer by ID
func (h *CustomerHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// Update applies a partial update to a customer's name and/or email
func (h *CustomerHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req subscriberapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}
	if req.Name == nil && req.Email == nil {
		h.BadRequest(c, "At least one of name or email must be provided")
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// ListSims returns the SIM cards assigned to a customer, optionally filtered
// by status (exact) and carrier (substring)
func (h *CustomerHandler) ListSims(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	status := c.Query("status")
	carrier := c.Query("carrier")

	sims, err := h.customerService.ListAssignedSims(c.Request.Context(), uuid.MustParse(uri.ID), status, carrier)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sims)
}

// RegisterRoutes registers the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PATCH("/:id", h.Update)
		customers.GET("/:id/sims", h.ListSims)
	}
}
