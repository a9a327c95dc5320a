package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/server/http/dto"
	"github.com/monisha-uniforms/storefront/internal/usecase"
)

// OrderHandler manages bulk and parent order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// SubmitBulk handles POST /api/orders/bulk.
func (h *OrderHandler) SubmitBulk(c *gin.Context) {
	var req dto.BulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	record, err := h.facade.SubmitBulkOrder(c.Request.Context(), usecase.BulkOrderInput{
		SchoolName: req.Name,
		Location:   req.Location,
		Contact: model.Contact{
			Person: req.Contact.Person,
			Phone:  req.Contact.Phone,
			Email:  req.Contact.Email,
		},
		LevelID:   req.Level,
		Ledger:    req.Uniforms,
		NewSchool: req.NewSchool,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, record)
}

// ListBulk handles GET /api/orders/bulk.
func (h *OrderHandler) ListBulk(c *gin.Context) {
	records, err := h.facade.BulkOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetBulk handles GET /api/orders/bulk/:id.
func (h *OrderHandler) GetBulk(c *gin.Context) {
	record, err := h.facade.BulkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBulk handles POST /api/orders/bulk/:id/cancel.
func (h *OrderHandler) CancelBulk(c *gin.Context) {
	record, err := h.facade.CancelBulkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// SubmitParent handles POST /api/orders/parent.
func (h *OrderHandler) SubmitParent(c *gin.Context) {
	var req dto.ParentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	order, err := h.facade.SubmitParentOrder(c.Request.Context(), usecase.ParentOrderInput{
		StudentName: req.StudentName,
		SchoolName:  req.SchoolName,
		LevelID:     req.Level,
		Items:       req.Items,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, order)
}

// ListParent handles GET /api/orders/parent.
func (h *OrderHandler) ListParent(c *gin.Context) {
	orders, err := h.facade.ParentOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CancelParent handles POST /api/orders/parent/:id/cancel.
func (h *OrderHandler) CancelParent(c *gin.Context) {
	order, err := h.facade.CancelParentOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
