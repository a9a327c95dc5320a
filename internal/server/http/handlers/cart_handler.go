package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/server/http/dto"
)

// CartHandler manages shopping cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.facade.Cart(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.AddToCart(c.Request.Context(), model.CartItem{
		ProductID: req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Update handles PATCH /api/cart/:id.
func (h *CartHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.UpdateCartQuantity(c.Request.Context(), id, c.Query("size"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /api/cart/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.RemoveFromCart(c.Request.Context(), id, c.Query("size"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary handles GET /api/cart/summary.
func (h *CartHandler) Summary(c *gin.Context) {
	summary, err := h.facade.CartSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
