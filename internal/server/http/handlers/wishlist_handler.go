package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/server/http/dto"
)

// WishlistHandler manages saved-product endpoints.
type WishlistHandler struct {
	facade WishlistFacade
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(facade WishlistFacade) *WishlistHandler {
	return &WishlistHandler{facade: facade}
}

// List handles GET /api/wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.facade.Wishlist(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add handles POST /api/wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.AddToWishlist(c.Request.Context(), model.WishlistItem{
		ProductID:  req.ID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		SchoolName: req.SchoolName,
		Sizes:      req.Sizes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /api/wishlist/:id.
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.RemoveFromWishlist(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// MoveToCart handles POST /api/wishlist/:id/move-to-cart.
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.MoveWishlistItemToCart(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
