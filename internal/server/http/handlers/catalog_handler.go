package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Featured product strips show four entries.
const featuredLimit = 4

// CatalogHandler manages product browsing endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, degraded, err := h.facade.Products(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	markDegraded(c, degraded)
	c.JSON(http.StatusOK, products)
}

// Recent handles GET /api/products/recent.
func (h *CatalogHandler) Recent(c *gin.Context) {
	products, degraded, err := h.facade.RecentProducts(c.Request.Context(), featuredLimit)
	if err != nil {
		writeError(c, err)
		return
	}
	markDegraded(c, degraded)
	c.JSON(http.StatusOK, products)
}

// TopRated handles GET /api/products/top-rated.
func (h *CatalogHandler) TopRated(c *gin.Context) {
	products, degraded, err := h.facade.TopRatedProducts(c.Request.Context(), featuredLimit)
	if err != nil {
		writeError(c, err)
		return
	}
	markDegraded(c, degraded)
	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, degraded, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	markDegraded(c, degraded)
	c.JSON(http.StatusOK, product)
}
