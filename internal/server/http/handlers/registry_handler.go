package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/registry"
)

// RegistryHandler serves the static uniform and level registries.
type RegistryHandler struct {
	facade RegistryFacade
}

// NewRegistryHandler constructs RegistryHandler.
func NewRegistryHandler(facade RegistryFacade) *RegistryHandler {
	return &RegistryHandler{facade: facade}
}

// Uniforms handles GET /api/registry/uniforms.
func (h *RegistryHandler) Uniforms(c *gin.Context) {
	types := make(map[model.Category][]registry.ItemType, len(model.Categories()))
	for _, category := range model.Categories() {
		types[category] = h.facade.UniformTypes(category)
	}
	c.JSON(http.StatusOK, types)
}

// Levels handles GET /api/registry/levels.
func (h *RegistryHandler) Levels(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Levels())
}
