package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// SchoolHandler manages partner-school endpoints.
type SchoolHandler struct {
	facade SchoolFacade
}

// NewSchoolHandler constructs SchoolHandler.
func NewSchoolHandler(facade SchoolFacade) *SchoolHandler {
	return &SchoolHandler{facade: facade}
}

// List handles GET /api/schools.
func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.facade.Schools(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

// Search handles GET /api/schools/search.
func (h *SchoolHandler) Search(c *gin.Context) {
	schools, err := h.facade.Schools(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

// Add handles POST /api/schools.
func (h *SchoolHandler) Add(c *gin.Context) {
	var school model.School
	if err := c.ShouldBindJSON(&school); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.AddSchool(c.Request.Context(), school); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, school)
}
