package handlers

import (
	"net/http"

	"pev-registry-backend/internal/auth"
	"pev-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles the landing endpoint: public search for anonymous
// callers, the registry dashboard for authenticated ones.
type HomeHandler struct {
	service service.HomeServiceInterface
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(service service.HomeServiceInterface) *HomeHandler {
	return &HomeHandler{service: service}
}

// Home handles GET /
// @Summary Landing page
// @Description Search active vehicles publicly, or view the owner dashboard when authenticated
// @Tags home
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Param search_type query string false "Search field: license_plate, vin or make_model" Enums(license_plate, vin, make_model)
// @Success 200 {object} map[string]interface{} "Search results or dashboard"
// @Failure 400 {object} map[string]interface{} "Invalid search type"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	if callerID, err := auth.CurrentUserID(c); err == nil {
		dashboard, err := h.service.Dashboard(callerID)
		if err != nil {
			respondServiceError(c, err, "Failed to load dashboard")
			return
		}
		c.JSON(http.StatusOK, dashboard)
		return
	}

	results, err := h.service.PublicSearch(c.Query("search"), c.Query("search_type"))
	if err != nil {
		respondServiceError(c, err, "Failed to search vehicles")
		return
	}

	c.JSON(http.StatusOK, results)
}
