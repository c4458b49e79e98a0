package handlers

import (
	"net/http"
	"strconv"

	"pev-registry-backend/internal/auth"
	"pev-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles HTTP requests for the vehicle registry
type VehicleHandler struct {
	service service.VehicleServiceInterface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(service service.VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// CreatePev handles POST /pevs
// @Summary Register a new PEV
// @Description Register a new personal electric vehicle owned by the caller
// @Tags pevs
// @Accept json
// @Produce json
// @Param pev body service.VehicleRequest true "Vehicle data"
// @Success 201 {object} service.VehicleResponse "Successfully registered vehicle"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 409 {object} map[string]interface{} "VIN or license plate already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pevs [post]
func (h *VehicleHandler) CreatePev(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to register vehicle")
		return
	}

	var req service.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vehicle, err := h.service.Create(callerID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to register vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetPev handles GET /pevs/:id
// @Summary Get a PEV by ID
// @Description Get one of the caller's vehicles with its full transfer history
// @Tags pevs
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} service.VehicleResponse "Successfully retrieved vehicle"
// @Failure 400 {object} map[string]interface{} "Invalid vehicle ID"
// @Failure 403 {object} map[string]interface{} "Caller does not own this vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pevs/{id} [get]
func (h *VehicleHandler) GetPev(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to get vehicle")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID: invalid UUID format"})
		return
	}

	vehicle, err := h.service.GetByID(callerID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// ListPevs handles GET /pevs
// @Summary List the caller's PEVs
// @Description List the caller's vehicles, optionally filtered by a search term, paginated
// @Tags pevs
// @Accept json
// @Produce json
// @Param search query string false "Filter across make, model, VIN and license plate"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} service.VehicleListResponse "Successfully retrieved vehicles"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pevs [get]
func (h *VehicleHandler) ListPevs(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicles")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	search := c.Query("search")

	vehicles, err := h.service.ListByOwner(callerID, search, page)
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// UpdatePev handles PUT /pevs/:id
// @Summary Update a PEV
// @Description Replace the editable fields of one of the caller's vehicles
// @Tags pevs
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param pev body service.VehicleRequest true "Vehicle data"
// @Success 200 {object} service.VehicleResponse "Successfully updated vehicle"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own this vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Failure 409 {object} map[string]interface{} "VIN or license plate already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pevs/{id} [put]
func (h *VehicleHandler) UpdatePev(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to update vehicle")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID: invalid UUID format"})
		return
	}

	var req service.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vehicle, err := h.service.Update(callerID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeletePev handles DELETE /pevs/:id
// @Summary Delete a PEV
// @Description Remove one of the caller's vehicles and its transfer history from the registry
// @Tags pevs
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 204 "Successfully deleted vehicle"
// @Failure 400 {object} map[string]interface{} "Invalid vehicle ID"
// @Failure 403 {object} map[string]interface{} "Caller does not own this vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pevs/{id} [delete]
func (h *VehicleHandler) DeletePev(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to delete vehicle")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(callerID, id); err != nil {
		respondServiceError(c, err, "Failed to delete vehicle")
		return
	}

	c.Status(http.StatusNoContent)
}
