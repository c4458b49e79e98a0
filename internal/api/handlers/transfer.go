package handlers

import (
	"net/http"
	"strconv"

	"pev-registry-backend/internal/auth"
	"pev-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles HTTP requests for ownership transfers
type TransferHandler struct {
	service service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(service service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{service: service}
}

// InitiateTransfer handles POST /pev-transfers
// @Summary Initiate an ownership transfer
// @Description Start a pending transfer of one of the caller's vehicles to a registered user or an unregistered recipient
// @Tags pev-transfers
// @Accept json
// @Produce json
// @Param transfer body service.InitiateTransferRequest true "Transfer data"
// @Success 201 {object} service.TransferResponse "Successfully initiated transfer"
// @Failure 400 {object} map[string]interface{} "Invalid request body or recipient"
// @Failure 403 {object} map[string]interface{} "Caller does not own this vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle or recipient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pev-transfers [post]
func (h *TransferHandler) InitiateTransfer(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to initiate transfer")
		return
	}

	var req service.InitiateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	transfer, err := h.service.Initiate(callerID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to initiate transfer")
		return
	}

	c.JSON(http.StatusCreated, transfer)
}

// GetTransfer handles GET /pev-transfers/:id
// @Summary Get a transfer by ID
// @Description Get a transfer the caller participates in, with its vehicle and parties
// @Tags pev-transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID (UUID)"
// @Success 200 {object} service.TransferResponse "Successfully retrieved transfer"
// @Failure 400 {object} map[string]interface{} "Invalid transfer ID"
// @Failure 403 {object} map[string]interface{} "Caller is not a party to this transfer"
// @Failure 404 {object} map[string]interface{} "Transfer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pev-transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to get transfer")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID: invalid UUID format"})
		return
	}

	transfer, err := h.service.GetByID(callerID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get transfer")
		return
	}

	c.JSON(http.StatusOK, transfer)
}

// ListTransfers handles GET /pev-transfers
// @Summary List the caller's transfers
// @Description List transfers the caller participates in on either side, newest first, paginated
// @Tags pev-transfers
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} service.TransferListResponse "Successfully retrieved transfers"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pev-transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to list transfers")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	transfers, err := h.service.List(callerID, page)
	if err != nil {
		respondServiceError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, transfers)
}

// UpdateTransfer handles PATCH /pev-transfers/:id
// @Summary Complete or cancel a transfer
// @Description Apply a complete or cancel action to a pending transfer. Completing reassigns the vehicle.
// @Tags pev-transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID (UUID)"
// @Param action body service.UpdateTransferRequest true "Action to apply"
// @Success 200 {object} service.TransferResponse "Successfully updated transfer"
// @Failure 400 {object} map[string]interface{} "Invalid request body or action"
// @Failure 403 {object} map[string]interface{} "Caller did not initiate this transfer"
// @Failure 404 {object} map[string]interface{} "Transfer not found"
// @Failure 409 {object} map[string]interface{} "Transfer is no longer pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pev-transfers/{id} [patch]
func (h *TransferHandler) UpdateTransfer(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to update transfer")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID: invalid UUID format"})
		return
	}

	var req service.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	transfer, err := h.service.Update(callerID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update transfer")
		return
	}

	c.JSON(http.StatusOK, transfer)
}

// DeleteTransfer handles DELETE /pev-transfers/:id
// @Summary Delete a transfer record
// @Description Permanently remove a transfer record. The vehicle itself is never affected.
// @Tags pev-transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID (UUID)"
// @Success 204 "Successfully deleted transfer"
// @Failure 400 {object} map[string]interface{} "Invalid transfer ID"
// @Failure 403 {object} map[string]interface{} "Caller did not initiate this transfer"
// @Failure 404 {object} map[string]interface{} "Transfer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pev-transfers/{id} [delete]
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	callerID, err := auth.CurrentUserID(c)
	if err != nil {
		respondServiceError(c, err, "Failed to delete transfer")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(callerID, id); err != nil {
		respondServiceError(c, err, "Failed to delete transfer")
		return
	}

	c.Status(http.StatusNoContent)
}
