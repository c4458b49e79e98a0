package handlers

import (
	"errors"
	"net/http"

	apperrors "pev-registry-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError maps service-layer errors onto HTTP status codes.
// Unrecognized errors become a 500 with the given message.
func respondServiceError(c *gin.Context, err error, message string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrTransferNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
