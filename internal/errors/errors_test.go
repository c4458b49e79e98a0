package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "vehicle"}
		assert.Equal(t, "vehicle not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "vehicle"}
		err2 := &NotFoundError{Entity: "vehicle"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "vehicle"}
		err2 := &NotFoundError{Entity: "transfer"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrVehicleNotFound, ErrVehicleNotFound))
		assert.False(t, errors.Is(ErrVehicleNotFound, ErrTransferNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get vehicle: %w", ErrVehicleNotFound)
		assert.True(t, errors.Is(wrapped, ErrVehicleNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrVehicleNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrVINExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle", Context: "with this VIN"}
		assert.Equal(t, "vehicle already exists with this VIN", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle"}
		assert.Equal(t, "vehicle already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "vehicle", Context: "with this VIN"}
		err2 := &AlreadyExistsError{Entity: "vehicle", Context: "with this VIN"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with different context", func(t *testing.T) {
		assert.False(t, errors.Is(ErrVINExists, ErrLicensePlateExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrVINExists))
		assert.True(t, IsAlreadyExists(ErrLicensePlateExists))
		assert.False(t, IsAlreadyExists(ErrVehicleNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "vin", Message: "must be 17 characters"}
		assert.Equal(t, "validation error: vin - must be 17 characters", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "must be 17 characters"}
		assert.Equal(t, "validation error: must be 17 characters", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrRecipientRequired))
		assert.True(t, IsValidation(ErrRecipientConflict))
		assert.True(t, IsValidation(NewValidationError("year", "too far in the future")))
		assert.False(t, IsValidation(ErrTransferNotPending))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingCallerIdentity))
		assert.True(t, IsAuthentication(ErrInvalidCallerIdentity))
		assert.False(t, IsAuthentication(ErrNotVehicleOwner))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotVehicleOwner))
		assert.True(t, IsAuthorization(ErrNotTransferParty))
		assert.True(t, IsAuthorization(ErrNotTransferInitiator))
		assert.False(t, IsAuthorization(ErrMissingCallerIdentity))
	})

	t.Run("authorization messages", func(t *testing.T) {
		assert.Equal(t, "caller does not own this vehicle", ErrNotVehicleOwner.Error())
		assert.Equal(t, "caller is not a party to this transfer", ErrNotTransferParty.Error())
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("transfer not pending is a plain sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to complete transfer: %w", ErrTransferNotPending)
		assert.True(t, errors.Is(wrapped, ErrTransferNotPending))
		assert.False(t, IsNotFound(ErrTransferNotPending))
		assert.False(t, IsValidation(ErrTransferNotPending))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("registration")
		assert.Equal(t, "registration not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("no access")
		assert.Equal(t, "no access", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}
