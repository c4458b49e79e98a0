package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this VIN"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrVehicleNotFound  = &NotFoundError{Entity: "vehicle"}
	ErrTransferNotFound = &NotFoundError{Entity: "transfer"}
)

// Already Exists Errors
var (
	ErrVINExists          = &AlreadyExistsError{Entity: "vehicle", Context: "with this VIN"}
	ErrLicensePlateExists = &AlreadyExistsError{Entity: "vehicle", Context: "with this license plate"}
	ErrUserEmailExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Authorization and Authentication Errors
var (
	ErrNotVehicleOwner       = &AuthorizationError{Message: "caller does not own this vehicle"}
	ErrNotTransferParty      = &AuthorizationError{Message: "caller is not a party to this transfer"}
	ErrNotTransferInitiator  = &AuthorizationError{Message: "only the transferring owner can modify this transfer"}
	ErrMissingCallerIdentity = &AuthenticationError{Message: "caller identity not found in request context"}
	ErrInvalidCallerIdentity = &AuthenticationError{Message: "caller identity is malformed"}
)

// Business Logic Errors
var (
	ErrTransferNotPending = errors.New("transfer is no longer pending")
	ErrInvalidAction      = errors.New("action must be 'complete' or 'cancel'")
	ErrRecipientRequired  = &ValidationError{Field: "to_user_id", Message: "a recipient user or an email and name are required"}
	ErrRecipientConflict  = &ValidationError{Field: "to_user_id", Message: "provide either a recipient user or contact details, not both"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
