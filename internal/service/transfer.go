package service

import (
	"errors"
	"fmt"
	"time"

	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"
	"pev-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transfer actions accepted by Update
const (
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

// TransferService orchestrates the ownership-transfer workflow
type TransferService struct {
	repo        repository.TransferRepositoryInterface
	vehicleRepo repository.VehicleRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	validator   *validator.Validate
}

// NewTransferService creates a new transfer service
func NewTransferService(repo repository.TransferRepositoryInterface, vehicleRepo repository.VehicleRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TransferService {
	return &TransferService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

// Recipient identifies who a vehicle is being transferred to: either an
// existing account or contact details for someone not registered yet.
type Recipient interface {
	isRecipient()
}

// RegisteredRecipient points at an existing user account
type RegisteredRecipient struct {
	UserID uuid.UUID
}

func (RegisteredRecipient) isRecipient() {}

// UnregisteredRecipient carries contact details for a recipient without an account
type UnregisteredRecipient struct {
	Email string
	Name  string
	Phone string
}

func (UnregisteredRecipient) isRecipient() {}

// InitiateTransferRequest represents the request to initiate a transfer
type InitiateTransferRequest struct {
	PevID    uuid.UUID  `json:"pev_id" validate:"required"`
	ToUserID *uuid.UUID `json:"to_user_id,omitempty"`
	ToEmail  *string    `json:"to_email,omitempty" validate:"omitempty,email,max=255"`
	ToName   *string    `json:"to_name,omitempty" validate:"omitempty,max=255"`
	ToPhone  *string    `json:"to_phone,omitempty" validate:"omitempty,max=20"`
	Notes    string     `json:"notes,omitempty" validate:"max=1000"`
}

// Recipient resolves the flat request fields into the recipient union,
// enforcing that exactly one form was supplied
func (r *InitiateTransferRequest) Recipient() (Recipient, error) {
	hasContact := r.ToEmail != nil || r.ToName != nil

	if r.ToUserID != nil {
		if hasContact {
			return nil, apperrors.ErrRecipientConflict
		}
		return RegisteredRecipient{UserID: *r.ToUserID}, nil
	}

	if r.ToEmail == nil || r.ToName == nil {
		return nil, apperrors.ErrRecipientRequired
	}

	unreg := UnregisteredRecipient{Email: *r.ToEmail, Name: *r.ToName}
	if r.ToPhone != nil {
		unreg.Phone = *r.ToPhone
	}
	return unreg, nil
}

// UpdateTransferRequest represents the complete/cancel action request
type UpdateTransferRequest struct {
	Action string `json:"action" validate:"required,oneof=complete cancel"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID          uuid.UUID             `json:"id"`
	PevID       uuid.UUID             `json:"pev_id"`
	FromUserID  uuid.UUID             `json:"from_user_id"`
	ToUserID    *uuid.UUID            `json:"to_user_id,omitempty"`
	ToEmail     *string               `json:"to_email,omitempty"`
	ToName      *string               `json:"to_name,omitempty"`
	ToPhone     *string               `json:"to_phone,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	Status      models.TransferStatus `json:"status"`
	InitiatedAt string                `json:"initiated_at"`
	CompletedAt *string               `json:"completed_at,omitempty"`
	Pev         *VehicleResponse      `json:"pev,omitempty"`
	FromUser    *UserResponse         `json:"from_user,omitempty"`
	ToUser      *UserResponse         `json:"to_user,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// TransferListResponse represents a paginated list of transfers
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Initiate creates a pending transfer for one of the caller's vehicles.
// The vehicle itself is not touched until the transfer completes.
func (s *TransferService) Initiate(callerID uuid.UUID, req *InitiateTransferRequest) (*TransferResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	recipient, err := req.Recipient()
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(req.PevID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if vehicle.OwnerID != callerID {
		return nil, apperrors.ErrNotVehicleOwner
	}

	transfer := &models.PevTransfer{
		VehicleID:   vehicle.ID,
		FromUserID:  callerID,
		Notes:       req.Notes,
		Status:      models.TransferStatusPending,
		InitiatedAt: time.Now(),
	}

	switch rec := recipient.(type) {
	case RegisteredRecipient:
		if _, err := s.userRepo.GetByID(rec.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify recipient: %w", err)
		}
		transfer.ToUserID = &rec.UserID
	case UnregisteredRecipient:
		transfer.ToEmail = &rec.Email
		transfer.ToName = &rec.Name
		if rec.Phone != "" {
			transfer.ToPhone = &rec.Phone
		}
	}

	if err := s.repo.Create(transfer); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return s.reload(transfer.ID)
}

// GetByID retrieves a transfer visible to the caller: either party may view
func (s *TransferService) GetByID(callerID, id uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	if !isParty(transfer, callerID) {
		return nil, apperrors.ErrNotTransferParty
	}

	return toTransferResponse(transfer), nil
}

// List retrieves transfers the caller is involved in, on either side,
// newest-first
func (s *TransferService) List(callerID uuid.UUID, page int) (*TransferListResponse, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * pageSize
	transfers, total, err := s.repo.GetByParticipant(callerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = *toTransferResponse(&t)
	}

	return &TransferListResponse{
		Transfers: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update transitions a pending transfer to completed or cancelled. Only the
// initiating owner may act, and terminal transfers are rejected. Completing
// reassigns the vehicle to the recipient (or marks it transferred when the
// recipient has no account); both writes happen in one transaction.
func (s *TransferService) Update(callerID, id uuid.UUID, req *UpdateTransferRequest) (*TransferResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	transfer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	if transfer.FromUserID != callerID {
		return nil, apperrors.ErrNotTransferInitiator
	}
	if transfer.Status.Terminal() {
		return nil, apperrors.ErrTransferNotPending
	}

	now := time.Now()
	transfer.CompletedAt = &now

	switch req.Action {
	case ActionComplete:
		err = s.repo.Complete(transfer)
	case ActionCancel:
		err = s.repo.Cancel(transfer)
	default:
		return nil, apperrors.ErrInvalidAction
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrTransferNotPending) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to %s transfer: %w", req.Action, err)
	}

	return s.reload(id)
}

// Delete permanently removes a transfer record in any state. Only the
// initiator may delete; the vehicle is never affected.
func (s *TransferService) Delete(callerID, id uuid.UUID) error {
	transfer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransferNotFound
		}
		return fmt.Errorf("failed to get transfer: %w", err)
	}

	if transfer.FromUserID != callerID {
		return apperrors.ErrNotTransferInitiator
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}

	return nil
}

func (s *TransferService) reload(id uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.repo.GetWithRelations(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transfer: %w", err)
	}
	return toTransferResponse(transfer), nil
}

func isParty(transfer *models.PevTransfer, userID uuid.UUID) bool {
	if transfer.FromUserID == userID {
		return true
	}
	return transfer.ToUserID != nil && *transfer.ToUserID == userID
}

// toTransferResponse converts a transfer model to a response
func toTransferResponse(transfer *models.PevTransfer) *TransferResponse {
	resp := &TransferResponse{
		ID:          transfer.ID,
		PevID:       transfer.VehicleID,
		FromUserID:  transfer.FromUserID,
		ToUserID:    transfer.ToUserID,
		ToEmail:     transfer.ToEmail,
		ToName:      transfer.ToName,
		ToPhone:     transfer.ToPhone,
		Notes:       transfer.Notes,
		Status:      transfer.Status,
		InitiatedAt: transfer.InitiatedAt.Format(timeFormat),
		CreatedAt:   transfer.CreatedAt.Format(timeFormat),
		UpdatedAt:   transfer.UpdatedAt.Format(timeFormat),
	}
	if transfer.CompletedAt != nil {
		formatted := transfer.CompletedAt.Format(timeFormat)
		resp.CompletedAt = &formatted
	}
	if transfer.Vehicle.ID != uuid.Nil {
		resp.Pev = toVehicleResponse(&transfer.Vehicle)
	}
	if transfer.FromUser.ID != uuid.Nil {
		resp.FromUser = toUserResponse(&transfer.FromUser)
	}
	if transfer.ToUser != nil {
		resp.ToUser = toUserResponse(transfer.ToUser)
	}
	return resp
}
