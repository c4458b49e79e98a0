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

// pageSize is the fixed page size for owner vehicle and transfer listings
const pageSize = 10

const timeFormat = "2006-01-02T15:04:05Z07:00"

// VehicleService handles business logic for the vehicle registry
type VehicleService struct {
	repo      repository.VehicleRepositoryInterface
	validator *validator.Validate
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo repository.VehicleRepositoryInterface, validator *validator.Validate) *VehicleService {
	return &VehicleService{
		repo:      repo,
		validator: validator,
	}
}

// VehicleRequest carries the full editable field set of a vehicle. Create and
// update both take the complete set; partial updates are not supported.
type VehicleRequest struct {
	Make               string   `json:"make" validate:"required,max=255"`
	Model              string   `json:"model" validate:"required,max=255"`
	Year               int      `json:"year" validate:"required,min=1990"`
	VIN                string   `json:"vin" validate:"required,len=17"`
	LicensePlate       string   `json:"license_plate" validate:"required,max=20"`
	Color              *string  `json:"color,omitempty" validate:"omitempty,max=255"`
	BatteryCapacityKWh *float64 `json:"battery_capacity,omitempty" validate:"omitempty,gte=0,lte=999.99"`
	RangeMiles         *int     `json:"range_miles,omitempty" validate:"omitempty,gte=0,lte=9999"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                 uuid.UUID            `json:"id"`
	OwnerID            uuid.UUID            `json:"owner_id"`
	Make               string               `json:"make"`
	Model              string               `json:"model"`
	Year               int                  `json:"year"`
	VIN                string               `json:"vin"`
	LicensePlate       string               `json:"license_plate"`
	Color              *string              `json:"color,omitempty"`
	BatteryCapacityKWh *float64             `json:"battery_capacity,omitempty"`
	RangeMiles         *int                 `json:"range_miles,omitempty"`
	Status             models.VehicleStatus `json:"status"`
	Owner              *UserResponse        `json:"owner,omitempty"`
	Transfers          []TransferResponse   `json:"transfers,omitempty"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          string               `json:"updated_at"`
}

// VehicleListResponse represents a paginated list of vehicles
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"pevs"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// UserResponse represents a user referenced from vehicle or transfer responses
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Create registers a new vehicle owned by the caller
func (s *VehicleService) Create(callerID uuid.UUID, req *VehicleRequest) (*VehicleResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(req, nil); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		OwnerID:            callerID,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		VIN:                req.VIN,
		LicensePlate:       req.LicensePlate,
		Color:              req.Color,
		BatteryCapacityKWh: req.BatteryCapacityKWh,
		RangeMiles:         req.RangeMiles,
		Status:             models.VehicleStatusActive,
	}

	if err := s.repo.Create(vehicle); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return s.toResponse(vehicle), nil
}

// GetByID retrieves one of the caller's vehicles with its transfer history.
// There is no public single-record read; only the owner may see a vehicle by id.
func (s *VehicleService) GetByID(callerID, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.repo.GetWithHistory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != callerID {
		return nil, apperrors.ErrNotVehicleOwner
	}

	resp := s.toResponse(vehicle)
	if vehicle.Owner.ID != uuid.Nil {
		resp.Owner = toUserResponse(&vehicle.Owner)
	}
	resp.Transfers = make([]TransferResponse, len(vehicle.Transfers))
	for i, t := range vehicle.Transfers {
		resp.Transfers[i] = *toTransferResponse(&t)
	}
	return resp, nil
}

// Update replaces the editable fields of one of the caller's vehicles
func (s *VehicleService) Update(callerID, id uuid.UUID, req *VehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != callerID {
		return nil, apperrors.ErrNotVehicleOwner
	}

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(req, &vehicle.ID); err != nil {
		return nil, err
	}

	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.VIN = req.VIN
	vehicle.LicensePlate = req.LicensePlate
	vehicle.Color = req.Color
	vehicle.BatteryCapacityKWh = req.BatteryCapacityKWh
	vehicle.RangeMiles = req.RangeMiles

	if err := s.repo.Update(vehicle); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return s.toResponse(vehicle), nil
}

// Delete removes one of the caller's vehicles. The FK cascade removes its
// transfer records.
func (s *VehicleService) Delete(callerID, id uuid.UUID) error {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != callerID {
		return apperrors.ErrNotVehicleOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return nil
}

// ListByOwner retrieves the caller's vehicles newest-first, optionally
// filtered by a substring match on make, model, vin or license plate
func (s *VehicleService) ListByOwner(callerID uuid.UUID, search string, page int) (*VehicleListResponse, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * pageSize
	vehicles, total, err := s.repo.GetByOwnerID(callerID, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		responses[i] = *s.toResponse(&v)
	}

	return &VehicleListResponse{
		Vehicles: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// validateRequest runs the struct tags plus the bounds validator tags cannot
// express (model year ceiling tracks the calendar)
func (s *VehicleService) validateRequest(req *VehicleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if maxYear := time.Now().Year() + 2; req.Year > maxYear {
		return apperrors.NewValidationError("year", fmt.Sprintf("model year cannot be later than %d", maxYear))
	}
	return nil
}

// checkUniqueness pre-checks the vin and license_plate unique constraints,
// excluding the record itself on update
func (s *VehicleService) checkUniqueness(req *VehicleRequest, excludeID *uuid.UUID) error {
	exists, err := s.repo.VINExists(req.VIN, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check VIN uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrVINExists
	}

	exists, err = s.repo.LicensePlateExists(req.LicensePlate, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check license plate uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrLicensePlateExists
	}

	return nil
}

// toResponse converts a vehicle model to a response
func (s *VehicleService) toResponse(vehicle *models.Vehicle) *VehicleResponse {
	return toVehicleResponse(vehicle)
}

func toVehicleResponse(vehicle *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:                 vehicle.ID,
		OwnerID:            vehicle.OwnerID,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		Year:               vehicle.Year,
		VIN:                vehicle.VIN,
		LicensePlate:       vehicle.LicensePlate,
		Color:              vehicle.Color,
		BatteryCapacityKWh: vehicle.BatteryCapacityKWh,
		RangeMiles:         vehicle.RangeMiles,
		Status:             vehicle.Status,
		CreatedAt:          vehicle.CreatedAt.Format(timeFormat),
		UpdatedAt:          vehicle.UpdatedAt.Format(timeFormat),
	}
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
