package repository

import (
	"errors"
	"strings"

	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SearchField selects which columns a public search term is matched against
type SearchField string

const (
	SearchFieldLicensePlate SearchField = "license_plate"
	SearchFieldVIN          SearchField = "vin"
	SearchFieldMakeModel    SearchField = "make_model"
)

// VehicleRepository handles database operations for vehicles
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create creates a new vehicle
func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return translateUniqueViolation(r.db.Create(vehicle).Error)
}

// GetByID retrieves a vehicle by ID
func (r *VehicleRepository) GetByID(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetWithHistory retrieves a vehicle with its owner and full transfer history
func (r *VehicleRepository) GetWithHistory(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.
		Preload("Owner").
		Preload("Transfers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Transfers.FromUser").
		Preload("Transfers.ToUser").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetByOwnerID retrieves an owner's vehicles newest-first with pagination,
// optionally narrowed by a case-insensitive substring match on make, model,
// vin or license plate
func (r *VehicleRepository) GetByOwnerID(ownerID uuid.UUID, search string, limit, offset int) ([]models.Vehicle, int64, error) {
	var vehicles []models.Vehicle
	var total int64

	query := r.db.Model(&models.Vehicle{}).Where("user_id = ?", ownerID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"make ILIKE ? OR model ILIKE ? OR vin ILIKE ? OR license_plate ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// SearchActive searches active vehicles only, matching the term against the
// columns selected by field, with the owner preloaded for display. Results are
// capped at limit; this path has no pagination.
func (r *VehicleRepository) SearchActive(field SearchField, term string, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle

	pattern := "%" + term + "%"
	query := r.db.Preload("Owner").Where("status = ?", models.VehicleStatusActive)

	switch field {
	case SearchFieldVIN:
		query = query.Where("vin ILIKE ?", pattern)
	case SearchFieldMakeModel:
		query = query.Where("make ILIKE ? OR model ILIKE ?", pattern, pattern)
	default:
		query = query.Where("license_plate ILIKE ?", pattern)
	}

	err := query.Limit(limit).Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CountByOwner returns the owner's total and active vehicle counts
func (r *VehicleRepository) CountByOwner(ownerID uuid.UUID) (int64, int64, error) {
	var total, active int64

	if err := r.db.Model(&models.Vehicle{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.Model(&models.Vehicle{}).
		Where("user_id = ? AND status = ?", ownerID, models.VehicleStatusActive).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}

	return total, active, nil
}

// LatestActiveByOwner returns the owner's most recently registered active vehicles
func (r *VehicleRepository) LatestActiveByOwner(ownerID uuid.UUID, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.
		Where("user_id = ? AND status = ?", ownerID, models.VehicleStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// VINExists checks whether a VIN is already registered, optionally excluding one record
func (r *VehicleRepository) VINExists(vin string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Vehicle{}).Where("vin = ?", vin)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// LicensePlateExists checks whether a license plate is already registered,
// optionally excluding one record
func (r *VehicleRepository) LicensePlateExists(plate string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Vehicle{}).Where("license_plate = ?", plate)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update saves a vehicle
func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	return translateUniqueViolation(r.db.Save(vehicle).Error)
}

// Delete deletes a vehicle; its transfer records go with it via FK cascade
func (r *VehicleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vehicle{}, "id = ?", id).Error
}

// translateUniqueViolation maps Postgres duplicate-key errors on the vin and
// license_plate unique indexes to the typed sentinels. The application
// pre-checks give friendly errors, but the index is the authority under
// concurrent writers.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "vin"):
			return apperrors.ErrVINExists
		case strings.Contains(pgErr.ConstraintName, "license_plate"):
			return apperrors.ErrLicensePlateExists
		}
	}
	return err
}
