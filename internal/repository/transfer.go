package repository

import (
	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRepository handles database operations for ownership transfers
type TransferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// Create creates a new transfer request
func (r *TransferRepository) Create(transfer *models.PevTransfer) error {
	return r.db.Create(transfer).Error
}

// GetByID retrieves a transfer by ID
func (r *TransferRepository) GetByID(id uuid.UUID) (*models.PevTransfer, error) {
	var transfer models.PevTransfer
	err := r.db.First(&transfer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// GetWithRelations retrieves a transfer with its vehicle and both parties
func (r *TransferRepository) GetWithRelations(id uuid.UUID) (*models.PevTransfer, error) {
	var transfer models.PevTransfer
	err := r.db.
		Preload("Vehicle").
		Preload("FromUser").
		Preload("ToUser").
		First(&transfer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// GetByParticipant retrieves transfers where the user is on either side,
// newest-first with pagination
func (r *TransferRepository) GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.PevTransfer, int64, error) {
	var transfers []models.PevTransfer
	var total int64

	query := r.db.Model(&models.PevTransfer{}).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Vehicle").
		Preload("FromUser").
		Preload("ToUser").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&transfers).Error
	if err != nil {
		return nil, 0, err
	}

	return transfers, total, nil
}

// Complete marks a pending transfer completed and reassigns the vehicle in one
// transaction. The status guard in the WHERE clause makes terminal states
// immutable even under concurrent callers; a failure in either write rolls
// back both.
func (r *TransferRepository) Complete(transfer *models.PevTransfer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PevTransfer{}).
			Where("id = ? AND status = ?", transfer.ID, models.TransferStatusPending).
			Updates(map[string]interface{}{
				"status":       models.TransferStatusCompleted,
				"completed_at": transfer.CompletedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTransferNotPending
		}

		vehicleUpdates := map[string]interface{}{
			"status": models.VehicleStatusTransferred,
		}
		if transfer.ToUserID != nil {
			vehicleUpdates = map[string]interface{}{
				"user_id": *transfer.ToUserID,
				"status":  models.VehicleStatusActive,
			}
		}
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", transfer.VehicleID).
			Updates(vehicleUpdates).Error
	})
}

// Cancel marks a pending transfer cancelled. The vehicle is untouched.
func (r *TransferRepository) Cancel(transfer *models.PevTransfer) error {
	res := r.db.Model(&models.PevTransfer{}).
		Where("id = ? AND status = ?", transfer.ID, models.TransferStatusPending).
		Updates(map[string]interface{}{
			"status":       models.TransferStatusCancelled,
			"completed_at": transfer.CompletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransferNotPending
	}
	return nil
}

// Delete permanently removes a transfer record. Vehicle state is never
// affected, even for completed transfers.
func (r *TransferRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PevTransfer{}, "id = ?", id).Error
}
