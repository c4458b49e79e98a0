package repository

import (
	"pev-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// VehicleRepositoryInterface defines the interface for vehicle repository operations
type VehicleRepositoryInterface interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id uuid.UUID) (*models.Vehicle, error)
	GetWithHistory(id uuid.UUID) (*models.Vehicle, error)
	GetByOwnerID(ownerID uuid.UUID, search string, limit, offset int) ([]models.Vehicle, int64, error)
	SearchActive(field SearchField, term string, limit int) ([]models.Vehicle, error)
	CountByOwner(ownerID uuid.UUID) (total int64, active int64, err error)
	LatestActiveByOwner(ownerID uuid.UUID, limit int) ([]models.Vehicle, error)
	VINExists(vin string, excludeID *uuid.UUID) (bool, error)
	LicensePlateExists(plate string, excludeID *uuid.UUID) (bool, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uuid.UUID) error
}

// TransferRepositoryInterface defines the interface for transfer repository operations
type TransferRepositoryInterface interface {
	Create(transfer *models.PevTransfer) error
	GetByID(id uuid.UUID) (*models.PevTransfer, error)
	GetWithRelations(id uuid.UUID) (*models.PevTransfer, error)
	GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.PevTransfer, int64, error)
	Complete(transfer *models.PevTransfer) error
	Cancel(transfer *models.PevTransfer) error
	Delete(id uuid.UUID) error
}
