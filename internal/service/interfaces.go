package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VehicleServiceInterface defines the interface for vehicle service operations
type VehicleServiceInterface interface {
	Create(callerID uuid.UUID, req *VehicleRequest) (*VehicleResponse, error)
	GetByID(callerID, id uuid.UUID) (*VehicleResponse, error)
	Update(callerID, id uuid.UUID, req *VehicleRequest) (*VehicleResponse, error)
	Delete(callerID, id uuid.UUID) error
	ListByOwner(callerID uuid.UUID, search string, page int) (*VehicleListResponse, error)
}

// TransferServiceInterface defines the interface for transfer service operations
type TransferServiceInterface interface {
	Initiate(callerID uuid.UUID, req *InitiateTransferRequest) (*TransferResponse, error)
	GetByID(callerID, id uuid.UUID) (*TransferResponse, error)
	List(callerID uuid.UUID, page int) (*TransferListResponse, error)
	Update(callerID, id uuid.UUID, req *UpdateTransferRequest) (*TransferResponse, error)
	Delete(callerID, id uuid.UUID) error
}

// HomeServiceInterface defines the interface for the landing page operations
type HomeServiceInterface interface {
	PublicSearch(term, searchType string) (*PublicSearchResponse, error)
	Dashboard(callerID uuid.UUID) (*DashboardResponse, error)
}
