package service

import (
	"fmt"
	"strings"

	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"
	"pev-registry-backend/internal/repository"

	"github.com/google/uuid"
)

// publicSearchLimit caps how many matches the unauthenticated search returns
const publicSearchLimit = 10

// dashboardRecentLimit is how many recent vehicles the owner dashboard shows
const dashboardRecentLimit = 5

// HomeService serves the landing surface: the unauthenticated registry
// search and the signed-in owner dashboard.
type HomeService struct {
	vehicleRepo repository.VehicleRepositoryInterface
}

// NewHomeService creates a new home service
func NewHomeService(vehicleRepo repository.VehicleRepositoryInterface) *HomeService {
	return &HomeService{vehicleRepo: vehicleRepo}
}

// PublicSearchResult is the public view of a registered vehicle, carrying the
// owner's name and email so a buyer can reach out before a transfer.
type PublicSearchResult struct {
	ID           uuid.UUID            `json:"id"`
	Make         string               `json:"make"`
	Model        string               `json:"model"`
	Year         int                  `json:"year"`
	VIN          string               `json:"vin"`
	LicensePlate string               `json:"license_plate"`
	Color        *string              `json:"color,omitempty"`
	Status       models.VehicleStatus `json:"status"`
	OwnerName    string               `json:"owner_name,omitempty"`
	OwnerEmail   string               `json:"owner_email,omitempty"`
}

// PublicSearchResponse represents the public search result set
type PublicSearchResponse struct {
	Results    []PublicSearchResult `json:"results"`
	Search     string               `json:"search"`
	SearchType string               `json:"search_type"`
}

// DashboardResponse summarizes the caller's registry for the landing page
type DashboardResponse struct {
	TotalPevs  int64             `json:"total_pevs"`
	ActivePevs int64             `json:"active_pevs"`
	RecentPevs []VehicleResponse `json:"recent_pevs"`
}

// PublicSearch looks up active vehicles by a case-insensitive substring match
// on license plate, VIN, or make/model. An empty term returns an empty result
// set rather than the whole registry.
func (s *HomeService) PublicSearch(term, searchType string) (*PublicSearchResponse, error) {
	if searchType == "" {
		searchType = string(repository.SearchFieldLicensePlate)
	}

	var field repository.SearchField
	switch searchType {
	case string(repository.SearchFieldLicensePlate):
		field = repository.SearchFieldLicensePlate
	case string(repository.SearchFieldVIN):
		field = repository.SearchFieldVIN
	case string(repository.SearchFieldMakeModel):
		field = repository.SearchFieldMakeModel
	default:
		return nil, apperrors.NewValidationError("search_type", "must be one of license_plate, vin, make_model")
	}

	resp := &PublicSearchResponse{
		Results:    []PublicSearchResult{},
		Search:     term,
		SearchType: searchType,
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return resp, nil
	}

	vehicles, err := s.vehicleRepo.SearchActive(field, term, publicSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}

	for _, v := range vehicles {
		result := PublicSearchResult{
			ID:           v.ID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			VIN:          v.VIN,
			LicensePlate: v.LicensePlate,
			Color:        v.Color,
			Status:       v.Status,
		}
		if v.Owner.ID != uuid.Nil {
			result.OwnerName = v.Owner.Name
			result.OwnerEmail = v.Owner.Email
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// Dashboard returns the caller's fleet counts and most recent active vehicles
func (s *HomeService) Dashboard(callerID uuid.UUID) (*DashboardResponse, error) {
	total, active, err := s.vehicleRepo.CountByOwner(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	recent, err := s.vehicleRepo.LatestActiveByOwner(callerID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent vehicles: %w", err)
	}

	responses := make([]VehicleResponse, len(recent))
	for i, v := range recent {
		responses[i] = *toVehicleResponse(&v)
	}

	return &DashboardResponse{
		TotalPevs:  total,
		ActivePevs: active,
		RecentPevs: responses,
	}, nil
}
