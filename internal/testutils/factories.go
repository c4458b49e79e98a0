package testutils

import (
	"fmt"
	"strings"
	"time"

	"pev-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Email is derived from the
// generated id so users never collide on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Jordan Reyes",
		Email: fmt.Sprintf("jordan.reyes+%s@test.com", id.String()[:8]),
		Phone: "+1-555-0123",
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// VehicleFactory provides methods to create test Vehicle data
type VehicleFactory struct{}

// NewVehicleFactory creates a new VehicleFactory
func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create creates a test Vehicle with default values. VIN and license plate
// are derived from the generated id to stay unique across a test run.
func (f *VehicleFactory) Create() *models.Vehicle {
	id := uuid.New()
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))

	color := "Pearl White"
	battery := 4.8
	rangeMiles := 35

	return &models.Vehicle{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:            uuid.New(),
		Make:               "Segway",
		Model:              "Ninebot Max",
		Year:               2023,
		VIN:                "5YJ" + suffix[:14],
		LicensePlate:       "PEV-" + suffix[:6],
		Color:              &color,
		BatteryCapacityKWh: &battery,
		RangeMiles:         &rangeMiles,
		Status:             models.VehicleStatusActive,
	}
}

// WithOwner sets the owner ID for the vehicle
func (f *VehicleFactory) WithOwner(ownerID uuid.UUID) *models.Vehicle {
	vehicle := f.Create()
	vehicle.OwnerID = ownerID
	return vehicle
}

// WithStatus sets a custom status for the vehicle
func (f *VehicleFactory) WithStatus(status models.VehicleStatus) *models.Vehicle {
	vehicle := f.Create()
	vehicle.Status = status
	return vehicle
}

// WithVIN sets a custom VIN for the vehicle
func (f *VehicleFactory) WithVIN(vin string) *models.Vehicle {
	vehicle := f.Create()
	vehicle.VIN = vin
	return vehicle
}

// WithLicensePlate sets a custom license plate for the vehicle
func (f *VehicleFactory) WithLicensePlate(plate string) *models.Vehicle {
	vehicle := f.Create()
	vehicle.LicensePlate = plate
	return vehicle
}

// TransferFactory provides methods to create test PevTransfer data
type TransferFactory struct{}

// NewTransferFactory creates a new TransferFactory
func NewTransferFactory() *TransferFactory {
	return &TransferFactory{}
}

// Create creates a pending test transfer to an unregistered recipient
func (f *TransferFactory) Create() *models.PevTransfer {
	toEmail := "casey.nguyen@test.com"
	toName := "Casey Nguyen"

	return &models.PevTransfer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VehicleID:   uuid.New(),
		FromUserID:  uuid.New(),
		ToEmail:     &toEmail,
		ToName:      &toName,
		Notes:       "Sold at the weekend swap meet",
		Status:      models.TransferStatusPending,
		InitiatedAt: time.Now(),
	}
}

// Between creates a pending transfer of the given vehicle between two registered users
func (f *TransferFactory) Between(vehicleID, fromUserID, toUserID uuid.UUID) *models.PevTransfer {
	transfer := f.Create()
	transfer.VehicleID = vehicleID
	transfer.FromUserID = fromUserID
	transfer.ToUserID = &toUserID
	transfer.ToEmail = nil
	transfer.ToName = nil
	return transfer
}

// ForVehicle sets the vehicle and initiating owner for the transfer
func (f *TransferFactory) ForVehicle(vehicleID, fromUserID uuid.UUID) *models.PevTransfer {
	transfer := f.Create()
	transfer.VehicleID = vehicleID
	transfer.FromUserID = fromUserID
	return transfer
}

// WithStatus sets a custom status for the transfer
func (f *TransferFactory) WithStatus(status models.TransferStatus) *models.PevTransfer {
	transfer := f.Create()
	transfer.Status = status
	if status.Terminal() {
		now := time.Now()
		transfer.CompletedAt = &now
	}
	return transfer
}
