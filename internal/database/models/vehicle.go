package models

import (
	"fmt"

	"github.com/google/uuid"
)

// VehicleStatus represents the registration status of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusInactive VehicleStatus = "inactive"
	// VehicleStatusTransferred marks a vehicle whose transfer completed to a
	// recipient who has not registered an account yet. The owner column keeps
	// its old value until the recipient claims the vehicle.
	VehicleStatusTransferred VehicleStatus = "transferred"
)

// Vehicle represents a registered Personal Electric Vehicle (PEV)
type Vehicle struct {
	BaseModel
	OwnerID            uuid.UUID     `json:"owner_id" gorm:"column:user_id;type:uuid;not null;index:idx_pevs_owner_status,priority:1" validate:"required"`
	Make               string        `json:"make" gorm:"size:255;not null;index" validate:"required,max=255"`
	Model              string        `json:"model" gorm:"size:255;not null;index" validate:"required,max=255"`
	Year               int           `json:"year" gorm:"not null" validate:"required,min=1990"`
	VIN                string        `json:"vin" gorm:"column:vin;size:17;uniqueIndex;not null" validate:"required,len=17"`
	LicensePlate       string        `json:"license_plate" gorm:"size:20;uniqueIndex;not null" validate:"required,max=20"`
	Color              *string       `json:"color,omitempty" gorm:"size:255"`
	BatteryCapacityKWh *float64      `json:"battery_capacity,omitempty" gorm:"column:battery_capacity;type:decimal(8,2)"`
	RangeMiles         *int          `json:"range_miles,omitempty"`
	Status             VehicleStatus `json:"status" gorm:"type:varchar(20);default:'active';index:idx_pevs_owner_status,priority:2" validate:"required,oneof=active inactive transferred"`

	// Relationships
	Owner     User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Transfers []PevTransfer `json:"transfers,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Vehicle
func (Vehicle) TableName() string {
	return "pevs"
}

// FullName returns the display name "year make model"
func (v *Vehicle) FullName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
