package models

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus represents the lifecycle state of an ownership transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s TransferStatus) Terminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusCancelled
}

// PevTransfer represents an ownership-transfer request for one vehicle.
// Either ToUserID (registered recipient) or ToEmail+ToName (unregistered
// recipient) is set, never both.
type PevTransfer struct {
	BaseModel
	VehicleID   uuid.UUID      `json:"pev_id" gorm:"column:pev_id;type:uuid;not null;index:idx_pev_transfers_vehicle_status,priority:1" validate:"required"`
	FromUserID  uuid.UUID      `json:"from_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ToUserID    *uuid.UUID     `json:"to_user_id,omitempty" gorm:"type:uuid;index"`
	ToEmail     *string        `json:"to_email,omitempty" gorm:"size:255"`
	ToName      *string        `json:"to_name,omitempty" gorm:"size:255"`
	ToPhone     *string        `json:"to_phone,omitempty" gorm:"size:20"`
	Notes       string         `json:"notes,omitempty" gorm:"size:1000" validate:"max=1000"`
	Status      TransferStatus `json:"status" gorm:"type:varchar(20);default:'pending';index;index:idx_pev_transfers_vehicle_status,priority:2" validate:"required,oneof=pending completed cancelled"`
	InitiatedAt time.Time      `json:"initiated_at" gorm:"not null"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`

	// Relationships
	Vehicle  Vehicle `json:"pev,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	FromUser User    `json:"from_user,omitempty" gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE"`
	ToUser   *User   `json:"to_user,omitempty" gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PevTransfer
func (PevTransfer) TableName() string {
	return "pev_transfers"
}
