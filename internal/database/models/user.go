package models

// User mirrors an account in the external identity provider. Only the fields
// the registry needs for ownership and transfer display are stored locally.
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Email string `json:"email" gorm:"size:255;uniqueIndex;not null" validate:"required,email,max=255"`
	Phone string `json:"phone,omitempty" gorm:"size:20" validate:"max=20"`

	// Relationships
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
