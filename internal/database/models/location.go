package models

import "github.com/google/uuid"

// Location represents a room or area inside a service
type Location struct {
	BaseModel
	ServiceID   uuid.UUID `json:"service_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_service_location_name,composite:service_id;not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`

	// Relationships
	Service FacilityService `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
