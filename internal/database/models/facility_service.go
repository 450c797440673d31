package models

import "github.com/google/uuid"

// FacilityService represents a functional unit (service) inside a building
type FacilityService struct {
	BaseModel
	BuildingID  uuid.UUID `json:"building_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_building_service_name,composite:building_id;not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`

	// Relationships
	Building  Building   `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Locations []Location `json:"locations,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FacilityService
func (FacilityService) TableName() string {
	return "services"
}
