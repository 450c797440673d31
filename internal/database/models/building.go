package models

// Building represents a physical building that hosts services and equipment
type Building struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Services []FacilityService `json:"services,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}
