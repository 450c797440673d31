package models

import "github.com/google/uuid"

// Equipment represents a catalogued piece of equipment.
//
// AssociatedGroupIDs is a denormalized read cache over the
// equipment_group_members junction table. It is rebuilt after every
// membership mutation and must never be written directly by handlers.
type Equipment struct {
	BaseModel
	Name                string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Model               string          `json:"model" gorm:"size:100"`
	Manufacturer        string          `json:"manufacturer" gorm:"size:100"`
	Supplier            string          `json:"supplier" gorm:"size:100"`
	SerialNumber        string          `json:"serial_number" gorm:"size:100;index"`
	InventoryNumber     string          `json:"inventory_number" gorm:"size:100"`
	Description         string          `json:"description" gorm:"type:text"`
	DescriptionIsCustom bool            `json:"description_is_custom" gorm:"not null;default:false"`
	UF                  string          `json:"uf" gorm:"size:50"`
	Status              EquipmentStatus `json:"status" gorm:"not null;size:20;default:operational" validate:"required"`
	HealthPercentage    int             `json:"health_percentage" gorm:"not null;default:100" validate:"min=0,max=100"`
	Loan                bool            `json:"loan" gorm:"not null;default:false"`
	ImageURL            string          `json:"image_url" gorm:"size:500"`
	BuildingID          *uuid.UUID      `json:"building_id" gorm:"type:uuid;index"`
	ServiceID           *uuid.UUID      `json:"service_id" gorm:"type:uuid;index"`
	LocationID          *uuid.UUID      `json:"location_id" gorm:"type:uuid;index"`
	AssociatedGroupIDs  []uuid.UUID     `json:"associated_group_ids" gorm:"type:jsonb;serializer:json"`

	// Relationships
	Building *Building        `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Service  *FacilityService `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Location *Location        `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipments"
}
