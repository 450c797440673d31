package models

import "github.com/google/uuid"

// EquipmentGroup represents a named group of equipment.
//
// EquipmentIDs is a denormalized read cache over the junction table,
// maintained by the membership service.
type EquipmentGroup struct {
	BaseModel
	Name         string      `json:"name" gorm:"not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`
	Description  string      `json:"description" gorm:"type:text"`
	ImageURL     string      `json:"image_url" gorm:"size:500"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids" gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for EquipmentGroup
func (EquipmentGroup) TableName() string {
	return "equipment_groups"
}
