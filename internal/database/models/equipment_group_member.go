package models

import "github.com/google/uuid"

// EquipmentGroupMember is a junction row linking an equipment to a group.
// At most one row may exist per (group, equipment) pair.
type EquipmentGroupMember struct {
	BaseModel
	GroupID     uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_equipment,composite:equipment_id;index" validate:"required"`
	EquipmentID uuid.UUID `json:"equipment_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_equipment;index" validate:"required"`

	// Relationships
	Group     EquipmentGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Equipment Equipment      `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EquipmentGroupMember
func (EquipmentGroupMember) TableName() string {
	return "equipment_group_members"
}
