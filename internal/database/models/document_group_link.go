package models

import "github.com/google/uuid"

// DocumentGroupLink is a junction row linking a document to an equipment group.
// At most one row may exist per (document, group) pair.
type DocumentGroupLink struct {
	BaseModel
	DocumentID uuid.UUID `json:"document_id" gorm:"type:uuid;not null;uniqueIndex:idx_document_group,composite:group_id;index" validate:"required"`
	GroupID    uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_document_group;index" validate:"required"`

	// Relationships
	Document Document       `json:"document,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	Group    EquipmentGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DocumentGroupLink
func (DocumentGroupLink) TableName() string {
	return "document_group_links"
}
