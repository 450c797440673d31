package models

import "github.com/google/uuid"

// Document represents an uploaded file with descriptive metadata.
// Group links live in the document_group_links junction table;
// EquipmentIDs is a plain reference list on the row itself.
type Document struct {
	BaseModel
	Title        string      `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description  string      `json:"description" gorm:"type:text"`
	Category     string      `json:"category" gorm:"size:100;index"`
	Tags         []string    `json:"tags" gorm:"type:jsonb;serializer:json"`
	FileURL      string      `json:"file_url" gorm:"size:500"`
	FileSize     int64       `json:"file_size"`
	FileMimeType string      `json:"file_mime_type" gorm:"size:100"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids" gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
