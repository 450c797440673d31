package models

import (
	"time"

	"github.com/google/uuid"
)

// PartUsed is one consumed part line on an intervention
type PartUsed struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// TechnicianEntry is one chronological entry in an intervention's
// technician history. Entries are appended, never rewritten.
type TechnicianEntry struct {
	Technician string     `json:"technician"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Actions    string     `json:"actions"`
	PartsUsed  []PartUsed `json:"parts_used,omitempty"`
}

// Intervention represents work performed on a piece of equipment,
// optionally in response to a maintenance task.
type Intervention struct {
	BaseModel
	EquipmentID       uuid.UUID          `json:"equipment_id" gorm:"type:uuid;not null;index" validate:"required"`
	MaintenanceTaskID *uuid.UUID         `json:"maintenance_task_id" gorm:"type:uuid;index"`
	Status            InterventionStatus `json:"status" gorm:"not null;size:20;default:scheduled"`
	ScheduledDate     *time.Time         `json:"scheduled_date"`
	StartDate         *time.Time         `json:"start_date"`
	CompletionDate    *time.Time         `json:"completion_date"`
	Actions           string             `json:"actions" gorm:"type:text"`
	Notes             string             `json:"notes" gorm:"type:text"`
	PartsUsed         []PartUsed         `json:"parts_used" gorm:"type:jsonb;serializer:json"`
	TechnicianHistory []TechnicianEntry  `json:"technician_history" gorm:"type:jsonb;serializer:json"`

	// Relationships
	Equipment       Equipment        `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	MaintenanceTask *MaintenanceTask `json:"maintenance_task,omitempty" gorm:"foreignKey:MaintenanceTaskID"`
}

// TableName returns the table name for Intervention
func (Intervention) TableName() string {
	return "interventions"
}
