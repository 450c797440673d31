package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceTask represents a scheduled upkeep task, optionally tied to
// a piece of equipment.
type MaintenanceTask struct {
	BaseModel
	Title               string              `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description         string              `json:"description" gorm:"type:text"`
	Type                MaintenanceType     `json:"type" gorm:"not null;size:20" validate:"required"`
	Priority            MaintenancePriority `json:"priority" gorm:"not null;size:20;default:medium" validate:"required"`
	Status              MaintenanceStatus   `json:"status" gorm:"not null;size:20;default:scheduled"`
	DueDate             time.Time           `json:"due_date" gorm:"not null;index" validate:"required"`
	LastCompletedDate   *time.Time          `json:"last_completed_date"`
	EquipmentID         *uuid.UUID          `json:"equipment_id" gorm:"type:uuid;index"`
	NotificationEnabled bool                `json:"notification_enabled" gorm:"not null;default:false"`
	NotificationLead    int                 `json:"notification_lead" gorm:"not null;default:1"`
	NotificationUnit    LeadUnit            `json:"notification_unit" gorm:"size:10;default:days"`
	NotifiedAt          *time.Time          `json:"notified_at"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}

// TableName returns the table name for MaintenanceTask
func (MaintenanceTask) TableName() string {
	return "maintenance_tasks"
}

// LeadDuration converts the notification lead time to a duration.
// Months are approximated as 30 days, as the reminder window does not
// need calendar precision.
func (t *MaintenanceTask) LeadDuration() time.Duration {
	day := 24 * time.Hour
	switch t.NotificationUnit {
	case LeadWeeks:
		return time.Duration(t.NotificationLead) * 7 * day
	case LeadMonths:
		return time.Duration(t.NotificationLead) * 30 * day
	default:
		return time.Duration(t.NotificationLead) * day
	}
}

// IsOverdue reports whether the task should be considered overdue at ref time
func (t *MaintenanceTask) IsOverdue(ref time.Time) bool {
	return t.Status != MaintenanceCompleted && t.DueDate.Before(ref)
}
