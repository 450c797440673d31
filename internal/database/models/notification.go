package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification row
type Notification struct {
	BaseModel
	Title             string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Message           string     `json:"message" gorm:"type:text"`
	Category          string     `json:"category" gorm:"size:50;index"`
	Read              bool       `json:"read" gorm:"not null;default:false"`
	MaintenanceTaskID *uuid.UUID `json:"maintenance_task_id" gorm:"type:uuid;index"`
	ScheduledFor      *time.Time `json:"scheduled_for"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
