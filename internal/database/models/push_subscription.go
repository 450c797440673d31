package models

import "time"

// PushSubscription holds a browser web-push subscription used for
// maintenance reminders.
type PushSubscription struct {
	Endpoint  string    `json:"endpoint" gorm:"primaryKey;size:500"`
	P256DH    string    `json:"p256dh" gorm:"column:p256dh;not null;size:200"`
	Auth      string    `json:"auth" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// TableName returns the table name for PushSubscription
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
