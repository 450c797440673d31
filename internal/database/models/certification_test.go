package models_test

import (
	"testing"
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestCertificationStatusAt(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	tests := []struct {
		name   string
		expiry *time.Time
		want   models.CertificationStatus
	}{
		{
			name:   "no expiry date never expires",
			expiry: nil,
			want:   models.CertificationValid,
		},
		{
			name:   "far future expiry is valid",
			expiry: timePtr(ref.Add(90 * 24 * time.Hour)),
			want:   models.CertificationValid,
		},
		{
			name:   "expiry inside the window is expiring soon",
			expiry: timePtr(ref.Add(10 * 24 * time.Hour)),
			want:   models.CertificationExpiringSoon,
		},
		{
			name:   "past expiry is expired",
			expiry: timePtr(ref.Add(-24 * time.Hour)),
			want:   models.CertificationExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := models.Certification{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, cert.StatusAt(ref, window))
		})
	}
}

func TestMaintenanceTaskLeadDuration(t *testing.T) {
	day := 24 * time.Hour

	task := models.MaintenanceTask{NotificationLead: 3, NotificationUnit: models.LeadDays}
	assert.Equal(t, 3*day, task.LeadDuration())

	task = models.MaintenanceTask{NotificationLead: 2, NotificationUnit: models.LeadWeeks}
	assert.Equal(t, 14*day, task.LeadDuration())

	task = models.MaintenanceTask{NotificationLead: 1, NotificationUnit: models.LeadMonths}
	assert.Equal(t, 30*day, task.LeadDuration())
}

func TestMaintenanceTaskIsOverdue(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	task := models.MaintenanceTask{Status: models.MaintenanceScheduled, DueDate: ref.Add(-time.Hour)}
	assert.True(t, task.IsOverdue(ref))

	task.DueDate = ref.Add(time.Hour)
	assert.False(t, task.IsOverdue(ref))

	// Completed tasks are never overdue, whatever their due date
	task = models.MaintenanceTask{Status: models.MaintenanceCompleted, DueDate: ref.Add(-time.Hour)}
	assert.False(t, task.IsOverdue(ref))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
