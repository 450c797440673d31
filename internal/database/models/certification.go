package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification is a qualification held by a staff member.
// Its status is derived from ExpiryDate at read time and never persisted.
type Certification struct {
	BaseModel
	StaffMemberID uuid.UUID  `json:"staff_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ObtainedDate  time.Time  `json:"obtained_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
}

// TableName returns the table name for Certification
func (Certification) TableName() string {
	return "certifications"
}

// StatusAt derives the certification status at ref time.
// Certifications without an expiry date never expire.
func (c *Certification) StatusAt(ref time.Time, expiringWindow time.Duration) CertificationStatus {
	if c.ExpiryDate == nil {
		return CertificationValid
	}
	if c.ExpiryDate.Before(ref) {
		return CertificationExpired
	}
	if c.ExpiryDate.Before(ref.Add(expiringWindow)) {
		return CertificationExpiringSoon
	}
	return CertificationValid
}
