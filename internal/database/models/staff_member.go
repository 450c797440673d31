package models

// StaffMember represents a technician or other member of the maintenance staff
type StaffMember struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Role           string `json:"role" gorm:"size:100"`
	Specialization string `json:"specialization" gorm:"size:100"`
	Email          string `json:"email" gorm:"size:200;index" validate:"omitempty,email"`
	Phone          string `json:"phone" gorm:"size:50"`
	AvatarURL      string `json:"avatar_url" gorm:"size:500"`

	// Relationships
	Certifications []Certification `json:"certifications,omitempty" gorm:"foreignKey:StaffMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StaffMember
func (StaffMember) TableName() string {
	return "staff_members"
}
