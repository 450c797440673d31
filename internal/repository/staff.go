package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository handles database operations for staff members and
// their certifications
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member
func (r *StaffRepository) Create(member *models.StaffMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a staff member by ID with certifications
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.db.Preload("Certifications").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all staff members with certifications and pagination
func (r *StaffRepository) GetAll(limit, offset int) ([]models.StaffMember, int64, error) {
	var members []models.StaffMember
	var total int64

	if err := r.db.Model(&models.StaffMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Certifications").Order("name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Update updates a staff member using a map of updates
func (r *StaffRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.StaffMember{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a staff member
func (r *StaffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StaffMember{}, "id = ?", id).Error
}

// AddCertification creates a certification for a staff member
func (r *StaffRepository) AddCertification(cert *models.Certification) error {
	return r.db.Create(cert).Error
}

// GetCertificationByID retrieves a certification by ID
func (r *StaffRepository) GetCertificationByID(id uuid.UUID) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.First(&cert, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// UpdateCertification updates a certification using a map of updates
func (r *StaffRepository) UpdateCertification(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Certification{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCertification deletes a certification
func (r *StaffRepository) DeleteCertification(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, "id = ?", id).Error
}
