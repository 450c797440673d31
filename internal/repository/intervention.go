package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterventionRepository handles database operations for interventions
type InterventionRepository struct {
	db *gorm.DB
}

// NewInterventionRepository creates a new intervention repository
func NewInterventionRepository(db *gorm.DB) *InterventionRepository {
	return &InterventionRepository{db: db}
}

// Create creates a new intervention
func (r *InterventionRepository) Create(intervention *models.Intervention) error {
	return r.db.Create(intervention).Error
}

// GetByID retrieves an intervention by ID
func (r *InterventionRepository) GetByID(id uuid.UUID) (*models.Intervention, error) {
	var intervention models.Intervention
	err := r.db.First(&intervention, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &intervention, nil
}

// GetAll retrieves all interventions with pagination, most recent first
func (r *InterventionRepository) GetAll(limit, offset int) ([]models.Intervention, int64, error) {
	var interventions []models.Intervention
	var total int64

	if err := r.db.Model(&models.Intervention{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&interventions).Error
	if err != nil {
		return nil, 0, err
	}

	return interventions, total, nil
}

// GetByEquipmentID retrieves all interventions for an equipment
func (r *InterventionRepository) GetByEquipmentID(equipmentID uuid.UUID) ([]models.Intervention, error) {
	var interventions []models.Intervention
	err := r.db.Where("equipment_id = ?", equipmentID).Order("created_at DESC").Find(&interventions).Error
	return interventions, err
}

// Update updates an intervention using a map of updates
func (r *InterventionRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Intervention{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes an intervention
func (r *InterventionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Intervention{}, "id = ?", id).Error
}
