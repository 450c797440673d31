package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new equipment row
func (r *EquipmentRepository) Create(equipment *models.Equipment) error {
	return r.db.Create(equipment).Error
}

// BulkCreate inserts a batch of equipment rows in a single statement
func (r *EquipmentRepository) BulkCreate(equipments []models.Equipment) error {
	if len(equipments) == 0 {
		return nil
	}
	return r.db.Create(&equipments).Error
}

// GetByID retrieves an equipment by ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetByIDs retrieves all equipment whose ID is in ids
func (r *EquipmentRepository) GetByIDs(ids []uuid.UUID) ([]models.Equipment, error) {
	if len(ids) == 0 {
		return []models.Equipment{}, nil
	}
	var equipments []models.Equipment
	err := r.db.Where("id IN ?", ids).Find(&equipments).Error
	return equipments, err
}

// GetBySerialNumber retrieves an equipment by its serial number
func (r *EquipmentRepository) GetBySerialNumber(serial string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "serial_number = ?", serial).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetAll retrieves all equipment with pagination
func (r *EquipmentRepository) GetAll(limit, offset int) ([]models.Equipment, int64, error) {
	var equipments []models.Equipment
	var total int64

	if err := r.db.Model(&models.Equipment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&equipments).Error
	if err != nil {
		return nil, 0, err
	}

	return equipments, total, nil
}

// Update updates an equipment using a map of updates
func (r *EquipmentRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Equipment{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes an equipment
func (r *EquipmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Equipment{}, "id = ?", id).Error
}

// DeleteBySerialNumbers deletes all equipment with one of the given serial numbers.
// Used by the replace-existing import resolution.
func (r *EquipmentRepository) DeleteBySerialNumbers(serials []string) error {
	if len(serials) == 0 {
		return nil
	}
	return r.db.Where("serial_number IN ?", serials).Delete(&models.Equipment{}).Error
}

// Search searches equipment by the fixed text fields used by the selector
func (r *EquipmentRepository) Search(query string, limit, offset int) ([]models.Equipment, int64, error) {
	var equipments []models.Equipment
	var total int64

	searchQuery := "%" + query + "%"
	whereClause := "name ILIKE ? OR model ILIKE ? OR manufacturer ILIKE ? OR serial_number ILIKE ? OR inventory_number ILIKE ?"
	args := []interface{}{searchQuery, searchQuery, searchQuery, searchQuery, searchQuery}

	if err := r.db.Model(&models.Equipment{}).Where(whereClause, args...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where(whereClause, args...).Order("name").Limit(limit).Offset(offset).Find(&equipments).Error
	if err != nil {
		return nil, 0, err
	}

	return equipments, total, nil
}
