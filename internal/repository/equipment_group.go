package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentGroupRepository handles database operations for equipment groups
type EquipmentGroupRepository struct {
	db *gorm.DB
}

// NewEquipmentGroupRepository creates a new equipment group repository
func NewEquipmentGroupRepository(db *gorm.DB) *EquipmentGroupRepository {
	return &EquipmentGroupRepository{db: db}
}

// Create creates a new group
func (r *EquipmentGroupRepository) Create(group *models.EquipmentGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *EquipmentGroupRepository) GetByID(id uuid.UUID) (*models.EquipmentGroup, error) {
	var group models.EquipmentGroup
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group by name
func (r *EquipmentGroupRepository) GetByName(name string) (*models.EquipmentGroup, error) {
	var group models.EquipmentGroup
	err := r.db.First(&group, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByNameInsensitive retrieves a group by case-insensitive name match.
// Used by the bulk importer to resolve group name columns.
func (r *EquipmentGroupRepository) GetByNameInsensitive(name string) (*models.EquipmentGroup, error) {
	var group models.EquipmentGroup
	err := r.db.First(&group, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all groups with pagination
func (r *EquipmentGroupRepository) GetAll(limit, offset int) ([]models.EquipmentGroup, int64, error) {
	var groups []models.EquipmentGroup
	var total int64

	if err := r.db.Model(&models.EquipmentGroup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update updates a group using a map of updates
func (r *EquipmentGroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.EquipmentGroup{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a group
func (r *EquipmentGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EquipmentGroup{}, "id = ?", id).Error
}

// Search searches groups by name or description
func (r *EquipmentGroupRepository) Search(query string, limit, offset int) ([]models.EquipmentGroup, int64, error) {
	var groups []models.EquipmentGroup
	var total int64

	searchQuery := "%" + query + "%"
	whereClause := "name ILIKE ? OR description ILIKE ?"

	if err := r.db.Model(&models.EquipmentGroup{}).Where(whereClause, searchQuery, searchQuery).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where(whereClause, searchQuery, searchQuery).Order("name").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}
