package repository

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceTaskRepository handles database operations for maintenance tasks
type MaintenanceTaskRepository struct {
	db *gorm.DB
}

// NewMaintenanceTaskRepository creates a new maintenance task repository
func NewMaintenanceTaskRepository(db *gorm.DB) *MaintenanceTaskRepository {
	return &MaintenanceTaskRepository{db: db}
}

// Create creates a new maintenance task
func (r *MaintenanceTaskRepository) Create(task *models.MaintenanceTask) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a maintenance task by ID
func (r *MaintenanceTaskRepository) GetByID(id uuid.UUID) (*models.MaintenanceTask, error) {
	var task models.MaintenanceTask
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAll retrieves all maintenance tasks with pagination, soonest due first
func (r *MaintenanceTaskRepository) GetAll(limit, offset int) ([]models.MaintenanceTask, int64, error) {
	var tasks []models.MaintenanceTask
	var total int64

	if err := r.db.Model(&models.MaintenanceTask{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("due_date").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// GetByEquipmentID retrieves all maintenance tasks for an equipment
func (r *MaintenanceTaskRepository) GetByEquipmentID(equipmentID uuid.UUID) ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	err := r.db.Where("equipment_id = ?", equipmentID).Order("due_date").Find(&tasks).Error
	return tasks, err
}

// GetDueForNotification retrieves enabled, not yet notified, uncompleted
// tasks whose due date is at or before the horizon. The lead-time window is
// applied by the caller because it depends on each task's unit.
func (r *MaintenanceTaskRepository) GetDueForNotification(horizon time.Time) ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	err := r.db.
		Where("notification_enabled = ? AND notified_at IS NULL AND status <> ? AND due_date <= ?",
			true, models.MaintenanceCompleted, horizon).
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}

// MarkOverdue promotes scheduled tasks past their due date to overdue
func (r *MaintenanceTaskRepository) MarkOverdue(ref time.Time) (int64, error) {
	res := r.db.Model(&models.MaintenanceTask{}).
		Where("status = ? AND due_date < ?", models.MaintenanceScheduled, ref).
		Update("status", models.MaintenanceOverdue)
	return res.RowsAffected, res.Error
}

// Update updates a maintenance task using a map of updates
func (r *MaintenanceTaskRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.MaintenanceTask{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a maintenance task
func (r *MaintenanceTaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenanceTask{}, "id = ?", id).Error
}
