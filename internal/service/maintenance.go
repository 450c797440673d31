package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceService handles business logic for maintenance tasks
type MaintenanceService struct {
	repo          repository.MaintenanceTaskRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	validator     *validator.Validate
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	repo repository.MaintenanceTaskRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	validator *validator.Validate,
) *MaintenanceService {
	return &MaintenanceService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		validator:     validator,
	}
}

// CreateMaintenanceTaskRequest represents the request to create a task
type CreateMaintenanceTaskRequest struct {
	Title               string                     `json:"title" validate:"required,min=1,max=200"`
	Description         string                     `json:"description"`
	Type                models.MaintenanceType     `json:"type" validate:"required"`
	Priority            models.MaintenancePriority `json:"priority"`
	DueDate             time.Time                  `json:"due_date" validate:"required"`
	EquipmentID         *uuid.UUID                 `json:"equipment_id"`
	NotificationEnabled bool                       `json:"notification_enabled"`
	NotificationLead    int                        `json:"notification_lead" validate:"omitempty,min=1"`
	NotificationUnit    models.LeadUnit            `json:"notification_unit"`
}

// UpdateMaintenanceTaskRequest represents a partial update to a task
type UpdateMaintenanceTaskRequest struct {
	Title               *string                     `json:"title" validate:"omitempty,min=1,max=200"`
	Description         *string                     `json:"description"`
	Type                *models.MaintenanceType     `json:"type"`
	Priority            *models.MaintenancePriority `json:"priority"`
	Status              *models.MaintenanceStatus   `json:"status"`
	DueDate             *time.Time                  `json:"due_date"`
	EquipmentID         *uuid.UUID                  `json:"equipment_id"`
	NotificationEnabled *bool                       `json:"notification_enabled"`
	NotificationLead    *int                        `json:"notification_lead" validate:"omitempty,min=1"`
	NotificationUnit    *models.LeadUnit            `json:"notification_unit"`
}

// MaintenanceTaskResponse represents the response for task operations
type MaintenanceTaskResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	Type                models.MaintenanceType     `json:"type"`
	Priority            models.MaintenancePriority `json:"priority"`
	Status              models.MaintenanceStatus   `json:"status"`
	DueDate             time.Time                  `json:"due_date"`
	LastCompletedDate   *time.Time                 `json:"last_completed_date"`
	EquipmentID         *uuid.UUID                 `json:"equipment_id"`
	NotificationEnabled bool                       `json:"notification_enabled"`
	NotificationLead    int                        `json:"notification_lead"`
	NotificationUnit    models.LeadUnit            `json:"notification_unit"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// MaintenanceTaskListResponse represents a paginated list of tasks
type MaintenanceTaskListResponse struct {
	Tasks    []MaintenanceTaskResponse `json:"tasks"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// Create creates a new maintenance task
func (s *MaintenanceService) Create(req *CreateMaintenanceTaskRequest) (*MaintenanceTaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown maintenance type %q", req.Type))
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	unit := req.NotificationUnit
	if unit == "" {
		unit = models.LeadDays
	}
	if !unit.IsValid() {
		return nil, apperrors.NewValidationError("notification_unit", fmt.Sprintf("unknown lead unit %q", unit))
	}

	if req.EquipmentID != nil {
		if _, err := s.equipmentRepo.GetByID(*req.EquipmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEquipmentNotFound
			}
			return nil, fmt.Errorf("failed to verify equipment: %w", err)
		}
	}

	lead := req.NotificationLead
	if lead == 0 {
		lead = 1
	}

	task := &models.MaintenanceTask{
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		Priority:            priority,
		Status:              models.MaintenanceScheduled,
		DueDate:             req.DueDate,
		EquipmentID:         req.EquipmentID,
		NotificationEnabled: req.NotificationEnabled,
		NotificationLead:    lead,
		NotificationUnit:    unit,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create maintenance task: %w", err)
	}

	return taskToResponse(task), nil
}

// GetByID retrieves a maintenance task by ID
func (s *MaintenanceService) GetByID(id uuid.UUID) (*MaintenanceTaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceTaskNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance task: %w", err)
	}
	return taskToResponse(task), nil
}

// GetAll retrieves maintenance tasks with pagination, soonest due first
func (s *MaintenanceService) GetAll(page, pageSize int) (*MaintenanceTaskListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	tasks, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance tasks: %w", err)
	}

	responses := make([]MaintenanceTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *taskToResponse(&tasks[i])
	}

	return &MaintenanceTaskListResponse{
		Tasks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByEquipment retrieves the maintenance tasks of one equipment
func (s *MaintenanceService) GetByEquipment(equipmentID uuid.UUID) ([]MaintenanceTaskResponse, error) {
	if _, err := s.equipmentRepo.GetByID(equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment: %w", err)
	}

	tasks, err := s.repo.GetByEquipmentID(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance tasks: %w", err)
	}

	responses := make([]MaintenanceTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *taskToResponse(&tasks[i])
	}
	return responses, nil
}

// Update applies a partial update to a maintenance task. Changing the
// due date re-arms the reminder.
func (s *MaintenanceService) Update(id uuid.UUID, req *UpdateMaintenanceTaskRequest) (*MaintenanceTaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceTaskNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance task: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown maintenance type %q", *req.Type))
		}
		updates["type"] = *req.Type
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *req.Priority))
		}
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
		updates["notified_at"] = nil
	}
	if req.EquipmentID != nil {
		if _, err := s.equipmentRepo.GetByID(*req.EquipmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEquipmentNotFound
			}
			return nil, fmt.Errorf("failed to verify equipment: %w", err)
		}
		updates["equipment_id"] = *req.EquipmentID
	}
	if req.NotificationEnabled != nil {
		updates["notification_enabled"] = *req.NotificationEnabled
	}
	if req.NotificationLead != nil {
		updates["notification_lead"] = *req.NotificationLead
	}
	if req.NotificationUnit != nil {
		if !req.NotificationUnit.IsValid() {
			return nil, apperrors.NewValidationError("notification_unit", fmt.Sprintf("unknown lead unit %q", *req.NotificationUnit))
		}
		updates["notification_unit"] = *req.NotificationUnit
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update maintenance task: %w", err)
		}
	}

	return s.GetByID(id)
}

// Complete marks a task completed and records the completion time
func (s *MaintenanceService) Complete(id uuid.UUID) (*MaintenanceTaskResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceTaskNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance task: %w", err)
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":              models.MaintenanceCompleted,
		"last_completed_date": now,
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to complete maintenance task: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes a maintenance task
func (s *MaintenanceService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaintenanceTaskNotFound
		}
		return fmt.Errorf("failed to get maintenance task: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete maintenance task: %w", err)
	}
	return nil
}

func taskToResponse(task *models.MaintenanceTask) *MaintenanceTaskResponse {
	return &MaintenanceTaskResponse{
		ID:                  task.ID,
		Title:               task.Title,
		Description:         task.Description,
		Type:                task.Type,
		Priority:            task.Priority,
		Status:              task.Status,
		DueDate:             task.DueDate,
		LastCompletedDate:   task.LastCompletedDate,
		EquipmentID:         task.EquipmentID,
		NotificationEnabled: task.NotificationEnabled,
		NotificationLead:    task.NotificationLead,
		NotificationUnit:    task.NotificationUnit,
		CreatedAt:           task.CreatedAt,
		UpdatedAt:           task.UpdatedAt,
	}
}
