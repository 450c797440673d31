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

// InterventionService handles business logic for interventions
type InterventionService struct {
	repo          repository.InterventionRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	taskRepo      repository.MaintenanceTaskRepositoryInterface
	validator     *validator.Validate
}

// NewInterventionService creates a new intervention service
func NewInterventionService(
	repo repository.InterventionRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	taskRepo repository.MaintenanceTaskRepositoryInterface,
	validator *validator.Validate,
) *InterventionService {
	return &InterventionService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		taskRepo:      taskRepo,
		validator:     validator,
	}
}

// CreateInterventionRequest represents the request to create an intervention
type CreateInterventionRequest struct {
	EquipmentID       uuid.UUID  `json:"equipment_id" validate:"required"`
	MaintenanceTaskID *uuid.UUID `json:"maintenance_task_id"`
	ScheduledDate     *time.Time `json:"scheduled_date"`
	Actions           string     `json:"actions"`
	Notes             string     `json:"notes"`
}

// UpdateInterventionRequest represents a partial update to an intervention
type UpdateInterventionRequest struct {
	Status        *models.InterventionStatus `json:"status"`
	ScheduledDate *time.Time                 `json:"scheduled_date"`
	Actions       *string                    `json:"actions"`
	Notes         *string                    `json:"notes"`
	PartsUsed     *[]models.PartUsed         `json:"parts_used"`
}

// TechnicianEntryRequest appends one entry to the technician history
type TechnicianEntryRequest struct {
	Technician string            `json:"technician" validate:"required,min=1,max=100"`
	StartedAt  time.Time         `json:"started_at" validate:"required"`
	EndedAt    *time.Time        `json:"ended_at"`
	Actions    string            `json:"actions"`
	PartsUsed  []models.PartUsed `json:"parts_used"`
}

// InterventionResponse represents the response for intervention operations
type InterventionResponse struct {
	ID                uuid.UUID                `json:"id"`
	EquipmentID       uuid.UUID                `json:"equipment_id"`
	MaintenanceTaskID *uuid.UUID               `json:"maintenance_task_id"`
	Status            models.InterventionStatus `json:"status"`
	ScheduledDate     *time.Time               `json:"scheduled_date"`
	StartDate         *time.Time               `json:"start_date"`
	CompletionDate    *time.Time               `json:"completion_date"`
	Actions           string                   `json:"actions"`
	Notes             string                   `json:"notes"`
	PartsUsed         []models.PartUsed        `json:"parts_used"`
	TechnicianHistory []models.TechnicianEntry `json:"technician_history"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// InterventionListResponse represents a paginated list of interventions
type InterventionListResponse struct {
	Interventions []InterventionResponse `json:"interventions"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new intervention
func (s *InterventionService) Create(req *CreateInterventionRequest) (*InterventionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.equipmentRepo.GetByID(req.EquipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment: %w", err)
	}
	if req.MaintenanceTaskID != nil {
		if _, err := s.taskRepo.GetByID(*req.MaintenanceTaskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMaintenanceTaskNotFound
			}
			return nil, fmt.Errorf("failed to verify maintenance task: %w", err)
		}
	}

	intervention := &models.Intervention{
		EquipmentID:       req.EquipmentID,
		MaintenanceTaskID: req.MaintenanceTaskID,
		Status:            models.InterventionScheduled,
		ScheduledDate:     req.ScheduledDate,
		Actions:           req.Actions,
		Notes:             req.Notes,
		PartsUsed:         []models.PartUsed{},
		TechnicianHistory: []models.TechnicianEntry{},
	}

	if err := s.repo.Create(intervention); err != nil {
		return nil, fmt.Errorf("failed to create intervention: %w", err)
	}

	return interventionToResponse(intervention), nil
}

// GetByID retrieves an intervention by ID
func (s *InterventionService) GetByID(id uuid.UUID) (*InterventionResponse, error) {
	intervention, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}
	return interventionToResponse(intervention), nil
}

// GetAll retrieves interventions with pagination
func (s *InterventionService) GetAll(page, pageSize int) (*InterventionListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	interventions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get interventions: %w", err)
	}

	responses := make([]InterventionResponse, len(interventions))
	for i := range interventions {
		responses[i] = *interventionToResponse(&interventions[i])
	}

	return &InterventionListResponse{
		Interventions: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetByEquipment retrieves the interventions of one equipment
func (s *InterventionService) GetByEquipment(equipmentID uuid.UUID) ([]InterventionResponse, error) {
	if _, err := s.equipmentRepo.GetByID(equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment: %w", err)
	}

	interventions, err := s.repo.GetByEquipmentID(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get interventions: %w", err)
	}

	responses := make([]InterventionResponse, len(interventions))
	for i := range interventions {
		responses[i] = *interventionToResponse(&interventions[i])
	}
	return responses, nil
}

// Update applies a partial update. Status transitions stamp the start
// and completion dates; a completed intervention is immutable.
func (s *InterventionService) Update(id uuid.UUID, req *UpdateInterventionRequest) (*InterventionResponse, error) {
	intervention, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}
	if intervention.Status == models.InterventionCompleted {
		return nil, apperrors.ErrInterventionCompleted
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		updates["status"] = *req.Status
		now := time.Now().UTC()
		if *req.Status == models.InterventionInProgress && intervention.StartDate == nil {
			updates["start_date"] = now
		}
		if *req.Status == models.InterventionCompleted {
			updates["completion_date"] = now
		}
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = *req.ScheduledDate
	}
	if req.Actions != nil {
		updates["actions"] = *req.Actions
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.PartsUsed != nil {
		updates["parts_used"] = *req.PartsUsed
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update intervention: %w", err)
		}
	}

	return s.GetByID(id)
}

// AddTechnicianEntry appends an entry to the intervention's technician
// history. History is append-only.
func (s *InterventionService) AddTechnicianEntry(id uuid.UUID, req *TechnicianEntryRequest) (*InterventionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	intervention, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}
	if intervention.Status == models.InterventionCompleted {
		return nil, apperrors.ErrInterventionCompleted
	}

	history := append(intervention.TechnicianHistory, models.TechnicianEntry{
		Technician: req.Technician,
		StartedAt:  req.StartedAt,
		EndedAt:    req.EndedAt,
		Actions:    req.Actions,
		PartsUsed:  req.PartsUsed,
	})

	if err := s.repo.Update(id, map[string]interface{}{"technician_history": history}); err != nil {
		return nil, fmt.Errorf("failed to append technician entry: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes an intervention
func (s *InterventionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInterventionNotFound
		}
		return fmt.Errorf("failed to get intervention: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete intervention: %w", err)
	}
	return nil
}

func interventionToResponse(intervention *models.Intervention) *InterventionResponse {
	parts := intervention.PartsUsed
	if parts == nil {
		parts = []models.PartUsed{}
	}
	history := intervention.TechnicianHistory
	if history == nil {
		history = []models.TechnicianEntry{}
	}
	return &InterventionResponse{
		ID:                intervention.ID,
		EquipmentID:       intervention.EquipmentID,
		MaintenanceTaskID: intervention.MaintenanceTaskID,
		Status:            intervention.Status,
		ScheduledDate:     intervention.ScheduledDate,
		StartDate:         intervention.StartDate,
		CompletionDate:    intervention.CompletionDate,
		Actions:           intervention.Actions,
		Notes:             intervention.Notes,
		PartsUsed:         parts,
		TechnicianHistory: history,
		CreatedAt:         intervention.CreatedAt,
		UpdatedAt:         intervention.UpdatedAt,
	}
}
