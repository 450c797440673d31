package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentGroupService handles business logic for equipment groups
type EquipmentGroupService struct {
	repo       repository.EquipmentGroupRepositoryInterface
	membership *MembershipService
	validator  *validator.Validate
	log        *logger.Logger
}

// NewEquipmentGroupService creates a new equipment group service
func NewEquipmentGroupService(
	repo repository.EquipmentGroupRepositoryInterface,
	membership *MembershipService,
	validator *validator.Validate,
	log *logger.Logger,
) *EquipmentGroupService {
	return &EquipmentGroupService{
		repo:       repo,
		membership: membership,
		validator:  validator,
		log:        log.WithComponent("equipment-group-service"),
	}
}

// CreateEquipmentGroupRequest represents the request to create a group
type CreateEquipmentGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
}

// UpdateEquipmentGroupRequest represents a partial update to a group
type UpdateEquipmentGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
}

// EquipmentGroupResponse represents the response for group operations
type EquipmentGroupResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image_url"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EquipmentGroupListResponse represents a paginated list of groups
type EquipmentGroupListResponse struct {
	Groups   []EquipmentGroupResponse `json:"groups"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create creates a new equipment group. Group names are unique,
// case-insensitively.
func (s *EquipmentGroupService) Create(req *CreateEquipmentGroupRequest) (*EquipmentGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByNameInsensitive(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	group := &models.EquipmentGroup{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		EquipmentIDs: []uuid.UUID{},
	}

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return groupToResponse(group), nil
}

// GetByID retrieves a group by ID
func (s *EquipmentGroupService) GetByID(id uuid.UUID) (*EquipmentGroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return groupToResponse(group), nil
}

// GetAll retrieves all groups with pagination
func (s *EquipmentGroupService) GetAll(page, pageSize int) (*EquipmentGroupListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	groups, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]EquipmentGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *groupToResponse(&groups[i])
	}

	return &EquipmentGroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Search retrieves groups matching a free-text query with pagination
func (s *EquipmentGroupService) Search(query string, page, pageSize int) (*EquipmentGroupListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	groups, total, err := s.repo.Search(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search groups: %w", err)
	}

	responses := make([]EquipmentGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *groupToResponse(&groups[i])
	}

	return &EquipmentGroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a group. Renames keep the
// case-insensitive uniqueness guarantee. A changed description or image
// is propagated to member equipments after the save; propagation
// failures are logged as warnings and never fail the update.
func (s *EquipmentGroupService) Update(id uuid.UUID, req *UpdateEquipmentGroupRequest) (*EquipmentGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != group.Name {
		existing, err := s.repo.GetByNameInsensitive(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing group: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrGroupExists
		}
		updates["name"] = *req.Name
	}
	descriptionChanged := req.Description != nil && *req.Description != group.Description
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	imageChanged := req.ImageURL != nil && *req.ImageURL != group.ImageURL
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update group: %w", err)
		}
	}

	if descriptionChanged {
		if _, err := s.membership.PropagateGroupDescription(id); err != nil {
			s.log.WithFields(map[string]interface{}{
				"group_id": id,
				"error":    err,
			}).Warn("description propagation failed after group update")
		}
	}
	if imageChanged {
		if _, err := s.membership.PropagateGroupImage(id); err != nil {
			s.log.WithFields(map[string]interface{}{
				"group_id": id,
				"error":    err,
			}).Warn("image propagation failed after group update")
		}
	}

	return s.GetByID(id)
}

// Delete removes a group, its memberships and its document links
func (s *EquipmentGroupService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.membership.DetachGroup(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func groupToResponse(group *models.EquipmentGroup) *EquipmentGroupResponse {
	equipmentIDs := group.EquipmentIDs
	if equipmentIDs == nil {
		equipmentIDs = []uuid.UUID{}
	}
	return &EquipmentGroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		ImageURL:     group.ImageURL,
		EquipmentIDs: equipmentIDs,
		CreatedAt:    group.CreatedAt,
		UpdatedAt:    group.UpdatedAt,
	}
}
