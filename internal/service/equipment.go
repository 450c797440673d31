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

// EquipmentService handles business logic for equipments
type EquipmentService struct {
	repo         repository.EquipmentRepositoryInterface
	buildingRepo repository.BuildingRepositoryInterface
	serviceRepo  repository.FacilityServiceRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	membership   *MembershipService
	validator    *validator.Validate
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(
	repo repository.EquipmentRepositoryInterface,
	buildingRepo repository.BuildingRepositoryInterface,
	serviceRepo repository.FacilityServiceRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
	membership *MembershipService,
	validator *validator.Validate,
) *EquipmentService {
	return &EquipmentService{
		repo:         repo,
		buildingRepo: buildingRepo,
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
		membership:   membership,
		validator:    validator,
	}
}

// CreateEquipmentRequest represents the request to create an equipment
type CreateEquipmentRequest struct {
	Name             string                 `json:"name" validate:"required,min=1,max=200"`
	Model            string                 `json:"model" validate:"max=100"`
	Manufacturer     string                 `json:"manufacturer" validate:"max=100"`
	Supplier         string                 `json:"supplier" validate:"max=100"`
	SerialNumber     string                 `json:"serial_number" validate:"max=100"`
	InventoryNumber  string                 `json:"inventory_number" validate:"max=100"`
	Description      string                 `json:"description"`
	UF               string                 `json:"uf" validate:"max=50"`
	Status           models.EquipmentStatus `json:"status"`
	HealthPercentage *int                   `json:"health_percentage" validate:"omitempty,min=0,max=100"`
	Loan             bool                   `json:"loan"`
	ImageURL         string                 `json:"image_url" validate:"omitempty,max=500"`
	BuildingID       *uuid.UUID             `json:"building_id"`
	ServiceID        *uuid.UUID             `json:"service_id"`
	LocationID       *uuid.UUID             `json:"location_id"`
}

// UpdateEquipmentRequest represents a partial update to an equipment.
// Nil fields are left untouched.
type UpdateEquipmentRequest struct {
	Name             *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Model            *string                 `json:"model" validate:"omitempty,max=100"`
	Manufacturer     *string                 `json:"manufacturer" validate:"omitempty,max=100"`
	Supplier         *string                 `json:"supplier" validate:"omitempty,max=100"`
	SerialNumber     *string                 `json:"serial_number" validate:"omitempty,max=100"`
	InventoryNumber  *string                 `json:"inventory_number" validate:"omitempty,max=100"`
	Description      *string                 `json:"description"`
	UF               *string                 `json:"uf" validate:"omitempty,max=50"`
	Status           *models.EquipmentStatus `json:"status"`
	HealthPercentage *int                    `json:"health_percentage" validate:"omitempty,min=0,max=100"`
	Loan             *bool                   `json:"loan"`
	ImageURL         *string                 `json:"image_url" validate:"omitempty,max=500"`
	BuildingID       *uuid.UUID              `json:"building_id"`
	ServiceID        *uuid.UUID              `json:"service_id"`
	LocationID       *uuid.UUID              `json:"location_id"`
}

// EquipmentResponse represents the response for equipment operations
type EquipmentResponse struct {
	ID                  uuid.UUID              `json:"id"`
	Name                string                 `json:"name"`
	Model               string                 `json:"model"`
	Manufacturer        string                 `json:"manufacturer"`
	Supplier            string                 `json:"supplier"`
	SerialNumber        string                 `json:"serial_number"`
	InventoryNumber     string                 `json:"inventory_number"`
	Description         string                 `json:"description"`
	DescriptionIsCustom bool                   `json:"description_is_custom"`
	UF                  string                 `json:"uf"`
	Status              models.EquipmentStatus `json:"status"`
	HealthPercentage    int                    `json:"health_percentage"`
	Loan                bool                   `json:"loan"`
	ImageURL            string                 `json:"image_url"`
	BuildingID          *uuid.UUID             `json:"building_id"`
	ServiceID           *uuid.UUID             `json:"service_id"`
	LocationID          *uuid.UUID             `json:"location_id"`
	AssociatedGroupIDs  []uuid.UUID            `json:"associated_group_ids"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// EquipmentListResponse represents a paginated list of equipments
type EquipmentListResponse struct {
	Equipments []EquipmentResponse `json:"equipments"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new equipment
func (s *EquipmentService) Create(req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.EquipmentOperational
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.verifyLocationChain(req.BuildingID, req.ServiceID, req.LocationID); err != nil {
		return nil, err
	}

	health := 100
	if req.HealthPercentage != nil {
		health = *req.HealthPercentage
	}

	equipment := &models.Equipment{
		Name:                req.Name,
		Model:               req.Model,
		Manufacturer:        req.Manufacturer,
		Supplier:            req.Supplier,
		SerialNumber:        req.SerialNumber,
		InventoryNumber:     req.InventoryNumber,
		Description:         req.Description,
		DescriptionIsCustom: req.Description != "",
		UF:                  req.UF,
		Status:              status,
		HealthPercentage:    health,
		Loan:                req.Loan,
		ImageURL:            req.ImageURL,
		BuildingID:          req.BuildingID,
		ServiceID:           req.ServiceID,
		LocationID:          req.LocationID,
		AssociatedGroupIDs:  []uuid.UUID{},
	}

	if err := s.repo.Create(equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return equipmentToResponse(equipment), nil
}

// GetByID retrieves an equipment by ID
func (s *EquipmentService) GetByID(id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return equipmentToResponse(equipment), nil
}

// GetAll retrieves all equipments with pagination
func (s *EquipmentService) GetAll(page, pageSize int) (*EquipmentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	equipments, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipments: %w", err)
	}

	responses := make([]EquipmentResponse, len(equipments))
	for i := range equipments {
		responses[i] = *equipmentToResponse(&equipments[i])
	}

	return &EquipmentListResponse{
		Equipments: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Search retrieves equipments matching a free-text query with pagination
func (s *EquipmentService) Search(query string, page, pageSize int) (*EquipmentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	equipments, total, err := s.repo.Search(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search equipments: %w", err)
	}

	responses := make([]EquipmentResponse, len(equipments))
	for i := range equipments {
		responses[i] = *equipmentToResponse(&equipments[i])
	}

	return &EquipmentListResponse{
		Equipments: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update applies a partial update to an equipment. A manual description
// change marks the description as custom so propagation will not clobber it.
func (s *EquipmentService) Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Manufacturer != nil {
		updates["manufacturer"] = *req.Manufacturer
	}
	if req.Supplier != nil {
		updates["supplier"] = *req.Supplier
	}
	if req.SerialNumber != nil {
		updates["serial_number"] = *req.SerialNumber
	}
	if req.InventoryNumber != nil {
		updates["inventory_number"] = *req.InventoryNumber
	}
	if req.Description != nil && *req.Description != equipment.Description {
		updates["description"] = *req.Description
		updates["description_is_custom"] = *req.Description != ""
	}
	if req.UF != nil {
		updates["uf"] = *req.UF
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.HealthPercentage != nil {
		updates["health_percentage"] = *req.HealthPercentage
	}
	if req.Loan != nil {
		updates["loan"] = *req.Loan
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.BuildingID != nil || req.ServiceID != nil || req.LocationID != nil {
		buildingID := equipment.BuildingID
		serviceID := equipment.ServiceID
		locationID := equipment.LocationID
		if req.BuildingID != nil {
			buildingID = req.BuildingID
			updates["building_id"] = req.BuildingID
		}
		if req.ServiceID != nil {
			serviceID = req.ServiceID
			updates["service_id"] = req.ServiceID
		}
		if req.LocationID != nil {
			locationID = req.LocationID
			updates["location_id"] = req.LocationID
		}
		if err := s.verifyLocationChain(buildingID, serviceID, locationID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update equipment: %w", err)
		}
	}

	return s.GetByID(id)
}

// Delete removes an equipment and its group memberships
func (s *EquipmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentNotFound
		}
		return fmt.Errorf("failed to get equipment: %w", err)
	}

	if err := s.membership.DetachEquipment(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

// verifyLocationChain checks that referenced building, service and
// location rows exist and nest correctly.
func (s *EquipmentService) verifyLocationChain(buildingID, serviceID, locationID *uuid.UUID) error {
	if buildingID != nil {
		if _, err := s.buildingRepo.GetByID(*buildingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBuildingNotFound
			}
			return fmt.Errorf("failed to verify building: %w", err)
		}
	}
	if serviceID != nil {
		svc, err := s.serviceRepo.GetByID(*serviceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrServiceNotFound
			}
			return fmt.Errorf("failed to verify service: %w", err)
		}
		if buildingID != nil && svc.BuildingID != *buildingID {
			return apperrors.NewValidationError("service_id", "service does not belong to the given building")
		}
	}
	if locationID != nil {
		loc, err := s.locationRepo.GetByID(*locationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLocationNotFound
			}
			return fmt.Errorf("failed to verify location: %w", err)
		}
		if serviceID != nil && loc.ServiceID != *serviceID {
			return apperrors.NewValidationError("location_id", "location does not belong to the given service")
		}
	}
	return nil
}

func equipmentToResponse(eq *models.Equipment) *EquipmentResponse {
	groupIDs := eq.AssociatedGroupIDs
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	return &EquipmentResponse{
		ID:                  eq.ID,
		Name:                eq.Name,
		Model:               eq.Model,
		Manufacturer:        eq.Manufacturer,
		Supplier:            eq.Supplier,
		SerialNumber:        eq.SerialNumber,
		InventoryNumber:     eq.InventoryNumber,
		Description:         eq.Description,
		DescriptionIsCustom: eq.DescriptionIsCustom,
		UF:                  eq.UF,
		Status:              eq.Status,
		HealthPercentage:    eq.HealthPercentage,
		Loan:                eq.Loan,
		ImageURL:            eq.ImageURL,
		BuildingID:          eq.BuildingID,
		ServiceID:           eq.ServiceID,
		LocationID:          eq.LocationID,
		AssociatedGroupIDs:  groupIDs,
		CreatedAt:           eq.CreatedAt,
		UpdatedAt:           eq.UpdatedAt,
	}
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
