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

// ReferenceService handles the building / service / location hierarchy
type ReferenceService struct {
	buildingRepo repository.BuildingRepositoryInterface
	serviceRepo  repository.FacilityServiceRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	validator    *validator.Validate
}

// NewReferenceService creates a new reference service
func NewReferenceService(
	buildingRepo repository.BuildingRepositoryInterface,
	serviceRepo repository.FacilityServiceRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
	validator *validator.Validate,
) *ReferenceService {
	return &ReferenceService{
		buildingRepo: buildingRepo,
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
		validator:    validator,
	}
}

// CreateBuildingRequest represents the request to create a building
type CreateBuildingRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateServiceRequest represents the request to create a service
type CreateServiceRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	BuildingID uuid.UUID `json:"building_id" validate:"required"`
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
}

// BuildingResponse represents a building
type BuildingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceResponse represents a facility service
type ServiceResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BuildingID uuid.UUID `json:"building_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// LocationResponse represents a location
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ServiceID uuid.UUID `json:"service_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBuilding creates a building with a case-insensitively unique name
func (s *ReferenceService) CreateBuilding(req *CreateBuildingRequest) (*BuildingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.buildingRepo.GetByNameInsensitive(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing building: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrBuildingExists
	}

	building := &models.Building{Name: req.Name}
	if err := s.buildingRepo.Create(building); err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}
	return buildingToResponse(building), nil
}

// GetBuildings lists all buildings
func (s *ReferenceService) GetBuildings() ([]BuildingResponse, error) {
	buildings, err := s.buildingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get buildings: %w", err)
	}
	out := make([]BuildingResponse, len(buildings))
	for i := range buildings {
		out[i] = *buildingToResponse(&buildings[i])
	}
	return out, nil
}

// DeleteBuilding removes a building
func (s *ReferenceService) DeleteBuilding(id uuid.UUID) error {
	if _, err := s.buildingRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBuildingNotFound
		}
		return fmt.Errorf("failed to get building: %w", err)
	}
	if err := s.buildingRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete building: %w", err)
	}
	return nil
}

// CreateService creates a service inside a building
func (s *ReferenceService) CreateService(req *CreateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.buildingRepo.GetByID(req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to verify building: %w", err)
	}

	existing, err := s.serviceRepo.GetByNameInsensitive(req.BuildingID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing service: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrServiceExists
	}

	service := &models.FacilityService{Name: req.Name, BuildingID: req.BuildingID}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return serviceToResponse(service), nil
}

// GetServices lists services, optionally scoped to one building
func (s *ReferenceService) GetServices(buildingID *uuid.UUID) ([]ServiceResponse, error) {
	var services []models.FacilityService
	var err error
	if buildingID != nil {
		services, err = s.serviceRepo.GetByBuildingID(*buildingID)
	} else {
		services, err = s.serviceRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = *serviceToResponse(&services[i])
	}
	return out, nil
}

// DeleteService removes a service
func (s *ReferenceService) DeleteService(id uuid.UUID) error {
	if _, err := s.serviceRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return fmt.Errorf("failed to get service: %w", err)
	}
	if err := s.serviceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// CreateLocation creates a location inside a service
func (s *ReferenceService) CreateLocation(req *CreateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.serviceRepo.GetByID(req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to verify service: %w", err)
	}

	existing, err := s.locationRepo.GetByNameInsensitive(req.ServiceID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLocationExists
	}

	location := &models.Location{Name: req.Name, ServiceID: req.ServiceID}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return locationToResponse(location), nil
}

// GetLocations lists locations, optionally scoped to one service
func (s *ReferenceService) GetLocations(serviceID *uuid.UUID) ([]LocationResponse, error) {
	var locations []models.Location
	var err error
	if serviceID != nil {
		locations, err = s.locationRepo.GetByServiceID(*serviceID)
	} else {
		locations, err = s.locationRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	out := make([]LocationResponse, len(locations))
	for i := range locations {
		out[i] = *locationToResponse(&locations[i])
	}
	return out, nil
}

// DeleteLocation removes a location
func (s *ReferenceService) DeleteLocation(id uuid.UUID) error {
	if _, err := s.locationRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}
	if err := s.locationRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func buildingToResponse(b *models.Building) *BuildingResponse {
	return &BuildingResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}

func serviceToResponse(s *models.FacilityService) *ServiceResponse {
	return &ServiceResponse{ID: s.ID, Name: s.Name, BuildingID: s.BuildingID, CreatedAt: s.CreatedAt}
}

func locationToResponse(l *models.Location) *LocationResponse {
	return &LocationResponse{ID: l.ID, Name: l.Name, ServiceID: l.ServiceID, CreatedAt: l.CreatedAt}
}
