package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildingRepository handles database operations for buildings
type BuildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create creates a new building
func (r *BuildingRepository) Create(building *models.Building) error {
	return r.db.Create(building).Error
}

// GetByID retrieves a building by ID
func (r *BuildingRepository) GetByID(id uuid.UUID) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// GetByNameInsensitive retrieves a building by case-insensitive name match
func (r *BuildingRepository) GetByNameInsensitive(name string) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// GetAll retrieves all buildings
func (r *BuildingRepository) GetAll() ([]models.Building, error) {
	var buildings []models.Building
	err := r.db.Order("name").Find(&buildings).Error
	return buildings, err
}

// Update updates a building using a map of updates
func (r *BuildingRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Building{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a building
func (r *BuildingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Building{}, "id = ?", id).Error
}

// FacilityServiceRepository handles database operations for services
type FacilityServiceRepository struct {
	db *gorm.DB
}

// NewFacilityServiceRepository creates a new facility service repository
func NewFacilityServiceRepository(db *gorm.DB) *FacilityServiceRepository {
	return &FacilityServiceRepository{db: db}
}

// Create creates a new service
func (r *FacilityServiceRepository) Create(service *models.FacilityService) error {
	return r.db.Create(service).Error
}

// GetByID retrieves a service by ID
func (r *FacilityServiceRepository) GetByID(id uuid.UUID) (*models.FacilityService, error) {
	var service models.FacilityService
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByNameInsensitive retrieves a service by case-insensitive name match
// within a building
func (r *FacilityServiceRepository) GetByNameInsensitive(buildingID uuid.UUID, name string) (*models.FacilityService, error) {
	var service models.FacilityService
	err := r.db.First(&service, "building_id = ? AND LOWER(name) = LOWER(?)", buildingID, name).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetAll retrieves all services
func (r *FacilityServiceRepository) GetAll() ([]models.FacilityService, error) {
	var services []models.FacilityService
	err := r.db.Order("name").Find(&services).Error
	return services, err
}

// GetByBuildingID retrieves all services in a building
func (r *FacilityServiceRepository) GetByBuildingID(buildingID uuid.UUID) ([]models.FacilityService, error) {
	var services []models.FacilityService
	err := r.db.Where("building_id = ?", buildingID).Order("name").Find(&services).Error
	return services, err
}

// Update updates a service using a map of updates
func (r *FacilityServiceRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.FacilityService{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a service
func (r *FacilityServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FacilityService{}, "id = ?", id).Error
}

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByNameInsensitive retrieves a location by case-insensitive name match
// within a service
func (r *LocationRepository) GetByNameInsensitive(serviceID uuid.UUID, name string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "service_id = ? AND LOWER(name) = LOWER(?)", serviceID, name).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetAll retrieves all locations
func (r *LocationRepository) GetAll() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("name").Find(&locations).Error
	return locations, err
}

// GetByServiceID retrieves all locations in a service
func (r *LocationRepository) GetByServiceID(serviceID uuid.UUID) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("service_id = ?", serviceID).Order("name").Find(&locations).Error
	return locations, err
}

// Update updates a location using a map of updates
func (r *LocationRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Location{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a location
func (r *LocationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Location{}, "id = ?", id).Error
}
