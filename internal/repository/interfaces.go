package repository

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(equipment *models.Equipment) error
	BulkCreate(equipments []models.Equipment) error
	GetByID(id uuid.UUID) (*models.Equipment, error)
	GetByIDs(ids []uuid.UUID) ([]models.Equipment, error)
	GetBySerialNumber(serial string) (*models.Equipment, error)
	GetAll(limit, offset int) ([]models.Equipment, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	DeleteBySerialNumbers(serials []string) error
	Search(query string, limit, offset int) ([]models.Equipment, int64, error)
}

// EquipmentGroupRepositoryInterface defines the interface for equipment group repository operations
type EquipmentGroupRepositoryInterface interface {
	Create(group *models.EquipmentGroup) error
	GetByID(id uuid.UUID) (*models.EquipmentGroup, error)
	GetByName(name string) (*models.EquipmentGroup, error)
	GetByNameInsensitive(name string) (*models.EquipmentGroup, error)
	GetAll(limit, offset int) ([]models.EquipmentGroup, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	Search(query string, limit, offset int) ([]models.EquipmentGroup, int64, error)
}

// GroupMembershipRepositoryInterface defines the interface for group membership repository operations
type GroupMembershipRepositoryInterface interface {
	GetByGroupID(groupID uuid.UUID) ([]models.EquipmentGroupMember, error)
	GetByEquipmentID(equipmentID uuid.UUID) ([]models.EquipmentGroupMember, error)
	ReplaceForGroup(groupID uuid.UUID, equipmentIDs []uuid.UUID) error
	DeleteByGroupID(groupID uuid.UUID) error
	DeleteByEquipmentID(equipmentID uuid.UUID) error
	CountByGroupID(groupID uuid.UUID) (int64, error)
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(document *models.Document) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetAll(limit, offset int) ([]models.Document, int64, error)
	GetByCategory(category string, limit, offset int) ([]models.Document, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	Search(query string, limit, offset int) ([]models.Document, int64, error)
}

// DocumentGroupRepositoryInterface defines the interface for document-group link repository operations
type DocumentGroupRepositoryInterface interface {
	GetByDocumentID(documentID uuid.UUID) ([]models.DocumentGroupLink, error)
	GetByGroupID(groupID uuid.UUID) ([]models.DocumentGroupLink, error)
	ReplaceForDocument(documentID uuid.UUID, groupIDs []uuid.UUID) error
	DeleteByDocumentID(documentID uuid.UUID) error
	DeleteByGroupID(groupID uuid.UUID) error
}

// BuildingRepositoryInterface defines the interface for building repository operations
type BuildingRepositoryInterface interface {
	Create(building *models.Building) error
	GetByID(id uuid.UUID) (*models.Building, error)
	GetByNameInsensitive(name string) (*models.Building, error)
	GetAll() ([]models.Building, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// FacilityServiceRepositoryInterface defines the interface for facility service repository operations
type FacilityServiceRepositoryInterface interface {
	Create(service *models.FacilityService) error
	GetByID(id uuid.UUID) (*models.FacilityService, error)
	GetByNameInsensitive(buildingID uuid.UUID, name string) (*models.FacilityService, error)
	GetAll() ([]models.FacilityService, error)
	GetByBuildingID(buildingID uuid.UUID) ([]models.FacilityService, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByNameInsensitive(serviceID uuid.UUID, name string) (*models.Location, error)
	GetAll() ([]models.Location, error)
	GetByServiceID(serviceID uuid.UUID) ([]models.Location, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// MaintenanceTaskRepositoryInterface defines the interface for maintenance task repository operations
type MaintenanceTaskRepositoryInterface interface {
	Create(task *models.MaintenanceTask) error
	GetByID(id uuid.UUID) (*models.MaintenanceTask, error)
	GetAll(limit, offset int) ([]models.MaintenanceTask, int64, error)
	GetByEquipmentID(equipmentID uuid.UUID) ([]models.MaintenanceTask, error)
	GetDueForNotification(horizon time.Time) ([]models.MaintenanceTask, error)
	MarkOverdue(ref time.Time) (int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// InterventionRepositoryInterface defines the interface for intervention repository operations
type InterventionRepositoryInterface interface {
	Create(intervention *models.Intervention) error
	GetByID(id uuid.UUID) (*models.Intervention, error)
	GetAll(limit, offset int) ([]models.Intervention, int64, error)
	GetByEquipmentID(equipmentID uuid.UUID) ([]models.Intervention, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// StaffRepositoryInterface defines the interface for staff repository operations
type StaffRepositoryInterface interface {
	Create(member *models.StaffMember) error
	GetByID(id uuid.UUID) (*models.StaffMember, error)
	GetAll(limit, offset int) ([]models.StaffMember, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	AddCertification(cert *models.Certification) error
	GetCertificationByID(id uuid.UUID) (*models.Certification, error)
	UpdateCertification(id uuid.UUID, updates map[string]interface{}) error
	DeleteCertification(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetAll(limit, offset int, unreadOnly bool) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead() error
	Delete(id uuid.UUID) error
}

// PushSubscriptionRepositoryInterface defines the interface for push subscription repository operations
type PushSubscriptionRepositoryInterface interface {
	Upsert(sub *models.PushSubscription) error
	GetAll() ([]models.PushSubscription, error)
	DeleteByEndpoint(endpoint string) error
}
