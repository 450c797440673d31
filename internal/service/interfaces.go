package service

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EquipmentServiceInterface defines the interface for equipment operations
type EquipmentServiceInterface interface {
	Create(req *CreateEquipmentRequest) (*EquipmentResponse, error)
	GetByID(id uuid.UUID) (*EquipmentResponse, error)
	GetAll(page, pageSize int) (*EquipmentListResponse, error)
	Search(query string, page, pageSize int) (*EquipmentListResponse, error)
	Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
	Delete(id uuid.UUID) error
}

// EquipmentGroupServiceInterface defines the interface for group operations
type EquipmentGroupServiceInterface interface {
	Create(req *CreateEquipmentGroupRequest) (*EquipmentGroupResponse, error)
	GetByID(id uuid.UUID) (*EquipmentGroupResponse, error)
	GetAll(page, pageSize int) (*EquipmentGroupListResponse, error)
	Search(query string, page, pageSize int) (*EquipmentGroupListResponse, error)
	Update(id uuid.UUID, req *UpdateEquipmentGroupRequest) (*EquipmentGroupResponse, error)
	Delete(id uuid.UUID) error
}

// MembershipServiceInterface defines the interface for junction operations
type MembershipServiceInterface interface {
	GetEquipmentsForGroup(groupID uuid.UUID) (*GroupMembersResponse, error)
	UpdateGroupMembers(groupID uuid.UUID, req *UpdateMembersRequest) (*UpdateMembersResponse, error)
	GetGroupsForDocument(documentID uuid.UUID) ([]EquipmentGroupResponse, error)
	UpdateDocumentGroups(documentID uuid.UUID, req *UpdateDocumentGroupsRequest) (*UpdateDocumentGroupsResponse, error)
	PropagateGroupDescription(groupID uuid.UUID) (*PropagationResponse, error)
	PropagateGroupImage(groupID uuid.UUID) (*PropagationResponse, error)
}

// DocumentServiceInterface defines the interface for document operations
type DocumentServiceInterface interface {
	Create(req *CreateDocumentRequest, file io.Reader, filename, mimeType string) (*DocumentResponse, error)
	GetByID(id uuid.UUID) (*DocumentResponse, error)
	GetAll(category string, page, pageSize int) (*DocumentListResponse, error)
	Search(query string, page, pageSize int) (*DocumentListResponse, error)
	Update(id uuid.UUID, req *UpdateDocumentRequest, file io.Reader, filename, mimeType string) (*DocumentResponse, error)
	Delete(id uuid.UUID) error
}

// PrintLayoutServiceInterface defines the interface for layout computation
type PrintLayoutServiceInterface interface {
	Compute(req *PrintLayoutRequest) (*PrintLayoutResponse, error)
}

// SelectorServiceInterface defines the interface for picker pages
type SelectorServiceInterface interface {
	EquipmentPage(req *EquipmentSelectorRequest) (*EquipmentSelectorResponse, error)
}

// ImporterServiceInterface defines the interface for bulk imports
type ImporterServiceInterface interface {
	Import(filename string, r io.Reader, resolution DuplicateResolution) (*ImportResult, error)
}

// ExporterServiceInterface defines the interface for XLSX exports
type ExporterServiceInterface interface {
	Export() (*bytes.Buffer, error)
	Template() (*bytes.Buffer, error)
}

// MaintenanceServiceInterface defines the interface for maintenance tasks
type MaintenanceServiceInterface interface {
	Create(req *CreateMaintenanceTaskRequest) (*MaintenanceTaskResponse, error)
	GetByID(id uuid.UUID) (*MaintenanceTaskResponse, error)
	GetAll(page, pageSize int) (*MaintenanceTaskListResponse, error)
	GetByEquipment(equipmentID uuid.UUID) ([]MaintenanceTaskResponse, error)
	Update(id uuid.UUID, req *UpdateMaintenanceTaskRequest) (*MaintenanceTaskResponse, error)
	Complete(id uuid.UUID) (*MaintenanceTaskResponse, error)
	Delete(id uuid.UUID) error
}

// InterventionServiceInterface defines the interface for interventions
type InterventionServiceInterface interface {
	Create(req *CreateInterventionRequest) (*InterventionResponse, error)
	GetByID(id uuid.UUID) (*InterventionResponse, error)
	GetAll(page, pageSize int) (*InterventionListResponse, error)
	GetByEquipment(equipmentID uuid.UUID) ([]InterventionResponse, error)
	Update(id uuid.UUID, req *UpdateInterventionRequest) (*InterventionResponse, error)
	AddTechnicianEntry(id uuid.UUID, req *TechnicianEntryRequest) (*InterventionResponse, error)
	Delete(id uuid.UUID) error
}

// StaffServiceInterface defines the interface for staff operations
type StaffServiceInterface interface {
	Create(req *CreateStaffMemberRequest) (*StaffMemberResponse, error)
	GetByID(id uuid.UUID) (*StaffMemberResponse, error)
	GetAll(page, pageSize int) (*StaffListResponse, error)
	Update(id uuid.UUID, req *UpdateStaffMemberRequest) (*StaffMemberResponse, error)
	Delete(id uuid.UUID) error
	AddCertification(staffID uuid.UUID, req *CreateCertificationRequest) (*CertificationResponse, error)
	UpdateCertification(id uuid.UUID, req *UpdateCertificationRequest) (*CertificationResponse, error)
	DeleteCertification(id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notifications
type NotificationServiceInterface interface {
	Create(req *CreateNotificationRequest) (*NotificationResponse, error)
	GetAll(page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead() error
	Delete(id uuid.UUID) error
	Subscribe(req *SubscribeRequest) error
	Unsubscribe(endpoint string) error
}

// ReferenceServiceInterface defines the interface for reference data
type ReferenceServiceInterface interface {
	CreateBuilding(req *CreateBuildingRequest) (*BuildingResponse, error)
	GetBuildings() ([]BuildingResponse, error)
	DeleteBuilding(id uuid.UUID) error
	CreateService(req *CreateServiceRequest) (*ServiceResponse, error)
	GetServices(buildingID *uuid.UUID) ([]ServiceResponse, error)
	DeleteService(id uuid.UUID) error
	CreateLocation(req *CreateLocationRequest) (*LocationResponse, error)
	GetLocations(serviceID *uuid.UUID) ([]LocationResponse, error)
	DeleteLocation(id uuid.UUID) error
}
