package testutils

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates a test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	id := uuid.New()
	return &models.Equipment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Test Equipment",
		Model:            "TX-100",
		Manufacturer:     "Acme",
		SerialNumber:     "SN-" + id.String()[:8],
		InventoryNumber:  "INV-" + id.String()[:8],
		Status:           models.EquipmentOperational,
		HealthPercentage: 100,
	}
}

// WithName sets a custom name for the equipment
func (f *EquipmentFactory) WithName(name string) *models.Equipment {
	equipment := f.Create()
	equipment.Name = name
	return equipment
}

// WithSerialNumber sets a custom serial number for the equipment
func (f *EquipmentFactory) WithSerialNumber(serial string) *models.Equipment {
	equipment := f.Create()
	equipment.SerialNumber = serial
	return equipment
}

// WithStatus sets a custom status for the equipment
func (f *EquipmentFactory) WithStatus(status models.EquipmentStatus) *models.Equipment {
	equipment := f.Create()
	equipment.Status = status
	return equipment
}

// WithDescription sets a custom description and marks it custom
func (f *EquipmentFactory) WithDescription(description string) *models.Equipment {
	equipment := f.Create()
	equipment.Description = description
	equipment.DescriptionIsCustom = description != ""
	return equipment
}

// WithLocation sets the location chain for the equipment
func (f *EquipmentFactory) WithLocation(buildingID, serviceID, locationID uuid.UUID) *models.Equipment {
	equipment := f.Create()
	equipment.BuildingID = &buildingID
	equipment.ServiceID = &serviceID
	equipment.LocationID = &locationID
	return equipment
}

// EquipmentGroupFactory provides methods to create test EquipmentGroup data
type EquipmentGroupFactory struct{}

// NewEquipmentGroupFactory creates a new EquipmentGroupFactory
func NewEquipmentGroupFactory() *EquipmentGroupFactory {
	return &EquipmentGroupFactory{}
}

// Create creates a test EquipmentGroup with default values
func (f *EquipmentGroupFactory) Create() *models.EquipmentGroup {
	id := uuid.New()
	return &models.EquipmentGroup{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-group-" + id.String()[:8],
		Description: "A test equipment group",
	}
}

// WithName sets a custom name for the group
func (f *EquipmentGroupFactory) WithName(name string) *models.EquipmentGroup {
	group := f.Create()
	group.Name = name
	return group
}

// WithDescription sets a custom description for the group
func (f *EquipmentGroupFactory) WithDescription(description string) *models.EquipmentGroup {
	group := f.Create()
	group.Description = description
	return group
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values
func (f *DocumentFactory) Create() *models.Document {
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        "Test Document",
		Description:  "A test document",
		Category:     "manual",
		FileURL:      "/uploads/2026/01/test.pdf",
		FileSize:     1024,
		FileMimeType: "application/pdf",
	}
}

// WithTitle sets a custom title for the document
func (f *DocumentFactory) WithTitle(title string) *models.Document {
	document := f.Create()
	document.Title = title
	return document
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building with default values
func (f *BuildingFactory) Create() *models.Building {
	id := uuid.New()
	return &models.Building{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Building " + id.String()[:4],
	}
}

// WithName sets a custom name for the building
func (f *BuildingFactory) WithName(name string) *models.Building {
	building := f.Create()
	building.Name = name
	return building
}

// MaintenanceTaskFactory provides methods to create test MaintenanceTask data
type MaintenanceTaskFactory struct{}

// NewMaintenanceTaskFactory creates a new MaintenanceTaskFactory
func NewMaintenanceTaskFactory() *MaintenanceTaskFactory {
	return &MaintenanceTaskFactory{}
}

// Create creates a test MaintenanceTask with default values
func (f *MaintenanceTaskFactory) Create() *models.MaintenanceTask {
	return &models.MaintenanceTask{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:            "Filter replacement",
		Type:             models.MaintenancePreventive,
		Priority:         models.PriorityMedium,
		Status:           models.MaintenanceScheduled,
		DueDate:          time.Now().Add(30 * 24 * time.Hour),
		NotificationLead: 1,
		NotificationUnit: models.LeadDays,
	}
}

// WithDueDate sets a custom due date for the task
func (f *MaintenanceTaskFactory) WithDueDate(due time.Time) *models.MaintenanceTask {
	task := f.Create()
	task.DueDate = due
	return task
}

// WithEquipment sets the equipment ID for the task
func (f *MaintenanceTaskFactory) WithEquipment(equipmentID uuid.UUID) *models.MaintenanceTask {
	task := f.Create()
	task.EquipmentID = &equipmentID
	return task
}

// WithNotification enables reminders with the given lead
func (f *MaintenanceTaskFactory) WithNotification(lead int, unit models.LeadUnit) *models.MaintenanceTask {
	task := f.Create()
	task.NotificationEnabled = true
	task.NotificationLead = lead
	task.NotificationUnit = unit
	return task
}

// StaffMemberFactory provides methods to create test StaffMember data
type StaffMemberFactory struct{}

// NewStaffMemberFactory creates a new StaffMemberFactory
func NewStaffMemberFactory() *StaffMemberFactory {
	return &StaffMemberFactory{}
}

// Create creates a test StaffMember with default values
func (f *StaffMemberFactory) Create() *models.StaffMember {
	id := uuid.New()
	return &models.StaffMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Jane Smith",
		Role:           "Technician",
		Specialization: "HVAC",
		Email:          "jane." + id.String()[:6] + "@test.com",
	}
}

// WithCertification attaches a certification expiring at the given date
func (f *StaffMemberFactory) WithCertification(name string, expiry *time.Time) *models.StaffMember {
	member := f.Create()
	member.Certifications = []models.Certification{{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		StaffMemberID: member.ID,
		Name:          name,
		ObtainedDate:  time.Now().Add(-365 * 24 * time.Hour),
		ExpiryDate:    expiry,
	}}
	return member
}

// FactorySet provides access to all factories
type FactorySet struct {
	Equipment       *EquipmentFactory
	Group           *EquipmentGroupFactory
	Document        *DocumentFactory
	Building        *BuildingFactory
	MaintenanceTask *MaintenanceTaskFactory
	StaffMember     *StaffMemberFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Equipment:       NewEquipmentFactory(),
		Group:           NewEquipmentGroupFactory(),
		Document:        NewDocumentFactory(),
		Building:        NewBuildingFactory(),
		MaintenanceTask: NewMaintenanceTaskFactory(),
		StaffMember:     NewStaffMemberFactory(),
	}
}
