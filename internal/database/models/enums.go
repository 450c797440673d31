package models

// EquipmentStatus is the operational state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "operational"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentFaulty      EquipmentStatus = "faulty"
)

// IsValid reports whether the status is one of the known values
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentOperational, EquipmentMaintenance, EquipmentFaulty:
		return true
	}
	return false
}

// MaintenanceType classifies a maintenance task
type MaintenanceType string

const (
	MaintenancePreventive  MaintenanceType = "preventive"
	MaintenanceCorrective  MaintenanceType = "corrective"
	MaintenanceRegulatory  MaintenanceType = "regulatory"
	MaintenanceImprovement MaintenanceType = "improvement"
)

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceRegulatory, MaintenanceImprovement:
		return true
	}
	return false
}

// MaintenancePriority is the urgency of a maintenance task
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

func (p MaintenancePriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// MaintenanceStatus is the lifecycle state of a maintenance task
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceOverdue    MaintenanceStatus = "overdue"
)

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceOverdue:
		return true
	}
	return false
}

// LeadUnit is the unit of a notification lead time
type LeadUnit string

const (
	LeadDays   LeadUnit = "days"
	LeadWeeks  LeadUnit = "weeks"
	LeadMonths LeadUnit = "months"
)

func (u LeadUnit) IsValid() bool {
	switch u {
	case LeadDays, LeadWeeks, LeadMonths:
		return true
	}
	return false
}

// InterventionStatus is the lifecycle state of an intervention
type InterventionStatus string

const (
	InterventionScheduled  InterventionStatus = "scheduled"
	InterventionInProgress InterventionStatus = "in-progress"
	InterventionCompleted  InterventionStatus = "completed"
)

func (s InterventionStatus) IsValid() bool {
	switch s {
	case InterventionScheduled, InterventionInProgress, InterventionCompleted:
		return true
	}
	return false
}

// CertificationStatus is derived from the expiry date, never stored
type CertificationStatus string

const (
	CertificationValid        CertificationStatus = "valid"
	CertificationExpiringSoon CertificationStatus = "expiring-soon"
	CertificationExpired      CertificationStatus = "expired"
)
