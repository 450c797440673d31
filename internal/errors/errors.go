package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this serial number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrBuildingNotFound        = &NotFoundError{Entity: "building"}
	ErrServiceNotFound         = &NotFoundError{Entity: "service"}
	ErrLocationNotFound        = &NotFoundError{Entity: "location"}
	ErrEquipmentNotFound       = &NotFoundError{Entity: "equipment"}
	ErrGroupNotFound           = &NotFoundError{Entity: "equipment group"}
	ErrDocumentNotFound        = &NotFoundError{Entity: "document"}
	ErrMaintenanceTaskNotFound = &NotFoundError{Entity: "maintenance task"}
	ErrInterventionNotFound    = &NotFoundError{Entity: "intervention"}
	ErrStaffMemberNotFound     = &NotFoundError{Entity: "staff member"}
	ErrCertificationNotFound   = &NotFoundError{Entity: "certification"}
	ErrNotificationNotFound    = &NotFoundError{Entity: "notification"}
	ErrSubscriptionNotFound    = &NotFoundError{Entity: "push subscription"}
)

// Already Exists Errors
var (
	ErrBuildingExists  = &AlreadyExistsError{Entity: "building", Context: "with this name"}
	ErrServiceExists   = &AlreadyExistsError{Entity: "service", Context: "with this name in the building"}
	ErrLocationExists  = &AlreadyExistsError{Entity: "location", Context: "with this name in the service"}
	ErrGroupExists     = &AlreadyExistsError{Entity: "equipment group", Context: "with this name"}
	ErrEquipmentExists = &AlreadyExistsError{Entity: "equipment", Context: "with this serial number"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrImportRejected          = errors.New("import rejected: validation failed")
	ErrMissingFile             = errors.New("no file provided")
	ErrFileReplacementFailed   = errors.New("document file replacement failed")
	ErrInterventionCompleted   = errors.New("intervention is already completed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
