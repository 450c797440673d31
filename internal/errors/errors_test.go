package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "maintenance-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorComparison(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", apperrors.ErrEquipmentNotFound)

	assert.True(t, errors.Is(wrapped, apperrors.ErrEquipmentNotFound))
	// Different entities never match each other
	assert.False(t, errors.Is(wrapped, apperrors.ErrGroupNotFound))
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.Equal(t, "equipment not found", apperrors.ErrEquipmentNotFound.Error())
}

func TestAlreadyExistsErrorComparison(t *testing.T) {
	wrapped := fmt.Errorf("creating: %w", apperrors.ErrEquipmentExists)

	assert.True(t, errors.Is(wrapped, apperrors.ErrEquipmentExists))
	assert.False(t, errors.Is(wrapped, apperrors.ErrGroupExists))
	assert.True(t, apperrors.IsAlreadyExists(wrapped))
	assert.Equal(t, "equipment already exists with this serial number", apperrors.ErrEquipmentExists.Error())
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("status", "must be one of operational, maintenance, faulty")

	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "status")

	noField := apperrors.NewValidationError("", "file is empty")
	assert.Equal(t, "validation error: file is empty", noField.Error())
}

func TestCustomEntityConstructors(t *testing.T) {
	err := apperrors.NewNotFoundError("widget")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "widget not found", err.Error())

	err = apperrors.NewAlreadyExistsError("widget", "with this code")
	assert.True(t, apperrors.IsAlreadyExists(err))
	assert.Equal(t, "widget already exists with this code", err.Error())
}
