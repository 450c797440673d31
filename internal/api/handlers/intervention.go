package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterventionHandler handles intervention endpoints
type InterventionHandler struct {
	service service.InterventionServiceInterface
}

// NewInterventionHandler creates a new intervention handler
func NewInterventionHandler(service service.InterventionServiceInterface) *InterventionHandler {
	return &InterventionHandler{
		service: service,
	}
}

// CreateIntervention creates a new intervention
// @Summary Create intervention
// @Description Record an intervention on an equipment, optionally linked to a maintenance task
// @Tags interventions
// @Accept json
// @Produce json
// @Param intervention body service.CreateInterventionRequest true "Intervention data"
// @Success 201 {object} service.InterventionResponse "Intervention created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Equipment or task not found"
// @Router /interventions [post]
func (h *InterventionHandler) CreateIntervention(c *gin.Context) {
	var req service.CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	intervention, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) || errors.Is(err, apperrors.ErrMaintenanceTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, intervention)
}

// GetIntervention returns a single intervention by ID
// @Summary Get intervention
// @Description Get an intervention by its ID
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID"
// @Success 200 {object} service.InterventionResponse "Intervention found"
// @Failure 400 {object} ErrorResponse "Invalid intervention ID"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Router /interventions/{id} [get]
func (h *InterventionHandler) GetIntervention(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid intervention ID"})
		return
	}

	intervention, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInterventionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Intervention not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get intervention"})
		return
	}

	c.JSON(http.StatusOK, intervention)
}

// ListInterventions returns a page of interventions
// @Summary List interventions
// @Description Get a paginated list of interventions, newest first, or all interventions of one equipment
// @Tags interventions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param equipment_id query string false "Filter by equipment"
// @Success 200 {object} service.InterventionListResponse "Interventions"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /interventions [get]
func (h *InterventionHandler) ListInterventions(c *gin.Context) {
	if raw := c.Query("equipment_id"); raw != "" {
		equipmentID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid equipment ID"})
			return
		}
		interventions, err := h.service.GetByEquipment(equipmentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list interventions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"interventions": interventions, "total": len(interventions)})
		return
	}

	page, pageSize := parsePagination(c)
	list, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list interventions"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateIntervention updates an intervention
// @Summary Update intervention
// @Description Update an intervention. Completed interventions are immutable.
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID"
// @Param intervention body service.UpdateInterventionRequest true "Fields to update"
// @Success 200 {object} service.InterventionResponse "Intervention updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Failure 409 {object} ErrorResponse "Intervention already completed"
// @Router /interventions/{id} [put]
func (h *InterventionHandler) UpdateIntervention(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid intervention ID"})
		return
	}

	var req service.UpdateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	intervention, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInterventionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Intervention not found"})
			return
		}
		if errors.Is(err, apperrors.ErrInterventionCompleted) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Intervention already completed"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, intervention)
}

// AddTechnicianEntry appends an entry to the technician history
// @Summary Add technician entry
// @Description Append an entry to the intervention's technician history. History is append-only.
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID"
// @Param entry body service.TechnicianEntryRequest true "Technician entry"
// @Success 200 {object} service.InterventionResponse "Entry added"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Router /interventions/{id}/technicians [post]
func (h *InterventionHandler) AddTechnicianEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid intervention ID"})
		return
	}

	var req service.TechnicianEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	intervention, err := h.service.AddTechnicianEntry(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInterventionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Intervention not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, intervention)
}

// DeleteIntervention deletes an intervention
// @Summary Delete intervention
// @Description Delete an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Param id path string true "Intervention ID"
// @Success 204 "Intervention deleted"
// @Failure 400 {object} ErrorResponse "Invalid intervention ID"
// @Failure 404 {object} ErrorResponse "Intervention not found"
// @Router /interventions/{id} [delete]
func (h *InterventionHandler) DeleteIntervention(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid intervention ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrInterventionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Intervention not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete intervention"})
		return
	}

	c.Status(http.StatusNoContent)
}
