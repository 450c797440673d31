package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EquipmentHandler handles equipment endpoints
type EquipmentHandler struct {
	service  service.EquipmentServiceInterface
	selector service.SelectorServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(service service.EquipmentServiceInterface, selector service.SelectorServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{
		service:  service,
		selector: selector,
	}
}

// parsePagination reads page/page_size query parameters, falling back
// to defaults on anything unparseable.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}

// CreateEquipment creates a new equipment
// @Summary Create equipment
// @Description Create a new equipment with optional location assignment
// @Tags equipments
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Equipment created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Router /equipments [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	equipment, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// GetEquipment returns a single equipment by ID
// @Summary Get equipment
// @Description Get an equipment by its ID
// @Tags equipments
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} service.EquipmentResponse "Equipment found"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Router /equipments/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	equipment, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get equipment"})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// ListEquipments returns a page of equipments, optionally filtered by
// a search query
// @Summary List equipments
// @Description Get a paginated list of equipments, optionally filtered by a free-text search
// @Tags equipments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param q query string false "Search query matched against name, model, manufacturer and serial number"
// @Success 200 {object} service.EquipmentListResponse "Equipments"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments [get]
func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var (
		list *service.EquipmentListResponse
		err  error
	)
	if query := c.Query("q"); query != "" {
		list, err = h.service.Search(query, page, pageSize)
	} else {
		list, err = h.service.GetAll(page, pageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list equipments"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateEquipment updates an equipment
// @Summary Update equipment
// @Description Update an equipment. Only the provided fields are changed.
// @Tags equipments
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} service.EquipmentResponse "Equipment updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Router /equipments/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	equipment, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment deletes an equipment
// @Summary Delete equipment
// @Description Delete an equipment and detach it from all groups
// @Tags equipments
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 204 "Equipment deleted"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Router /equipments/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete equipment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectEquipments returns one page of the equipment picker
// @Summary Equipment picker page
// @Description Get one page of the equipment selection dialog. A missing session_id opens a new picker session; changing the search or filters resets to page 1.
// @Tags equipments
// @Accept json
// @Produce json
// @Param session_id query string false "Picker session ID"
// @Param q query string false "Search query"
// @Param status query string false "Status filter"
// @Param group_id query string false "Group membership filter"
// @Param building_id query string false "Building filter"
// @Param service_id query string false "Service filter"
// @Param location_id query string false "Location filter"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.EquipmentSelectorResponse "Picker page"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /equipments/selector [get]
func (h *EquipmentHandler) SelectEquipments(c *gin.Context) {
	if status := c.Query("status"); status != "" && !models.EquipmentStatus(status).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	req := &service.EquipmentSelectorRequest{
		SessionID:  c.Query("session_id"),
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		GroupID:    c.Query("group_id"),
		BuildingID: c.Query("building_id"),
		ServiceID:  c.Query("service_id"),
		LocationID: c.Query("location_id"),
		Page:       page,
	}

	resp, err := h.selector.EquipmentPage(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load picker page"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
