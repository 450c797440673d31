package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReferenceHandler handles building, service and location endpoints
type ReferenceHandler struct {
	service service.ReferenceServiceInterface
}

// NewReferenceHandler creates a new reference data handler
func NewReferenceHandler(service service.ReferenceServiceInterface) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
	}
}

// CreateBuilding creates a new building
// @Summary Create building
// @Description Create a new building. Names are unique case-insensitively.
// @Tags references
// @Accept json
// @Produce json
// @Param building body service.CreateBuildingRequest true "Building data"
// @Success 201 {object} service.BuildingResponse "Building created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Building already exists"
// @Router /buildings [post]
func (h *ReferenceHandler) CreateBuilding(c *gin.Context) {
	var req service.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	building, err := h.service.CreateBuilding(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBuildingExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Building already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, building)
}

// ListBuildings returns all buildings
// @Summary List buildings
// @Description Get all buildings
// @Tags references
// @Accept json
// @Produce json
// @Success 200 {array} service.BuildingResponse "Buildings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /buildings [get]
func (h *ReferenceHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.service.GetBuildings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list buildings"})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// DeleteBuilding deletes a building
// @Summary Delete building
// @Description Delete a building
// @Tags references
// @Accept json
// @Produce json
// @Param id path string true "Building ID"
// @Success 204 "Building deleted"
// @Failure 400 {object} ErrorResponse "Invalid building ID"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Router /buildings/{id} [delete]
func (h *ReferenceHandler) DeleteBuilding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid building ID"})
		return
	}

	if err := h.service.DeleteBuilding(id); err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete building"})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateService creates a new service inside a building
// @Summary Create service
// @Description Create a new service in a building. Names are unique case-insensitively within the building.
// @Tags references
// @Accept json
// @Produce json
// @Param svc body service.CreateServiceRequest true "Service data"
// @Success 201 {object} service.ServiceResponse "Service created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Failure 409 {object} ErrorResponse "Service already exists"
// @Router /services [post]
func (h *ReferenceHandler) CreateService(c *gin.Context) {
	var req service.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	svc, err := h.service.CreateService(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Building not found"})
			return
		}
		if errors.Is(err, apperrors.ErrServiceExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Service already exists in this building"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// ListServices returns services, optionally scoped to one building
// @Summary List services
// @Description Get all services, optionally filtered by building
// @Tags references
// @Accept json
// @Produce json
// @Param building_id query string false "Building filter"
// @Success 200 {array} service.ServiceResponse "Services"
// @Failure 400 {object} ErrorResponse "Invalid building ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /services [get]
func (h *ReferenceHandler) ListServices(c *gin.Context) {
	var buildingID *uuid.UUID
	if raw := c.Query("building_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid building ID"})
			return
		}
		buildingID = &id
	}

	services, err := h.service.GetServices(buildingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// DeleteService deletes a service
// @Summary Delete service
// @Description Delete a service
// @Tags references
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 204 "Service deleted"
// @Failure 400 {object} ErrorResponse "Invalid service ID"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Router /services/{id} [delete]
func (h *ReferenceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid service ID"})
		return
	}

	if err := h.service.DeleteService(id); err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete service"})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateLocation creates a new location inside a service
// @Summary Create location
// @Description Create a new location in a service. Names are unique case-insensitively within the service.
// @Tags references
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Location created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 409 {object} ErrorResponse "Location already exists"
// @Router /locations [post]
func (h *ReferenceHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	location, err := h.service.CreateLocation(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service not found"})
			return
		}
		if errors.Is(err, apperrors.ErrLocationExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Location already exists in this service"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// ListLocations returns locations, optionally scoped to one service
// @Summary List locations
// @Description Get all locations, optionally filtered by service
// @Tags references
// @Accept json
// @Produce json
// @Param service_id query string false "Service filter"
// @Success 200 {array} service.LocationResponse "Locations"
// @Failure 400 {object} ErrorResponse "Invalid service ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations [get]
func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	var serviceID *uuid.UUID
	if raw := c.Query("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid service ID"})
			return
		}
		serviceID = &id
	}

	locations, err := h.service.GetLocations(serviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// DeleteLocation deletes a location
// @Summary Delete location
// @Description Delete a location
// @Tags references
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 204 "Location deleted"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /locations/{id} [delete]
func (h *ReferenceHandler) DeleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid location ID"})
		return
	}

	if err := h.service.DeleteLocation(id); err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete location"})
		return
	}

	c.Status(http.StatusNoContent)
}
