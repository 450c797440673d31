package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler handles staff member and certification endpoints
type StaffHandler struct {
	service service.StaffServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(service service.StaffServiceInterface) *StaffHandler {
	return &StaffHandler{
		service: service,
	}
}

// CreateStaffMember creates a new staff member
// @Summary Create staff member
// @Description Create a new staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body service.CreateStaffMemberRequest true "Staff member data"
// @Success 201 {object} service.StaffMemberResponse "Staff member created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Router /staff [post]
func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var req service.CreateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	member, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetStaffMember returns a staff member with their certifications
// @Summary Get staff member
// @Description Get a staff member by ID, including certifications with derived validity status
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Success 200 {object} service.StaffMemberResponse "Staff member found"
// @Failure 400 {object} ErrorResponse "Invalid staff member ID"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff member ID"})
		return
	}

	member, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffMemberNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get staff member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListStaffMembers returns a page of staff members
// @Summary List staff members
// @Description Get a paginated list of staff members
// @Tags staff
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.StaffListResponse "Staff members"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /staff [get]
func (h *StaffHandler) ListStaffMembers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	list, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list staff members"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateStaffMember updates a staff member
// @Summary Update staff member
// @Description Update a staff member. Only the provided fields are changed.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Param staff body service.UpdateStaffMemberRequest true "Fields to update"
// @Success 200 {object} service.StaffMemberResponse "Staff member updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id} [put]
func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff member ID"})
		return
	}

	var req service.UpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	member, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffMemberNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteStaffMember deletes a staff member
// @Summary Delete staff member
// @Description Delete a staff member and their certifications
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Success 204 "Staff member deleted"
// @Failure 400 {object} ErrorResponse "Invalid staff member ID"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id} [delete]
func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff member ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrStaffMemberNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete staff member"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddCertification adds a certification to a staff member
// @Summary Add certification
// @Description Add a certification to a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Param certification body service.CreateCertificationRequest true "Certification data"
// @Success 201 {object} service.CertificationResponse "Certification added"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id}/certifications [post]
func (h *StaffHandler) AddCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff member ID"})
		return
	}

	var req service.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	cert, err := h.service.AddCertification(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffMemberNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cert)
}

// UpdateCertification updates a certification
// @Summary Update certification
// @Description Update a certification
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Certification ID"
// @Param certification body service.UpdateCertificationRequest true "Fields to update"
// @Success 200 {object} service.CertificationResponse "Certification updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Certification not found"
// @Router /certifications/{id} [put]
func (h *StaffHandler) UpdateCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid certification ID"})
		return
	}

	var req service.UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	cert, err := h.service.UpdateCertification(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCertificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Certification not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cert)
}

// DeleteCertification deletes a certification
// @Summary Delete certification
// @Description Delete a certification
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Certification ID"
// @Success 204 "Certification deleted"
// @Failure 400 {object} ErrorResponse "Invalid certification ID"
// @Failure 404 {object} ErrorResponse "Certification not found"
// @Router /certifications/{id} [delete]
func (h *StaffHandler) DeleteCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid certification ID"})
		return
	}

	if err := h.service.DeleteCertification(id); err != nil {
		if errors.Is(err, apperrors.ErrCertificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Certification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete certification"})
		return
	}

	c.Status(http.StatusNoContent)
}
