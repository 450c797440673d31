package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles equipment group endpoints
type GroupHandler struct {
	service    service.EquipmentGroupServiceInterface
	membership service.MembershipServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.EquipmentGroupServiceInterface, membership service.MembershipServiceInterface) *GroupHandler {
	return &GroupHandler{
		service:    service,
		membership: membership,
	}
}

// CreateGroup creates a new equipment group
// @Summary Create group
// @Description Create a new equipment group. Group names are unique case-insensitively.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateEquipmentGroupRequest true "Group data"
// @Success 201 {object} service.EquipmentGroupResponse "Group created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Group name already exists"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateEquipmentGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	group, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Group name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup returns a single group by ID
// @Summary Get group
// @Description Get an equipment group by its ID
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} service.EquipmentGroupResponse "Group found"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get group"})
		return
	}

	c.JSON(http.StatusOK, group)
}

// ListGroups returns a page of groups, optionally filtered by a search
// query
// @Summary List groups
// @Description Get a paginated list of equipment groups, optionally filtered by a free-text search
// @Tags groups
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param q query string false "Search query matched against name and description"
// @Success 200 {object} service.EquipmentGroupListResponse "Groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var (
		list *service.EquipmentGroupListResponse
		err  error
	)
	if query := c.Query("q"); query != "" {
		list, err = h.service.Search(query, page, pageSize)
	} else {
		list, err = h.service.GetAll(page, pageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list groups"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateGroup updates a group
// @Summary Update group
// @Description Update an equipment group. Renames must not collide with another group.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body service.UpdateEquipmentGroupRequest true "Fields to update"
// @Success 200 {object} service.EquipmentGroupResponse "Group updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group name already exists"
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	var req service.UpdateEquipmentGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	group, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		if errors.Is(err, apperrors.ErrGroupExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Group name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Description Delete an equipment group. Member equipments are detached, not deleted.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 204 "Group deleted"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete group"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGroupMembers returns the equipments belonging to a group
// @Summary Get group members
// @Description Get the equipments of a group in membership order
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} service.GroupMembersResponse "Group members"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/members [get]
func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	members, err := h.membership.GetEquipmentsForGroup(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get group members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateGroupMembers replaces the member set of a group
// @Summary Replace group members
// @Description Replace the full member set of a group with the given equipment list. Links are diffed, so unchanged memberships keep their attachment date.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param members body service.UpdateMembersRequest true "Equipment IDs"
// @Success 200 {object} service.UpdateMembersResponse "Membership updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Group or equipment not found"
// @Router /groups/{id}/members [post]
func (h *GroupHandler) UpdateGroupMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	var req service.UpdateMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	result, err := h.membership.UpdateGroupMembers(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) || errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PropagateDescription pushes the group description to its members
// @Summary Propagate group description
// @Description Copy the group description onto member equipments that do not carry a custom description
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} service.PropagationResponse "Propagation result"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/propagate-description [post]
func (h *GroupHandler) PropagateDescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	result, err := h.membership.PropagateGroupDescription(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to propagate description"})
		return
	}

	c.JSON(http.StatusOK, result)
}
