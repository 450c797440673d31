package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceHandler handles maintenance task endpoints
type MaintenanceHandler struct {
	service service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(service service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
	}
}

// CreateTask creates a new maintenance task
// @Summary Create maintenance task
// @Description Schedule a maintenance task for an equipment
// @Tags maintenance
// @Accept json
// @Produce json
// @Param task body service.CreateMaintenanceTaskRequest true "Task data"
// @Success 201 {object} service.MaintenanceTaskResponse "Task created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Router /maintenance-tasks [post]
func (h *MaintenanceHandler) CreateTask(c *gin.Context) {
	var req service.CreateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	task, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns a single maintenance task by ID
// @Summary Get maintenance task
// @Description Get a maintenance task by its ID
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} service.MaintenanceTaskResponse "Task found"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /maintenance-tasks/{id} [get]
func (h *MaintenanceHandler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task ID"})
		return
	}

	task, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMaintenanceTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks returns a page of maintenance tasks ordered by due date
// @Summary List maintenance tasks
// @Description Get a paginated list of maintenance tasks ordered by due date, or all tasks of one equipment
// @Tags maintenance
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param equipment_id query string false "Filter by equipment"
// @Success 200 {object} service.MaintenanceTaskListResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /maintenance-tasks [get]
func (h *MaintenanceHandler) ListTasks(c *gin.Context) {
	if raw := c.Query("equipment_id"); raw != "" {
		equipmentID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid equipment ID"})
			return
		}
		tasks, err := h.service.GetByEquipment(equipmentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tasks"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
		return
	}

	page, pageSize := parsePagination(c)
	list, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateTask updates a maintenance task
// @Summary Update maintenance task
// @Description Update a maintenance task. Changing the due date re-arms its reminder.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body service.UpdateMaintenanceTaskRequest true "Fields to update"
// @Success 200 {object} service.MaintenanceTaskResponse "Task updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /maintenance-tasks/{id} [put]
func (h *MaintenanceHandler) UpdateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task ID"})
		return
	}

	var req service.UpdateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	task, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMaintenanceTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a maintenance task as completed
// @Summary Complete maintenance task
// @Description Mark a maintenance task as completed and record the completion date
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} service.MaintenanceTaskResponse "Task completed"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /maintenance-tasks/{id}/complete [post]
func (h *MaintenanceHandler) CompleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task ID"})
		return
	}

	task, err := h.service.Complete(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMaintenanceTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a maintenance task
// @Summary Delete maintenance task
// @Description Delete a maintenance task
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 204 "Task deleted"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /maintenance-tasks/{id} [delete]
func (h *MaintenanceHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMaintenanceTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}
