package handlers

import (
	"net/http"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PrintLayoutHandler handles print layout computation
type PrintLayoutHandler struct {
	service service.PrintLayoutServiceInterface
}

// NewPrintLayoutHandler creates a new print layout handler
func NewPrintLayoutHandler(service service.PrintLayoutServiceInterface) *PrintLayoutHandler {
	return &PrintLayoutHandler{
		service: service,
	}
}

// ComputeLayout computes a card grid and pagination for printing
// @Summary Compute print layout
// @Description Compute the card grid, per-card dimensions and page ranges for printing a set of items on the given paper format
// @Tags print
// @Accept json
// @Produce json
// @Param layout body service.PrintLayoutRequest true "Layout parameters"
// @Success 200 {object} service.PrintLayoutResponse "Computed layout"
// @Failure 400 {object} ErrorResponse "Invalid layout parameters"
// @Router /print-layout [post]
func (h *PrintLayoutHandler) ComputeLayout(c *gin.Context) {
	var req service.PrintLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	layout, err := h.service.Compute(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, layout)
}
