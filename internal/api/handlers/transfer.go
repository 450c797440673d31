package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferHandler handles bulk import and export endpoints
type TransferHandler struct {
	importer service.ImporterServiceInterface
	exporter service.ExporterServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(importer service.ImporterServiceInterface, exporter service.ExporterServiceInterface) *TransferHandler {
	return &TransferHandler{
		importer: importer,
		exporter: exporter,
	}
}

// ImportEquipments imports equipments from an uploaded CSV or XLSX file
// @Summary Import equipments
// @Description Import equipments from a CSV or XLSX file. The import is all-or-nothing: any invalid row rejects the whole file and the response lists every error.
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param resolution query string false "Duplicate handling: import-all, skip-duplicates or replace-existing" default(import-all)
// @Success 200 {object} service.ImportResult "Import summary"
// @Failure 400 {object} ErrorResponse "Invalid file or resolution"
// @Failure 422 {object} service.ImportResult "File rejected, errors listed per line"
// @Router /equipments/import [post]
func (h *TransferHandler) ImportEquipments(c *gin.Context) {
	resolution := service.DuplicateResolution(c.DefaultQuery("resolution", string(service.ResolutionImportAll)))
	if !resolution.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid duplicate resolution"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importer.Import(fileHeader.Filename, file, resolution)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportRejected) {
			c.JSON(http.StatusUnprocessableEntity, result)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportEquipments exports the equipment catalog as an XLSX file
// @Summary Export equipments
// @Description Download the full equipment catalog as a styled XLSX file
// @Tags transfer
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX export"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments/export [get]
func (h *TransferHandler) ExportEquipments(c *gin.Context) {
	buf, err := h.exporter.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export equipments"})
		return
	}

	filename := fmt.Sprintf("equipments-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportTemplate downloads an empty import template
// @Summary Download import template
// @Description Download an XLSX import template with the expected headers and dropdowns for statuses, buildings, services, locations and groups
// @Tags transfer
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX template"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /equipments/import-template [get]
func (h *TransferHandler) ImportTemplate(c *gin.Context) {
	buf, err := h.exporter.Template()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build import template"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="equipment-import-template.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
