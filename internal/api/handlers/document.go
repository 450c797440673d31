package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document endpoints
type DocumentHandler struct {
	service    service.DocumentServiceInterface
	membership service.MembershipServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service service.DocumentServiceInterface, membership service.MembershipServiceInterface) *DocumentHandler {
	return &DocumentHandler{
		service:    service,
		membership: membership,
	}
}

// CreateDocument uploads a file and creates a document
// @Summary Create document
// @Description Upload a file together with its metadata. The multipart form carries the file under "file" and the metadata JSON under "metadata".
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param metadata formData string true "Document metadata as JSON"
// @Success 201 {object} service.DocumentResponse "Document created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req service.CreateDocumentRequest
	if metadata := c.PostForm("metadata"); metadata != "" {
		if err := json.Unmarshal([]byte(metadata), &req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid metadata: " + err.Error()})
			return
		}
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

	document, err := h.service.Create(&req, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file is required"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocument returns a single document by ID
// @Summary Get document
// @Description Get a document by its ID
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} service.DocumentResponse "Document found"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	document, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get document"})
		return
	}

	c.JSON(http.StatusOK, document)
}

// ListDocuments returns a page of documents
// @Summary List documents
// @Description Get a paginated list of documents, optionally filtered by category or a free-text search
// @Tags documents
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param category query string false "Category filter"
// @Param q query string false "Search query matched against title and description"
// @Success 200 {object} service.DocumentListResponse "Documents"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var (
		list *service.DocumentListResponse
		err  error
	)
	if query := c.Query("q"); query != "" {
		list, err = h.service.Search(query, page, pageSize)
	} else {
		list, err = h.service.GetAll(c.Query("category"), page, pageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateDocument updates a document's metadata and optionally replaces
// its file
// @Summary Update document
// @Description Update document metadata, optionally replacing the stored file when a "file" part is present
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID"
// @Param file formData file false "Replacement file"
// @Param metadata formData string false "Document metadata as JSON"
// @Success 200 {object} service.DocumentResponse "Document updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	var req service.UpdateDocumentRequest
	if metadata := c.PostForm("metadata"); metadata != "" {
		if err := json.Unmarshal([]byte(metadata), &req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid metadata: " + err.Error()})
			return
		}
	}

	var (
		file     io.Reader
		filename string
		mimeType string
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		opened, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
			return
		}
		defer opened.Close()
		file = opened
		filename = fileHeader.Filename
		mimeType = fileHeader.Header.Get("Content-Type")
	}

	document, err := h.service.Update(id, &req, file, filename, mimeType)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		if errors.Is(err, apperrors.ErrFileReplacementFailed) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument deletes a document and its stored file
// @Summary Delete document
// @Description Delete a document, its group links and the stored file
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 204 "Document deleted"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete document"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDocumentGroups returns the groups a document is shared with
// @Summary Get document groups
// @Description Get the equipment groups a document is attached to
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} service.EquipmentGroupResponse "Groups"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{id}/groups [get]
func (h *DocumentHandler) GetDocumentGroups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	groups, err := h.membership.GetGroupsForDocument(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get document groups"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// UpdateDocumentGroups replaces the group set of a document
// @Summary Replace document groups
// @Description Replace the set of equipment groups a document is attached to. Links are diffed, so unchanged attachments survive.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param groups body service.UpdateDocumentGroupsRequest true "Group IDs"
// @Success 200 {object} service.UpdateDocumentGroupsResponse "Groups updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Document or group not found"
// @Router /documents/{id}/groups [post]
func (h *DocumentHandler) UpdateDocumentGroups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	var req service.UpdateDocumentGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	result, err := h.membership.UpdateDocumentGroups(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) || errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
