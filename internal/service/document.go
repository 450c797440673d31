package service

import (
	"errors"
	"fmt"
	"io"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService handles business logic for documents and their files
type DocumentService struct {
	repo         repository.DocumentRepositoryInterface
	docGroupRepo repository.DocumentGroupRepositoryInterface
	files        storage.FileStorage
	validator    *validator.Validate
}

// NewDocumentService creates a new document service
func NewDocumentService(
	repo repository.DocumentRepositoryInterface,
	docGroupRepo repository.DocumentGroupRepositoryInterface,
	files storage.FileStorage,
	validator *validator.Validate,
) *DocumentService {
	return &DocumentService{
		repo:         repo,
		docGroupRepo: docGroupRepo,
		files:        files,
		validator:    validator,
	}
}

// CreateDocumentRequest represents the metadata of a new document
type CreateDocumentRequest struct {
	Title        string      `json:"title" validate:"required,min=1,max=200"`
	Description  string      `json:"description"`
	Category     string      `json:"category" validate:"max=100"`
	Tags         []string    `json:"tags"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`
}

// UpdateDocumentRequest represents a partial metadata update
type UpdateDocumentRequest struct {
	Title        *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string      `json:"description"`
	Category     *string      `json:"category" validate:"omitempty,max=100"`
	Tags         *[]string    `json:"tags"`
	EquipmentIDs *[]uuid.UUID `json:"equipment_ids"`
}

// DocumentResponse represents the response for document operations
type DocumentResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Tags         []string    `json:"tags"`
	FileURL      string      `json:"file_url"`
	FileSize     int64       `json:"file_size"`
	FileMimeType string      `json:"file_mime_type"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`
	GroupIDs     []uuid.UUID `json:"group_ids"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create stores the uploaded file and creates the document row. The file
// is mandatory; a metadata-only document cannot exist.
func (s *DocumentService) Create(req *CreateDocumentRequest, file io.Reader, filename, mimeType string) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if file == nil {
		return nil, apperrors.ErrMissingFile
	}

	url, size, err := s.files.Save(file, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	document := &models.Document{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Tags:         req.Tags,
		FileURL:      url,
		FileSize:     size,
		FileMimeType: mimeType,
		EquipmentIDs: req.EquipmentIDs,
	}

	if err := s.repo.Create(document); err != nil {
		s.files.Delete(url)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return s.toResponse(document, nil), nil
}

// GetByID retrieves a document by ID, with its group links resolved
func (s *DocumentService) GetByID(id uuid.UUID) (*DocumentResponse, error) {
	document, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	links, err := s.docGroupRepo.GetByDocumentID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document groups: %w", err)
	}

	return s.toResponse(document, links), nil
}

// GetAll retrieves documents with pagination, optionally filtered by category
func (s *DocumentService) GetAll(category string, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var documents []models.Document
	var total int64
	var err error
	if category != "" {
		documents, total, err = s.repo.GetByCategory(category, pageSize, offset)
	} else {
		documents, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	return s.toListResponse(documents, total, page, pageSize)
}

// Search retrieves documents matching a free-text query with pagination
func (s *DocumentService) Search(query string, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	documents, total, err := s.repo.Search(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	return s.toListResponse(documents, total, page, pageSize)
}

// Update applies a metadata update and, when a new file is supplied,
// replaces the stored file. Metadata is written first; a failed file
// replacement is reported as an error rather than silently keeping the
// old file behind fresh metadata.
func (s *DocumentService) Update(id uuid.UUID, req *UpdateDocumentRequest, file io.Reader, filename, mimeType string) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	document, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.EquipmentIDs != nil {
		updates["equipment_ids"] = *req.EquipmentIDs
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update document: %w", err)
		}
	}

	if file != nil {
		url, size, err := s.files.Save(file, filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFileReplacementFailed, err)
		}
		fileUpdates := map[string]interface{}{
			"file_url":       url,
			"file_size":      size,
			"file_mime_type": mimeType,
		}
		if err := s.repo.Update(id, fileUpdates); err != nil {
			s.files.Delete(url)
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFileReplacementFailed, err)
		}
		if document.FileURL != "" {
			s.files.Delete(document.FileURL)
		}
	}

	return s.GetByID(id)
}

// Delete removes a document, its group links and its stored file
func (s *DocumentService) Delete(id uuid.UUID) error {
	document, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.docGroupRepo.DeleteByDocumentID(id); err != nil {
		return fmt.Errorf("failed to delete document links: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if document.FileURL != "" {
		s.files.Delete(document.FileURL)
	}
	return nil
}

func (s *DocumentService) toListResponse(documents []models.Document, total int64, page, pageSize int) (*DocumentListResponse, error) {
	responses := make([]DocumentResponse, len(documents))
	for i := range documents {
		links, err := s.docGroupRepo.GetByDocumentID(documents[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get document groups: %w", err)
		}
		responses[i] = *s.toResponse(&documents[i], links)
	}
	return &DocumentListResponse{
		Documents: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *DocumentService) toResponse(document *models.Document, links []models.DocumentGroupLink) *DocumentResponse {
	tags := document.Tags
	if tags == nil {
		tags = []string{}
	}
	equipmentIDs := document.EquipmentIDs
	if equipmentIDs == nil {
		equipmentIDs = []uuid.UUID{}
	}
	groupIDs := make([]uuid.UUID, len(links))
	for i, link := range links {
		groupIDs[i] = link.GroupID
	}
	return &DocumentResponse{
		ID:           document.ID,
		Title:        document.Title,
		Description:  document.Description,
		Category:     document.Category,
		Tags:         tags,
		FileURL:      document.FileURL,
		FileSize:     document.FileSize,
		FileMimeType: document.FileMimeType,
		EquipmentIDs: equipmentIDs,
		GroupIDs:     groupIDs,
		CreatedAt:    document.CreatedAt,
		UpdatedAt:    document.UpdatedAt,
	}
}
