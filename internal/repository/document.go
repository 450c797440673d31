package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// GetAll retrieves all documents with pagination
func (r *DocumentRepository) GetAll(limit, offset int) ([]models.Document, int64, error) {
	var documents []models.Document
	var total int64

	if err := r.db.Model(&models.Document{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title").Limit(limit).Offset(offset).Find(&documents).Error
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

// GetByCategory retrieves documents in a category with pagination
func (r *DocumentRepository) GetByCategory(category string, limit, offset int) ([]models.Document, int64, error) {
	var documents []models.Document
	var total int64

	if err := r.db.Model(&models.Document{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category = ?", category).Order("title").Limit(limit).Offset(offset).Find(&documents).Error
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

// Update updates a document using a map of updates
func (r *DocumentRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Document{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a document
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Document{}, "id = ?", id).Error
}

// Search searches documents by title or description
func (r *DocumentRepository) Search(query string, limit, offset int) ([]models.Document, int64, error) {
	var documents []models.Document
	var total int64

	searchQuery := "%" + query + "%"
	whereClause := "title ILIKE ? OR description ILIKE ?"

	if err := r.db.Model(&models.Document{}).Where(whereClause, searchQuery, searchQuery).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where(whereClause, searchQuery, searchQuery).Order("title").Limit(limit).Offset(offset).Find(&documents).Error
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}
