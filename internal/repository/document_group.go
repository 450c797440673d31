package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentGroupRepository handles database operations for the
// document-group junction table
type DocumentGroupRepository struct {
	db *gorm.DB
}

// NewDocumentGroupRepository creates a new document group repository
func NewDocumentGroupRepository(db *gorm.DB) *DocumentGroupRepository {
	return &DocumentGroupRepository{db: db}
}

// GetByDocumentID retrieves all junction rows for a document, oldest first
func (r *DocumentGroupRepository) GetByDocumentID(documentID uuid.UUID) ([]models.DocumentGroupLink, error) {
	var links []models.DocumentGroupLink
	err := r.db.Where("document_id = ?", documentID).Order("created_at").Find(&links).Error
	return links, err
}

// GetByGroupID retrieves all junction rows for a group
func (r *DocumentGroupRepository) GetByGroupID(groupID uuid.UUID) ([]models.DocumentGroupLink, error) {
	var links []models.DocumentGroupLink
	err := r.db.Where("group_id = ?", groupID).Order("created_at").Find(&links).Error
	return links, err
}

// ReplaceForDocument makes the junction rows for documentID exactly equal
// the desired group set, issuing only the necessary deletes and inserts in
// one transaction.
func (r *DocumentGroupRepository) ReplaceForDocument(documentID uuid.UUID, groupIDs []uuid.UUID) error {
	desired := make(map[uuid.UUID]bool, len(groupIDs))
	for _, id := range groupIDs {
		desired[id] = true
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var current []models.DocumentGroupLink
		if err := tx.Where("document_id = ?", documentID).Find(&current).Error; err != nil {
			return err
		}

		existing := make(map[uuid.UUID]bool, len(current))
		var stale []uuid.UUID
		for _, l := range current {
			if !desired[l.GroupID] || existing[l.GroupID] {
				stale = append(stale, l.ID)
				continue
			}
			existing[l.GroupID] = true
		}

		if len(stale) > 0 {
			if err := tx.Where("id IN ?", stale).Delete(&models.DocumentGroupLink{}).Error; err != nil {
				return err
			}
		}

		var missing []models.DocumentGroupLink
		for _, id := range groupIDs {
			if existing[id] {
				continue
			}
			existing[id] = true
			missing = append(missing, models.DocumentGroupLink{DocumentID: documentID, GroupID: id})
		}

		if len(missing) > 0 {
			if err := tx.Create(&missing).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteByDocumentID removes all junction rows for a document
func (r *DocumentGroupRepository) DeleteByDocumentID(documentID uuid.UUID) error {
	return r.db.Where("document_id = ?", documentID).Delete(&models.DocumentGroupLink{}).Error
}

// DeleteByGroupID removes all junction rows for a group
func (r *DocumentGroupRepository) DeleteByGroupID(groupID uuid.UUID) error {
	return r.db.Where("group_id = ?", groupID).Delete(&models.DocumentGroupLink{}).Error
}
