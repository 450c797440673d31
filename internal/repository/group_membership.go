package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupMembershipRepository handles database operations for the
// equipment-group junction table
type GroupMembershipRepository struct {
	db *gorm.DB
}

// NewGroupMembershipRepository creates a new group membership repository
func NewGroupMembershipRepository(db *gorm.DB) *GroupMembershipRepository {
	return &GroupMembershipRepository{db: db}
}

// GetByGroupID retrieves all junction rows for a group, oldest first
func (r *GroupMembershipRepository) GetByGroupID(groupID uuid.UUID) ([]models.EquipmentGroupMember, error) {
	var members []models.EquipmentGroupMember
	err := r.db.Where("group_id = ?", groupID).Order("created_at").Find(&members).Error
	return members, err
}

// GetByEquipmentID retrieves all junction rows for an equipment
func (r *GroupMembershipRepository) GetByEquipmentID(equipmentID uuid.UUID) ([]models.EquipmentGroupMember, error) {
	var members []models.EquipmentGroupMember
	err := r.db.Where("equipment_id = ?", equipmentID).Order("created_at").Find(&members).Error
	return members, err
}

// ReplaceForGroup makes the junction rows for groupID exactly equal the
// desired equipment set. Only the necessary deletes and inserts are issued,
// inside a single transaction, so concurrent readers never observe an empty
// membership window.
func (r *GroupMembershipRepository) ReplaceForGroup(groupID uuid.UUID, equipmentIDs []uuid.UUID) error {
	desired := make(map[uuid.UUID]bool, len(equipmentIDs))
	for _, id := range equipmentIDs {
		desired[id] = true
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var current []models.EquipmentGroupMember
		if err := tx.Where("group_id = ?", groupID).Find(&current).Error; err != nil {
			return err
		}

		existing := make(map[uuid.UUID]bool, len(current))
		var stale []uuid.UUID
		for _, m := range current {
			// Rows outside the desired set, and duplicate rows for the same
			// pair, are both removed here.
			if !desired[m.EquipmentID] || existing[m.EquipmentID] {
				stale = append(stale, m.ID)
				continue
			}
			existing[m.EquipmentID] = true
		}

		if len(stale) > 0 {
			if err := tx.Where("id IN ?", stale).Delete(&models.EquipmentGroupMember{}).Error; err != nil {
				return err
			}
		}

		var missing []models.EquipmentGroupMember
		for _, id := range equipmentIDs {
			if existing[id] {
				continue
			}
			existing[id] = true
			missing = append(missing, models.EquipmentGroupMember{GroupID: groupID, EquipmentID: id})
		}

		if len(missing) > 0 {
			if err := tx.Create(&missing).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteByGroupID removes all junction rows for a group
func (r *GroupMembershipRepository) DeleteByGroupID(groupID uuid.UUID) error {
	return r.db.Where("group_id = ?", groupID).Delete(&models.EquipmentGroupMember{}).Error
}

// DeleteByEquipmentID removes all junction rows for an equipment
func (r *GroupMembershipRepository) DeleteByEquipmentID(equipmentID uuid.UUID) error {
	return r.db.Where("equipment_id = ?", equipmentID).Delete(&models.EquipmentGroupMember{}).Error
}

// CountByGroupID counts junction rows for a group
func (r *GroupMembershipRepository) CountByGroupID(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EquipmentGroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}
