package service

import (
	"errors"
	"fmt"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomDescriptionPredicate decides whether an equipment's description
// was authored by hand and must survive group description propagation.
type CustomDescriptionPredicate func(eq *models.Equipment) bool

// FlagCustomDescription trusts the explicit flag set on manual edits.
func FlagCustomDescription(eq *models.Equipment) bool {
	return eq.DescriptionIsCustom
}

// LegacyCustomDescription treats any non-empty description as custom.
// Useful for datasets created before the explicit flag existed.
func LegacyCustomDescription(eq *models.Equipment) bool {
	return eq.DescriptionIsCustom || eq.Description != ""
}

// MembershipService owns the equipment-group and document-group junction
// tables. All membership mutations go through it so the denormalized ID
// caches on equipments and groups stay consistent with the junction rows.
type MembershipService struct {
	equipmentRepo  repository.EquipmentRepositoryInterface
	groupRepo      repository.EquipmentGroupRepositoryInterface
	documentRepo   repository.DocumentRepositoryInterface
	membershipRepo repository.GroupMembershipRepositoryInterface
	docGroupRepo   repository.DocumentGroupRepositoryInterface
	isCustom       CustomDescriptionPredicate
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	equipmentRepo repository.EquipmentRepositoryInterface,
	groupRepo repository.EquipmentGroupRepositoryInterface,
	documentRepo repository.DocumentRepositoryInterface,
	membershipRepo repository.GroupMembershipRepositoryInterface,
	docGroupRepo repository.DocumentGroupRepositoryInterface,
) *MembershipService {
	return &MembershipService{
		equipmentRepo:  equipmentRepo,
		groupRepo:      groupRepo,
		documentRepo:   documentRepo,
		membershipRepo: membershipRepo,
		docGroupRepo:   docGroupRepo,
		isCustom:       FlagCustomDescription,
	}
}

// WithCustomDescriptionPredicate swaps the predicate used by
// PropagateGroupDescription to decide which equipments to skip.
func (s *MembershipService) WithCustomDescriptionPredicate(p CustomDescriptionPredicate) *MembershipService {
	if p != nil {
		s.isCustom = p
	}
	return s
}

// GroupMembersResponse represents a group's resolved membership
type GroupMembersResponse struct {
	GroupID    uuid.UUID           `json:"group_id"`
	Equipments []EquipmentResponse `json:"equipments"`
	Total      int                 `json:"total"`
}

// UpdateMembersRequest carries the full desired member set for a group
type UpdateMembersRequest struct {
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`
}

// UpdateMembersResponse summarizes a membership replacement
type UpdateMembersResponse struct {
	GroupID      uuid.UUID   `json:"group_id"`
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`
	Added        int         `json:"added"`
	Removed      int         `json:"removed"`
}

// UpdateDocumentGroupsRequest carries the full desired group set for a document
type UpdateDocumentGroupsRequest struct {
	GroupIDs []uuid.UUID `json:"group_ids"`
}

// UpdateDocumentGroupsResponse summarizes a document-group replacement
type UpdateDocumentGroupsResponse struct {
	DocumentID uuid.UUID   `json:"document_id"`
	GroupIDs   []uuid.UUID `json:"group_ids"`
	Added      int         `json:"added"`
	Removed    int         `json:"removed"`
}

// PropagationResponse reports the outcome of a description propagation
type PropagationResponse struct {
	GroupID uuid.UUID `json:"group_id"`
	Updated int       `json:"updated"`
	Skipped int       `json:"skipped"`
}

// GetEquipmentsForGroup resolves a group's members through the junction
// table, in membership insertion order.
func (s *MembershipService) GetEquipmentsForGroup(groupID uuid.UUID) (*GroupMembersResponse, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.EquipmentID
	}

	equipments, err := s.equipmentRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load member equipments: %w", err)
	}

	// Preserve junction order; GetByIDs does not guarantee it.
	byID := make(map[uuid.UUID]*models.Equipment, len(equipments))
	for i := range equipments {
		byID[equipments[i].ID] = &equipments[i]
	}
	responses := make([]EquipmentResponse, 0, len(ids))
	for _, id := range ids {
		if eq, ok := byID[id]; ok {
			responses = append(responses, *equipmentToResponse(eq))
		}
	}

	return &GroupMembersResponse{
		GroupID:    groupID,
		Equipments: responses,
		Total:      len(responses),
	}, nil
}

// UpdateGroupMembers replaces a group's member set with the requested one.
// Existing memberships are kept in place, stale ones are removed, and the
// ID caches on the group and every affected equipment are rebuilt from the
// junction table afterwards.
func (s *MembershipService) UpdateGroupMembers(groupID uuid.UUID, req *UpdateMembersRequest) (*UpdateMembersResponse, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	desired := dedupeIDs(req.EquipmentIDs)

	if len(desired) > 0 {
		found, err := s.equipmentRepo.GetByIDs(desired)
		if err != nil {
			return nil, fmt.Errorf("failed to verify equipments: %w", err)
		}
		if len(found) != len(desired) {
			return nil, apperrors.ErrEquipmentNotFound
		}
	}

	before, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current members: %w", err)
	}

	if err := s.membershipRepo.ReplaceForGroup(groupID, desired); err != nil {
		return nil, fmt.Errorf("failed to replace group members: %w", err)
	}

	after, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload members: %w", err)
	}

	beforeSet := make(map[uuid.UUID]bool, len(before))
	for _, m := range before {
		beforeSet[m.EquipmentID] = true
	}
	afterIDs := make([]uuid.UUID, len(after))
	afterSet := make(map[uuid.UUID]bool, len(after))
	for i, m := range after {
		afterIDs[i] = m.EquipmentID
		afterSet[m.EquipmentID] = true
	}

	added, removed := 0, 0
	affected := make([]uuid.UUID, 0, len(beforeSet)+len(afterSet))
	for id := range afterSet {
		if !beforeSet[id] {
			added++
			affected = append(affected, id)
		}
	}
	for id := range beforeSet {
		if !afterSet[id] {
			removed++
			affected = append(affected, id)
		}
	}

	if err := s.groupRepo.Update(groupID, map[string]interface{}{"equipment_ids": afterIDs}); err != nil {
		return nil, fmt.Errorf("failed to refresh group cache: %w", err)
	}
	if err := s.rebuildEquipmentCaches(affected); err != nil {
		return nil, err
	}

	return &UpdateMembersResponse{
		GroupID:      groupID,
		EquipmentIDs: afterIDs,
		Added:        added,
		Removed:      removed,
	}, nil
}

// GetGroupsForDocument resolves the groups a document is attached to
func (s *MembershipService) GetGroupsForDocument(documentID uuid.UUID) ([]EquipmentGroupResponse, error) {
	if _, err := s.documentRepo.GetByID(documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	links, err := s.docGroupRepo.GetByDocumentID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document groups: %w", err)
	}

	responses := make([]EquipmentGroupResponse, 0, len(links))
	for _, link := range links {
		group, err := s.groupRepo.GetByID(link.GroupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load linked group: %w", err)
		}
		responses = append(responses, *groupToResponse(group))
	}
	return responses, nil
}

// UpdateDocumentGroups replaces the set of groups a document is attached to
func (s *MembershipService) UpdateDocumentGroups(documentID uuid.UUID, req *UpdateDocumentGroupsRequest) (*UpdateDocumentGroupsResponse, error) {
	if _, err := s.documentRepo.GetByID(documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	desired := dedupeIDs(req.GroupIDs)
	for _, id := range desired {
		if _, err := s.groupRepo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to verify group: %w", err)
		}
	}

	before, err := s.docGroupRepo.GetByDocumentID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current links: %w", err)
	}

	if err := s.docGroupRepo.ReplaceForDocument(documentID, desired); err != nil {
		return nil, fmt.Errorf("failed to replace document groups: %w", err)
	}

	after, err := s.docGroupRepo.GetByDocumentID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload links: %w", err)
	}

	beforeSet := make(map[uuid.UUID]bool, len(before))
	for _, l := range before {
		beforeSet[l.GroupID] = true
	}
	afterIDs := make([]uuid.UUID, len(after))
	added := 0
	afterSet := make(map[uuid.UUID]bool, len(after))
	for i, l := range after {
		afterIDs[i] = l.GroupID
		afterSet[l.GroupID] = true
		if !beforeSet[l.GroupID] {
			added++
		}
	}
	removed := 0
	for id := range beforeSet {
		if !afterSet[id] {
			removed++
		}
	}

	return &UpdateDocumentGroupsResponse{
		DocumentID: documentID,
		GroupIDs:   afterIDs,
		Added:      added,
		Removed:    removed,
	}, nil
}

// PropagateGroupDescription copies the group's description onto every
// member equipment whose own description is not custom. Custom
// descriptions are counted as skipped, never overwritten. A member
// already carrying the group's text is group-propagated, so it counts
// as updated; the write is elided since it would be a no-op.
func (s *MembershipService) PropagateGroupDescription(groupID uuid.UUID) (*PropagationResponse, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	resp := &PropagationResponse{GroupID: groupID}
	for _, m := range members {
		eq, err := s.equipmentRepo.GetByID(m.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load equipment: %w", err)
		}

		if s.isCustom(eq) {
			resp.Skipped++
			continue
		}

		if eq.Description != group.Description {
			updates := map[string]interface{}{
				"description":           group.Description,
				"description_is_custom": false,
			}
			if err := s.equipmentRepo.Update(eq.ID, updates); err != nil {
				return nil, fmt.Errorf("failed to propagate description: %w", err)
			}
		}
		resp.Updated++
	}

	return resp, nil
}

// PropagateGroupImage copies the group's image onto every member
// equipment that has no image of its own. An equipment with a different
// image keeps it and counts as skipped; one already showing the group's
// image counts as updated without a write.
func (s *MembershipService) PropagateGroupImage(groupID uuid.UUID) (*PropagationResponse, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	resp := &PropagationResponse{GroupID: groupID}
	for _, m := range members {
		eq, err := s.equipmentRepo.GetByID(m.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load equipment: %w", err)
		}

		if eq.ImageURL != "" && eq.ImageURL != group.ImageURL {
			resp.Skipped++
			continue
		}

		if eq.ImageURL != group.ImageURL {
			updates := map[string]interface{}{"image_url": group.ImageURL}
			if err := s.equipmentRepo.Update(eq.ID, updates); err != nil {
				return nil, fmt.Errorf("failed to propagate image: %w", err)
			}
		}
		resp.Updated++
	}

	return resp, nil
}

// DetachEquipment removes an equipment from every group and refreshes the
// caches of the groups it belonged to. Called on equipment deletion.
func (s *MembershipService) DetachEquipment(equipmentID uuid.UUID) error {
	memberships, err := s.membershipRepo.GetByEquipmentID(equipmentID)
	if err != nil {
		return fmt.Errorf("failed to get memberships: %w", err)
	}

	if err := s.membershipRepo.DeleteByEquipmentID(equipmentID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	for _, m := range memberships {
		if err := s.rebuildGroupCache(m.GroupID); err != nil {
			return err
		}
	}
	return nil
}

// DetachGroup removes all junction rows referencing a group and refreshes
// the caches of the equipments it contained. Called on group deletion.
func (s *MembershipService) DetachGroup(groupID uuid.UUID) error {
	members, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return fmt.Errorf("failed to get group members: %w", err)
	}

	if err := s.membershipRepo.DeleteByGroupID(groupID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}
	if err := s.docGroupRepo.DeleteByGroupID(groupID); err != nil {
		return fmt.Errorf("failed to delete document links: %w", err)
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.EquipmentID
	}
	return s.rebuildEquipmentCaches(ids)
}

func (s *MembershipService) rebuildGroupCache(groupID uuid.UUID) error {
	members, err := s.membershipRepo.GetByGroupID(groupID)
	if err != nil {
		return fmt.Errorf("failed to reload group members: %w", err)
	}
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.EquipmentID
	}
	if err := s.groupRepo.Update(groupID, map[string]interface{}{"equipment_ids": ids}); err != nil {
		return fmt.Errorf("failed to refresh group cache: %w", err)
	}
	return nil
}

func (s *MembershipService) rebuildEquipmentCaches(equipmentIDs []uuid.UUID) error {
	for _, id := range equipmentIDs {
		memberships, err := s.membershipRepo.GetByEquipmentID(id)
		if err != nil {
			return fmt.Errorf("failed to reload equipment memberships: %w", err)
		}
		groupIDs := make([]uuid.UUID, len(memberships))
		for i, m := range memberships {
			groupIDs[i] = m.GroupID
		}
		if err := s.equipmentRepo.Update(id, map[string]interface{}{"associated_group_ids": groupIDs}); err != nil {
			return fmt.Errorf("failed to refresh equipment cache: %w", err)
		}
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
