package service_test

import (
	"testing"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockEquipmentRepo  *mocks.MockEquipmentRepositoryInterface
	mockGroupRepo      *mocks.MockEquipmentGroupRepositoryInterface
	mockDocumentRepo   *mocks.MockDocumentRepositoryInterface
	mockMembershipRepo *mocks.MockGroupMembershipRepositoryInterface
	mockDocGroupRepo   *mocks.MockDocumentGroupRepositoryInterface
	membershipService  *service.MembershipService
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockEquipmentGroupRepositoryInterface(suite.ctrl)
	suite.mockDocumentRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockGroupMembershipRepositoryInterface(suite.ctrl)
	suite.mockDocGroupRepo = mocks.NewMockDocumentGroupRepositoryInterface(suite.ctrl)

	suite.membershipService = service.NewMembershipService(
		suite.mockEquipmentRepo,
		suite.mockGroupRepo,
		suite.mockDocumentRepo,
		suite.mockMembershipRepo,
		suite.mockDocGroupRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func member(groupID, equipmentID uuid.UUID) models.EquipmentGroupMember {
	return models.EquipmentGroupMember{GroupID: groupID, EquipmentID: equipmentID}
}

func equipmentWithID(id uuid.UUID) models.Equipment {
	return models.Equipment{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Equipment " + id.String()[:4],
		Status:    models.EquipmentOperational,
	}
}

// TestUpdateGroupMembersNoChange tests that resubmitting the current
// member set adds and removes nothing
func (suite *MembershipServiceTestSuite) TestUpdateGroupMembersNoChange() {
	groupID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()
	members := []models.EquipmentGroupMember{member(groupID, e1), member(groupID, e2)}

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: groupID}}, nil)
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs([]uuid.UUID{e1, e2}).
		Return([]models.Equipment{equipmentWithID(e1), equipmentWithID(e2)}, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return(members, nil).
		Times(2)
	suite.mockMembershipRepo.EXPECT().
		ReplaceForGroup(groupID, []uuid.UUID{e1, e2}).
		Return(nil)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, gomock.Any()).
		Return(nil)

	resp, err := suite.membershipService.UpdateGroupMembers(groupID, &service.UpdateMembersRequest{
		EquipmentIDs: []uuid.UUID{e1, e2},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Added)
	assert.Equal(suite.T(), 0, resp.Removed)
	assert.Equal(suite.T(), []uuid.UUID{e1, e2}, resp.EquipmentIDs)
}

// TestUpdateGroupMembersDiff tests that replacement reports the real
// delta and rebuilds the caches of every affected equipment
func (suite *MembershipServiceTestSuite) TestUpdateGroupMembersDiff() {
	groupID := uuid.New()
	e1, e2, e3 := uuid.New(), uuid.New(), uuid.New()
	before := []models.EquipmentGroupMember{member(groupID, e1), member(groupID, e2)}
	after := []models.EquipmentGroupMember{member(groupID, e2), member(groupID, e3)}

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: groupID}}, nil)
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs([]uuid.UUID{e2, e3}).
		Return([]models.Equipment{equipmentWithID(e2), equipmentWithID(e3)}, nil)
	first := suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return(before, nil)
	suite.mockMembershipRepo.EXPECT().
		ReplaceForGroup(groupID, []uuid.UUID{e2, e3}).
		Return(nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return(after, nil).
		After(first)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, map[string]interface{}{"equipment_ids": []uuid.UUID{e2, e3}}).
		Return(nil)

	// Both the added and the removed equipment get their cache rebuilt
	suite.mockMembershipRepo.EXPECT().
		GetByEquipmentID(e3).
		Return([]models.EquipmentGroupMember{member(groupID, e3)}, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e3, map[string]interface{}{"associated_group_ids": []uuid.UUID{groupID}}).
		Return(nil)
	suite.mockMembershipRepo.EXPECT().
		GetByEquipmentID(e1).
		Return([]models.EquipmentGroupMember{}, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e1, map[string]interface{}{"associated_group_ids": []uuid.UUID{}}).
		Return(nil)

	resp, err := suite.membershipService.UpdateGroupMembers(groupID, &service.UpdateMembersRequest{
		EquipmentIDs: []uuid.UUID{e2, e3},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Added)
	assert.Equal(suite.T(), 1, resp.Removed)
	assert.Equal(suite.T(), []uuid.UUID{e2, e3}, resp.EquipmentIDs)
}

// TestUpdateGroupMembersDeduplicates tests that duplicate and nil IDs
// are dropped before the junction is touched
func (suite *MembershipServiceTestSuite) TestUpdateGroupMembersDeduplicates() {
	groupID := uuid.New()
	e1 := uuid.New()

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: groupID}}, nil)
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs([]uuid.UUID{e1}).
		Return([]models.Equipment{equipmentWithID(e1)}, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{}, nil)
	suite.mockMembershipRepo.EXPECT().
		ReplaceForGroup(groupID, []uuid.UUID{e1}).
		Return(nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{member(groupID, e1)}, nil)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, gomock.Any()).
		Return(nil)
	suite.mockMembershipRepo.EXPECT().
		GetByEquipmentID(e1).
		Return([]models.EquipmentGroupMember{member(groupID, e1)}, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e1, gomock.Any()).
		Return(nil)

	resp, err := suite.membershipService.UpdateGroupMembers(groupID, &service.UpdateMembersRequest{
		EquipmentIDs: []uuid.UUID{e1, e1, uuid.Nil},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Added)
}

// TestUpdateGroupMembersUnknownEquipment tests that a request naming a
// missing equipment is rejected without touching the junction
func (suite *MembershipServiceTestSuite) TestUpdateGroupMembersUnknownEquipment() {
	groupID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: groupID}}, nil)
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs([]uuid.UUID{e1, e2}).
		Return([]models.Equipment{equipmentWithID(e1)}, nil)

	resp, err := suite.membershipService.UpdateGroupMembers(groupID, &service.UpdateMembersRequest{
		EquipmentIDs: []uuid.UUID{e1, e2},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEquipmentNotFound)
}

// TestUpdateGroupMembersGroupNotFound tests the missing group case
func (suite *MembershipServiceTestSuite) TestUpdateGroupMembersGroupNotFound() {
	groupID := uuid.New()

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.UpdateGroupMembers(groupID, &service.UpdateMembersRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

// TestGetEquipmentsForGroupPreservesOrder tests that members come back
// in junction insertion order regardless of load order
func (suite *MembershipServiceTestSuite) TestGetEquipmentsForGroupPreservesOrder() {
	groupID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()

	suite.mockGroupRepo.EXPECT().
		GetByID(groupID).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: groupID}}, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{member(groupID, e2), member(groupID, e1)}, nil)
	// Loader returns them in the opposite order
	suite.mockEquipmentRepo.EXPECT().
		GetByIDs([]uuid.UUID{e2, e1}).
		Return([]models.Equipment{equipmentWithID(e1), equipmentWithID(e2)}, nil)

	resp, err := suite.membershipService.GetEquipmentsForGroup(groupID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), e2, resp.Equipments[0].ID)
	assert.Equal(suite.T(), e1, resp.Equipments[1].ID)
}

// TestPropagateGroupDescription tests that propagation skips custom
// descriptions and counts every other member as updated, writing only
// where the text actually differs
func (suite *MembershipServiceTestSuite) TestPropagateGroupDescription() {
	groupID := uuid.New()
	e1, e2, e3 := uuid.New(), uuid.New(), uuid.New()
	group := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Description: "Shared description",
	}

	custom := equipmentWithID(e1)
	custom.Description = "Hand written"
	custom.DescriptionIsCustom = true

	alreadyEqual := equipmentWithID(e2)
	alreadyEqual.Description = "Shared description"

	stale := equipmentWithID(e3)
	stale.Description = "Old text"

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{
			member(groupID, e1), member(groupID, e2), member(groupID, e3),
		}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e1).Return(&custom, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e2).Return(&alreadyEqual, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e3).Return(&stale, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e3, map[string]interface{}{
			"description":           "Shared description",
			"description_is_custom": false,
		}).
		Return(nil)

	resp, err := suite.membershipService.PropagateGroupDescription(groupID)

	// The already-equal member carries group-propagated text: counted
	// as updated without a write. Only the custom one is skipped.
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Updated)
	assert.Equal(suite.T(), 1, resp.Skipped)
}

// TestPropagateGroupImage tests that the group image lands on members
// without an image of their own
func (suite *MembershipServiceTestSuite) TestPropagateGroupImage() {
	groupID := uuid.New()
	e1, e2, e3 := uuid.New(), uuid.New(), uuid.New()
	group := &models.EquipmentGroup{
		BaseModel: models.BaseModel{ID: groupID},
		ImageURL:  "/uploads/groups/pump.png",
	}

	ownImage := equipmentWithID(e1)
	ownImage.ImageURL = "/uploads/equipments/custom.png"

	alreadySynced := equipmentWithID(e2)
	alreadySynced.ImageURL = "/uploads/groups/pump.png"

	bare := equipmentWithID(e3)

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{
			member(groupID, e1), member(groupID, e2), member(groupID, e3),
		}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e1).Return(&ownImage, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e2).Return(&alreadySynced, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e3).Return(&bare, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e3, map[string]interface{}{"image_url": "/uploads/groups/pump.png"}).
		Return(nil)

	resp, err := suite.membershipService.PropagateGroupImage(groupID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Updated)
	assert.Equal(suite.T(), 1, resp.Skipped)
}

// TestPropagateWithLegacyPredicate tests the non-empty-description
// heuristic used for datasets that predate the explicit flag
func (suite *MembershipServiceTestSuite) TestPropagateWithLegacyPredicate() {
	suite.membershipService.WithCustomDescriptionPredicate(service.LegacyCustomDescription)

	groupID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()
	group := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Description: "Shared description",
	}

	// Non-empty description counts as custom under the legacy predicate
	// even without the flag
	unflagged := equipmentWithID(e1)
	unflagged.Description = "Some text"

	empty := equipmentWithID(e2)

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{member(groupID, e1), member(groupID, e2)}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e1).Return(&unflagged, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e2).Return(&empty, nil)
	suite.mockEquipmentRepo.EXPECT().Update(e2, gomock.Any()).Return(nil)

	resp, err := suite.membershipService.PropagateGroupDescription(groupID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Updated)
	assert.Equal(suite.T(), 1, resp.Skipped)
}

// TestUpdateDocumentGroups tests document-group replacement reporting
func (suite *MembershipServiceTestSuite) TestUpdateDocumentGroups() {
	documentID := uuid.New()
	g1, g2 := uuid.New(), uuid.New()

	suite.mockDocumentRepo.EXPECT().
		GetByID(documentID).
		Return(&models.Document{BaseModel: models.BaseModel{ID: documentID}}, nil)
	suite.mockGroupRepo.EXPECT().
		GetByID(g2).
		Return(&models.EquipmentGroup{BaseModel: models.BaseModel{ID: g2}}, nil)
	first := suite.mockDocGroupRepo.EXPECT().
		GetByDocumentID(documentID).
		Return([]models.DocumentGroupLink{{DocumentID: documentID, GroupID: g1}}, nil)
	suite.mockDocGroupRepo.EXPECT().
		ReplaceForDocument(documentID, []uuid.UUID{g2}).
		Return(nil)
	suite.mockDocGroupRepo.EXPECT().
		GetByDocumentID(documentID).
		Return([]models.DocumentGroupLink{{DocumentID: documentID, GroupID: g2}}, nil).
		After(first)

	resp, err := suite.membershipService.UpdateDocumentGroups(documentID, &service.UpdateDocumentGroupsRequest{
		GroupIDs: []uuid.UUID{g2},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Added)
	assert.Equal(suite.T(), 1, resp.Removed)
	assert.Equal(suite.T(), []uuid.UUID{g2}, resp.GroupIDs)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
