package service_test

import (
	"errors"
	"testing"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EquipmentGroupServiceTestSuite defines the test suite for EquipmentGroupService
type EquipmentGroupServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockGroupRepo      *mocks.MockEquipmentGroupRepositoryInterface
	mockEquipmentRepo  *mocks.MockEquipmentRepositoryInterface
	mockMembershipRepo *mocks.MockGroupMembershipRepositoryInterface
	groupService       *service.EquipmentGroupService
}

// SetupTest sets up the test suite
func (suite *EquipmentGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockEquipmentGroupRepositoryInterface(suite.ctrl)
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockGroupMembershipRepositoryInterface(suite.ctrl)

	membership := service.NewMembershipService(
		suite.mockEquipmentRepo,
		suite.mockGroupRepo,
		mocks.NewMockDocumentRepositoryInterface(suite.ctrl),
		suite.mockMembershipRepo,
		mocks.NewMockDocumentGroupRepositoryInterface(suite.ctrl),
	)
	suite.groupService = service.NewEquipmentGroupService(
		suite.mockGroupRepo, membership, validator.New(), logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *EquipmentGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string {
	return &s
}

// TestUpdateDescriptionPropagatesToMembers tests that saving a changed
// description pushes it onto non-custom member equipments
func (suite *EquipmentGroupServiceTestSuite) TestUpdateDescriptionPropagatesToMembers() {
	groupID := uuid.New()
	e1 := uuid.New()
	before := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Name:        "Pumps",
		Description: "Old text",
	}
	after := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Name:        "Pumps",
		Description: "Shared description",
	}

	// Load before the save, reload inside propagation, final reload
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(before, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, map[string]interface{}{"description": "Shared description"}).
		Return(nil)

	stale := equipmentWithID(e1)
	stale.Description = "Old text"
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{member(groupID, e1)}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e1).Return(&stale, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e1, map[string]interface{}{
			"description":           "Shared description",
			"description_is_custom": false,
		}).
		Return(nil)

	resp, err := suite.groupService.Update(groupID, &service.UpdateEquipmentGroupRequest{
		Description: strPtr("Shared description"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Shared description", resp.Description)
}

// TestUpdateSucceedsWhenPropagationFails tests that a propagation
// failure is swallowed and the group save still succeeds
func (suite *EquipmentGroupServiceTestSuite) TestUpdateSucceedsWhenPropagationFails() {
	groupID := uuid.New()
	before := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Name:        "Pumps",
		Description: "Old text",
	}
	after := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Name:        "Pumps",
		Description: "Shared description",
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(before, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, map[string]interface{}{"description": "Shared description"}).
		Return(nil)

	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return(nil, errors.New("connection reset"))

	resp, err := suite.groupService.Update(groupID, &service.UpdateEquipmentGroupRequest{
		Description: strPtr("Shared description"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Shared description", resp.Description)
}

// TestUpdateImagePropagatesToMembers tests that saving a changed group
// image syncs it onto members without an image of their own
func (suite *EquipmentGroupServiceTestSuite) TestUpdateImagePropagatesToMembers() {
	groupID := uuid.New()
	e1 := uuid.New()
	before := &models.EquipmentGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Pumps",
	}
	after := &models.EquipmentGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Pumps",
		ImageURL:  "/uploads/groups/pump.png",
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(before, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(after, nil)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, map[string]interface{}{"image_url": "/uploads/groups/pump.png"}).
		Return(nil)

	bare := equipmentWithID(e1)
	suite.mockMembershipRepo.EXPECT().
		GetByGroupID(groupID).
		Return([]models.EquipmentGroupMember{member(groupID, e1)}, nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(e1).Return(&bare, nil)
	suite.mockEquipmentRepo.EXPECT().
		Update(e1, map[string]interface{}{"image_url": "/uploads/groups/pump.png"}).
		Return(nil)

	resp, err := suite.groupService.Update(groupID, &service.UpdateEquipmentGroupRequest{
		ImageURL: strPtr("/uploads/groups/pump.png"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/uploads/groups/pump.png", resp.ImageURL)
}

// TestUpdateUnchangedDescriptionSkipsPropagation tests that resubmitting
// the current description does not touch the members
func (suite *EquipmentGroupServiceTestSuite) TestUpdateUnchangedDescriptionSkipsPropagation() {
	groupID := uuid.New()
	group := &models.EquipmentGroup{
		BaseModel:   models.BaseModel{ID: groupID},
		Name:        "Pumps",
		Description: "Shared description",
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(2)
	suite.mockGroupRepo.EXPECT().
		Update(groupID, map[string]interface{}{"description": "Shared description"}).
		Return(nil)

	resp, err := suite.groupService.Update(groupID, &service.UpdateEquipmentGroupRequest{
		Description: strPtr("Shared description"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Shared description", resp.Description)
}

// TestEquipmentGroupServiceTestSuite runs the test suite
func TestEquipmentGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentGroupServiceTestSuite))
}
