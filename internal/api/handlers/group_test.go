package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maintenance-portal-backend/internal/api/handlers"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite defines the test suite for GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockGroupSv      *mocks.MockEquipmentGroupServiceInterface
	mockMembershipSv *mocks.MockMembershipServiceInterface
	handler          *handlers.GroupHandler
	router           *gin.Engine
}

func (suite *GroupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupSv = mocks.NewMockEquipmentGroupServiceInterface(suite.ctrl)
	suite.mockMembershipSv = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGroupHandler(suite.mockGroupSv, suite.mockMembershipSv)

	suite.router = gin.New()
	suite.router.POST("/groups", suite.handler.CreateGroup)
	suite.router.GET("/groups/:id/members", suite.handler.GetGroupMembers)
	suite.router.POST("/groups/:id/members", suite.handler.UpdateGroupMembers)
	suite.router.POST("/groups/:id/propagate-description", suite.handler.PropagateDescription)
}

func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_DuplicateName() {
	suite.mockGroupSv.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrGroupExists)

	req := httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"name":"ventilation"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *GroupHandlerTestSuite) TestGetGroupMembers_Success() {
	groupID := uuid.New()
	resp := &service.GroupMembersResponse{
		GroupID:    groupID,
		Equipments: []service.EquipmentResponse{{ID: uuid.New(), Name: "Pump"}},
		Total:      1,
	}
	suite.mockMembershipSv.EXPECT().GetEquipmentsForGroup(groupID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/groups/"+groupID.String()+"/members", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.GroupMembersResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), groupID, got.GroupID)
	assert.Equal(suite.T(), 1, got.Total)
}

func (suite *GroupHandlerTestSuite) TestUpdateGroupMembers_Success() {
	groupID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()
	resp := &service.UpdateMembersResponse{
		GroupID:      groupID,
		EquipmentIDs: []uuid.UUID{e1, e2},
		Added:        1,
		Removed:      0,
	}
	suite.mockMembershipSv.EXPECT().
		UpdateGroupMembers(groupID, &service.UpdateMembersRequest{EquipmentIDs: []uuid.UUID{e1, e2}}).
		Return(resp, nil)

	body, _ := json.Marshal(service.UpdateMembersRequest{EquipmentIDs: []uuid.UUID{e1, e2}})
	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID.String()+"/members", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.UpdateMembersResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.Added)
	assert.Equal(suite.T(), 0, got.Removed)
}

func (suite *GroupHandlerTestSuite) TestUpdateGroupMembers_UnknownEquipment() {
	groupID := uuid.New()
	suite.mockMembershipSv.EXPECT().
		UpdateGroupMembers(groupID, gomock.Any()).
		Return(nil, apperrors.ErrEquipmentNotFound)

	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID.String()+"/members", strings.NewReader(`{"equipment_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *GroupHandlerTestSuite) TestUpdateGroupMembers_InvalidID() {
	req := httptest.NewRequest(http.MethodPost, "/groups/not-a-uuid/members", strings.NewReader(`{"equipment_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *GroupHandlerTestSuite) TestPropagateDescription_Success() {
	groupID := uuid.New()
	resp := &service.PropagationResponse{GroupID: groupID, Updated: 3, Skipped: 1}
	suite.mockMembershipSv.EXPECT().PropagateGroupDescription(groupID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID.String()+"/propagate-description", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.PropagationResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 3, got.Updated)
	assert.Equal(suite.T(), 1, got.Skipped)
}

func (suite *GroupHandlerTestSuite) TestPropagateDescription_GroupNotFound() {
	groupID := uuid.New()
	suite.mockMembershipSv.EXPECT().
		PropagateGroupDescription(groupID).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodPost, "/groups/"+groupID.String()+"/propagate-description", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
