package handlers_test

import (
	"encoding/json"
	"errors"
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

// EquipmentHandlerTestSuite defines the test suite for EquipmentHandler
type EquipmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEquipmentSv *mocks.MockEquipmentServiceInterface
	mockSelectorSv  *mocks.MockSelectorServiceInterface
	handler         *handlers.EquipmentHandler
	router          *gin.Engine
}

func (suite *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentSv = mocks.NewMockEquipmentServiceInterface(suite.ctrl)
	suite.mockSelectorSv = mocks.NewMockSelectorServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEquipmentHandler(suite.mockEquipmentSv, suite.mockSelectorSv)

	suite.router = gin.New()
	suite.router.POST("/equipments", suite.handler.CreateEquipment)
	suite.router.GET("/equipments", suite.handler.ListEquipments)
	suite.router.GET("/equipments/selector", suite.handler.SelectEquipments)
	suite.router.GET("/equipments/:id", suite.handler.GetEquipment)
	suite.router.PUT("/equipments/:id", suite.handler.UpdateEquipment)
	suite.router.DELETE("/equipments/:id", suite.handler.DeleteEquipment)
}

func (suite *EquipmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EquipmentHandlerTestSuite) TestCreateEquipment_Success() {
	resp := &service.EquipmentResponse{ID: uuid.New(), Name: "Cooling pump"}
	suite.mockEquipmentSv.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateEquipmentRequest) (*service.EquipmentResponse, error) {
			assert.Equal(suite.T(), "Cooling pump", req.Name)
			return resp, nil
		})

	body := `{"name":"Cooling pump","serial_number":"SN-001","status":"operational"}`
	req := httptest.NewRequest(http.MethodPost, "/equipments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.EquipmentResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), resp.ID, got.ID)
	assert.Equal(suite.T(), "Cooling pump", got.Name)
}

func (suite *EquipmentHandlerTestSuite) TestCreateEquipment_ValidationError() {
	suite.mockEquipmentSv.EXPECT().
		Create(gomock.Any()).
		Return(nil, errors.New("validation failed: name is required"))

	req := httptest.NewRequest(http.MethodPost, "/equipments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestListEquipments_DefaultPagination() {
	resp := &service.EquipmentListResponse{
		Equipments: []service.EquipmentResponse{{ID: uuid.New(), Name: "Pump"}},
		Total:      1,
		Page:       1,
		PageSize:   20,
	}
	suite.mockEquipmentSv.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/equipments", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.EquipmentListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Equipments, 1)
}

func (suite *EquipmentHandlerTestSuite) TestListEquipments_SearchQuery() {
	resp := &service.EquipmentListResponse{Equipments: []service.EquipmentResponse{}, Page: 2, PageSize: 5}
	suite.mockEquipmentSv.EXPECT().Search("pump", 2, 5).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/equipments?q=pump&page=2&page_size=5", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestGetEquipment_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/equipments/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Invalid equipment ID", got.Error)
}

func (suite *EquipmentHandlerTestSuite) TestGetEquipment_NotFound() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().GetByID(id).Return(nil, apperrors.ErrEquipmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/equipments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestDeleteEquipment_Success() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/equipments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.Bytes())
}

func (suite *EquipmentHandlerTestSuite) TestSelectEquipments_BuildsRequest() {
	sessionID := uuid.New().String()
	groupID := uuid.New().String()
	resp := &service.EquipmentSelectorResponse{
		SessionID: sessionID,
		Page:      2,
		PageSize:  service.SelectorPageSize,
		PageCount: 3,
		Total:     25,
	}
	suite.mockSelectorSv.EXPECT().
		EquipmentPage(&service.EquipmentSelectorRequest{
			SessionID: sessionID,
			Query:     "pump",
			Status:    "operational",
			GroupID:   groupID,
			Page:      2,
		}).
		Return(resp, nil)

	url := "/equipments/selector?session_id=" + sessionID + "&q=pump&status=operational&group_id=" + groupID + "&page=2"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.EquipmentSelectorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), sessionID, got.SessionID)
	assert.Equal(suite.T(), 2, got.Page)
}

func (suite *EquipmentHandlerTestSuite) TestSelectEquipments_InvalidStatus() {
	req := httptest.NewRequest(http.MethodGet, "/equipments/selector?status=exploded", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestEquipmentHandlerTestSuite runs the test suite
func TestEquipmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}
