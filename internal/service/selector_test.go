package service_test

import (
	"fmt"
	"testing"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SelectorTestSuite defines the test suite for the Selector dialog logic
type SelectorTestSuite struct {
	suite.Suite
}

func selectorItems(n int) []service.SelectorItem {
	items := make([]service.SelectorItem, n)
	for i := range items {
		items[i] = service.SelectorItem{
			ID:         uuid.New(),
			Label:      fmt.Sprintf("Item %02d", i),
			SearchText: []string{fmt.Sprintf("Item %02d", i)},
			Attributes: map[string]string{"status": "operational"},
		}
	}
	return items
}

// TestPagination tests the fixed ten-per-page slicing
func (suite *SelectorTestSuite) TestPagination() {
	items := selectorItems(25)
	sel := service.NewSelector(service.SelectMulti, items, nil)

	page := sel.Visible()
	assert.Equal(suite.T(), 1, page.Page)
	assert.Equal(suite.T(), 3, page.PageCount)
	assert.Equal(suite.T(), 25, page.Total)
	assert.Len(suite.T(), page.Items, service.SelectorPageSize)

	sel.SetPage(3)
	page = sel.Visible()
	assert.Equal(suite.T(), 3, page.Page)
	assert.Len(suite.T(), page.Items, 5)

	// Out-of-range pages clamp to the edges
	sel.SetPage(99)
	assert.Equal(suite.T(), 3, sel.Visible().Page)
	sel.SetPage(-1)
	assert.Equal(suite.T(), 1, sel.Visible().Page)
}

// TestQueryResetsPage tests that changing the search snaps back to page one
func (suite *SelectorTestSuite) TestQueryResetsPage() {
	items := selectorItems(25)
	sel := service.NewSelector(service.SelectMulti, items, nil)
	sel.SetPage(3)

	sel.SetQuery("Item 1")
	page := sel.Visible()
	assert.Equal(suite.T(), 1, page.Page)
	// Item 10 through Item 19 match the substring
	assert.Equal(suite.T(), 10, page.Total)

	// Re-setting the same query keeps the page
	sel.SetPage(1)
	sel.SetQuery("Item 1")
	assert.Equal(suite.T(), 1, sel.Visible().Page)
}

// TestQueryIsCaseInsensitive tests substring matching
func (suite *SelectorTestSuite) TestQueryIsCaseInsensitive() {
	items := selectorItems(5)
	sel := service.NewSelector(service.SelectMulti, items, nil)

	sel.SetQuery("iTeM 03")
	assert.Equal(suite.T(), 1, sel.Visible().Total)

	sel.SetQuery("no such item")
	page := sel.Visible()
	assert.Equal(suite.T(), 0, page.Total)
	assert.Empty(suite.T(), page.Items)
}

// TestFiltersCombineWithAnd tests exact attribute filters
func (suite *SelectorTestSuite) TestFiltersCombineWithAnd() {
	buildingA, buildingB := uuid.New().String(), uuid.New().String()
	items := []service.SelectorItem{
		{ID: uuid.New(), SearchText: []string{"pump"}, Attributes: map[string]string{"status": "operational", "building": buildingA}},
		{ID: uuid.New(), SearchText: []string{"pump"}, Attributes: map[string]string{"status": "faulty", "building": buildingA}},
		{ID: uuid.New(), SearchText: []string{"pump"}, Attributes: map[string]string{"status": "operational", "building": buildingB}},
	}
	sel := service.NewSelector(service.SelectMulti, items, nil)

	sel.SetFilter("status", "operational")
	assert.Equal(suite.T(), 2, sel.Visible().Total)

	sel.SetFilter("building", buildingA)
	page := sel.Visible()
	assert.Equal(suite.T(), 1, page.Total)
	assert.Equal(suite.T(), items[0].ID, page.Items[0].ID)

	// Clearing one filter widens the match again
	sel.SetFilter("building", "")
	assert.Equal(suite.T(), 2, sel.Visible().Total)
}

// TestFilterChangeResetsPage tests the page snap on filter edits
func (suite *SelectorTestSuite) TestFilterChangeResetsPage() {
	items := selectorItems(25)
	sel := service.NewSelector(service.SelectMulti, items, nil)

	sel.SetPage(2)
	sel.SetFilter("status", "operational")
	assert.Equal(suite.T(), 1, sel.Visible().Page)

	// Unchanged filter value does not reset
	sel.SetPage(2)
	sel.SetFilter("status", "operational")
	assert.Equal(suite.T(), 2, sel.Visible().Page)
}

// TestSingleModeCommitsOnPick tests immediate commit in single mode
func (suite *SelectorTestSuite) TestSingleModeCommitsOnPick() {
	items := selectorItems(3)
	sel := service.NewSelector(service.SelectSingle, items, []uuid.UUID{items[0].ID})

	committed := sel.Toggle(items[2].ID)
	assert.True(suite.T(), committed)
	assert.True(suite.T(), sel.IsSelected(items[2].ID))
	// The pick replaces the prior selection
	assert.False(suite.T(), sel.IsSelected(items[0].ID))
	assert.Equal(suite.T(), []uuid.UUID{items[2].ID}, sel.Confirm())
}

// TestMultiModeConfirm tests accumulate-then-confirm in item order
func (suite *SelectorTestSuite) TestMultiModeConfirm() {
	items := selectorItems(5)
	sel := service.NewSelector(service.SelectMulti, items, nil)

	assert.False(suite.T(), sel.Toggle(items[3].ID))
	assert.False(suite.T(), sel.Toggle(items[1].ID))
	assert.False(suite.T(), sel.Toggle(items[4].ID))
	// Toggling twice deselects
	sel.Toggle(items[4].ID)

	assert.Equal(suite.T(), []uuid.UUID{items[1].ID, items[3].ID}, sel.Confirm())
}

// TestCancelRestoresInitialSelection tests that Cancel discards edits
func (suite *SelectorTestSuite) TestCancelRestoresInitialSelection() {
	items := selectorItems(4)
	initial := []uuid.UUID{items[0].ID, items[2].ID}
	sel := service.NewSelector(service.SelectMulti, items, initial)

	sel.Toggle(items[0].ID)
	sel.Toggle(items[3].ID)

	assert.Equal(suite.T(), initial, sel.Cancel())
	assert.True(suite.T(), sel.IsSelected(items[0].ID))
	assert.False(suite.T(), sel.IsSelected(items[3].ID))
}

// TestConfirmKeepsOffListSelection tests that ids outside the item list
// survive a confirm instead of being dropped by a narrow view
func (suite *SelectorTestSuite) TestConfirmKeepsOffListSelection() {
	items := selectorItems(2)
	offList := uuid.New()
	sel := service.NewSelector(service.SelectMulti, items, []uuid.UUID{offList})

	sel.Toggle(items[0].ID)

	confirmed := sel.Confirm()
	assert.Contains(suite.T(), confirmed, items[0].ID)
	assert.Contains(suite.T(), confirmed, offList)
}

// TestReopenClearsViewNotSelection tests the reopen semantics
func (suite *SelectorTestSuite) TestReopenClearsViewNotSelection() {
	items := selectorItems(15)
	sel := service.NewSelector(service.SelectMulti, items, nil)

	sel.Toggle(items[0].ID)
	sel.SetQuery("Item 1")
	sel.SetFilter("status", "operational")
	sel.SetPage(2)

	sel.Reopen()
	page := sel.Visible()
	assert.Equal(suite.T(), 1, page.Page)
	assert.Equal(suite.T(), 15, page.Total)
	assert.True(suite.T(), sel.IsSelected(items[0].ID))
}

// TestSelectorTestSuite runs the test suite
func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

// SelectorServiceTestSuite defines the test suite for SelectorService
type SelectorServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockEquipmentRepo *mocks.MockEquipmentRepositoryInterface
	selectorService   *service.SelectorService
}

// SetupTest sets up the test suite
func (suite *SelectorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.selectorService = service.NewSelectorService(suite.mockEquipmentRepo)
}

// TearDownTest cleans up after each test
func (suite *SelectorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func catalogEquipments(n int) []models.Equipment {
	out := make([]models.Equipment, n)
	for i := range out {
		out[i] = models.Equipment{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      fmt.Sprintf("Pump %02d", i),
			Status:    models.EquipmentOperational,
		}
	}
	return out
}

// TestEquipmentPageOpensSession tests that a missing session id opens a
// fresh session on page one
func (suite *SelectorServiceTestSuite) TestEquipmentPageOpensSession() {
	equipments := catalogEquipments(12)
	suite.mockEquipmentRepo.EXPECT().
		GetAll(-1, 0).
		Return(equipments, int64(12), nil)

	resp, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{Page: 2})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.SessionID)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), service.SelectorPageSize, resp.PageSize)
	assert.Equal(suite.T(), 2, resp.PageCount)
	assert.Equal(suite.T(), 12, resp.Total)
	assert.Len(suite.T(), resp.Equipments, service.SelectorPageSize)
}

// TestEquipmentPageQueryChangeResetsPage tests the server-side page snap
// when the search text changes between requests
func (suite *SelectorServiceTestSuite) TestEquipmentPageQueryChangeResetsPage() {
	equipments := catalogEquipments(25)
	suite.mockEquipmentRepo.EXPECT().
		GetAll(-1, 0).
		Return(equipments, int64(25), nil).
		Times(3)

	first, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{})
	assert.NoError(suite.T(), err)

	// Same session, same query: page 2 sticks
	second, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{
		SessionID: first.SessionID,
		Page:      2,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, second.Page)

	// Same session, new query: back to page 1
	third, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{
		SessionID: first.SessionID,
		Query:     "Pump 1",
		Page:      2,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, third.Page)
	assert.Equal(suite.T(), 10, third.Total)
}

// TestEquipmentPageStatusFilter tests the exact status filter
func (suite *SelectorServiceTestSuite) TestEquipmentPageStatusFilter() {
	equipments := catalogEquipments(4)
	equipments[1].Status = models.EquipmentFaulty
	equipments[3].Status = models.EquipmentFaulty
	suite.mockEquipmentRepo.EXPECT().
		GetAll(-1, 0).
		Return(equipments, int64(4), nil)

	resp, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{
		Status: string(models.EquipmentFaulty),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
	for _, eq := range resp.Equipments {
		assert.Equal(suite.T(), models.EquipmentFaulty, eq.Status)
	}
}

// TestEquipmentPageGroupFilter tests narrowing the picker to one group's
// members
func (suite *SelectorServiceTestSuite) TestEquipmentPageGroupFilter() {
	groupID := uuid.New()
	equipments := catalogEquipments(3)
	equipments[1].AssociatedGroupIDs = []uuid.UUID{groupID}
	suite.mockEquipmentRepo.EXPECT().
		GetAll(-1, 0).
		Return(equipments, int64(3), nil)

	resp, err := suite.selectorService.EquipmentPage(&service.EquipmentSelectorRequest{
		GroupID: groupID.String(),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), equipments[1].ID, resp.Equipments[0].ID)
}

// TestSelectorServiceTestSuite runs the test suite
func TestSelectorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorServiceTestSuite))
}
