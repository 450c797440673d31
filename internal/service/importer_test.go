package service_test

import (
	"strings"
	"testing"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const importCSVHeader = "Name,Model,Manufacturer,Supplier,Serial Number,Inventory Number,Description,UF,Status,Loan,Building,Service,Location,Groups"

// ImporterServiceTestSuite defines the test suite for ImporterService
type ImporterServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockEquipmentRepo  *mocks.MockEquipmentRepositoryInterface
	mockGroupRepo      *mocks.MockEquipmentGroupRepositoryInterface
	mockBuildingRepo   *mocks.MockBuildingRepositoryInterface
	mockServiceRepo    *mocks.MockFacilityServiceRepositoryInterface
	mockLocationRepo   *mocks.MockLocationRepositoryInterface
	mockDocumentRepo   *mocks.MockDocumentRepositoryInterface
	mockMembershipRepo *mocks.MockGroupMembershipRepositoryInterface
	mockDocGroupRepo   *mocks.MockDocumentGroupRepositoryInterface
	importerService    *service.ImporterService
}

// SetupTest sets up the test suite
func (suite *ImporterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockEquipmentGroupRepositoryInterface(suite.ctrl)
	suite.mockBuildingRepo = mocks.NewMockBuildingRepositoryInterface(suite.ctrl)
	suite.mockServiceRepo = mocks.NewMockFacilityServiceRepositoryInterface(suite.ctrl)
	suite.mockLocationRepo = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockDocumentRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockGroupMembershipRepositoryInterface(suite.ctrl)
	suite.mockDocGroupRepo = mocks.NewMockDocumentGroupRepositoryInterface(suite.ctrl)

	membership := service.NewMembershipService(
		suite.mockEquipmentRepo,
		suite.mockGroupRepo,
		suite.mockDocumentRepo,
		suite.mockMembershipRepo,
		suite.mockDocGroupRepo,
	)
	suite.importerService = service.NewImporterService(
		suite.mockEquipmentRepo,
		suite.mockGroupRepo,
		suite.mockBuildingRepo,
		suite.mockServiceRepo,
		suite.mockLocationRepo,
		membership,
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ImporterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func csvFile(rows ...string) *strings.Reader {
	return strings.NewReader(importCSVHeader + "\n" + strings.Join(rows, "\n") + "\n")
}

// TestImportCSVAllRows tests a clean import-all run, including a quoted
// description containing commas
func (suite *ImporterServiceTestSuite) TestImportCSVAllRows() {
	file := csvFile(
		`Pump A,PX-1,Acme,,SN-001,INV-001,"Cooling, primary loop",UF1,operational,oui,,,,`,
		`Pump B,PX-2,Acme,,SN-002,INV-002,,,maintenance,non,,,,`,
	)

	var inserted []models.Equipment
	suite.mockEquipmentRepo.EXPECT().
		BulkCreate(gomock.Any()).
		DoAndReturn(func(equipments []models.Equipment) error {
			inserted = equipments
			return nil
		})

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.Imported)
	assert.Equal(suite.T(), 0, result.Skipped)
	assert.Empty(suite.T(), result.Errors)

	assert.Len(suite.T(), inserted, 2)
	assert.Equal(suite.T(), "Pump A", inserted[0].Name)
	assert.Equal(suite.T(), "Cooling, primary loop", inserted[0].Description)
	assert.True(suite.T(), inserted[0].DescriptionIsCustom)
	assert.True(suite.T(), inserted[0].Loan)
	assert.Equal(suite.T(), models.EquipmentOperational, inserted[0].Status)
	assert.False(suite.T(), inserted[1].Loan)
	assert.False(suite.T(), inserted[1].DescriptionIsCustom)
	assert.Equal(suite.T(), models.EquipmentMaintenance, inserted[1].Status)
}

// TestImportRejectsWholeBatch tests that one bad row blocks every row,
// including the valid ones
func (suite *ImporterServiceTestSuite) TestImportRejectsWholeBatch() {
	file := csvFile(
		`Pump A,,,,SN-001,,,,operational,,,,,`,
		`Pump B,,,,SN-002,,,,exploded,,,,,`,
	)

	// No BulkCreate expectation: nothing may be written.
	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportRejected)
	assert.Equal(suite.T(), 0, result.Imported)
	assert.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), 3, result.Errors[0].Line)
	assert.Equal(suite.T(), "Status", result.Errors[0].Field)
	assert.Equal(suite.T(), "exploded", result.Errors[0].Value)
}

// TestImportReportsAllRowErrors tests that every invalid value is
// reported, not just the first
func (suite *ImporterServiceTestSuite) TestImportReportsAllRowErrors() {
	file := csvFile(
		`,,,,SN-001,,,,broken,maybe,,,,`,
	)

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportRejected)
	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(suite.T(), []string{"Name", "Status", "Loan"}, fields)
}

// TestImportRejectsBadHeader tests header validation
func (suite *ImporterServiceTestSuite) TestImportRejectsBadHeader() {
	file := strings.NewReader("Name,Serial\nPump A,SN-001\n")

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportRejected)
	assert.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), 1, result.Errors[0].Line)
	assert.Equal(suite.T(), "header", result.Errors[0].Field)
}

// TestImportSkipDuplicates tests that colliding serials are skipped and
// the rest inserted
func (suite *ImporterServiceTestSuite) TestImportSkipDuplicates() {
	file := csvFile(
		`Pump A,,,,SN-001,,,,operational,,,,,`,
		`Pump B,,,,SN-002,,,,operational,,,,,`,
	)

	existing := &models.Equipment{SerialNumber: "SN-001"}
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-001").Return(existing, nil)
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-002").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEquipmentRepo.EXPECT().
		BulkCreate(gomock.Any()).
		DoAndReturn(func(equipments []models.Equipment) error {
			assert.Len(suite.T(), equipments, 1)
			assert.Equal(suite.T(), "Pump B", equipments[0].Name)
			return nil
		})

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionSkip)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 1, result.Skipped)
	assert.Equal(suite.T(), 0, result.Replaced)
}

// TestImportReplaceExisting tests that colliding serials are deleted and
// re-imported
func (suite *ImporterServiceTestSuite) TestImportReplaceExisting() {
	file := csvFile(
		`Pump A v2,,,,SN-001,,,,operational,,,,,`,
	)

	existing := &models.Equipment{SerialNumber: "SN-001", Name: "Pump A"}
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-001").Return(existing, nil)
	suite.mockEquipmentRepo.EXPECT().DeleteBySerialNumbers([]string{"SN-001"}).Return(nil)
	suite.mockEquipmentRepo.EXPECT().
		BulkCreate(gomock.Any()).
		DoAndReturn(func(equipments []models.Equipment) error {
			assert.Equal(suite.T(), "Pump A v2", equipments[0].Name)
			return nil
		})

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionReplace)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 1, result.Replaced)
}

// TestImportUnknownBuilding tests location chain validation
func (suite *ImporterServiceTestSuite) TestImportUnknownBuilding() {
	file := csvFile(
		`Pump A,,,,SN-001,,,,operational,,Bâtiment Z,,,`,
	)

	suite.mockBuildingRepo.EXPECT().
		GetByNameInsensitive("Bâtiment Z").
		Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportRejected)
	assert.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), "Building", result.Errors[0].Field)
	assert.Equal(suite.T(), "Bâtiment Z", result.Errors[0].Value)
}

// TestImportUnknownGroup tests that group names must resolve
func (suite *ImporterServiceTestSuite) TestImportUnknownGroup() {
	file := csvFile(
		`Pump A,,,,SN-001,,,,operational,,,,,"ventilation, no-such-group"`,
	)

	group := &models.EquipmentGroup{Name: "ventilation"}
	suite.mockGroupRepo.EXPECT().GetByNameInsensitive("ventilation").Return(group, nil)
	suite.mockGroupRepo.EXPECT().GetByNameInsensitive("no-such-group").Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.ErrorIs(suite.T(), err, apperrors.ErrImportRejected)
	assert.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), "Groups", result.Errors[0].Field)
	assert.Equal(suite.T(), "no-such-group", result.Errors[0].Value)
}

// TestImportSkipsBlankRows tests that empty lines do not produce errors
func (suite *ImporterServiceTestSuite) TestImportSkipsBlankRows() {
	file := csvFile(
		`Pump A,,,,SN-001,,,,operational,,,,,`,
		`,,,,,,,,,,,,,`,
	)

	suite.mockEquipmentRepo.EXPECT().BulkCreate(gomock.Any()).Return(nil)

	result, err := suite.importerService.Import("equipments.csv", file, service.ResolutionImportAll)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Empty(suite.T(), result.Errors)
}

// TestImportUnsupportedExtension tests the extension dispatch
func (suite *ImporterServiceTestSuite) TestImportUnsupportedExtension() {
	result, err := suite.importerService.Import("equipments.txt", strings.NewReader("x"), service.ResolutionImportAll)

	assert.Nil(suite.T(), result)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "unsupported file type")
}

// TestImportInvalidResolution tests the resolution guard
func (suite *ImporterServiceTestSuite) TestImportInvalidResolution() {
	result, err := suite.importerService.Import("equipments.csv", strings.NewReader("x"), "overwrite")

	assert.Nil(suite.T(), result)
	assert.Error(suite.T(), err)
}

// TestImporterServiceTestSuite runs the test suite
func TestImporterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterServiceTestSuite))
}
