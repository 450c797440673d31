//go:build integration
// +build integration

package repository

import (
	"testing"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// GroupMembershipRepositoryTestSuite tests the GroupMembershipRepository
type GroupMembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupMembershipRepository
	equipmentRepo *EquipmentRepository
	groupRepo     *EquipmentGroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GroupMembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewGroupMembershipRepository(suite.baseTestSuite.DB)
	suite.equipmentRepo = NewEquipmentRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewEquipmentGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupMembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GroupMembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GroupMembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GroupMembershipRepositoryTestSuite) createEquipments(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		eq := suite.factories.Equipment.Create()
		suite.Require().NoError(suite.equipmentRepo.Create(eq))
		ids[i] = eq.ID
	}
	return ids
}

func (suite *GroupMembershipRepositoryTestSuite) createGroup() *models.EquipmentGroup {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.groupRepo.Create(group))
	return group
}

// TestReplaceForGroupInsertsDesiredSet tests filling an empty junction
func (suite *GroupMembershipRepositoryTestSuite) TestReplaceForGroupInsertsDesiredSet() {
	group := suite.createGroup()
	ids := suite.createEquipments(3)

	err := suite.repo.ReplaceForGroup(group.ID, ids)
	suite.NoError(err)

	members, err := suite.repo.GetByGroupID(group.ID)
	suite.NoError(err)
	suite.Len(members, 3)

	got := make([]uuid.UUID, len(members))
	for i, m := range members {
		got[i] = m.EquipmentID
	}
	suite.ElementsMatch(ids, got)
}

// TestReplaceForGroupKeepsUnchangedRows tests that re-replacing with an
// overlapping set preserves the surviving junction rows instead of
// recreating them
func (suite *GroupMembershipRepositoryTestSuite) TestReplaceForGroupKeepsUnchangedRows() {
	group := suite.createGroup()
	ids := suite.createEquipments(3)

	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, ids[:2]))
	before, err := suite.repo.GetByGroupID(group.ID)
	suite.Require().NoError(err)
	suite.Require().Len(before, 2)

	rowIDs := map[uuid.UUID]uuid.UUID{}
	for _, m := range before {
		rowIDs[m.EquipmentID] = m.ID
	}

	// Keep ids[1], drop ids[0], add ids[2]
	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, []uuid.UUID{ids[1], ids[2]}))

	after, err := suite.repo.GetByGroupID(group.ID)
	suite.Require().NoError(err)
	suite.Require().Len(after, 2)

	afterByEquipment := map[uuid.UUID]models.EquipmentGroupMember{}
	for _, m := range after {
		afterByEquipment[m.EquipmentID] = m
	}
	suite.NotContains(afterByEquipment, ids[0])
	suite.Contains(afterByEquipment, ids[2])
	// The surviving member kept its original junction row
	suite.Equal(rowIDs[ids[1]], afterByEquipment[ids[1]].ID)
}

// TestReplaceForGroupEmptySetClears tests clearing a group
func (suite *GroupMembershipRepositoryTestSuite) TestReplaceForGroupEmptySetClears() {
	group := suite.createGroup()
	ids := suite.createEquipments(2)

	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, ids))
	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, nil))

	count, err := suite.repo.CountByGroupID(group.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestGetByGroupIDOrdersByCreation tests oldest-first junction ordering
func (suite *GroupMembershipRepositoryTestSuite) TestGetByGroupIDOrdersByCreation() {
	group := suite.createGroup()
	ids := suite.createEquipments(2)

	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, []uuid.UUID{ids[0]}))
	suite.Require().NoError(suite.repo.ReplaceForGroup(group.ID, []uuid.UUID{ids[0], ids[1]}))

	members, err := suite.repo.GetByGroupID(group.ID)
	suite.Require().NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal(ids[0], members[0].EquipmentID)
	suite.Equal(ids[1], members[1].EquipmentID)
}

// TestGetByEquipmentID tests the reverse lookup across groups
func (suite *GroupMembershipRepositoryTestSuite) TestGetByEquipmentID() {
	groupA := suite.createGroup()
	groupB := suite.createGroup()
	ids := suite.createEquipments(1)

	suite.Require().NoError(suite.repo.ReplaceForGroup(groupA.ID, ids))
	suite.Require().NoError(suite.repo.ReplaceForGroup(groupB.ID, ids))

	members, err := suite.repo.GetByEquipmentID(ids[0])
	suite.NoError(err)
	suite.Len(members, 2)
}

// TestDeleteByEquipmentID tests detaching an equipment everywhere
func (suite *GroupMembershipRepositoryTestSuite) TestDeleteByEquipmentID() {
	groupA := suite.createGroup()
	groupB := suite.createGroup()
	ids := suite.createEquipments(2)

	suite.Require().NoError(suite.repo.ReplaceForGroup(groupA.ID, ids))
	suite.Require().NoError(suite.repo.ReplaceForGroup(groupB.ID, ids[:1]))

	suite.Require().NoError(suite.repo.DeleteByEquipmentID(ids[0]))

	members, err := suite.repo.GetByEquipmentID(ids[0])
	suite.NoError(err)
	suite.Empty(members)

	// The other equipment keeps its membership
	remaining, err := suite.repo.GetByGroupID(groupA.ID)
	suite.NoError(err)
	suite.Len(remaining, 1)
	suite.Equal(ids[1], remaining[0].EquipmentID)
}

// TestGroupMembershipRepositoryTestSuite runs the test suite
func TestGroupMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupMembershipRepositoryTestSuite))
}
