package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/contest-hub/backend/internal/cache"
	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/internal/testutil"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ContestServiceIntegrationTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	testRedis      *testutil.TestRedis
	contestCache   *cache.RedisContestCache
	contestRepo    *repository.ContestRepository
	contestService *service.ContestService
}

func (s *ContestServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.testRedis = testutil.SetupTestRedis(s.T())

	contestCache, err := cache.NewRedisContestCache(s.testRedis.URL, time.Minute)
	require.NoError(s.T(), err)
	s.contestCache = contestCache

	s.contestRepo = repository.NewContestRepository(s.testDB.DB)
	s.contestService = service.NewContestService(s.contestRepo, s.contestCache)
}

func (s *ContestServiceIntegrationTestSuite) TearDownSuite() {
	s.contestCache.Close()
	s.testRedis.Teardown(s.T())
	s.testDB.Teardown(s.T())
}

func (s *ContestServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.testRedis.Server.FlushAll()
}

func (s *ContestServiceIntegrationTestSuite) newContestInput(name string) *models.Contest {
	return &models.Contest{
		Name:             name,
		Description:      "desc",
		Price:            5,
		PrizeMoney:       100,
		TaskInstructions: "do the thing",
		Tags:             []string{"art"},
		Deadline:         time.Now().AddDate(0, 1, 0),
	}
}

// Creating the same base name twice stores "Art-Jam" then "Art-Jam-1".
func (s *ContestServiceIntegrationTestSuite) TestCreateDeduplicatesName() {
	first, err := s.contestService.CreateContest(s.newContestInput("Art-Jam"), "a@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Art-Jam", first.Name)

	second, err := s.contestService.CreateContest(s.newContestInput("Art-Jam"), "b@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Art-Jam-1", second.Name)

	third, err := s.contestService.CreateContest(s.newContestInput("Art-Jam"), "c@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Art-Jam-2", third.Name)
}

// A long sequential run yields pairwise-distinct names following the
// base, base-1, base-2, … pattern.
func (s *ContestServiceIntegrationTestSuite) TestCreateNameSequence() {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		contest, err := s.contestService.CreateContest(s.newContestInput("Hack-Night"), "a@example.com")
		require.NoError(s.T(), err)
		assert.False(s.T(), seen[contest.Name], "name %q repeated", contest.Name)
		seen[contest.Name] = true

		if i == 0 {
			assert.Equal(s.T(), "Hack-Night", contest.Name)
		} else {
			assert.Equal(s.T(), fmt.Sprintf("Hack-Night-%d", i), contest.Name)
		}
	}
}

func (s *ContestServiceIntegrationTestSuite) TestCreateSetsPendingAndOwner() {
	contest, err := s.contestService.CreateContest(s.newContestInput("Photo-Battle"), "owner@example.com")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), models.ContestPending, contest.Status)
	assert.Equal(s.T(), "owner@example.com", contest.CreatorEmail)
	assert.NotEqual(s.T(), uuid.Nil, contest.ID)
}

// Approved and pending/rejected listings partition the full contest set.
func (s *ContestServiceIntegrationTestSuite) TestModerationPartition() {
	fixtures := []*models.Contest{
		testutil.CreateTestContest("c1", "a@example.com", models.ContestApproved),
		testutil.CreateTestContest("c2", "a@example.com", models.ContestPending),
		testutil.CreateTestContest("c3", "b@example.com", models.ContestRejected),
		testutil.CreateTestContest("c4", "b@example.com", models.ContestApproved),
	}
	for _, f := range fixtures {
		require.NoError(s.T(), s.testDB.DB.Create(f).Error)
	}

	approved, err := s.contestService.ListApproved()
	require.NoError(s.T(), err)
	queue, err := s.contestService.ListPendingOrRejected()
	require.NoError(s.T(), err)

	assert.Len(s.T(), approved, 2)
	assert.Len(s.T(), queue, 2)

	ids := map[uuid.UUID]bool{}
	for _, c := range approved {
		assert.Equal(s.T(), models.ContestApproved, c.Status)
		ids[c.ID] = true
	}
	for _, c := range queue {
		assert.NotEqual(s.T(), models.ContestApproved, c.Status)
		assert.False(s.T(), ids[c.ID], "contest %s in both listings", c.ID)
		ids[c.ID] = true
	}
	assert.Len(s.T(), ids, 4, "listings should cover every contest")
}

func (s *ContestServiceIntegrationTestSuite) TestListByCreator() {
	require.NoError(s.T(), s.testDB.DB.Create(testutil.CreateTestContest("mine-1", "me@example.com", models.ContestPending)).Error)
	require.NoError(s.T(), s.testDB.DB.Create(testutil.CreateTestContest("mine-2", "me@example.com", models.ContestApproved)).Error)
	require.NoError(s.T(), s.testDB.DB.Create(testutil.CreateTestContest("other", "you@example.com", models.ContestApproved)).Error)

	mine, err := s.contestService.ListByCreator("me@example.com")
	require.NoError(s.T(), err)
	assert.Len(s.T(), mine, 2)
}

func (s *ContestServiceIntegrationTestSuite) TestApproveIsIdempotent() {
	contest := testutil.CreateTestContest("to-approve", "a@example.com", models.ContestPending)
	require.NoError(s.T(), s.testDB.DB.Create(contest).Error)

	require.NoError(s.T(), s.contestService.Approve(contest.ID))
	require.NoError(s.T(), s.contestService.Approve(contest.ID))

	got, err := s.contestService.GetByID(contest.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), models.ContestApproved, got.Status)
}

func (s *ContestServiceIntegrationTestSuite) TestRejectIsIdempotent() {
	contest := testutil.CreateTestContest("to-reject", "a@example.com", models.ContestPending)
	require.NoError(s.T(), s.testDB.DB.Create(contest).Error)

	require.NoError(s.T(), s.contestService.Reject(contest.ID))
	require.NoError(s.T(), s.contestService.Reject(contest.ID))

	got, err := s.contestService.GetByID(contest.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), models.ContestRejected, got.Status)
}

// A lookup miss returns nil, not an error.
func (s *ContestServiceIntegrationTestSuite) TestLookupMissReturnsNil() {
	byID, err := s.contestService.GetByID(uuid.New())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), byID)

	byName, err := s.contestService.GetByName("does-not-exist")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), byName)
}

func (s *ContestServiceIntegrationTestSuite) TestUpdateReplacesFields() {
	contest := testutil.CreateTestContest("before", "a@example.com", models.ContestApproved)
	require.NoError(s.T(), s.testDB.DB.Create(contest).Error)

	input := s.newContestInput("after")
	input.Price = 9
	input.Description = "new description"

	updated, created, err := s.contestService.UpdateContest(contest.ID, input)
	require.NoError(s.T(), err)
	assert.False(s.T(), created)
	assert.Equal(s.T(), "after", updated.Name)
	assert.Equal(s.T(), float64(9), updated.Price)
	assert.Equal(s.T(), "new description", updated.Description)
	// Status is not part of the mutable set.
	assert.Equal(s.T(), models.ContestApproved, updated.Status)
}

// Updating an unknown id creates the record under that id.
func (s *ContestServiceIntegrationTestSuite) TestUpdateUpsertsWhenAbsent() {
	id := uuid.New()

	updated, created, err := s.contestService.UpdateContest(id, s.newContestInput("fresh"))
	require.NoError(s.T(), err)
	assert.True(s.T(), created)
	require.NotNil(s.T(), updated)
	assert.Equal(s.T(), id, updated.ID)
	assert.Equal(s.T(), models.ContestPending, updated.Status)
}

func (s *ContestServiceIntegrationTestSuite) TestDeleteReportsCount() {
	contest := testutil.CreateTestContest("to-delete", "a@example.com", models.ContestPending)
	require.NoError(s.T(), s.testDB.DB.Create(contest).Error)

	deleted, err := s.contestService.DeleteContest(contest.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), deleted)

	deleted, err = s.contestService.DeleteContest(contest.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), deleted)
}

// ListApproved serves the cached listing until a mutation invalidates it.
func (s *ContestServiceIntegrationTestSuite) TestListApprovedCaching() {
	first := testutil.CreateTestContest("cached-1", "a@example.com", models.ContestApproved)
	require.NoError(s.T(), s.testDB.DB.Create(first).Error)

	approved, err := s.contestService.ListApproved()
	require.NoError(s.T(), err)
	require.Len(s.T(), approved, 1)

	// Insert behind the service's back; the warm cache hides it.
	pending := testutil.CreateTestContest("cached-2", "a@example.com", models.ContestPending)
	require.NoError(s.T(), s.testDB.DB.Create(pending).Error)
	require.NoError(s.T(), s.testDB.DB.Model(pending).Update("status", models.ContestApproved).Error)

	approved, err = s.contestService.ListApproved()
	require.NoError(s.T(), err)
	assert.Len(s.T(), approved, 1, "warm cache should serve the stale listing")

	// A status change through the service invalidates the cache.
	require.NoError(s.T(), s.contestService.Approve(pending.ID))

	approved, err = s.contestService.ListApproved()
	require.NoError(s.T(), err)
	assert.Len(s.T(), approved, 2)
}

func TestContestServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ContestServiceIntegrationTestSuite))
}
