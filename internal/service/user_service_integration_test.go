package service_test

import (
	"testing"

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

type UserServiceIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	userService *service.UserService
}

func (s *UserServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.userService = service.NewUserService(repository.NewUserRepository(s.testDB.DB))
}

func (s *UserServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *UserServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserDefaultsToUserRole() {
	user, created, err := s.userService.CreateUser("new@example.com", "New User", "")
	require.NoError(s.T(), err)

	assert.True(s.T(), created)
	assert.Equal(s.T(), models.RoleUser, user.Role)
}

// Posting a known email is a no-op returning the existing record.
func (s *UserServiceIntegrationTestSuite) TestCreateUserIdempotentOnEmail() {
	first, created, err := s.userService.CreateUser("repeat@example.com", "First", "")
	require.NoError(s.T(), err)
	assert.True(s.T(), created)

	second, created, err := s.userService.CreateUser("repeat@example.com", "Second", "")
	require.NoError(s.T(), err)
	assert.False(s.T(), created)
	assert.Equal(s.T(), first.ID, second.ID)
	assert.Equal(s.T(), "First", second.Name, "existing record wins")
}

// Setting the same role twice yields the same state and no error.
func (s *UserServiceIntegrationTestSuite) TestSetRoleIdempotent() {
	user := testutil.CreateTestUser("promote@example.com", "Promotee", models.RoleUser)
	require.NoError(s.T(), s.testDB.DB.Create(user).Error)

	matched, err := s.userService.SetRole(user.ID, models.RoleCreator)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), matched)

	matched, err = s.userService.SetRole(user.ID, models.RoleCreator)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), matched)

	got, err := s.userService.GetByEmail("promote@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.RoleCreator, got.Role)
}

// An unknown id matches zero rows without erroring.
func (s *UserServiceIntegrationTestSuite) TestSetRoleUnknownID() {
	matched, err := s.userService.SetRole(uuid.New(), models.RoleAdmin)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), matched)
}

func (s *UserServiceIntegrationTestSuite) TestSetRoleRejectsUnknownRole() {
	user := testutil.CreateTestUser("someone@example.com", "Someone", models.RoleUser)
	require.NoError(s.T(), s.testDB.DB.Create(user).Error)

	_, err := s.userService.SetRole(user.ID, models.Role("owner"))
	assert.ErrorIs(s.T(), err, service.ErrInvalidRole)
}

func (s *UserServiceIntegrationTestSuite) TestListUsers() {
	require.NoError(s.T(), s.testDB.DB.Create(testutil.CreateTestUser("a@example.com", "A", models.RoleUser)).Error)
	require.NoError(s.T(), s.testDB.DB.Create(testutil.CreateTestUser("b@example.com", "B", models.RoleCreator)).Error)

	users, err := s.userService.ListUsers()
	require.NoError(s.T(), err)
	assert.Len(s.T(), users, 2)
}

func TestUserServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceIntegrationTestSuite))
}
