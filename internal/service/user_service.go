package service

import (
	"errors"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidRole = errors.New("invalid role")

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser records a user on first sign-in. Posting an email that is
// already known is a no-op returning the existing record, so the client
// can fire this on every sign-in.
func (s *UserService) CreateUser(email, name, photoURL string) (*models.User, bool, error) {
	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check user existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, false, err
	}

	logger.Log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
	)

	return user, true, nil
}

func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.userRepo.GetAllUsers()
}

// GetByEmail returns the user, or nil on a miss.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.userRepo.GetUserByEmail(email)
}

// SetRole assigns one of the three known roles. Setting a role on an
// unknown id matches zero rows and reports success with matched == 0.
// Re-setting the same role is idempotent.
func (s *UserService) SetRole(id uuid.UUID, role models.Role) (int64, error) {
	if !models.ValidRole(role) {
		return 0, ErrInvalidRole
	}

	matched, err := s.userRepo.SetRole(id, role)
	if err != nil {
		logger.Log.Error("Failed to set user role",
			zap.String("user_id", id.String()),
			zap.String("role", string(role)),
			zap.Error(err),
		)
		return 0, err
	}

	logger.Log.Info("User role set",
		zap.String("user_id", id.String()),
		zap.String("role", string(role)),
		zap.Int64("matched", matched),
	)

	return matched, nil
}
