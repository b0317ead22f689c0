package service

import (
	"errors"
	"fmt"

	"github.com/contest-hub/backend/internal/cache"
	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContestService struct {
	contestRepo *repository.ContestRepository
	cache       cache.ContestCache
}

// NewContestService builds the contest service. cache may be nil, in which
// case every listing goes straight to the store.
func NewContestService(contestRepo *repository.ContestRepository, contestCache cache.ContestCache) *ContestService {
	return &ContestService{
		contestRepo: contestRepo,
		cache:       contestCache,
	}
}

// CreateContest stores a new contest owned by creatorEmail with status
// pending. When the requested name is taken, -1, -2, … are appended until
// a free name is found. Existence is re-checked before every insert, and a
// duplicate-key error from the name's unique index counts as "taken", so
// two concurrent creations with the same base name cannot both win it.
func (s *ContestService) CreateContest(contest *models.Contest, creatorEmail string) (*models.Contest, error) {
	base := contest.Name
	name := base

	for counter := 1; ; counter++ {
		existing, err := s.contestRepo.GetContestByName(name)
		if err != nil {
			logger.Log.Error("Failed to check contest name",
				zap.String("name", name),
				zap.Error(err),
			)
			return nil, err
		}

		if existing == nil {
			contest.ID = uuid.New()
			contest.Name = name
			contest.CreatorEmail = creatorEmail
			contest.Status = models.ContestPending
			contest.ParticipantCount = 0

			err = s.contestRepo.CreateContest(contest)
			if err == nil {
				break
			}
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.Log.Error("Failed to create contest",
					zap.String("name", name),
					zap.Error(err),
				)
				return nil, err
			}
			// Lost the name to a concurrent insert; try the next suffix.
		}

		name = fmt.Sprintf("%s-%d", base, counter)
	}

	s.invalidateCache()

	logger.Log.Info("Contest created",
		zap.String("contest_id", contest.ID.String()),
		zap.String("name", contest.Name),
		zap.String("creator", creatorEmail),
	)

	return contest, nil
}

// ListApproved returns all approved contests, served from the cache when
// it is warm.
func (s *ContestService) ListApproved() ([]models.Contest, error) {
	if s.cache != nil {
		contests, ok, err := s.cache.GetApproved()
		if err != nil {
			logger.Log.Warn("Contest cache read failed", zap.Error(err))
		} else if ok {
			return contests, nil
		}
	}

	contests, err := s.contestRepo.GetContestsByStatus(models.ContestApproved)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetApproved(contests); err != nil {
			logger.Log.Warn("Contest cache write failed", zap.Error(err))
		}
	}

	return contests, nil
}

// ListByCreator returns every contest owned by the email, any status.
func (s *ContestService) ListByCreator(email string) ([]models.Contest, error) {
	return s.contestRepo.GetContestsByCreator(email)
}

// ListPendingOrRejected returns the moderation queue.
func (s *ContestService) ListPendingOrRejected() ([]models.Contest, error) {
	return s.contestRepo.GetContestsByStatus(models.ContestPending, models.ContestRejected)
}

// GetByName returns the contest with that exact name, or nil on a miss.
func (s *ContestService) GetByName(name string) (*models.Contest, error) {
	return s.contestRepo.GetContestByName(name)
}

// GetByID returns the contest, or nil on a miss.
func (s *ContestService) GetByID(id uuid.UUID) (*models.Contest, error) {
	return s.contestRepo.GetContestByID(id)
}

// UpdateContest replaces the mutable field set of a contest. When the id
// does not exist yet, the contest is created under that id instead, so
// update doubles as an idempotent create.
func (s *ContestService) UpdateContest(id uuid.UUID, contest *models.Contest) (*models.Contest, bool, error) {
	matched, err := s.contestRepo.UpdateContestFields(id, contest)
	if err != nil {
		logger.Log.Error("Failed to update contest",
			zap.String("contest_id", id.String()),
			zap.Error(err),
		)
		return nil, false, err
	}

	created := false
	if matched == 0 {
		contest.ID = id
		contest.Status = models.ContestPending
		if err := s.contestRepo.CreateContest(contest); err != nil {
			return nil, false, err
		}
		created = true
	}

	s.invalidateCache()

	updated, err := s.contestRepo.GetContestByID(id)
	if err != nil {
		return nil, created, err
	}

	return updated, created, nil
}

// DeleteContest removes a contest, returning how many records went away
// (0 or 1).
func (s *ContestService) DeleteContest(id uuid.UUID) (int64, error) {
	deleted, err := s.contestRepo.DeleteContest(id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.invalidateCache()
		logger.Log.Info("Contest deleted",
			zap.String("contest_id", id.String()),
		)
	}

	return deleted, nil
}

// Approve sets a contest's status to approved. Re-approving is a no-op
// that still reports success.
func (s *ContestService) Approve(id uuid.UUID) error {
	return s.setStatus(id, models.ContestApproved)
}

// Reject sets a contest's status to rejected, idempotently.
func (s *ContestService) Reject(id uuid.UUID) error {
	return s.setStatus(id, models.ContestRejected)
}

func (s *ContestService) setStatus(id uuid.UUID, status models.ContestStatus) error {
	matched, err := s.contestRepo.SetStatus(id, status)
	if err != nil {
		logger.Log.Error("Failed to set contest status",
			zap.String("contest_id", id.String()),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	s.invalidateCache()

	logger.Log.Info("Contest status set",
		zap.String("contest_id", id.String()),
		zap.String("status", string(status)),
		zap.Int64("matched", matched),
	)

	return nil
}

func (s *ContestService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(); err != nil {
		logger.Log.Warn("Contest cache invalidation failed", zap.Error(err))
	}
}
