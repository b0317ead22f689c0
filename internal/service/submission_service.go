package service

import (
	"errors"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrWinnerAlreadyChosen = errors.New("winner already chosen for this contest")
)

// PointsPerWin is the fixed score a winning submission is worth.
const PointsPerWin = 10

type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
}

func NewSubmissionService(submissionRepo *repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{submissionRepo: submissionRepo}
}

// Submit records a new entry against a contest. A user submitting twice to
// the same contest gets two entries; no duplicate check is made.
func (s *SubmissionService) Submit(userEmail string, contestID uuid.UUID, content string) (*models.Submission, error) {
	submission := &models.Submission{
		ID:        uuid.New(),
		UserEmail: userEmail,
		ContestID: contestID,
		Content:   content,
		IsWinner:  false,
	}

	if err := s.submissionRepo.CreateSubmission(submission); err != nil {
		logger.Log.Error("Failed to create submission",
			zap.String("user_email", userEmail),
			zap.String("contest_id", contestID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return submission, nil
}

func (s *SubmissionService) ListAll() ([]models.Submission, error) {
	return s.submissionRepo.GetAllSubmissions()
}

func (s *SubmissionService) ListByUser(email string) ([]models.Submission, error) {
	return s.submissionRepo.GetSubmissionsByUser(email)
}

// GetOne returns a user's entry to one contest, or nil on a miss.
func (s *SubmissionService) GetOne(email string, contestID uuid.UUID) (*models.Submission, error) {
	return s.submissionRepo.GetSubmission(email, contestID)
}

// MarkWinner flags one submission as its contest's winner. Fails with
// ErrSubmissionNotFound when the id is unknown and ErrWinnerAlreadyChosen
// when the contest already has a winner. The pre-check catches the common
// case; the partial unique index catches the race, surfacing as a
// duplicate-key error that maps to the same conflict.
func (s *SubmissionService) MarkWinner(id uuid.UUID) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetSubmissionByID(id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	winner, err := s.submissionRepo.GetWinner(submission.ContestID)
	if err != nil {
		return nil, err
	}
	if winner != nil {
		logger.Log.Warn("Winner already chosen",
			zap.String("contest_id", submission.ContestID.String()),
			zap.String("winner_id", winner.ID.String()),
		)
		return nil, ErrWinnerAlreadyChosen
	}

	if err := s.submissionRepo.SetWinner(id); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWinnerAlreadyChosen
		}
		logger.Log.Error("Failed to mark winner",
			zap.String("submission_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	submission.IsWinner = true

	logger.Log.Info("Winner marked",
		zap.String("submission_id", id.String()),
		zap.String("contest_id", submission.ContestID.String()),
		zap.String("user_email", submission.UserEmail),
	)

	return submission, nil
}

// PointsFor derives a user's score: winning submissions × PointsPerWin.
func (s *SubmissionService) PointsFor(email string) (int64, error) {
	wins, err := s.submissionRepo.CountWinsByUser(email)
	if err != nil {
		return 0, err
	}
	return wins * PointsPerWin, nil
}
