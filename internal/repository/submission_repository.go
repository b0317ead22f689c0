package repository

import (
	"errors"

	"github.com/contest-hub/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateSubmission(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *SubmissionRepository) GetSubmissionByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Where("id = ?", id).First(&submission).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

func (r *SubmissionRepository) GetAllSubmissions() ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) GetSubmissionsByUser(email string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("user_email = ?", email).Find(&submissions).Error
	return submissions, err
}

// GetSubmission returns the single entry a user made to a contest, or nil.
// When duplicates exist the earliest row wins.
func (r *SubmissionRepository) GetSubmission(email string, contestID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Where("user_email = ? AND contest_id = ?", email, contestID).
		Order("created_at ASC").First(&submission).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

// GetWinner returns the winning submission for a contest, or nil.
func (r *SubmissionRepository) GetWinner(contestID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Where("contest_id = ? AND is_winner = ?", contestID, true).
		First(&submission).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

// SetWinner flips is_winner on one submission. The partial unique index on
// contest_id makes a second winner for the same contest a duplicate-key
// error.
func (r *SubmissionRepository) SetWinner(id uuid.UUID) error {
	return r.db.Model(&models.Submission{}).Where("id = ?", id).
		Update("is_winner", true).Error
}

// CountWinsByUser counts a user's winning submissions.
func (r *SubmissionRepository) CountWinsByUser(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).
		Where("user_email = ? AND is_winner = ?", email, true).
		Count(&count).Error
	return count, err
}
