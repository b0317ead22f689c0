package repository

import (
	"errors"

	"github.com/contest-hub/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContestRepository struct {
	db *gorm.DB
}

func NewContestRepository(db *gorm.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) CreateContest(contest *models.Contest) error {
	return r.db.Create(contest).Error
}

func (r *ContestRepository) GetContestByID(id uuid.UUID) (*models.Contest, error) {
	var contest models.Contest
	err := r.db.Where("id = ?", id).First(&contest).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &contest, nil
}

func (r *ContestRepository) GetContestByName(name string) (*models.Contest, error) {
	var contest models.Contest
	err := r.db.Where("name = ?", name).First(&contest).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &contest, nil
}

// GetContestsByStatus returns contests in any of the given statuses, in
// storage order. Callers must not depend on the ordering.
func (r *ContestRepository) GetContestsByStatus(statuses ...models.ContestStatus) ([]models.Contest, error) {
	var contests []models.Contest
	err := r.db.Where("status IN ?", statuses).Find(&contests).Error
	return contests, err
}

func (r *ContestRepository) GetContestsByCreator(email string) ([]models.Contest, error) {
	var contests []models.Contest
	err := r.db.Where("creator_email = ?", email).Find(&contests).Error
	return contests, err
}

// UpdateContestFields replaces the full mutable field set on an existing
// row. Zero values overwrite too; this is a full replace, not a patch.
func (r *ContestRepository) UpdateContestFields(id uuid.UUID, contest *models.Contest) (int64, error) {
	res := r.db.Model(&models.Contest{}).Where("id = ?", id).
		Select("Name", "Image", "Description", "Price", "PrizeMoney",
			"TaskInstructions", "Tags", "Deadline").
		Updates(contest)
	return res.RowsAffected, res.Error
}

// SetStatus sets the moderation status unconditionally; repeating the same
// transition is a no-op at the row level.
func (r *ContestRepository) SetStatus(id uuid.UUID, status models.ContestStatus) (int64, error) {
	res := r.db.Model(&models.Contest{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

// IncrementParticipants bumps the participation counter atomically.
func (r *ContestRepository) IncrementParticipants(id uuid.UUID) error {
	return r.db.Model(&models.Contest{}).Where("id = ?", id).
		UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1)).Error
}

// DeleteContest removes a contest and returns how many rows went away.
func (r *ContestRepository) DeleteContest(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Contest{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
