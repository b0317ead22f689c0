package cache

import "github.com/contest-hub/backend/internal/models"

// ContestCache holds the approved-contest listing so the public
// GET /contests route doesn't hit the database on every request.
// A cache miss is not an error; callers fall back to the store.
type ContestCache interface {
	SetApproved(contests []models.Contest) error
	GetApproved() ([]models.Contest, bool, error)
	Invalidate() error

	Close() error
}
