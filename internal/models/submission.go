package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is an entry by a user against one contest. A user may submit
// to the same contest more than once; duplicates are allowed on purpose.
//
// The partial unique index on contest_id (rows where is_winner is true)
// is what makes "at most one winner per contest" hold even when two
// mark-winner calls race: the second update fails with a duplicate-key
// error and is reported as a conflict.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail string    `gorm:"type:varchar(100);index;not null" json:"userEmail"`
	ContestID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_contest_winner,where:is_winner" json:"contestId"`
	Content   string    `gorm:"type:text" json:"submittedTask"`
	IsWinner  bool      `gorm:"not null;default:false" json:"isWinner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
