package testutil

import (
	"time"

	"github.com/contest-hub/backend/internal/models"
	"github.com/google/uuid"
)

// CreateTestUser builds a user record with the given role.
func CreateTestUser(email, name string, role models.Role) *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: email,
		Name:  name,
		Role:  role,
	}
}

// CreateTestContest builds a contest owned by creatorEmail with the given
// status and a deadline one month out.
func CreateTestContest(name, creatorEmail string, status models.ContestStatus) *models.Contest {
	return &models.Contest{
		ID:               uuid.New(),
		Name:             name,
		Description:      "A test contest",
		Price:            5,
		PrizeMoney:       100,
		TaskInstructions: "Submit a link to your work.",
		Tags:             []string{"test"},
		Deadline:         time.Now().AddDate(0, 1, 0),
		CreatorEmail:     creatorEmail,
		Status:           status,
	}
}

// CreateTestSubmission builds a submission for a contest.
func CreateTestSubmission(userEmail string, contestID uuid.UUID, isWinner bool) *models.Submission {
	return &models.Submission{
		ID:        uuid.New(),
		UserEmail: userEmail,
		ContestID: contestID,
		Content:   "https://example.com/my-entry",
		IsWinner:  isWinner,
	}
}
