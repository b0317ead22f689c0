package handler

import (
	"errors"
	"net/http"

	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

type SubmitRequest struct {
	UserEmail string `json:"userEmail" binding:"required"`
	ContestID string `json:"contestId" binding:"required"`
	Content   string `json:"submittedTask"`
}

// Submit records an entry against a contest. Submitting twice to the same
// contest creates two entries.
// POST /submission
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req SubmitRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Submission request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	contestID, err := uuid.Parse(req.ContestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	submission, err := h.submissionService.Submit(req.UserEmail, contestID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create submission",
		})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListAll returns every submission.
// GET /submission
func (h *SubmissionHandler) ListAll(c *gin.Context) {
	submissions, err := h.submissionService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch submissions",
		})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ListByUser returns one user's submissions.
// GET /submission/:userEmail
func (h *SubmissionHandler) ListByUser(c *gin.Context) {
	submissions, err := h.submissionService.ListByUser(c.Param("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch submissions",
		})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetOne returns a user's entry to one contest; a miss responds with JSON
// null.
// GET /submission/:userEmail/:contestId
func (h *SubmissionHandler) GetOne(c *gin.Context) {
	contestID, err := uuid.Parse(c.Param("contestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	submission, err := h.submissionService.GetOne(c.Param("userEmail"), contestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch submission",
		})
		return
	}

	c.JSON(http.StatusOK, submission)
}

// MarkWinner declares a submission its contest's winner. A contest that
// already has a winner answers 409.
// PATCH /make-winner/:submissionId
func (h *SubmissionHandler) MarkWinner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("submissionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid submission id",
		})
		return
	}

	submission, err := h.submissionService.MarkWinner(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Submission not found",
			})
		case errors.Is(err, service.ErrWinnerAlreadyChosen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Winner already chosen for this contest",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to mark winner",
			})
		}
		return
	}

	c.JSON(http.StatusOK, submission)
}

// Points returns the caller's derived score.
// GET /user-points/:userEmail
func (h *SubmissionHandler) Points(c *gin.Context) {
	points, err := h.submissionService.PointsFor(c.Param("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute points",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": points,
	})
}
