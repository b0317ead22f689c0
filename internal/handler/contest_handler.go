package handler

import (
	"net/http"
	"time"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContestHandler struct {
	contestService *service.ContestService
}

func NewContestHandler(contestService *service.ContestService) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

type ContestRequest struct {
	Name             string    `json:"contestName" binding:"required"`
	Image            string    `json:"image"`
	Description      string    `json:"description"`
	Price            float64   `json:"contestPrice"`
	PrizeMoney       float64   `json:"prizeMoney"`
	TaskInstructions string    `json:"taskInstructions"`
	Tags             []string  `json:"tags"`
	Deadline         time.Time `json:"deadline"`
}

func (r *ContestRequest) toModel() *models.Contest {
	return &models.Contest{
		Name:             r.Name,
		Image:            r.Image,
		Description:      r.Description,
		Price:            r.Price,
		PrizeMoney:       r.PrizeMoney,
		TaskInstructions: r.TaskInstructions,
		Tags:             r.Tags,
		Deadline:         r.Deadline,
	}
}

// Create stores a new pending contest owned by the caller. A taken name is
// de-duplicated with -1, -2, … suffixes.
// POST /contests
func (h *ContestHandler) Create(c *gin.Context) {
	var req ContestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Contest request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	creatorEmail := c.GetString("user_email")

	contest, err := h.contestService.CreateContest(req.toModel(), creatorEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create contest",
		})
		return
	}

	c.JSON(http.StatusCreated, contest)
}

// ListApproved returns all approved contests.
// GET /contests
func (h *ContestHandler) ListApproved(c *gin.Context) {
	contests, err := h.contestService.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch contests",
		})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// ListByCreator returns the caller's own contests, any status.
// GET /my-contests/:email
func (h *ContestHandler) ListByCreator(c *gin.Context) {
	contests, err := h.contestService.ListByCreator(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch contests",
		})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// ListPendingOrRejected returns the moderation queue.
// GET /pending-rejected-contests
func (h *ContestHandler) ListPendingOrRejected(c *gin.Context) {
	contests, err := h.contestService.ListPendingOrRejected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch contests",
		})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetByName is a point lookup. A miss responds with JSON null, not an
// error status.
// GET /contests/:contestName
func (h *ContestHandler) GetByName(c *gin.Context) {
	contest, err := h.contestService.GetByName(c.Param("contestName"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch contest",
		})
		return
	}

	c.JSON(http.StatusOK, contest)
}

// GetByID is a point lookup by id; a miss responds with JSON null.
// GET /contest/:id
func (h *ContestHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	contest, err := h.contestService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch contest",
		})
		return
	}

	c.JSON(http.StatusOK, contest)
}

// Update replaces the mutable fields of a contest, creating it under the
// given id when absent.
// PUT /contests/:id
func (h *ContestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	var req ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	contest, created, err := h.contestService.UpdateContest(id, req.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update contest",
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, contest)
}

// Delete removes a contest and reports how many records were removed.
// DELETE /contests/:id
func (h *ContestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	deleted, err := h.contestService.DeleteContest(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete contest",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deletedCount": deleted,
	})
}

// Approve moves a contest to approved. Repeating the call is a no-op that
// still succeeds.
// PATCH /approve-contests/:id
func (h *ContestHandler) Approve(c *gin.Context) {
	h.setStatus(c, h.contestService.Approve, "approved")
}

// Reject moves a contest to rejected, idempotently.
// PATCH /rejected-contests/:id
func (h *ContestHandler) Reject(c *gin.Context) {
	h.setStatus(c, h.contestService.Reject, "rejected")
}

func (h *ContestHandler) setStatus(c *gin.Context, apply func(uuid.UUID) error, status string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contest id",
		})
		return
	}

	if err := apply(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update contest status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contest " + status,
	})
}
