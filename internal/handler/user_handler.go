package handler

import (
	"errors"
	"net/http"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// Create records a user on first sign-in. Posting a known email returns
// the existing record with 200.
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, created, err := h.userService.CreateUser(req.Email, req.Name, req.PhotoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// List returns all users.
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch users",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// SetRole assigns the role named in the route. An unknown user id matches
// zero records; the response reports the matched count either way.
// PATCH /users/admin/:id, /users/creator/:id, /users/user/:id
func (h *UserHandler) SetRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid user id",
			})
			return
		}

		matched, err := h.userService.SetRole(id, role)
		if err != nil {
			if errors.Is(err, service.ErrInvalidRole) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid role",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to set role",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"matchedCount": matched,
		})
	}
}
