package handler

import (
	"net/http"
	"time"

	"github.com/contest-hub/backend/internal/utils"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TokenHandler struct {
	jwtSecret string
	jwtExpiry time.Duration
}

func NewTokenHandler(jwtSecret string, jwtExpiry time.Duration) *TokenHandler {
	return &TokenHandler{
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Issue signs whatever claims object the client sends and returns the
// token. Clients call this right after sign-in with at least {"email": …}.
// POST /jwt
func (h *TokenHandler) Issue(c *gin.Context) {
	var payload map[string]interface{}

	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Log.Warn("Token request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	token, err := utils.IssueToken(payload, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		logger.Log.Error("Token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
