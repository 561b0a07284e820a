package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// GetUserController serves profile lookups. It never 404s: unknown mobiles get
// a synthesized profile (username = mobile, empty about), which clients rely on
// when auto-adding contacts from message history.
type GetUserController struct {
	UC *usecase.GetUserUseCase
}

func NewGetUserController(users repository.UserRepository, cache cacheport.Cache) *GetUserController {
	return &GetUserController{UC: usecase.NewGetUserUseCase(users, cache)}
}

func (h *GetUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := c.Param("mobile")
		if mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.GetUserInput{Mobile: mobile})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mobile":   u.Mobile,
			"username": u.Username,
			"about":    u.About,
		})
	}
}
