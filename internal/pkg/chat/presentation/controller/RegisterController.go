package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// RegisterController handles user registration (one controller per endpoint).
// Registration is an upsert: hitting it again with the same mobile updates the
// stored username/about.
type RegisterController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterController(users repository.UserRepository) *RegisterController {
	return &RegisterController{UC: usecase.NewRegisterUserUseCase(users)}
}

type registerRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Username string `json:"username"`
	About    string `json:"about"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.RegisterUserInput{
			Mobile:   req.Mobile,
			Username: req.Username,
			About:    req.About,
		})
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

// userNotFound reports whether err maps to a 404 on REST endpoints.
func userNotFound(err error) bool {
	return errors.Is(err, chat.ErrUserNotFound)
}
