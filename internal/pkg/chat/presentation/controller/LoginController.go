package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// LoginController resolves an existing user by mobile. Unknown mobiles fail
// with 404, unlike the profile endpoint which synthesizes defaults.
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(users repository.UserRepository) *LoginController {
	return &LoginController{UC: usecase.NewLoginUseCase(users)}
}

type loginRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.LoginInput{Mobile: req.Mobile})
		if err != nil {
			switch {
			case userNotFound(err):
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected persistence error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mobile":   u.Mobile,
			"username": u.Username,
			"about":    u.About,
		})
	}
}
