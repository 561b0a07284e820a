package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	queueport "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/port"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/task"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// timestampLayout is the wire format for message timestamps. Timestamps stay
// structured internally; this formatting happens only at the API boundary.
const timestampLayout = "2006-01-02 15:04:05"

// SendMessageController persists one text message (one controller per endpoint).
type SendMessageController struct {
	UC *usecase.SendTextMessageUseCase
	Q  queueport.Client // optional; recent-chat summaries skip silently when nil
}

func NewSendMessageController(users repository.UserRepository, messages repository.MessageRepository, q queueport.Client) *SendMessageController {
	return &SendMessageController{UC: usecase.NewSendTextMessageUseCase(users, messages), Q: q}
}

type sendMessageRequest struct {
	SenderMobile   string `json:"sender_mobile" binding:"required"`
	ReceiverMobile string `json:"receiver_mobile" binding:"required"`
	Content        string `json:"content" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendTextMessageInput{
			SenderMobile:   req.SenderMobile,
			ReceiverMobile: req.ReceiverMobile,
			Content:        req.Content,
		})
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

		if err := task.EnqueueRecentChat(ctx, h.Q, *msg); err != nil {
			log.Printf("send_message: enqueue recent-chat task: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "Message sent",
			"id":        msg.ID,
			"timestamp": msg.CreatedAt.Format(timestampLayout),
		})
	}
}
