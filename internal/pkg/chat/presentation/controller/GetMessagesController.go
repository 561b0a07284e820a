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

// GetMessagesController returns a user's full history, sent and received,
// oldest first.
type GetMessagesController struct {
	UC *usecase.GetMessagesUseCase
}

func NewGetMessagesController(messages repository.MessageRepository) *GetMessagesController {
	return &GetMessagesController{UC: usecase.NewGetMessagesUseCase(messages)}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := c.Param("mobile")
		if mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{Mobile: mobile})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// Bare array response; existing clients index into it directly.
		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, gin.H{
				"id":              m.ID,
				"sender_mobile":   m.SenderMobile,
				"receiver_mobile": m.ReceiverMobile,
				"content":         m.Content,
				"file_name":       m.FileName,
				"file_data":       m.FileData,
				"is_file":         m.IsFile,
				"timestamp":       formatTimestamp(m),
			})
		}

		c.JSON(http.StatusOK, out)
	}
}

func formatTimestamp(m chat.Message) string {
	if m.CreatedAt.IsZero() {
		return ""
	}
	return m.CreatedAt.Format(timestampLayout)
}
