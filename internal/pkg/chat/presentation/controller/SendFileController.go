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

// SendFileController persists one file-attachment message. file_data is base64
// text stored verbatim; big uploads mean big rows, nothing here caps them.
type SendFileController struct {
	UC *usecase.SendFileMessageUseCase
	Q  queueport.Client
}

func NewSendFileController(users repository.UserRepository, messages repository.MessageRepository, q queueport.Client) *SendFileController {
	return &SendFileController{UC: usecase.NewSendFileMessageUseCase(users, messages), Q: q}
}

type sendFileRequest struct {
	SenderMobile   string `json:"sender_mobile" binding:"required"`
	ReceiverMobile string `json:"receiver_mobile" binding:"required"`
	FileName       string `json:"file_name" binding:"required"`
	FileData       string `json:"file_data"`
}

func (h *SendFileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendFileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// File payloads can be large; allow more time than a text send.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendFileMessageInput{
			SenderMobile:   req.SenderMobile,
			ReceiverMobile: req.ReceiverMobile,
			FileName:       req.FileName,
			FileData:       req.FileData,
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
			log.Printf("send_file: enqueue recent-chat task: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "File sent",
			"id":        msg.ID,
			"timestamp": msg.CreatedAt.Format(timestampLayout),
		})
	}
}
