package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
)

// RecentChatsController serves cached conversation summaries: one entry per
// peer with the last exchanged message, most recent first.
type RecentChatsController struct {
	UC *usecase.RecentChatsUseCase
}

func NewRecentChatsController(cache cacheport.Cache) *RecentChatsController {
	return &RecentChatsController{UC: usecase.NewRecentChatsUseCase(cache)}
}

func (h *RecentChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := c.Param("mobile")
		if mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		chats, err := h.UC.Execute(ctx, usecase.RecentChatsInput{Mobile: mobile})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(chats))
		for _, rc := range chats {
			out = append(out, gin.H{
				"peer_mobile": rc.PeerMobile,
				"content":     rc.Content,
				"is_file":     rc.IsFile,
				"timestamp":   rc.At.Format(timestampLayout),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"chats": out,
			"count": len(out),
		})
	}
}
