package router

import (
	"github.com/gin-gonic/gin"

	httpHandler "github.com/duvarakeshss/mini-chat/internal/pkg/chat/presentation/http"
)

// RegisterRoutes mounts the chat API at the engine root. Clients address the
// endpoints directly (/register, /login, /ws/:mobile, ...), so there is no
// version prefix on this surface.
func RegisterRoutes(r *gin.Engine, deps httpHandler.Deps) {
	httpHandler.RegisterRoutes(r, deps)
}
