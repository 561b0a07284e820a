package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	queueport "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/port"
	"github.com/duvarakeshss/mini-chat/internal/infrastructure/realtime"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/presentation/controller"
	repoAdapter "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/adapter"
)

// Deps bundles the shared infrastructure handed down from main. Cache and
// Queue may be nil; the endpoints that use them degrade gracefully.
type Deps struct {
	Pool     *pgxpool.Pool
	Cache    cacheport.Cache
	Queue    queueport.Client
	Registry *realtime.Registry
}

// RegisterRoutes registers every chat endpoint on the engine. It constructs
// per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	users := repoAdapter.NewPgUserRepository(deps.Pool)
	messages := repoAdapter.NewPgMessageRepository(deps.Pool)

	r.POST("/register", controller.NewRegisterController(users).Handle())
	r.POST("/login", controller.NewLoginController(users).Handle())
	r.GET("/user/:mobile", controller.NewGetUserController(users, deps.Cache).Handle())
	r.POST("/send_message", controller.NewSendMessageController(users, messages, deps.Queue).Handle())
	r.POST("/send_file", controller.NewSendFileController(users, messages, deps.Queue).Handle())
	r.GET("/messages/:mobile", controller.NewGetMessagesController(messages).Handle())
	r.GET("/chats/:mobile", controller.NewRecentChatsController(deps.Cache).Handle())
	r.GET("/ws/:mobile", controller.NewChatSocketController(deps.Registry, users, messages, deps.Queue).Handle())
}
