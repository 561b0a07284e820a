package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	queueport "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/port"
	"github.com/duvarakeshss/mini-chat/internal/infrastructure/realtime"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/task"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// ChatSocketController handles the websocket endpoint for realtime direct
// messages. Each connection claims a mobile key from the URL path; the key is
// taken verbatim, with no proof of ownership (hardening would add an
// identity-binding step before registering the handle).
type ChatSocketController struct {
	registry        *realtime.Registry
	sendTextUC      *usecase.SendTextMessageUseCase
	queue           queueport.Client
	inflightTimeout time.Duration
}

func NewChatSocketController(registry *realtime.Registry, users repository.UserRepository, messages repository.MessageRepository, q queueport.Client) *ChatSocketController {
	return &ChatSocketController{
		registry:        registry,
		sendTextUC:      usecase.NewSendTextMessageUseCase(users, messages),
		queue:           q,
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when auth is added.
		return true
	},
}

// inboundFrame is what a connected client sends: one direct message.
type inboundFrame struct {
	ReceiverMobile string `json:"receiver_mobile"`
	Content        string `json:"content"`
}

// pushFrame is delivered to the receiving peer's connection.
type pushFrame struct {
	SenderMobile string `json:"sender_mobile"`
	Content      string `json:"content"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades the HTTP connection and relays frames until the client
// disconnects: persist each inbound message, then push it to the receiver's
// live connection if one is registered. A bad frame or a persistence failure
// is reported back over the same connection; only read errors end the loop.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := c.Param("mobile")
		if mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just return.
			return
		}

		conn := realtime.NewConnection(mobile, ws)
		ctl.registry.Register(conn)
		defer func() {
			ctl.registry.Deregister(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				log.Printf("ws %s: read: %v", mobile, err)
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			ctl.relayMessage(c, conn, mobile, frame)
		}
	}
}

// relayMessage persists one inbound frame and pushes it to the receiver if a
// live connection is registered. The durable write happens regardless of the
// receiver being online.
func (ctl *ChatSocketController) relayMessage(c *gin.Context, conn *realtime.Connection, mobile string, frame inboundFrame) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	msg, err := ctl.sendTextUC.Execute(ctx, usecase.SendTextMessageInput{
		SenderMobile:   mobile,
		ReceiverMobile: frame.ReceiverMobile,
		Content:        frame.Content,
	})
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}

	if peer, ok := ctl.registry.Lookup(msg.ReceiverMobile); ok {
		payload, err := json.Marshal(pushFrame{SenderMobile: mobile, Content: msg.Content})
		if err == nil {
			if err := peer.Send(payload); err != nil {
				log.Printf("ws %s: push to %s: %v", mobile, msg.ReceiverMobile, err)
			}
		}
	}

	if err := task.EnqueueRecentChat(ctx, ctl.queue, *msg); err != nil {
		log.Printf("ws %s: enqueue recent-chat task: %v", mobile, err)
	}
}

func (ctl *ChatSocketController) handleUseCaseError(conn *realtime.Connection, err error) {
	switch {
	case userNotFound(err):
		ctl.replyError(conn, "user_not_found", "sender or receiver does not exist")
	case errors.Is(err, usecase.ErrPersistence):
		ctl.replyError(conn, "internal_error", "unexpected persistence error")
	default:
		ctl.replyError(conn, "bad_request", err.Error())
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, message string) {
	frame := errorFrame{Type: "error", Code: code, Error: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}
