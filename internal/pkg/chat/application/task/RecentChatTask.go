package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	qport "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/port"
	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

// RecentChatTaskType is the queue task name for refreshing recent-conversation
// summaries after a message is persisted.
const RecentChatTaskType = "chat:update_recent"

// recentChatsTTL keeps summaries around long enough to survive quiet periods;
// they are rebuilt organically as new messages flow.
const recentChatsTTL = 7 * 24 * time.Hour

// RecentChatTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type RecentChatTaskPayload struct {
	SenderMobile   string    `json:"senderMobile"`
	ReceiverMobile string    `json:"receiverMobile"`
	Content        string    `json:"content"`
	IsFile         bool      `json:"isFile"`
	CreatedAt      time.Time `json:"createdAt"`
}

// EnqueueRecentChat schedules a summary refresh for a persisted message.
// Best effort: callers log and move on if the enqueue fails.
func EnqueueRecentChat(ctx context.Context, q qport.Client, m chat.Message) error {
	if q == nil {
		return nil
	}
	p := RecentChatTaskPayload{
		SenderMobile:   m.SenderMobile,
		ReceiverMobile: m.ReceiverMobile,
		Content:        m.Content,
		IsFile:         m.IsFile,
		CreatedAt:      m.CreatedAt,
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = q.Enqueue(ctx, qport.Task{Type: RecentChatTaskType, Payload: b},
		qport.EnqueueOption{Queue: "chat", MaxRetry: 5})
	return err
}

// RegisterRecentChatTask binds the task handler to the provided server. The
// handler updates both parties' cached peer summaries; it is idempotent since
// a replay just rewrites the same entry (newer timestamps win).
func RegisterRecentChatTask(srv qport.Server, cache cacheport.Cache) {
	srv.Register(RecentChatTaskType, func(ctx context.Context, t qport.Task) error {
		var p RecentChatTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying cannot help
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := UpdateRecentChats(ctx, cache, p); err != nil {
			return err
		}
		return nil
	})
}

// UpdateRecentChats applies one message to the cached summaries of both parties.
func UpdateRecentChats(ctx context.Context, cache cacheport.Cache, p RecentChatTaskPayload) error {
	if cache == nil {
		return nil
	}
	if err := updateOne(ctx, cache, p.SenderMobile, p.ReceiverMobile, p); err != nil {
		return err
	}
	return updateOne(ctx, cache, p.ReceiverMobile, p.SenderMobile, p)
}

func updateOne(ctx context.Context, cache cacheport.Cache, owner, peer string, p RecentChatTaskPayload) error {
	key := chat.RecentChatsKey(owner)

	byPeer := make(map[string]chat.RecentChat)
	raw, err := cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cacheport.ErrMiss) {
		return err
	}
	if err == nil {
		// A corrupt entry is discarded and rebuilt from this message onward.
		_ = json.Unmarshal([]byte(raw), &byPeer)
	}

	if existing, ok := byPeer[peer]; ok && existing.At.After(p.CreatedAt) {
		return nil
	}
	byPeer[peer] = chat.RecentChat{
		PeerMobile: peer,
		Content:    p.Content,
		IsFile:     p.IsFile,
		At:         p.CreatedAt,
	}

	out, err := json.Marshal(byPeer)
	if err != nil {
		return err
	}
	return cache.Set(ctx, key, string(out), recentChatsTTL)
}
