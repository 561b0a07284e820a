package chat

import "time"

// RecentChat summarizes the latest message exchanged with one peer. Summaries
// are maintained out of band (background task) and cached per user, keyed by
// RecentChatsKey; they are a convenience view, not a source of truth.
type RecentChat struct {
	PeerMobile string    `json:"peer_mobile"`
	Content    string    `json:"content"`
	IsFile     bool      `json:"is_file"`
	At         time.Time `json:"at"`
}

// RecentChatsKey is the cache key holding a user's peer -> RecentChat map.
func RecentChatsKey(mobile string) string {
	return "chat:recent:" + mobile
}

// UserCacheKey is the cache key for one user's profile.
func UserCacheKey(mobile string) string {
	return "chat:user:" + mobile
}
