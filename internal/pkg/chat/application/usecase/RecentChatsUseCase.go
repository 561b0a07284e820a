package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

// RecentChatsInput wraps the mobile whose conversation summaries are requested.
type RecentChatsInput struct {
	Mobile string
}

// RecentChatsUseCase reads the cached peer -> last-message summaries maintained
// by the recent-chat background task. A cache miss yields an empty list, never
// an error; summaries are a convenience view over the durable message log.
type RecentChatsUseCase struct {
	Cache cacheport.Cache
}

func NewRecentChatsUseCase(cache cacheport.Cache) *RecentChatsUseCase {
	return &RecentChatsUseCase{Cache: cache}
}

func (uc *RecentChatsUseCase) Execute(ctx context.Context, in RecentChatsInput) ([]chat.RecentChat, error) {
	if in.Mobile == "" {
		return nil, chat.ErrEmptyMobile
	}
	if uc.Cache == nil {
		return []chat.RecentChat{}, nil
	}

	raw, err := uc.Cache.Get(ctx, chat.RecentChatsKey(in.Mobile))
	if errors.Is(err, cacheport.ErrMiss) {
		return []chat.RecentChat{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var byPeer map[string]chat.RecentChat
	if err := json.Unmarshal([]byte(raw), &byPeer); err != nil {
		// Corrupt cache entry: treat as empty rather than failing the request.
		return []chat.RecentChat{}, nil
	}

	out := make([]chat.RecentChat, 0, len(byPeer))
	for _, rc := range byPeer {
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out, nil
}
