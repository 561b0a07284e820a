package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

// memUserRepo is an in-memory stand-in for the Postgres user repository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]chat.User
	err   error // when set, every call fails with it
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]chat.User)}
}

func (r *memUserRepo) Upsert(_ context.Context, u chat.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Mobile] = u
	return nil
}

func (r *memUserRepo) Get(_ context.Context, mobile string) (*chat.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[mobile]
	if !ok {
		return nil, chat.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) Exists(_ context.Context, mobile string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[mobile]
	return ok, nil
}

// memMessageRepo assigns ids and strictly increasing timestamps on save, the
// way the store does, and returns history sorted ascending.
type memMessageRepo struct {
	mu   sync.Mutex
	msgs []chat.Message
	seq  int
	base time.Time
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{base: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)}
}

func (r *memMessageRepo) Save(_ context.Context, m chat.Message) (*chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = fmt.Sprintf("msg-%d", r.seq)
	m.CreatedAt = r.base.Add(time.Duration(r.seq) * time.Second)
	r.msgs = append(r.msgs, m)
	return &m, nil
}

func (r *memMessageRepo) ListByParticipant(_ context.Context, mobile string) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []chat.Message
	for _, m := range r.msgs {
		if m.SenderMobile == mobile || m.ReceiverMobile == mobile {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// memCache implements the cache port over a plain map.
type memCache struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemCache() *memCache {
	return &memCache{m: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := c.m[k]; ok {
			delete(c.m, k)
			n++
		}
	}
	return n, nil
}

func (c *memCache) Ping(context.Context) error { return nil }
func (c *memCache) Close() error               { return nil }
