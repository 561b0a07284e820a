package realtime

import (
	"sync"
)

// Registry is the live mapping of mobile key to websocket connection. It keeps
// at most one active connection per key: a reconnect replaces the previous
// entry and the replaced handle is closed after the swap, so the registry never
// references a socket it no longer owns.
//
// Sessions are tracked by session ID with a mobile-key index on top, so a stale
// disconnect cannot evict a newer connection for the same key.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Connection // sessionID -> connection
	users    map[string]string      // mobile -> sessionID
}

// NewRegistry constructs an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Connection),
		users:    make(map[string]string),
	}
}

// Register tracks a connection under its mobile key and starts its write loop.
// If a previous session exists for the key, it is removed and closed after the
// swap to enforce one active socket per user.
func (r *Registry) Register(conn *Connection) {
	var previous *Connection

	r.mu.Lock()
	if existingID, ok := r.users[conn.Mobile]; ok {
		if existing := r.sessions[existingID]; existing != nil {
			previous = existing
			r.removeLocked(existingID)
		}
	}
	r.sessions[conn.ID] = conn
	r.users[conn.Mobile] = conn.ID
	r.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(4001, "session replaced")
	}
}

// Lookup returns the current connection for the mobile key, if one is registered.
func (r *Registry) Lookup(mobile string) (*Connection, bool) {
	r.mu.RLock()
	sessionID, ok := r.users[mobile]
	if !ok {
		r.mu.RUnlock()
		return nil, false
	}
	conn := r.sessions[sessionID]
	r.mu.RUnlock()
	if conn == nil {
		return nil, false
	}
	return conn, true
}

// Deregister removes the connection if it is still the one registered for its
// key. A connection that was already replaced by a newer session is left alone.
func (r *Registry) Deregister(conn *Connection) {
	r.mu.Lock()
	r.removeLocked(conn.ID)
	r.mu.Unlock()
}

// Len reports the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close terminates all tracked connections and clears registry state.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := make([]*Connection, 0, len(r.sessions))
	for _, conn := range r.sessions {
		sessions = append(sessions, conn)
	}
	r.sessions = make(map[string]*Connection)
	r.users = make(map[string]string)
	r.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "registry shutdown")
	}
}

func (r *Registry) removeLocked(sessionID string) {
	conn, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	delete(r.sessions, sessionID)
	if current, ok := r.users[conn.Mobile]; ok && current == sessionID {
		delete(r.users, conn.Mobile)
	}
}
