package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"skybook/pkg/cache"
	"skybook/pkg/logger"
)

const cookieName = "skybook_sid"

// Manager binds browser cookies to serialized State in the cache backend.
type Manager struct {
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Client
}

func NewManager(cache cache.Cache, ttlMinutes int, logger logger.Client) *Manager {
	return &Manager{
		cache:  cache,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: logger,
	}
}

func stateKey(sid string) string { return "session:" + sid }

// Load returns the state for the request's session cookie, issuing a fresh
// cookie and empty state when none exists.
func (m *Manager) Load(ctx context.Context, w http.ResponseWriter, r *http.Request) (*State, string) {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		raw, err := m.cache.Get(ctx, stateKey(c.Value))
		if err == nil && raw != "" {
			var state State
			if err := json.Unmarshal([]byte(raw), &state); err == nil {
				return &state, c.Value
			}
			m.logger.Error("corrupt session state", logger.Field{Key: "sid", Value: c.Value})
		}
		// expired or unknown sid: fall through and reissue
	}

	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return NewState(), sid
}

func (m *Manager) Save(ctx context.Context, sid string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	return m.cache.Set(ctx, stateKey(sid), string(raw), m.ttl)
}

func (m *Manager) Delete(ctx context.Context, sid string) error {
	return m.cache.Del(ctx, stateKey(sid))
}
