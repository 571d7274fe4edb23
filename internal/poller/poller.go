// Package poller runs one unread-notification counter per authenticated
// session. Each poll task is cancellable and tied to the session lifecycle:
// started at login or session restore, stopped at logout or session expiry.
package poller

import (
	"context"
	"strconv"
	"sync"
	"time"

	"skybook/pkg/cache"
	"skybook/pkg/logger"
)

// CountFunc fetches the unread count for a session token.
type CountFunc func(ctx context.Context, token string) (int, error)

// Registry owns the running poll tasks, keyed by session id.
type Registry struct {
	fetch  CountFunc
	cache  cache.Cache
	period time.Duration
	logger logger.Client

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewRegistry(fetch CountFunc, cache cache.Cache, period time.Duration, logger logger.Client) *Registry {
	return &Registry{
		fetch:   fetch,
		cache:   cache,
		period:  period,
		logger:  logger,
		cancels: make(map[string]context.CancelFunc),
	}
}

// BadgeKey is the cache key holding the latest polled count for a session.
func BadgeKey(sid string) string { return "badge:" + sid }

// Start launches the poll task for a session. Starting an already-running
// session is a no-op.
func (r *Registry) Start(sid, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, running := r.cancels[sid]; running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancels[sid] = cancel
	go r.run(ctx, sid, token)
}

// Stop cancels the poll task for a session, if any.
func (r *Registry) Stop(sid string) {
	r.mu.Lock()
	cancel, ok := r.cancels[sid]
	if ok {
		delete(r.cancels, sid)
	}
	r.mu.Unlock()
	if ok {
		cancel()
	}
}

// StopAll cancels every running task. Used at shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	cancels := r.cancels
	r.cancels = make(map[string]context.CancelFunc)
	r.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Running reports whether a poll task exists for the session.
func (r *Registry) Running(sid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cancels[sid]
	return ok
}

func (r *Registry) run(ctx context.Context, sid, token string) {
	r.poll(ctx, sid, token)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.poll(ctx, sid, token)
		}
	}
}

func (r *Registry) poll(ctx context.Context, sid, token string) {
	count, err := r.fetch(ctx, token)
	if err != nil {
		// no retry, next tick will try again
		r.logger.Error("unread count poll failed",
			logger.Field{Key: "sid", Value: sid},
			logger.Field{Key: "err", Value: err},
		)
		return
	}

	if err := r.cache.Set(ctx, BadgeKey(sid), strconv.Itoa(count), 2*r.period); err != nil {
		r.logger.Error("failed to store badge count",
			logger.Field{Key: "sid", Value: sid},
			logger.Field{Key: "err", Value: err},
		)
	}
}
