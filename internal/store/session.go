package store

import (
	"context"
	"sync"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/service"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/logger"
	"github.com/google/uuid"
)

type sessionStore struct {
	logger *logger.Logger

	mu       sync.Mutex
	sessions map[int64]*model.Session

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

var _ service.SessionStore = (*sessionStore)(nil)

// SessionStoreOptions represents input options for new instance of
// session store.
type SessionStoreOptions struct {
	Logger *logger.Logger
	// TTL is how long a session may stay idle before the sweeper
	// evicts it, draft and all.
	TTL time.Duration
	// SweepInterval is how often the sweeper scans for idle sessions.
	SweepInterval time.Duration
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// NewSessionStore returns new instance of in-memory session store.
func NewSessionStore(opts *SessionStoreOptions) *sessionStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &sessionStore{
		logger:        opts.Logger,
		sessions:      make(map[int64]*model.Session),
		ttl:           opts.TTL,
		sweepInterval: opts.SweepInterval,
		now:           now,
	}
}

func (s *sessionStore) GetOrCreate(userID, chatID int64) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if ok {
		session.LastActivity = s.now()
		return session
	}

	session = &model.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		ChatID:       chatID,
		Step:         model.StepIdle,
		LastActivity: s.now(),
		CreatedAt:    s.now(),
	}
	s.sessions[userID] = session

	return session
}

func (s *sessionStore) Get(userID int64) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[userID]
}

func (s *sessionStore) Touch(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if ok {
		session.LastActivity = s.now()
	}
}

func (s *sessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// RunSweep evicts sessions idle past the TTL until the context is
// cancelled. Eviction is silent on the user side: the next message
// simply starts from idle.
func (s *sessionStore) RunSweep(ctx context.Context) {
	logger := s.logger.With().Str("name", "sessionStore.RunSweep").Logger()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			evicted := s.sweep()
			if evicted != 0 {
				logger.Info().Int("evicted", evicted).Msg("evicted idle sessions")
			}
		}
	}
}

func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.ttl)

	var evicted int
	for userID, session := range s.sessions {
		if session.LastActivity.Before(deadline) {
			delete(s.sessions, userID)
			evicted++
		}
	}

	return evicted
}
