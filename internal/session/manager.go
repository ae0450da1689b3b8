package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/rs/zerolog/log"
)

// DefaultRetention is how long a finished session stays readable, and how
// long an unfinished one may sit idle before it is abandoned.
const DefaultRetention = time.Hour

const sweepInterval = time.Minute

// Manager owns every live session of the process.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	newTicker TickerFactory
	now       func() time.Time
	retention time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewManager() *Manager {
	return NewManagerWithClock(NewRealTicker, time.Now)
}

func NewManagerWithClock(newTicker TickerFactory, now func() time.Time) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		newTicker: newTicker,
		now:       now,
		retention: DefaultRetention,
		stop:      make(chan struct{}),
	}
	go m.runSweeper(newTicker(sweepInterval))
	return m
}

func (m *Manager) runSweeper(t Ticker) {
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-t.C():
			m.Sweep()
		}
	}
}

// Start creates a session from cfg, registers it and starts its countdown.
func (m *Manager) Start(cfg Config) *Session {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.NewTicker == nil {
		cfg.NewTicker = m.newTicker
	}
	if cfg.Now == nil {
		cfg.Now = m.now
	}
	if cfg.OnWarning == nil {
		cfg.OnWarning = func(sessionID string, w Warning) {
			log.Info().Str("sessionID", sessionID).Str("warning", string(w)).Msg("Session time warning")
		}
	}
	onEnd := cfg.OnEnd
	cfg.OnEnd = func(s *Session) {
		metrics.ActiveSessions.Dec()
		if onEnd != nil {
			onEnd(s)
		}
	}

	s := New(cfg)

	m.mu.Lock()
	stale := m.sweepLocked()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	m.abandonIdle(stale)

	metrics.ActiveSessions.Inc()
	s.Start()
	log.Info().Str("sessionID", s.ID()).Str("kind", string(cfg.Kind)).Str("sourceID", cfg.SourceID).
		Int("questions", len(cfg.Questions)).Msg("Session started")
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Abandon ends and forgets a session.
func (m *Manager) Abandon(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Abandon()
	return nil
}

// Close abandons every session still in progress.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Abandon()
	}
	log.Info().Int("count", len(sessions)).Msg("Session manager closed")
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops finished sessions past retention and abandons idle ones.
func (m *Manager) Sweep() {
	m.mu.Lock()
	stale := m.sweepLocked()
	m.mu.Unlock()
	m.abandonIdle(stale)
}

// sweepLocked forgets expired sessions and returns the idle unfinished ones,
// which the caller abandons once m.mu is released.
func (m *Manager) sweepLocked() []*Session {
	cutoff := m.now().Add(-m.retention)
	var stale []*Session
	for id, s := range m.sessions {
		switch {
		case s.endedBefore(cutoff):
			delete(m.sessions, id)
		case s.idleBefore(cutoff):
			delete(m.sessions, id)
			stale = append(stale, s)
		}
	}
	return stale
}

func (m *Manager) abandonIdle(stale []*Session) {
	for _, s := range stale {
		s.Abandon()
		log.Info().Str("sessionID", s.ID()).Msg("Idle session abandoned")
	}
}
