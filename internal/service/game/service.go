package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/pkg/uid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

type Settings struct {
	GameOptions []domain.Option
	IdleTTL     time.Duration
	MaxSessions int
}

// SessionManager keeps the in-memory hot-seat sessions, one per browser.
type SessionManager struct {
	sessions map[string]*Session // gameID → Session
	settings Settings
	clock    quartz.Clock
	logger   *log.Logger
	mu       sync.RWMutex
}

func NewSessionManager(settings Settings, clock quartz.Clock, logger *log.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		settings: settings,
		clock:    clock,
		logger:   logger.WithPrefix("session"),
	}
}

func (sm *SessionManager) CreateSession() (*Session, error) {
	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.settings.MaxSessions > 0 && len(sm.sessions) >= sm.settings.MaxSessions {
		return nil, ErrTooManySessions
	}

	now := sm.clock.Now()
	session := &Session{
		GameID:       gameID,
		CreatedAt:    now,
		lastActivity: now,
		controller:   domain.NewGameController(sm.settings.GameOptions...),
		listeners:    make(map[int]Listener),
		clock:        sm.clock,
	}
	sm.sessions[gameID] = session

	sm.logger.Info("Created session", "game_id", gameID, "active", len(sm.sessions))
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	session, exists := sm.sessions[gameID]
	if !exists {
		sm.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionNotFound, gameID)
	}
	delete(sm.sessions, gameID)
	sm.mu.Unlock()

	sm.logger.Info("Removed session", "game_id", gameID, "games_won", session.GamesWon())
	session.close()
	return nil
}

func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CleanupIdle drops sessions that have seen no activity for longer than the
// idle TTL and returns how many were removed.
func (sm *SessionManager) CleanupIdle() int {
	if sm.settings.IdleTTL <= 0 {
		return 0
	}
	cutoff := sm.clock.Now().Add(-sm.settings.IdleTTL)

	sm.mu.Lock()
	var stale []*Session
	for gameID, session := range sm.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(sm.sessions, gameID)
			stale = append(stale, session)
		}
	}
	sm.mu.Unlock()

	for _, session := range stale {
		session.close()
	}
	if len(stale) > 0 {
		sm.logger.Info("Memory cleanup: removed idle sessions", "count", len(stale))
	}
	return len(stale)
}
