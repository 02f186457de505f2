package game

import (
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

type EventType string

const (
	EventMove   EventType = "move"
	EventClosed EventType = "closed"
)

// Event is pushed to every listener of a session after a round or when the
// session goes away.
type Event struct {
	Type   EventType
	GameID string
	Result domain.RoundResult
	View   domain.View
}

type Listener func(Event)

// Session wraps one GameController. Its methods serialise access so the
// controller only ever sees one call at a time.
type Session struct {
	GameID    string
	CreatedAt time.Time

	lastActivity time.Time
	controller   *domain.GameController
	listeners    map[int]Listener
	nextListener int
	closed       bool
	clock        quartz.Clock

	mu       sync.Mutex
	notifyMu sync.Mutex // keeps events in the order rounds were played
}

// PlayRound plays column for the active player and notifies listeners.
func (s *Session) PlayRound(column int) (domain.RoundResult, domain.View, error) {
	s.mu.Lock()
	s.lastActivity = s.clock.Now()

	result, err := s.controller.PlayRound(column)
	if err != nil {
		s.mu.Unlock()
		return domain.RoundResult{}, domain.View{}, err
	}
	view := s.controller.View()
	listeners := s.snapshotListeners()

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	event := Event{Type: EventMove, GameID: s.GameID, Result: result, View: view}
	for _, fn := range listeners {
		fn(event)
	}
	return result, view, nil
}

func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = s.clock.Now()
	return s.controller.View()
}

func (s *Session) GamesWon() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.GamesWon()
}

func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Subscribe registers fn for future events and returns a func that removes it.
// Subscribing to a closed session calls fn with EventClosed right away.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn(Event{Type: EventClosed, GameID: s.GameID})
		return func() {}
	}
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	listeners := s.snapshotListeners()
	s.listeners = make(map[int]Listener)

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range listeners {
		fn(Event{Type: EventClosed, GameID: s.GameID})
	}
}

// caller must hold s.mu
func (s *Session) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return listeners
}
