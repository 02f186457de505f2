package cleanup

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// IdleReaper is the part of the session manager the worker drives.
type IdleReaper interface {
	CleanupIdle() int
}

type Worker struct {
	sessions IdleReaper
	interval time.Duration
	clock    quartz.Clock
	logger   *log.Logger
}

func NewWorker(sessions IdleReaper, interval time.Duration, clock quartz.Clock, logger *log.Logger) *Worker {
	return &Worker{
		sessions: sessions,
		interval: interval,
		clock:    clock,
		logger:   logger.WithPrefix("cleanup"),
	}
}

// Start runs the cleanup every interval until ctx is cancelled. A
// non-positive interval leaves the worker disabled.
func (w *Worker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn("Background worker disabled", "interval", w.interval)
		return
	}
	w.logger.Info("Background worker started", "interval", w.interval)
	waiter := w.clock.TickerFunc(ctx, w.interval, func() error {
		w.runCleanup()
		return nil
	}, "cleanup")

	go func() {
		_ = waiter.Wait()
		w.logger.Info("Background worker stopped")
	}()
}

func (w *Worker) runCleanup() {
	if removed := w.sessions.CleanupIdle(); removed > 0 {
		w.logger.Debug("Cleanup pass finished", "removed", removed)
	}
}
