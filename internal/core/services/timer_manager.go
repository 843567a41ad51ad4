package services

import (
	"sync"
	"time"

	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
)

// TimerManager runs one cooperative countdown per transaction ID, ticking
// once per interval (a wall-clock second in production). It is an explicit
// component owned by the session orchestrator, not a package singleton, so
// tests can run it with a short interval and a fresh instance.
type TimerManager struct {
	mu       sync.Mutex
	timers   map[string]chan struct{}
	interval time.Duration
}

// NewTimerManager creates a TimerManager ticking once per second.
func NewTimerManager() *TimerManager {
	return NewTimerManagerWithInterval(time.Second)
}

// NewTimerManagerWithInterval creates a TimerManager with a custom tick
// interval, for tests.
func NewTimerManagerWithInterval(interval time.Duration) *TimerManager {
	return &TimerManager{
		timers:   make(map[string]chan struct{}),
		interval: interval,
	}
}

// Ensure TimerManager implements the portssvc.TimerSvc interface
var _ portssvc.TimerSvc = (*TimerManager)(nil)

// Start begins a countdown from remainingSeconds for the given transaction.
// Any countdown already running for that ID is cancelled first, so a restart
// replaces rather than stacks. A non-positive remaining time expires on the
// first tick.
func (m *TimerManager) Start(transactionID string, remainingSeconds int, onTick func(remaining int), onExpire func()) {
	stop := make(chan struct{})

	m.mu.Lock()
	if prev, ok := m.timers[transactionID]; ok {
		close(prev)
	}
	m.timers[transactionID] = stop
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		remaining := remainingSeconds
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				remaining--
				if remaining <= 0 {
					// Clear our own registration before firing, so an
					// onExpire that starts new timers never races a stale
					// Stop.
					m.clear(transactionID, stop)
					onExpire()
					return
				}
				onTick(remaining)
			}
		}
	}()
}

// Stop cancels the countdown for a transaction. Safe to call when nothing is
// running; stopping twice is a no-op.
func (m *TimerManager) Stop(transactionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stop, ok := m.timers[transactionID]; ok {
		delete(m.timers, transactionID)
		close(stop)
	}
}

// StopAll cancels every outstanding countdown. A session reset calls this
// before discarding state so no stale tick can touch a future session.
func (m *TimerManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, stop := range m.timers {
		delete(m.timers, id)
		close(stop)
	}
}

// clear removes the registration only if it still belongs to this countdown.
func (m *TimerManager) clear(transactionID string, stop chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.timers[transactionID]; ok && current == stop {
		delete(m.timers, transactionID)
	}
}
