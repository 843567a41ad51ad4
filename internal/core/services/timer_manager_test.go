package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/freshbites/journalsim/internal/core/services"
)

const testTick = 2 * time.Millisecond

// tickRecorder collects callback invocations from the timer goroutine.
type tickRecorder struct {
	mu      sync.Mutex
	ticks   []int
	expired bool
}

func (r *tickRecorder) onTick(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
}

func (r *tickRecorder) onExpire() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expired = true
}

func (r *tickRecorder) hasExpired() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expired
}

func (r *tickRecorder) lastTick() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ticks) == 0 {
		return -1
	}
	return r.ticks[len(r.ticks)-1]
}

func TestTimerManager_CountsDownAndExpires(t *testing.T) {
	m := services.NewTimerManagerWithInterval(testTick)
	defer m.StopAll()
	rec := &tickRecorder{}

	m.Start("tx1", 3, rec.onTick, rec.onExpire)

	assert.Eventually(t, rec.hasExpired, time.Second, time.Millisecond)

	// Ticks decrement toward zero; expiry fires instead of a 0-tick.
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []int{2, 1}, rec.ticks)
}

func TestTimerManager_StopPreventsExpiry(t *testing.T) {
	m := services.NewTimerManagerWithInterval(50 * time.Millisecond)
	defer m.StopAll()
	rec := &tickRecorder{}

	m.Start("tx1", 2, rec.onTick, rec.onExpire)
	m.Stop("tx1")

	time.Sleep(200 * time.Millisecond)
	assert.False(t, rec.hasExpired())

	// Stopping again, or stopping something unknown, is a no-op.
	m.Stop("tx1")
	m.Stop("never-started")
}

func TestTimerManager_RestartReplaces(t *testing.T) {
	m := services.NewTimerManagerWithInterval(testTick)
	defer m.StopAll()

	old := &tickRecorder{}
	m.Start("tx1", 1000, old.onTick, old.onExpire)

	fresh := &tickRecorder{}
	m.Start("tx1", 3, fresh.onTick, fresh.onExpire)

	assert.Eventually(t, fresh.hasExpired, time.Second, time.Millisecond)
	// The replaced countdown never expires.
	assert.False(t, old.hasExpired())
}

func TestTimerManager_StopAll(t *testing.T) {
	m := services.NewTimerManagerWithInterval(50 * time.Millisecond)
	a, b := &tickRecorder{}, &tickRecorder{}

	m.Start("tx1", 1, a.onTick, a.onExpire)
	m.Start("tx2", 1, b.onTick, b.onExpire)
	m.StopAll()

	time.Sleep(200 * time.Millisecond)
	assert.False(t, a.hasExpired())
	assert.False(t, b.hasExpired())
}

func TestTimerManager_IndependentTimers(t *testing.T) {
	m := services.NewTimerManagerWithInterval(testTick)
	defer m.StopAll()

	short := &tickRecorder{}
	long := &tickRecorder{}
	m.Start("tx1", 2, short.onTick, short.onExpire)
	m.Start("tx2", 500, long.onTick, long.onExpire)

	assert.Eventually(t, short.hasExpired, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return long.lastTick() > 400 }, time.Second, time.Millisecond)
	assert.False(t, long.hasExpired())
}
