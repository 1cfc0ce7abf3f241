// Package pending implements the two-tap delete confirmation state machine.
//
// A first delete request arms a confirmation window for that entity id; a
// second request for the same id within the window confirms. Requesting a
// different id replaces the armed target and restarts the window. The window
// auto-expires with no deletion.
package pending

import (
	"sync"
	"time"
)

// Machine guards one entity list. Tasks and notes each get their own
// instance, so a pending task deletion can never be consumed by a notes
// action.
type Machine struct {
	mu        sync.Mutex
	window    time.Duration
	active    bool
	pendingID int64
	expiresAt time.Time
	gen       uint64
	timer     *time.Timer
}

// DefaultWindow is how long a pending confirmation stays armed.
const DefaultWindow = 5 * time.Second

// New creates a Machine. A non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Machine {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Machine{window: window}
}

// RequestDelete records a delete tap for id and reports whether the deletion
// is now confirmed (second tap on the same id within the window).
func (m *Machine) RequestDelete(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active && m.pendingID == id {
		m.disarm()
		return true
	}

	// First tap, or a tap on a different id: (re)arm the window.
	m.disarm()
	m.active = true
	m.pendingID = id
	m.expiresAt = time.Now().Add(m.window)
	m.gen++

	gen := m.gen
	m.timer = time.AfterFunc(m.window, func() {
		m.expire(gen)
	})
	return false
}

// Cancel disarms any pending confirmation without deleting.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disarm()
}

// Pending returns the armed entity id, if any.
func (m *Machine) Pending() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return 0, false
	}
	return m.pendingID, true
}

// ExpiresAt returns when the armed window lapses. Zero when idle.
func (m *Machine) ExpiresAt() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return time.Time{}, false
	}
	return m.expiresAt, true
}

// expire is the timer callback. The generation check guards against a stale
// timer clearing a newer pending state that re-armed after this timer was
// scheduled.
func (m *Machine) expire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active && m.gen == gen {
		m.active = false
		m.timer = nil
	}
}

// disarm stops the timer and clears the pending state. Callers hold m.mu.
func (m *Machine) disarm() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.active = false
	m.pendingID = 0
	m.expiresAt = time.Time{}
}
