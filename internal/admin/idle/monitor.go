// Package idle implements the admin idle-session watchdog. Activity events
// push the last-active mark forward; a poll loop warns shortly before the
// idle deadline and signs the session out once it passes.
package idle

import (
	"fmt"
	"sync"
	"time"

	"github.com/svitanok-centre/site/internal/platform/config"
)

// State is the phase of the current idle episode.
type State int

const (
	// StateActive means the deadline is comfortably in the future.
	StateActive State = iota
	// StateWarning means the session expires within the warning window.
	StateWarning
	// StateExpired means the idle deadline passed and logout fired.
	StateExpired
)

// Callbacks receive episode transitions. OnWarn repeats on every poll while
// the warning is showing so the countdown can update; OnLogout fires at most
// once per episode.
type Callbacks struct {
	OnWarn   func(remaining time.Duration)
	OnActive func()
	OnLogout func()
}

// Option customises the monitor.
type Option func(*Monitor)

// WithClock injects a custom clock primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(m *Monitor) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithActivityStore shares the last-activity clock with sibling monitors.
// Activity recorded through any of them suppresses logout in all of them.
func WithActivityStore(store ActivityStore) Option {
	return func(m *Monitor) {
		if store != nil {
			m.store = store
		}
	}
}

// Monitor tracks admin activity against the configured idle deadline. The
// activity clock itself lives in an ActivityStore; monitors sharing one
// store act as sibling watchers of the same session.
type Monitor struct {
	idleTimeout  time.Duration
	warnWindow   time.Duration
	pollInterval time.Duration
	clock        func() time.Time
	callbacks    Callbacks
	store        ActivityStore

	mu    sync.Mutex
	state State

	unsubscribe func()
	stop        chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

// NewMonitor constructs a monitor from the session configuration. The
// episode starts at construction time.
func NewMonitor(cfg config.SessionConfig, callbacks Callbacks, opts ...Option) (*Monitor, error) {
	if cfg.IdleTimeout <= 0 {
		return nil, fmt.Errorf("idle monitor: idle timeout must be positive, got %v", cfg.IdleTimeout)
	}
	if cfg.WarnWindow <= 0 || cfg.WarnWindow >= cfg.IdleTimeout {
		return nil, fmt.Errorf("idle monitor: warn window %v must be shorter than the idle timeout %v", cfg.WarnWindow, cfg.IdleTimeout)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("idle monitor: poll interval must be positive, got %v", cfg.PollInterval)
	}

	m := &Monitor{
		idleTimeout:  cfg.IdleTimeout,
		warnWindow:   cfg.WarnWindow,
		pollInterval: cfg.PollInterval,
		clock:        time.Now,
		callbacks:    callbacks,
		stop:         make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.store == nil {
		m.store = NewActivityStore()
	}
	m.store.Touch(m.clock())
	m.unsubscribe = m.store.Subscribe(m.onActivity)
	return m, nil
}

// Touch records activity at the given instant. A zero instant means now.
// The store keeps the newest timestamp, so out-of-order events cannot
// rewind the deadline, and the accepted write is broadcast to every
// sibling monitor watching the same store.
func (m *Monitor) Touch(at time.Time) {
	if at.IsZero() {
		at = m.clock()
	}
	m.store.Touch(at)
}

// onActivity reacts to an accepted activity write, local or from a sibling.
// It clears a showing warning but never resurrects an expired episode.
func (m *Monitor) onActivity(time.Time) {
	m.mu.Lock()
	wasWarning := m.state == StateWarning
	if m.state != StateExpired {
		m.state = StateActive
	}
	notifyActive := wasWarning && m.state == StateActive
	m.mu.Unlock()

	if notifyActive && m.callbacks.OnActive != nil {
		m.callbacks.OnActive()
	}
}

// Reset starts a fresh episode after a re-login. Unlike Touch it clears an
// expired state.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.state = StateActive
	m.mu.Unlock()
	m.store.Touch(m.clock())
}

// State returns the phase of the current episode.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Evaluate performs one poll step and returns the resulting state. The run
// loop calls it on every tick; tests call it directly.
func (m *Monitor) Evaluate() State {
	now := m.clock()
	last := m.store.Last()

	m.mu.Lock()
	idle := now.Sub(last)
	remaining := m.idleTimeout - idle

	var warn, logout bool
	switch {
	case idle >= m.idleTimeout:
		if m.state != StateExpired {
			m.state = StateExpired
			logout = true
		}
	case remaining <= m.warnWindow:
		if m.state != StateExpired {
			m.state = StateWarning
			warn = true
		}
	}
	state := m.state
	m.mu.Unlock()

	if warn && m.callbacks.OnWarn != nil {
		m.callbacks.OnWarn(remaining)
	}
	if logout && m.callbacks.OnLogout != nil {
		m.callbacks.OnLogout()
	}
	return state
}

// Start launches the poll loop. Stop tears it down.
func (m *Monitor) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.Evaluate()
			}
		}
	}()
}

// Stop terminates the poll loop, drops the store subscription, and waits
// for the loop to exit. Safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
		m.unsubscribe()
	})
	m.wg.Wait()
}
