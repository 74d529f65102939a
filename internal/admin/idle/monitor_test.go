package idle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svitanok-centre/site/internal/platform/config"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		IdleTimeout:  30 * time.Minute,
		WarnWindow:   2 * time.Minute,
		PollInterval: 5 * time.Second,
	}
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMonitor(t *testing.T, clock *manualClock, callbacks Callbacks) *Monitor {
	t.Helper()
	m, err := NewMonitor(sessionConfig(), callbacks, WithClock(clock.Now))
	require.NoError(t, err)
	return m
}

func TestMonitorWarnsInsideWarningWindow(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	var warned []time.Duration
	m := newTestMonitor(t, clock, Callbacks{
		OnWarn: func(remaining time.Duration) { warned = append(warned, remaining) },
	})

	clock.Advance(27 * time.Minute)
	assert.Equal(t, StateActive, m.Evaluate())
	assert.Empty(t, warned)

	clock.Advance(90 * time.Second)
	assert.Equal(t, StateWarning, m.Evaluate())
	require.Len(t, warned, 1)
	assert.Equal(t, 90*time.Second, warned[0])
}

func TestMonitorLogsOutOncePerEpisode(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	var logouts int
	m := newTestMonitor(t, clock, Callbacks{
		OnLogout: func() { logouts++ },
	})

	clock.Advance(31 * time.Minute)
	assert.Equal(t, StateExpired, m.Evaluate())
	assert.Equal(t, StateExpired, m.Evaluate())
	assert.Equal(t, 1, logouts)
}

func TestMonitorTouchResetsWarning(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	var activated int
	m := newTestMonitor(t, clock, Callbacks{
		OnActive: func() { activated++ },
	})

	clock.Advance(29 * time.Minute)
	require.Equal(t, StateWarning, m.Evaluate())

	m.Touch(clock.Now())
	assert.Equal(t, StateActive, m.State())
	assert.Equal(t, 1, activated)

	clock.Advance(10 * time.Minute)
	assert.Equal(t, StateActive, m.Evaluate())
}

func TestMonitorIgnoresOutOfOrderTouches(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	m := newTestMonitor(t, clock, Callbacks{})

	clock.Advance(10 * time.Minute)
	m.Touch(clock.Now())

	// A stale event from before the latest activity must not rewind the deadline.
	m.Touch(clock.Now().Add(-5 * time.Minute))

	// 28.5 minutes after the newest touch: warning if the deadline counts
	// from it, expired if the stale event had rewound it.
	clock.Advance(28*time.Minute + 30*time.Second)
	assert.Equal(t, StateWarning, m.Evaluate())
}

func TestMonitorTouchDoesNotResurrectExpiredEpisode(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	var logouts int
	m := newTestMonitor(t, clock, Callbacks{OnLogout: func() { logouts++ }})

	clock.Advance(31 * time.Minute)
	require.Equal(t, StateExpired, m.Evaluate())

	m.Touch(clock.Now())
	assert.Equal(t, StateExpired, m.State())

	m.Reset()
	assert.Equal(t, StateActive, m.State())
	assert.Equal(t, 1, logouts)
}

func TestMonitorSiblingsShareActivityClock(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	store := NewActivityStore()

	first, err := NewMonitor(sessionConfig(), Callbacks{}, WithClock(clock.Now), WithActivityStore(store))
	require.NoError(t, err)

	var logouts, activated int
	second, err := NewMonitor(sessionConfig(), Callbacks{
		OnLogout: func() { logouts++ },
		OnActive: func() { activated++ },
	}, WithClock(clock.Now), WithActivityStore(store))
	require.NoError(t, err)

	clock.Advance(29 * time.Minute)
	require.Equal(t, StateWarning, second.Evaluate())

	// Activity seen by one watcher must clear the warning in the other.
	first.Touch(clock.Now())
	assert.Equal(t, StateActive, second.State())
	assert.Equal(t, 1, activated)

	clock.Advance(2 * time.Minute)
	assert.Equal(t, StateActive, second.Evaluate())
	assert.Zero(t, logouts)
}

func TestActivityStoreLastWriterWins(t *testing.T) {
	store := NewActivityStore()
	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	var broadcasts []time.Time
	cancel := store.Subscribe(func(at time.Time) { broadcasts = append(broadcasts, at) })

	assert.True(t, store.Touch(base))
	assert.False(t, store.Touch(base.Add(-time.Minute)), "older write must be ignored")
	assert.Equal(t, base, store.Last())
	require.Len(t, broadcasts, 1, "rejected writes must not broadcast")

	cancel()
	assert.True(t, store.Touch(base.Add(time.Minute)))
	assert.Len(t, broadcasts, 1, "cancelled subscription must not fire")
}

func TestMonitorConfigValidation(t *testing.T) {
	cfg := sessionConfig()
	cfg.WarnWindow = cfg.IdleTimeout
	_, err := NewMonitor(cfg, Callbacks{})
	assert.Error(t, err)

	cfg = sessionConfig()
	cfg.PollInterval = 0
	_, err = NewMonitor(cfg, Callbacks{})
	assert.Error(t, err)
}

func TestMonitorStartStop(t *testing.T) {
	clock := &manualClock{now: time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)}
	m := newTestMonitor(t, clock, Callbacks{})
	m.Start()
	m.Stop()
	m.Stop()
}
