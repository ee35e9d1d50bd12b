package gutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlanguell/gutil/errs"
)

// fakeClock advances only when elapsed is set or sleep is called.
type fakeClock struct {
	start  time.Time
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock(elapsed time.Duration) *fakeClock {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeClock{start: start, now: start.Add(elapsed)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func newFakeScheduler(t *testing.T, clock *fakeClock, opts ...SchedulerOption) *Scheduler {
	t.Helper()

	s, err := NewScheduler(append([]SchedulerOption{
		WithScheduleClock(clock.Now),
		WithSleep(clock.Sleep),
	}, opts...)...)
	require.NoError(t, err)

	return s
}

func TestScheduleRate_OnTime(t *testing.T) {
	clock := newFakeClock(3 * time.Millisecond)
	s := newFakeScheduler(t, clock)

	dt := s.ScheduleRate(100, clock.start)

	// 10ms period - 3ms elapsed - 2ms slack
	require.Equal(t, []time.Duration{5 * time.Millisecond}, clock.sleeps)
	assert.InDelta(t, 0.008, dt, 1e-12)
}

func TestScheduleRate_FractionalPeriodTruncates(t *testing.T) {
	clock := newFakeClock(10 * time.Millisecond)
	s := newFakeScheduler(t, clock, WithSlack(0))

	// 1000/30 = 33.33ms, minus 10ms elapsed, truncated to 23ms.
	dt := s.ScheduleRate(30, clock.start)

	require.Equal(t, []time.Duration{23 * time.Millisecond}, clock.sleeps)
	assert.InDelta(t, 0.033, dt, 1e-12)
}

func TestScheduleRate_Late(t *testing.T) {
	clock := newFakeClock(25 * time.Millisecond)
	s := newFakeScheduler(t, clock)

	dt := s.ScheduleRate(50, clock.start)

	assert.Empty(t, clock.sleeps)
	assert.InDelta(t, 0.025, dt, 1e-12)
	assert.Greater(t, dt, 1.0/50)
}

func TestScheduleRate_ExactlyOnePeriodIsLate(t *testing.T) {
	clock := newFakeClock(20 * time.Millisecond)
	s := newFakeScheduler(t, clock)

	assert.InDelta(t, 0.020, s.ScheduleRate(50, clock.start), 1e-12)
	assert.Empty(t, clock.sleeps)
}

func TestScheduleRate_SlackSwallowsSleep(t *testing.T) {
	clock := newFakeClock(8 * time.Millisecond)
	s := newFakeScheduler(t, clock)

	// 10 - 8 - 2 leaves nothing to sleep.
	dt := s.ScheduleRate(100, clock.start)

	assert.Empty(t, clock.sleeps)
	assert.InDelta(t, 0.008, dt, 1e-12)
}

func TestScheduleRate_SubMillisecondElapsedIsZero(t *testing.T) {
	clock := newFakeClock(900 * time.Microsecond)
	s := newFakeScheduler(t, clock, WithSlack(0))

	s.ScheduleRate(500, clock.start)

	require.Equal(t, []time.Duration{2 * time.Millisecond}, clock.sleeps)
}

func TestScheduleRate_AboveOneKilohertz(t *testing.T) {
	clock := newFakeClock(0)
	s := newFakeScheduler(t, clock)

	// 1000/2000 is 0 in integer milliseconds, so every call is late.
	assert.Zero(t, s.ScheduleRate(2000, clock.start))
	assert.Empty(t, clock.sleeps)
}

func TestScheduleRate_InvalidRate(t *testing.T) {
	clock := newFakeClock(0)
	s := newFakeScheduler(t, clock)

	for _, rate := range []int{0, -10} {
		err := panicError(t, func() { s.ScheduleRate(rate, clock.start) })
		require.ErrorIs(t, err, errs.ErrInvalidRate)
	}

	err := panicError(t, func() { ScheduleRate(0, time.Now()) })
	require.ErrorIs(t, err, errs.ErrInvalidRate)
}

func TestNewScheduler_NegativeSlack(t *testing.T) {
	s, err := NewScheduler(WithSlack(-time.Millisecond))
	require.Error(t, err)
	require.Nil(t, s)
}

func TestScheduleRate_RealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps")
	}

	start := time.Now()
	dt := ScheduleRate(50, start)

	assert.GreaterOrEqual(t, dt, 0.010)
	assert.Less(t, dt, 0.5)
}
