package gutil

import (
	"fmt"
	"time"

	"github.com/jlanguell/gutil/errs"
	"github.com/jlanguell/gutil/internal/options"
)

// DefaultScheduleSlack is taken off every sleep to absorb wake-up latency.
const DefaultScheduleSlack = 2 * time.Millisecond

// Scheduler paces a loop to a fixed rate by sleeping off whatever is left of
// each period.
//
// A Scheduler keeps no state between calls; the loop owns its start time.
// It is safe to share one Scheduler between goroutines, each of which is
// then paced independently.
type Scheduler struct {
	now   func() time.Time
	sleep func(time.Duration)
	slack time.Duration
}

// SchedulerOption configures a Scheduler. Nil arguments keep the default.
type SchedulerOption = options.Option[*Scheduler]

// WithScheduleClock sets the time source. Defaults to time.Now, whose
// readings carry the monotonic clock.
func WithScheduleClock(now func() time.Time) SchedulerOption {
	return options.NoError(func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	})
}

// WithSleep sets the function used to block. Defaults to time.Sleep.
func WithSleep(sleep func(time.Duration)) SchedulerOption {
	return options.NoError(func(s *Scheduler) {
		if sleep != nil {
			s.sleep = sleep
		}
	})
}

// WithSlack sets how much earlier than the period boundary the sleep ends.
// Defaults to DefaultScheduleSlack.
func WithSlack(slack time.Duration) SchedulerOption {
	return options.New(func(s *Scheduler) error {
		if slack < 0 {
			return fmt.Errorf("negative schedule slack %v", slack)
		}
		s.slack = slack

		return nil
	})
}

// NewScheduler creates a Scheduler.
//
// Returns an error only for an invalid option value.
func NewScheduler(opts ...SchedulerOption) (*Scheduler, error) {
	s := &Scheduler{
		now:   time.Now,
		sleep: time.Sleep,
		slack: DefaultScheduleSlack,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// ScheduleRate holds the calling goroutine until one period of rate Hz has
// passed since start, then returns the elapsed time in seconds.
//
// Elapsed time is measured in whole milliseconds. When the loop is on time
// (elapsed < 1000/rate ms, integer division) ScheduleRate sleeps for
// 1000/rate - elapsed - slack milliseconds, truncated, and returns the
// elapsed time measured again after waking. When the loop is late it
// returns the elapsed time at once without sleeping, so a return value
// above 1/rate tells the caller the period was missed.
//
// There is no cancellation. rate must be positive; otherwise ScheduleRate
// panics with an error wrapping errs.ErrInvalidRate.
//
// Example:
//
//	for {
//	    start := time.Now()
//	    step()
//	    if dt := sched.ScheduleRate(50, start); dt > 0.02 {
//	        gutil.LogFmt("loop overran: %.3fs", dt)
//	    }
//	}
func (s *Scheduler) ScheduleRate(rate int, start time.Time) float64 {
	if rate <= 0 {
		panic(fmt.Errorf("%w: %d Hz", errs.ErrInvalidRate, rate))
	}

	dt := s.elapsedMillis(start)
	if dt >= int64(1000/rate) {
		return float64(dt) / 1000.0
	}

	slackMs := float64(s.slack) / float64(time.Millisecond)
	if ms := int64(1000.0/float64(rate) - float64(dt) - slackMs); ms > 0 {
		s.sleep(time.Duration(ms) * time.Millisecond)
	}

	return float64(s.elapsedMillis(start)) / 1000.0
}

func (s *Scheduler) elapsedMillis(start time.Time) int64 {
	return s.now().Sub(start).Milliseconds()
}

var defaultScheduler, _ = NewScheduler()

// ScheduleRate paces a loop to rate Hz using time.Now, time.Sleep and
// DefaultScheduleSlack. See Scheduler.ScheduleRate.
func ScheduleRate(rate int, start time.Time) float64 {
	return defaultScheduler.ScheduleRate(rate, start)
}
