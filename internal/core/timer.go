package core

import "time"

// FixedStep paces simulation epochs at a steady rate independent of the host
// frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rate ticks per second. The
// first ShouldStep call fires immediately.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the tick rate. Non-positive rates fall back to 10 per second.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Duration(float64(time.Second) / rate)
}

// Rate returns the current ticks per second.
func (f *FixedStep) Rate() float64 {
	return float64(time.Second) / float64(f.step)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pause forgets elapsed time so that resuming does not burst through a
// backlog of ticks.
func (f *FixedStep) Pause() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is released per call and backlog beyond one tick is dropped.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
