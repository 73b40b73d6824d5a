package core

import "time"

// maxCatchUpSteps bounds how many steps a stalled loop may run back to back.
const maxCatchUpSteps = 4

// FixedStep paces simulation updates at a steady steps-per-second rate. It
// drives loops that are not externally clocked, such as the stream server.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(stepsPerSecond int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(stepsPerSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call between Due calls.
func (f *FixedStep) SetRate(stepsPerSecond int) {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 60
	}
	f.step = time.Second / time.Duration(stepsPerSecond)
}

// Interval returns the duration of a single step at the current rate.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due returns how many whole steps have elapsed since the previous call,
// capped so a stalled caller does not spiral trying to catch up.
func (f *FixedStep) Due() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	due := 0
	for f.accumulator >= f.step && due < maxCatchUpSteps {
		f.accumulator -= f.step
		due++
	}
	if due == maxCatchUpSteps {
		f.accumulator = 0
	}
	return due
}
