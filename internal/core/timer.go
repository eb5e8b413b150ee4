package core

import "time"

// FixedStep paces a loop at a steady ticks-per-second rate, absorbing time
// spent inside each tick. It is owned by a single goroutine.
type FixedStep struct {
	step time.Duration
	next time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. The new rate applies from the next Wait.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the current tick duration.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until the next tick boundary, returning false as soon as stop
// is closed. A loop that falls behind schedule ticks immediately and rebases
// rather than bursting to catch up.
func (f *FixedStep) Wait(stop <-chan struct{}) bool {
	now := time.Now()
	if f.next.IsZero() {
		f.next = now
	}
	delay := f.next.Sub(now)
	if delay <= 0 {
		f.next = now.Add(f.step)
		select {
		case <-stop:
			return false
		default:
			return true
		}
	}
	f.next = f.next.Add(f.step)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-stop:
		return false
	case <-timer.C:
		return true
	}
}
