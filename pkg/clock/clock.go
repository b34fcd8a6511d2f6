package clock

import "time"

// Timer is a pending one-shot deferred execution.
type Timer interface {
	// Stop cancels the timer. It reports false when the timer already fired
	// or was already stopped, which makes cancel-after-fire a no-op.
	Stop() bool
}

// Clock abstracts the time source and deferred execution so schedulers can be
// tested without real waiting.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real binds the clock to the process time source and timers.
type Real struct{}

// NewReal creates the production clock.
func NewReal() Real {
	return Real{}
}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f in its own goroutine after d elapses.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
