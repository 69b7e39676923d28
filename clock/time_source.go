// Package clock abstracts one-shot timer scheduling behind a TimeSource,
// so timing-dependent code can run against a mocked clock in tests.
//
// A scheduled callback fires no earlier than the requested delay; no exactness
// beyond that is promised, mirroring the runtime timer contract.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// TimeSource provides the current time and one-shot callback scheduling.
type TimeSource interface {
	Now() time.Time

	// AfterFunc schedules f to run on its own goroutine no earlier than d from now.
	// The returned Timer cancels the callback if it has not fired yet.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the cancellation handle for a scheduled callback.
type Timer interface {
	// Stop reports whether it prevented the callback from firing.
	// A false return means the callback already fired or may be in flight.
	Stop() bool
}

// MockedTimeSource is a TimeSource whose time only moves when told to.
type MockedTimeSource interface {
	TimeSource

	// Advance moves the mocked clock forward, firing callbacks whose
	// deadlines are reached. Callbacks run asynchronously; synchronize on
	// their observable effects, not on Advance returning.
	Advance(d time.Duration)

	// BlockUntil blocks until at least n timers are waiting on the clock.
	BlockUntil(n int)
}

type systemTimeSource struct {
	clk clockwork.Clock
}

// NewRealTimeSource returns a TimeSource backed by the wall clock.
func NewRealTimeSource() TimeSource {
	return systemTimeSource{clk: clockwork.NewRealClock()}
}

func (s systemTimeSource) Now() time.Time {
	return s.clk.Now()
}

func (s systemTimeSource) AfterFunc(d time.Duration, f func()) Timer {
	return s.clk.AfterFunc(d, f)
}

type mockedTimeSource struct {
	clk *clockwork.FakeClock
}

// NewMockedTimeSource returns a MockedTimeSource starting at an arbitrary time.
func NewMockedTimeSource() MockedTimeSource {
	return mockedTimeSource{clk: clockwork.NewFakeClock()}
}

// NewMockedTimeSourceAt returns a MockedTimeSource starting at t.
func NewMockedTimeSourceAt(t time.Time) MockedTimeSource {
	return mockedTimeSource{clk: clockwork.NewFakeClockAt(t)}
}

func (m mockedTimeSource) Now() time.Time {
	return m.clk.Now()
}

func (m mockedTimeSource) AfterFunc(d time.Duration, f func()) Timer {
	return m.clk.AfterFunc(d, f)
}

func (m mockedTimeSource) Advance(d time.Duration) {
	m.clk.Advance(d)
}

func (m mockedTimeSource) BlockUntil(n int) {
	m.clk.BlockUntil(n)
}
