package throttle

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/throttle_ive_go/clock"
)

var (
	// ErrNegativeDelay is returned by New when the delay is below zero.
	ErrNegativeDelay = errors.New("throttle: delay must be non-negative")

	// ErrNilFunc is returned by New when the wrapped function is nil.
	ErrNilFunc = errors.New("throttle: wrapped function must not be nil")
)

// Limiter throttles calls to a wrapped func(T).
//
// All entry points serialize on one mutex, and the wrapped function runs while
// it is held, so fn must not call back into its own Limiter.
type Limiter[T any] struct {
	fn     func(T)
	delay  time.Duration
	conf   config
	logger *zap.Logger
	id     string

	mu          sync.Mutex
	timer       clock.Timer
	gen         uint64
	windowOpen  bool
	pending     *T
	windowStart time.Time
}

// New wraps fn with a Limiter enforcing at most one execution per delay window.
// Defaults: leading and trailing on, debounce off; see Options to change them.
// A zero delay is allowed and degenerates to executing every call.
func New[T any](fn func(T), delay time.Duration, opts ...Option) (*Limiter[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeDelay, delay)
	}

	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}

	l := &Limiter[T]{
		fn:     fn,
		delay:  delay,
		conf:   conf,
		logger: conf.logger,
		id:     uuid.New().String(),
	}
	l.logger.Debug("created limiter",
		zap.String("limiterId", l.id),
		zap.Duration("delay", delay),
		zap.Bool("leading", conf.leading),
		zap.Bool("trailing", conf.trailing),
		zap.Bool("debounce", conf.debounce),
	)
	return l, nil
}

// Call observes one call with argument v.
//
// While idle it may execute fn(v) immediately (leading) and always opens a new
// window. While a window is open, v replaces whatever call was pending; in
// debounce mode it also slides the deadline forward by the full delay.
// A panic from fn propagates to the caller with the limiter state already
// finalized, as if the execution had succeeded.
func (l *Limiter[T]) Call(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Latest call always captured first, then the edge logic runs.
	l.pending = &v

	if !l.windowOpen {
		runLeading := l.conf.leading
		if runLeading {
			l.pending = nil
		}
		l.armLocked()
		if runLeading {
			l.logger.Debug("leading execution", zap.String("limiterId", l.id))
			l.fn(v)
		}
		return
	}

	if l.conf.debounce {
		l.timer.Stop()
		l.armLocked()
	}
}

// Flush runs the deadline transition immediately, if a window is open: the
// pending call is delivered now (when trailing is on) or discarded, and never
// left pending. With no open window Flush is a no-op.
func (l *Limiter[T]) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.windowOpen {
		return
	}
	l.timer.Stop()
	l.logger.Debug("flushed", zap.String("limiterId", l.id))
	l.closeWindowLocked()
}

// Clear cancels any armed timer and discards the pending call without running
// it. Afterwards the limiter behaves as newly constructed; no timer armed
// before Clear will fire. Clear is idempotent.
func (l *Limiter[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	// Fence out any deadline callback already in flight.
	l.gen++
	l.windowOpen = false
	l.pending = nil
	l.logger.Debug("cleared", zap.String("limiterId", l.id))
}

// Window reports the span of the currently open window, from its opening to
// its deadline. The second return is false while the limiter is idle.
func (l *Limiter[T]) Window() (timespan.TimeSpan, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.windowOpen {
		return timespan.TimeSpan{}, false
	}
	return timespan.BetweenTimes(l.windowStart, l.windowStart.Add(l.delay)), true
}

// armLocked opens a fresh window: bumps the generation so stale deadline
// callbacks become no-ops, and schedules the deadline timer.
func (l *Limiter[T]) armLocked() {
	l.gen++
	gen := l.gen
	l.windowStart = l.conf.timeSource.Now()
	l.windowOpen = true
	l.timer = l.conf.timeSource.AfterFunc(l.delay, func() {
		l.onDeadline(gen)
	})
}

// onDeadline is the timer callback. The generation check discards firings that
// lost a race with Clear, Flush, or a debounce re-arm: Stop cannot cancel a
// callback that is already in flight.
func (l *Limiter[T]) onDeadline(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || !l.windowOpen {
		return
	}
	l.closeWindowLocked()
}

// closeWindowLocked is the shared deadline transition for onDeadline and Flush.
// The window closes first; a pending call is then taken, the window re-armed,
// and the call delivered per the trailing setting. Re-arming before delivery
// keeps the state consistent even if fn panics, and is what bounds sustained
// call pressure to one execution per delay.
func (l *Limiter[T]) closeWindowLocked() {
	l.windowOpen = false
	l.timer = nil

	if l.pending == nil {
		l.logger.Debug("window closed idle", zap.String("limiterId", l.id))
		return
	}

	v := *l.pending
	l.pending = nil
	l.armLocked()
	if l.conf.trailing {
		l.logger.Debug("trailing execution", zap.String("limiterId", l.id))
		l.fn(v)
	}
}
