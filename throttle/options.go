package throttle

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/throttle_ive_go/clock"
)

type config struct {
	leading    bool
	trailing   bool
	debounce   bool
	timeSource clock.TimeSource
	logger     *zap.Logger
}

func defaultConfig() config {
	return config{
		leading:    true,
		trailing:   true,
		debounce:   false,
		timeSource: clock.NewRealTimeSource(),
		logger:     zap.NewNop(),
	}
}

// Option configures a Limiter at construction.
type Option func(*config)

// WithLeading controls whether the first call of a new window executes
// immediately. Default true.
func WithLeading(enabled bool) Option {
	return func(c *config) { c.leading = enabled }
}

// WithTrailing controls whether a call pending at the deadline is executed.
// Default true. With both leading and trailing off, calls are never executed.
func WithTrailing(enabled bool) Option {
	return func(c *config) { c.trailing = enabled }
}

// WithDebounce makes every call inside an open window slide the deadline
// forward, so execution waits for a full delay of silence. Default false.
func WithDebounce(enabled bool) Option {
	return func(c *config) { c.debounce = enabled }
}

// WithTimeSource injects the clock used for window deadlines.
// Defaults to the wall clock; tests inject a clock.MockedTimeSource.
func WithTimeSource(ts clock.TimeSource) Option {
	return func(c *config) { c.timeSource = ts }
}

// WithLogger injects the logger for lifecycle and transition debug events.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}
