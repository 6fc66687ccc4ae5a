package space

import (
	"log/slog"
	"strconv"
)

const (
	// DefaultDepthLimit is the number of times the root may be subdivided.
	DefaultDepthLimit = 8

	// DefaultLeafItemLimit is the item count at which a leaf subdivides.
	DefaultLeafItemLimit = 4
)

type options struct {
	depthLimit    int
	leafItemLimit int
	logger        *Logger
	metrics       MetricsCollector
}

// Option configures New.
type Option func(*options)

// WithDepthLimit sets how many levels below the root may be created. A depth
// limit of 0 keeps the root a single leaf with no item limit.
func WithDepthLimit(depth int) Option {
	return func(o *options) {
		o.depthLimit = depth
	}
}

// WithLeafItemLimit sets the item count at which a leaf subdivides. Internal
// nodes merge back into a leaf once they hold fewer than half of it.
func WithLeafItemLimit(limit int) Option {
	return func(o *options) {
		o.leafItemLimit = limit
	}
}

// WithLogger configures structured logging of subdivisions, merges and
// stale-position deletes. Pass nil to disable logging.
//
// Example:
//
//	s, err := space.New[*Body](bound, space.WithLogger(space.NewTextLogger(slog.LevelDebug)))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable
// metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		depthLimit:    DefaultDepthLimit,
		leafItemLimit: DefaultLeafItemLimit,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	if o.depthLimit < 0 {
		return o, &ConfigError{Field: "depth limit", Value: strconv.Itoa(o.depthLimit), cause: ErrInvalidDepthLimit}
	}
	if o.leafItemLimit < 1 {
		return o, &ConfigError{Field: "leaf item limit", Value: strconv.Itoa(o.leafItemLimit), cause: ErrInvalidLeafItemLimit}
	}
	return o, nil
}
