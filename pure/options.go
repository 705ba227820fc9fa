package pure

import "go.uber.org/zap"

// Option configures a cacher at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

func collectOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger cache events are written to. Hits, misses and
// computations are logged at debug level; failed computations at warn level.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName attaches a human readable name to every log line of the cacher.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
