package db

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

// Option configures a Table.
type Option func(*config)

// WithLogger makes the table report resizes to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
