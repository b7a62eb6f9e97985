package bloom

import "go.uber.org/zap"

type Options struct {
	bitSet BitSet
	log    *zap.Logger
}

type Option func(*Options)

// WithBitSet selects the storage for the filter bits. The filter calls
// Init on it, so any previous content is discarded.
func WithBitSet(b BitSet) Option {
	return func(o *Options) {
		o.bitSet = b
	}
}

// WithLogger sets the logger. Insertions are reported at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

func newOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.bitSet == nil {
		o.bitSet = NewMemoryBitSet()
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o
}
