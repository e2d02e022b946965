package bitarray

type options struct {
	logger       *Logger
	initialValue bool
}

// Option configures bit array construction.
type Option func(*options)

// WithLogger configures the logger used to report allocations and rejected operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithInitialValue configures the value every bit holds after construction.
//
// The default is false: backing words are zeroed, including the unused
// tail of the final word.
func WithInitialValue(value bool) Option {
	return func(o *options) {
		o.initialValue = value
	}
}

func newOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
