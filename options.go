package soa

type options struct {
	capacity int
}

// Option configures container construction.
type Option func(*options)

// WithCapacity reserves room for n records in every column up front.
//
// Values <= 0 are ignored, as are values above the container's MaxLen.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
