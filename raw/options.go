package raw

// Option configures a Parse call. Parse starts from the defaults (a 64KiB
// read buffer) and applies each Option on top, so callers that don't need
// the knob can ignore this entirely.
type Option func(*options)

type options struct {
	bufferSize int
}

const defaultBufferSize = 64 * 1024

func newOptions(opts []Option) options {
	o := options{bufferSize: defaultBufferSize}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithBufferSize overrides the size of the buffered reader Parse wraps
// non-buffered input in (spec §5's "buffered reader" performance
// contract). Most callers never need this; it exists for tests that want
// to exercise the wrapping decision with a tiny buffer.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}
