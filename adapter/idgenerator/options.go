package idgenerator

import (
	"io"
	"time"
)

// WithReader sets the reader that will provide random bytes.
func WithReader(r io.Reader) Option {
	return func(i *IDGenerator) {
		i.reader = r
	}
}

// WithNow sets the clock used for the time component.
func WithNow(now func() time.Time) Option {
	return func(i *IDGenerator) {
		i.now = now
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*IDGenerator)
