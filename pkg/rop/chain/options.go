package chain

import (
	"time"

	"github.com/google/uuid"
)

type Option func(*runOptions)

type runOptions struct {
	id    uuid.UUID
	clock func() time.Time
}

// WithID sets the run id instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *runOptions) {
		o.id = id
	}
}

// WithClock sets the source of the start time.
func WithClock(clock func() time.Time) Option {
	return func(o *runOptions) {
		o.clock = clock
	}
}

func newRunOptions(opts []Option) runOptions {
	o := runOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	return o
}
