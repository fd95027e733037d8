// SPDX-License-Identifier: MIT

package shell

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/matshell/matrix"
)

// Option mutates session options.
type Option func(*options)

type options struct {
	logger *slog.Logger
	source matrix.Source
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the session logger. It is also handed to the registry.
// A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource replaces the PCG generator built from the configured seed.
func WithSource(src matrix.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
