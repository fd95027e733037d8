// SPDX-License-Identifier: MIT

// Package registry: functional configuration.
//
// Design goals:
//   - No global state: logger and metrics are per-Registry.
//   - Safe defaults: a discard logger and no metrics.
package registry

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultCapacity is the slot count used by the shell when none is configured.
const DefaultCapacity = 10

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for eviction and teardown events.
// A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers the registry collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
