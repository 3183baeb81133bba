// SPDX-License-Identifier: MIT

// Package topology: functional configuration for the topology validator.
// This file defines:
//   - the documented default tolerance (single source of truth),
//   - Option / WithTolerance with strong validation (panic on nonsensical
//     values — programmer error, never a data error).
package topology

import (
	"fmt"
	"math"
)

// DefaultTolerance is the area (km²) below which computed overlap, gap,
// leak and symmetric-difference areas are treated as numerical noise
// rather than real defects.
const DefaultTolerance = 1e-8

// options carries resolved validator parameters. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	tol float64
}

// Option configures Validate via functional arguments.
type Option func(*options)

// WithTolerance overrides the area tolerance in km².
//
// The tolerance must be a non-negative finite number; anything else is a
// programmer error and panics at option-construction time, so the mistake
// surfaces at the call site rather than as a silently absurd validation
// result.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 {
		panic(fmt.Sprintf("topology: WithTolerance(%v): tolerance must be non-negative", tol))
	}

	return func(o *options) { o.tol = tol }
}

// resolve applies opts over the defaults.
func resolve(opts []Option) options {
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
