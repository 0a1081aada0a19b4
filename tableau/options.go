// SPDX-License-Identifier: MIT

package tableau

// Options configures NewInitial.
type Options struct {
	// Optimise orders tetrahedron blocks by a breadth-first walk of the
	// facet-pairing graph, so that neighbouring blocks share matching rows.
	Optimise bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: identity block order.
func DefaultOptions() Options { return Options{} }

// WithOptimise sets the optimise-for-enumeration hint.
func WithOptimise(on bool) Option { return func(o *Options) { o.Optimise = on } }
