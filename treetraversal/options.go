// SPDX-License-Identifier: MIT

package treetraversal

// Options configures a traversal.
type Options struct {
	// TypeOrder lists tetrahedra in the order their quadrilateral types
	// are decided. Nil means block order.
	TypeOrder []int
	// TreeDecompositionOrder derives TypeOrder from a tree decomposition
	// of the facet-pairing graph. It is ignored when TypeOrder is set.
	TreeDecompositionOrder bool
	// Optimise orders tableau columns by a breadth-first walk of the
	// facet-pairing graph.
	Optimise bool
	// Tracer receives search events.
	Tracer Tracer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: optimised column order, block type
// order, no tracing.
func DefaultOptions() Options {
	return Options{Optimise: true, Tracer: NopTracer{}}
}

// WithTypeOrder fixes the order in which tetrahedra get their types.
func WithTypeOrder(order []int) Option {
	return func(o *Options) { o.TypeOrder = append([]int(nil), order...) }
}

// WithTreeDecompositionOrder orders tetrahedra by first appearance in the
// postfix bag order of a greedy tree decomposition.
func WithTreeDecompositionOrder() Option {
	return func(o *Options) { o.TreeDecompositionOrder = true }
}

// WithOptimise sets Options.Optimise.
func WithOptimise(on bool) Option { return func(o *Options) { o.Optimise = on } }

// WithTracer sets the event sink. A nil tracer disables tracing.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t == nil {
			t = NopTracer{}
		}
		o.Tracer = t
	}
}
