// SPDX-License-Identifier: MIT

package treedecomp

// Options configures construction.
type Options struct {
	// Compress merges nested neighbouring bags right after construction.
	Compress bool
	// Nice converts the result to a nice decomposition. It implies Compress.
	Nice bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: the raw greedy decomposition.
func DefaultOptions() Options { return Options{} }

// WithCompress sets Options.Compress.
func WithCompress(on bool) Option { return func(o *Options) { o.Compress = on } }

// WithNice sets Options.Nice.
func WithNice(on bool) Option { return func(o *Options) { o.Nice = on } }
