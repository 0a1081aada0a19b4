// SPDX-License-Identifier: MIT

// Command regina-tree runs tree-traversal searches for normal surfaces and
// taut angle structures on triangulations given by isomorphism signature.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
