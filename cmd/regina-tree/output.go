// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regina/bigint"
)

func vectorText(v []bigint.Int) string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v[i].String()
	}

	return strings.Join(parts, " ")
}

// emit writes v as YAML, or calls text for the text format.
func (a *app) emit(v interface{}, text func(io.Writer) error) error {
	if a.output == "yaml" {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	return text(a.out)
}

func (a *app) writeResults(results []*result) error {
	return a.emit(results, func(w io.Writer) error {
		for _, r := range results {
			if r == nil {
				continue
			}
			if err := writeResultText(w, r); err != nil {
				return err
			}
		}

		return nil
	})
}

func writeResultText(w io.Writer, r *result) error {
	if _, err := fmt.Fprintf(w, "# %s %s %s constraint=%s ban=%s\n",
		r.Mode, r.Signature, r.Coords, r.Constraint, r.Ban); err != nil {
		return err
	}
	for _, s := range r.Solutions {
		line := s.Types + " : " + s.Vector
		if s.Euler != "" {
			line += " : chi=" + s.Euler
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	status := "complete"
	if !r.Complete {
		status = "incomplete"
	}
	_, err := fmt.Fprintf(w, "# %d solutions, %d nodes, %d pivots, %s\n",
		len(r.Solutions), r.Nodes, r.Pivots, status)

	return err
}
