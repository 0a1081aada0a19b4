// SPDX-License-Identifier: MIT

package treetraversal

import (
	"github.com/sirupsen/logrus"
)

// Event describes the state of a traversal when something notable happens.
type Event struct {
	Mode      string
	Level     int
	Nodes     int64
	Solutions int
	Types     string // current type vector, empty at search end
}

// Tracer observes a traversal. Methods run on the searching goroutine.
type Tracer interface {
	Solution(Event)
	Cancelled(Event)
	Done(Event)
}

// NopTracer ignores every event.
type NopTracer struct{}

// Solution does nothing.
func (NopTracer) Solution(Event) {}

// Cancelled does nothing.
func (NopTracer) Cancelled(Event) {}

// Done does nothing.
func (NopTracer) Done(Event) {}

// LogTracer writes events to a logrus logger: solutions at debug level,
// cancellation and completion at info level.
type LogTracer struct {
	Logger logrus.FieldLogger
}

func (t LogTracer) entry(ev Event) *logrus.Entry {
	return t.Logger.WithFields(logrus.Fields{
		"mode":      ev.Mode,
		"level":     ev.Level,
		"nodes":     ev.Nodes,
		"solutions": ev.Solutions,
	})
}

// Solution logs a solution with its type vector.
func (t LogTracer) Solution(ev Event) {
	t.entry(ev).WithField("types", ev.Types).Debug("solution")
}

// Cancelled logs a cancelled search.
func (t LogTracer) Cancelled(ev Event) { t.entry(ev).Info("search cancelled") }

// Done logs a finished search.
func (t LogTracer) Done(ev Event) { t.entry(ev).Info("search finished") }
