// Package output delivers mission plans to stdout, files and GreptimeDB.
package output

import (
	"errors"

	"mission-copilot/internal/mission"
)

// Writer receives finished plans.
type Writer interface {
	WritePlan(p *mission.Plan) error
}

// MultiWriter fans a plan out to several writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...Writer) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WritePlan sends the plan to every writer. All writers are attempted and
// their failures joined.
func (mw *MultiWriter) WritePlan(p *mission.Plan) error {
	var errs []error
	for _, w := range mw.writers {
		if err := w.WritePlan(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len reports how many writers are attached.
func (mw *MultiWriter) Len() int { return len(mw.writers) }
