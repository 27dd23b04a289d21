// Package filtering narrows a feature table to the candidates a
// recruiter asked to see: one filter per qualification criterion,
// applied sequentially with per-step accounting so the effect of every
// criterion on the candidate pool stays visible.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decisionai/candidate-ranker/internal/dataset"
)

// Filter is a single filtering step applied to candidate rows.
type Filter interface {
	Name() string
	Apply(t *dataset.Table) (*dataset.Table, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, logging one entry per
// step, and returns the remaining rows.
func Run(filters []Filter, t *dataset.Table, logger *zap.Logger) (*dataset.Table, error) {
	for _, f := range filters {
		next, info, err := f.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", f.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		t = next
	}
	return t, nil
}
