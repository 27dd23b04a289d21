// Package predict adapts a trained model to feature tables at serving
// time. Model capabilities are explicit interfaces checked once, not
// attribute probes scattered across call sites: a value that cannot
// produce probabilities is rejected with a named error instead of being
// silently degraded to another prediction mode.
package predict

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/gbm"
)

// ErrMissingCapability reports a model without probability prediction.
var ErrMissingCapability = errors.New("model does not expose probability prediction")

// ProbabilisticClassifier is the one capability ranking requires.
type ProbabilisticClassifier interface {
	PredictProbability(X [][]float64) ([]float64, error)
}

// ColumnAware models expose their training-time column order, enabling
// inference-time alignment.
type ColumnAware interface {
	FeatureNames() []string
}

// FeatureImportanceProvider is optional; models without it simply report
// no importances.
type FeatureImportanceProvider interface {
	FeatureImportances() []gbm.Importance
}

// Ranking returns one hiring probability per row of the table. When the
// model is ColumnAware the table is reindexed to the model's exact
// column order first, filling columns the table is missing with 0 - the
// deliberate leniency guarding against drift between engineering and
// serving.
func Ranking(model any, table *dataset.Table) ([]float64, error) {
	clf, ok := model.(ProbabilisticClassifier)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", ErrMissingCapability, model)
	}

	aligned := table
	if aware, ok := model.(ColumnAware); ok {
		aligned = table.Align(aware.FeatureNames())
	}

	return clf.PredictProbability(aligned.Matrix())
}

// Importance returns the model's ranked feature importances, or nil when
// the model lacks the capability. Absence is not an error.
func Importance(model any) []gbm.Importance {
	provider, ok := model.(FeatureImportanceProvider)
	if !ok {
		return nil
	}
	return provider.FeatureImportances()
}

// RankedRow pairs a table row with its predicted probability.
type RankedRow struct {
	Key         dataset.RowKey
	Probability float64
	Row         []float64
}

// Rank scores every row of the table and returns rows sorted by
// probability, highest first. Sorting is stable so equal probabilities
// keep table order.
func Rank(model any, table *dataset.Table) ([]RankedRow, error) {
	probs, err := Ranking(model, table)
	if err != nil {
		return nil, err
	}

	out := make([]RankedRow, table.Len())
	for i := range out {
		out[i] = RankedRow{Key: table.Keys[i], Probability: probs[i], Row: table.Rows[i]}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Probability > out[b].Probability
	})
	return out, nil
}
