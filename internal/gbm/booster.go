// Package gbm implements a gradient-boosted tree classifier for binary
// logistic loss with leaf-wise tree growth and validation-based early
// stopping. It is the model behind candidate ranking: bounded ensemble
// size, fixed learning rate, fixed leaf count, best-iteration selection.
package gbm

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/decisionai/candidate-ranker/internal/metrics"
)

// Params are the classifier hyperparameters. They are fixed by the
// training pipeline, not tuned per run.
type Params struct {
	NumRounds      int     `json:"num_rounds"`
	LearningRate   float64 `json:"learning_rate"`
	NumLeaves      int     `json:"num_leaves"`
	MinLeafSamples int     `json:"min_leaf_samples"`
	Lambda         float64 `json:"lambda"`
	EarlyStopping  int     `json:"early_stopping"`
}

// DefaultParams mirrors the pipeline's fixed hyperparameters: a bounded
// ensemble with early stopping doing the real capacity control.
func DefaultParams() Params {
	return Params{
		NumRounds:      1000,
		LearningRate:   0.05,
		NumLeaves:      31,
		MinLeafSamples: 20,
		Lambda:         1.0,
		EarlyStopping:  50,
	}
}

// EvalSet is the held-out partition driving early stopping.
type EvalSet struct {
	X [][]float64
	Y []bool
}

// Booster is a trained gradient-boosted ensemble. Predictions use the
// early-stopped prefix of the trees, never the full unstopped ensemble.
type Booster struct {
	params        Params
	baseScore     float64
	bestIteration int
	featureNames  []string
	trees         []*node
}

// Importance is one feature's total split gain across the used trees.
type Importance struct {
	Feature string  `json:"feature"`
	Gain    float64 `json:"gain"`
}

// Train fits a booster on X/y. When eval is non-nil, validation ROC AUC
// is evaluated every round and training stops after EarlyStopping rounds
// without improvement; the best round becomes the prediction cutoff.
func Train(X [][]float64, y []bool, featureNames []string, eval *EvalSet, p Params) (*Booster, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, errors.New("training data and labels must be non-empty and of equal length")
	}
	if len(featureNames) != len(X[0]) {
		return nil, fmt.Errorf("%d feature names for %d columns", len(featureNames), len(X[0]))
	}

	pos := 0
	for _, label := range y {
		if label {
			pos++
		}
	}
	if pos == 0 || pos == len(y) {
		return nil, errors.New("training labels contain a single class")
	}

	b := &Booster{
		params:       p,
		baseScore:    logOdds(float64(pos) / float64(len(y))),
		featureNames: append([]string(nil), featureNames...),
	}

	n := len(X)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = b.baseScore
	}
	grad := make([]float64, n)
	hess := make([]float64, n)
	samples := make([]int, n)
	for i := range samples {
		samples[i] = i
	}

	var evalScores []float64
	if eval != nil {
		evalScores = make([]float64, len(eval.X))
		for i := range evalScores {
			evalScores[i] = b.baseScore
		}
	}

	bestAUC := math.Inf(-1)
	stagnant := 0

	for round := 0; round < p.NumRounds; round++ {
		for i := range scores {
			prob := sigmoid(scores[i])
			target := 0.0
			if y[i] {
				target = 1.0
			}
			grad[i] = prob - target
			hess[i] = prob * (1 - prob)
		}

		tree := growTree(X, grad, hess, samples, p)
		b.trees = append(b.trees, tree)
		for i, row := range X {
			scores[i] += tree.predict(row)
		}

		if eval == nil {
			b.bestIteration = len(b.trees)
			continue
		}

		for i, row := range eval.X {
			evalScores[i] += tree.predict(row)
		}
		auc, err := metrics.ROCAUC(evalScores, eval.Y)
		if err != nil {
			// eval labels degenerate: early stopping cannot work,
			// fall back to the full ensemble
			b.bestIteration = len(b.trees)
			continue
		}

		if auc > bestAUC {
			bestAUC = auc
			b.bestIteration = len(b.trees)
			stagnant = 0
		} else {
			stagnant++
			if p.EarlyStopping > 0 && stagnant >= p.EarlyStopping {
				break
			}
		}
	}

	if b.bestIteration == 0 {
		b.bestIteration = len(b.trees)
	}
	return b, nil
}

// PredictProbability returns the hiring probability per row using the
// best iteration's tree prefix.
func (b *Booster) PredictProbability(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(b.featureNames) {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(row), len(b.featureNames))
		}
		score := b.baseScore
		for _, tree := range b.trees[:b.bestIteration] {
			score += tree.predict(row)
		}
		out[i] = sigmoid(score)
	}
	return out, nil
}

// FeatureNames returns the training-time column order.
func (b *Booster) FeatureNames() []string {
	return append([]string(nil), b.featureNames...)
}

// FeatureImportances returns total split gain per feature, descending.
// Features never split on are omitted.
func (b *Booster) FeatureImportances() []Importance {
	gains := make([]float64, len(b.featureNames))
	for _, tree := range b.trees[:b.bestIteration] {
		tree.addGains(gains)
	}

	var out []Importance
	for i, g := range gains {
		if g > 0 {
			out = append(out, Importance{Feature: b.featureNames[i], Gain: g})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Gain > out[b].Gain })
	return out
}

// BestIteration reports how many trees predictions use.
func (b *Booster) BestIteration() int { return b.bestIteration }

// NumTrees reports how many trees were grown before stopping.
func (b *Booster) NumTrees() int { return len(b.trees) }

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logOdds(p float64) float64 {
	return math.Log(p / (1 - p))
}
