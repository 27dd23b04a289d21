// Package train orchestrates cross-validated model fitting over the
// engineered feature table: grouped folds by vaga id, one classifier per
// usable fold, best-fold selection by validation ROC AUC, and atomic
// persistence of the winner.
package train

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/features"
	"github.com/decisionai/candidate-ranker/internal/gbm"
	"github.com/decisionai/candidate-ranker/internal/metrics"
	"github.com/decisionai/candidate-ranker/internal/ordinal"
)

// ErrNoPositiveLabels reports a label distribution no fold can be
// trained on: zero hired candidates on one side of every split.
var ErrNoPositiveLabels = errors.New("no fold had positive labels on both sides of the split")

// Config controls a training run.
type Config struct {
	Folds  int
	Params gbm.Params
}

// FoldMetrics is the validation outcome of one non-skipped fold.
type FoldMetrics struct {
	Fold             int
	AUC              float64
	AveragePrecision float64
	BestIteration    int
}

// Result is a completed training run.
type Result struct {
	Best        *gbm.Booster
	BestFold    int
	Folds       []FoldMetrics
	MeanAUC     float64
	StdAUC      float64
	MeanAP      float64
	StdAP       float64
	SkippedFolds int
}

// Run trains one classifier per grouped fold and keeps the best by
// validation AUC. Folds with a single-class partition on either side are
// skipped and logged; if that leaves nothing, Run fails loudly rather
// than hand back an undefined model.
func Run(table *dataset.Table, cfg Config, logger *zap.Logger) (*Result, error) {
	X := table.Drop(features.ColSituacaoOrd)
	situacao, err := table.Column(features.ColSituacaoOrd)
	if err != nil {
		return nil, fmt.Errorf("feature table has no label column: %w", err)
	}

	y := make([]bool, len(situacao))
	positives := 0
	for i, s := range situacao {
		y[i] = s == float64(ordinal.StatusHired)
		if y[i] {
			positives++
		}
	}
	logger.Info("label balance",
		zap.Int("rows", len(y)),
		zap.Int("positives", positives),
	)

	groups := make([]string, len(table.Keys))
	for i, k := range table.Keys {
		groups[i] = k.VagaID
	}

	folds := GroupKFold(groups, cfg.Folds)
	if folds == nil {
		return nil, fmt.Errorf("cannot build %d grouped folds from %d rows", cfg.Folds, table.Len())
	}

	result := &Result{BestFold: -1}
	var aucs, aps []float64

	for f, fold := range folds {
		trainX, trainY := subset(X.Rows, y, fold.Train)
		valX, valY := subset(X.Rows, y, fold.Validation)

		if countTrue(trainY) == 0 || countTrue(valY) == 0 {
			logger.Warn("skipping fold without positive labels on both sides",
				zap.Int("fold", f),
				zap.Int("train_positives", countTrue(trainY)),
				zap.Int("val_positives", countTrue(valY)),
			)
			result.SkippedFolds++
			continue
		}

		model, err := gbm.Train(trainX, trainY, X.Columns, &gbm.EvalSet{X: valX, Y: valY}, cfg.Params)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", f, err)
		}

		probs, err := model.PredictProbability(valX)
		if err != nil {
			return nil, fmt.Errorf("fold %d validation predict: %w", f, err)
		}

		auc, err := metrics.ROCAUC(probs, valY)
		if err != nil {
			return nil, fmt.Errorf("fold %d auc: %w", f, err)
		}
		ap, err := metrics.AveragePrecision(probs, valY)
		if err != nil {
			return nil, fmt.Errorf("fold %d average precision: %w", f, err)
		}

		logger.Info("fold trained",
			zap.Int("fold", f),
			zap.Float64("auc", auc),
			zap.Float64("average_precision", ap),
			zap.Int("best_iteration", model.BestIteration()),
		)

		fm := FoldMetrics{Fold: f, AUC: auc, AveragePrecision: ap, BestIteration: model.BestIteration()}
		result.Folds = append(result.Folds, fm)
		aucs = append(aucs, auc)
		aps = append(aps, ap)

		if result.Best == nil || auc > bestAUC(result) {
			result.Best = model
			result.BestFold = f
		}
	}

	if result.Best == nil {
		return nil, ErrNoPositiveLabels
	}

	result.MeanAUC, result.StdAUC = metrics.Summary(aucs)
	result.MeanAP, result.StdAP = metrics.Summary(aps)

	logger.Info("cross-validation summary",
		zap.Int("folds_used", len(result.Folds)),
		zap.Int("folds_skipped", result.SkippedFolds),
		zap.Int("best_fold", result.BestFold),
		zap.Float64("mean_auc", result.MeanAUC),
		zap.Float64("std_auc", result.StdAUC),
		zap.Float64("mean_average_precision", result.MeanAP),
		zap.Float64("std_average_precision", result.StdAP),
	)

	return result, nil
}

func bestAUC(r *Result) float64 {
	best := 0.0
	for _, fm := range r.Folds {
		if fm.Fold == r.BestFold {
			best = fm.AUC
		}
	}
	return best
}

func subset(rows [][]float64, y []bool, idx []int) ([][]float64, []bool) {
	outX := make([][]float64, len(idx))
	outY := make([]bool, len(idx))
	for i, j := range idx {
		outX[i] = rows[j]
		outY[i] = y[j]
	}
	return outX, outY
}

func countTrue(y []bool) int {
	n := 0
	for _, v := range y {
		if v {
			n++
		}
	}
	return n
}
