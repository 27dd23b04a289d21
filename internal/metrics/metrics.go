// Package metrics implements the ranking metrics the trainer selects and
// reports models by: area under the ROC curve and average precision.
package metrics

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ErrSingleClass is returned when a metric is undefined because the
// labels contain only one class.
var ErrSingleClass = errors.New("metric undefined: labels contain a single class")

// ROCAUC computes the area under the ROC curve for probability scores
// against binary labels (true = positive class).
func ROCAUC(scores []float64, labels []bool) (float64, error) {
	if err := checkInput(scores, labels); err != nil {
		return 0, err
	}

	y := append([]float64(nil), scores...)
	classes := append([]bool(nil), labels...)
	sortByScore(y, classes)

	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)

	// stat.ROC emits the curve from the lowest cutoff to the highest;
	// Trapezoidal wants ascending abscissae.
	if len(fpr) > 1 && fpr[0] > fpr[len(fpr)-1] {
		reverse(fpr)
		reverse(tpr)
	}

	return integrate.Trapezoidal(fpr, tpr), nil
}

// AveragePrecision computes the area under the precision-recall curve
// using the step-wise interpolation sum over descending scores.
func AveragePrecision(scores []float64, labels []bool) (float64, error) {
	if err := checkInput(scores, labels); err != nil {
		return 0, err
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	totalPos := 0
	for _, l := range labels {
		if l {
			totalPos++
		}
	}

	ap := 0.0
	tp := 0
	prevRecall := 0.0
	for n, idx := range order {
		if labels[idx] {
			tp++
			precision := float64(tp) / float64(n+1)
			recall := float64(tp) / float64(totalPos)
			ap += (recall - prevRecall) * precision
			prevRecall = recall
		}
	}
	return ap, nil
}

// Summary returns the mean and population standard deviation of the
// per-fold values.
func Summary(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.Mean(values, nil), stat.PopStdDev(values, nil)
}

func checkInput(scores []float64, labels []bool) error {
	if len(scores) != len(labels) || len(scores) == 0 {
		return errors.New("scores and labels must be non-empty and of equal length")
	}
	pos := 0
	for _, l := range labels {
		if l {
			pos++
		}
	}
	if pos == 0 || pos == len(labels) {
		return ErrSingleClass
	}
	return nil
}

func sortByScore(scores []float64, classes []bool) {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	sortedScores := make([]float64, len(scores))
	sortedClasses := make([]bool, len(classes))
	for i, idx := range order {
		sortedScores[i] = scores[idx]
		sortedClasses[i] = classes[idx]
	}
	copy(scores, sortedScores)
	copy(classes, sortedClasses)
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
