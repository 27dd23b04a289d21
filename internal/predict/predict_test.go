package predict

import (
	"errors"
	"testing"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/gbm"
)

// fakeModel predicts the value of its first expected column, scaled into
// (0,1), and remembers the matrix it saw.
type fakeModel struct {
	columns []string
	seen    [][]float64
}

func (m *fakeModel) PredictProbability(X [][]float64) ([]float64, error) {
	m.seen = X
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = row[0] / 10
	}
	return out, nil
}

func (m *fakeModel) FeatureNames() []string { return m.columns }

type labelsOnlyModel struct{}

func (labelsOnlyModel) PredictLabel([][]float64) ([]int, error) { return nil, nil }

func table(t *testing.T, columns []string, rows [][]float64) *dataset.Table {
	t.Helper()
	tbl := dataset.New(columns)
	for i, row := range rows {
		key := dataset.RowKey{VagaID: "v", CodigoCandidato: string(rune('a' + i))}
		if err := tbl.Append(key, row); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return tbl
}

func TestRankingAlignsColumns(t *testing.T) {
	t.Parallel()

	// model trained on [a b c], input provides [c a]
	model := &fakeModel{columns: []string{"a", "b", "c"}}
	tbl := table(t, []string{"c", "a"}, [][]float64{{30, 1}, {60, 2}})

	probs, err := Ranking(model, tbl)
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}

	if len(model.seen) != 2 || len(model.seen[0]) != 3 {
		t.Fatalf("model saw matrix of shape %dx%d, want 2x3", len(model.seen), len(model.seen[0]))
	}
	for i, row := range model.seen {
		if row[1] != 0 {
			t.Fatalf("missing column b not zero-filled in row %d: %v", i, row)
		}
	}
	if model.seen[0][0] != 1 || model.seen[0][2] != 30 {
		t.Fatalf("columns not reordered: %v", model.seen[0])
	}
	if probs[0] != 0.1 || probs[1] != 0.2 {
		t.Fatalf("unexpected probabilities: %v", probs)
	}
}

func TestRankingRejectsIncapableModel(t *testing.T) {
	t.Parallel()

	tbl := table(t, []string{"a"}, [][]float64{{1}})
	_, err := Ranking(labelsOnlyModel{}, tbl)
	if !errors.Is(err, ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
}

func TestImportanceOptional(t *testing.T) {
	t.Parallel()

	if imp := Importance(&fakeModel{}); imp != nil {
		t.Fatalf("expected nil importances for model without the capability")
	}

	X := make([][]float64, 30)
	y := make([]bool, 30)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = i >= 15
	}
	p := gbm.DefaultParams()
	p.NumRounds = 5
	p.MinLeafSamples = 1
	booster, err := gbm.Train(X, y, []string{"f"}, nil, p)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if imp := Importance(booster); len(imp) == 0 {
		t.Fatalf("expected importances from a booster")
	}
}

func TestRankSortsDescending(t *testing.T) {
	t.Parallel()

	model := &fakeModel{columns: []string{"a"}}
	tbl := table(t, []string{"a"}, [][]float64{{1}, {9}, {5}})

	ranked, err := Rank(model, tbl)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	if ranked[0].Probability != 0.9 || ranked[1].Probability != 0.5 || ranked[2].Probability != 0.1 {
		t.Fatalf("not sorted descending: %+v", ranked)
	}
	if ranked[0].Key.CodigoCandidato != "b" {
		t.Fatalf("keys not carried through sort: %+v", ranked[0].Key)
	}
}
