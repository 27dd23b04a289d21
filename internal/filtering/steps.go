package filtering

import (
	"fmt"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/features"
)

type vagaFilter struct {
	vagaID string
}

// NewVaga creates the filter restricting the table to one job opening.
func NewVaga(vagaID string) Filter {
	return &vagaFilter{vagaID: vagaID}
}

func (f *vagaFilter) Name() string { return "vaga" }

func (f *vagaFilter) Apply(t *dataset.Table) (*dataset.Table, Step, error) {
	initial := t.Len()
	out := t.FilterRows(func(key dataset.RowKey, _ []float64) bool {
		return key.VagaID == f.vagaID
	})
	return out, Step{Initial: initial, Dropped: initial - out.Len(), Left: out.Len()}, nil
}

type flagFilter struct {
	name   string
	column string
}

// NewEnglishOK keeps candidates whose English level satisfies the vaga.
func NewEnglishOK() Filter {
	return &flagFilter{name: "english_ok", column: features.ColInglesOK}
}

// NewSeniorityOK keeps candidates at or above the vaga's seniority.
func NewSeniorityOK() Filter {
	return &flagFilter{name: "seniority_ok", column: features.ColSenioridadeOK}
}

// NewSapKnown keeps candidates with SAP in their skill set.
func NewSapKnown() Filter {
	return &flagFilter{name: "sap_known", column: features.ColCandHasSap}
}

func (f *flagFilter) Name() string { return f.name }

func (f *flagFilter) Apply(t *dataset.Table) (*dataset.Table, Step, error) {
	idx := t.ColumnIndex(f.column)
	if idx < 0 {
		return nil, Step{}, fmt.Errorf("table has no column %q", f.column)
	}

	initial := t.Len()
	out := t.FilterRows(func(_ dataset.RowKey, row []float64) bool {
		return row[idx] == 1
	})
	return out, Step{Initial: initial, Dropped: initial - out.Len(), Left: out.Len()}, nil
}

type minOverlapFilter struct {
	min float64
}

// NewMinTechOverlap keeps candidates sharing at least min technical
// terms with the vaga. A zero threshold keeps everyone.
func NewMinTechOverlap(min int) Filter {
	return &minOverlapFilter{min: float64(min)}
}

func (f *minOverlapFilter) Name() string { return "min_tech_overlap" }

func (f *minOverlapFilter) Apply(t *dataset.Table) (*dataset.Table, Step, error) {
	initial := t.Len()
	if f.min <= 0 {
		return t, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	idx := t.ColumnIndex(features.ColTechOverlapCount)
	if idx < 0 {
		return nil, Step{}, fmt.Errorf("table has no column %q", features.ColTechOverlapCount)
	}

	out := t.FilterRows(func(_ dataset.RowKey, row []float64) bool {
		return row[idx] >= f.min
	})
	return out, Step{Initial: initial, Dropped: initial - out.Len(), Left: out.Len()}, nil
}
