package features

import (
	"testing"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/ordinal"
	"github.com/decisionai/candidate-ranker/internal/preprocess"
)

func row(vagaID, candID string) preprocess.JoinedRow {
	var r preprocess.JoinedRow
	r.Prospect.VagaID = vagaID
	r.Prospect.CodigoCandidato = candID
	return r
}

func cell(t *testing.T, tbl *dataset.Table, col string, i int) float64 {
	t.Helper()
	values, err := tbl.Column(col)
	if err != nil {
		t.Fatalf("column %s: %v", col, err)
	}
	return values[i]
}

func TestEngineerTechOverlap(t *testing.T) {
	t.Parallel()

	r := row("v1", "c1")
	r.Vaga.PrincipaisAtividades = "Desenvolvimento Python"
	r.Vaga.CompetenciaTecnicas = "AWS obrigatório"
	r.Applicant.ConhecimentosTecnicos = "Python, SAP"
	r.Applicant.CvPt = "Docker em produção"

	tbl := Engineer([]preprocess.JoinedRow{r})

	if got := cell(t, tbl, ColTechOverlapCount, 0); got != 1 {
		t.Fatalf("tech_overlap_count = %v, want 1 (only python intersects)", got)
	}
	if got := cell(t, tbl, ColCandHasSap, 0); got != 1 {
		t.Fatalf("cand_has_sap = %v, want 1", got)
	}
	if got := cell(t, tbl, ColIsSapVaga, 0); got != 0 {
		t.Fatalf("is_sap_vaga = %v, want 0", got)
	}
	if got := cell(t, tbl, ColSapPair, 0); got != 0 {
		t.Fatalf("sap_pair = %v, want 0", got)
	}
}

func TestEngineerLanguageCompatibility(t *testing.T) {
	t.Parallel()

	r := row("v1", "c1")
	r.Vaga.NivelIngles = "B2"
	r.Applicant.NivelIngles = "Avançado"

	tbl := Engineer([]preprocess.JoinedRow{r})

	if got := cell(t, tbl, ColVagaIngRank, 0); got != 4 {
		t.Fatalf("vaga_ing_rank = %v, want 4", got)
	}
	if got := cell(t, tbl, ColCandIngRank, 0); got != 5 {
		t.Fatalf("cand_ing_rank = %v, want 5", got)
	}
	if got := cell(t, tbl, ColInglesOK, 0); got != 1 {
		t.Fatalf("ingles_ok = %v, want 1", got)
	}
	// both sides rank 0: no requirement is always satisfied
	if got := cell(t, tbl, ColEspanholOK, 0); got != 1 {
		t.Fatalf("espanhol_ok = %v, want 1", got)
	}
}

func TestEngineerSeniorityGap(t *testing.T) {
	t.Parallel()

	r := row("v1", "c1")
	r.Vaga.NivelProfissional = "Senior"
	r.Applicant.TituloProfissional = "Analista Junior"

	tbl := Engineer([]preprocess.JoinedRow{r})

	if got := cell(t, tbl, ColSenioridadeGap, 0); got != -2 {
		t.Fatalf("senioridade_gap = %v, want -2", got)
	}
	if got := cell(t, tbl, ColSenioridadeOK, 0); got != 0 {
		t.Fatalf("senioridade_ok = %v, want 0", got)
	}
	if got := cell(t, tbl, ColOkEngSen, 0); got != 0 {
		t.Fatalf("ok_eng_sen = %v, want 0", got)
	}
}

func TestEngineerFunnelFeatures(t *testing.T) {
	t.Parallel()

	hired := row("v1", "c1")
	hired.Prospect.SituacaoCandidato = "Contratado"
	hired.Prospect.DataCandidatura = "01-03-2024"
	hired.Prospect.UltimaAtualizacao = "15-03-2024"

	rejected := row("v1", "c2")
	rejected.Prospect.SituacaoCandidato = "Reprovado"
	rejected.Prospect.DataCandidatura = "not a date"
	rejected.Prospect.UltimaAtualizacao = "02/03/2024"

	tbl := Engineer([]preprocess.JoinedRow{hired, rejected})

	if got := cell(t, tbl, ColSituacaoOrd, 0); got != float64(ordinal.StatusHired) {
		t.Fatalf("situacao_ord[0] = %v, want %d", got, ordinal.StatusHired)
	}
	if got := cell(t, tbl, ColSituacaoOrd, 1); got != float64(ordinal.StatusRejected) {
		t.Fatalf("situacao_ord[1] = %v, want %d", got, ordinal.StatusRejected)
	}
	if got := cell(t, tbl, ColDaysUpdate, 0); got != 14 {
		t.Fatalf("days_update[0] = %v, want 14", got)
	}
	if got := cell(t, tbl, ColDaysUpdate, 1); got != 0 {
		t.Fatalf("days_update[1] = %v, want 0 for unparseable date", got)
	}
}

func TestQuartileBins(t *testing.T) {
	t.Parallel()

	bins := quartileBins([]float64{10, 40, 20, 30})
	want := []float64{0, 3, 1, 2}
	for i := range want {
		if bins[i] != want[i] {
			t.Fatalf("bins = %v, want %v", bins, want)
		}
	}

	// ties resolved by first-seen order
	tied := quartileBins([]float64{5, 5, 5, 5})
	wantTied := []float64{0, 1, 2, 3}
	for i := range wantTied {
		if tied[i] != wantTied[i] {
			t.Fatalf("tied bins = %v, want %v", tied, wantTied)
		}
	}

	if got := quartileBins(nil); len(got) != 0 {
		t.Fatalf("expected empty bins for empty input")
	}
}

func TestStandardize(t *testing.T) {
	t.Parallel()

	z := standardize([]float64{1, 2, 3})
	if z[1] != 0 {
		t.Fatalf("expected mean value to standardize to 0, got %v", z[1])
	}
	if z[0] >= 0 || z[2] <= 0 {
		t.Fatalf("expected symmetric signs, got %v", z)
	}

	flat := standardize([]float64{7, 7, 7})
	for _, v := range flat {
		if v != 0 {
			t.Fatalf("zero-variance column must standardize to zeros, got %v", flat)
		}
	}
}

func TestEngineerColumnsAllNumeric(t *testing.T) {
	t.Parallel()

	r := row("v1", "c1")
	tbl := Engineer([]preprocess.JoinedRow{r})

	if len(tbl.Columns) != len(Columns()) {
		t.Fatalf("column count %d, want %d", len(tbl.Columns), len(Columns()))
	}
	if tbl.Len() != 1 {
		t.Fatalf("row count %d, want 1", tbl.Len())
	}
	if len(tbl.Rows[0]) != len(tbl.Columns) {
		t.Fatalf("row width %d, want %d", len(tbl.Rows[0]), len(tbl.Columns))
	}
}
