// Package features derives every model-ready column from the joined
// recruitment table. The transform is pure: no I/O, no retained free
// text, output columns are numeric or boolean-as-integer only.
package features

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/ordinal"
	"github.com/decisionai/candidate-ranker/internal/preprocess"
	"github.com/decisionai/candidate-ranker/internal/textnorm"
)

// Feature column names, in the fixed order of the engineered table.
const (
	ColTechOverlapCount = "tech_overlap_count"
	ColIsSapVaga        = "is_sap_vaga"
	ColCandHasSap       = "cand_has_sap"
	ColSapPair          = "sap_pair"
	ColVagaIngRank      = "vaga_ing_rank"
	ColVagaEspRank      = "vaga_esp_rank"
	ColCandIngRank      = "cand_ing_rank"
	ColCandEspRank      = "cand_esp_rank"
	ColInglesOK         = "ingles_ok"
	ColEspanholOK       = "espanhol_ok"
	ColVagaSenRank      = "vaga_sen_rank"
	ColCandSenRank      = "cand_sen_rank"
	ColSenioridadeGap   = "senioridade_gap"
	ColSenioridadeOK    = "senioridade_ok"
	ColDaysUpdate       = "days_update"
	ColSituacaoOrd      = "situacao_ord"
	ColLenCvBin         = "len_cv_bin"
	ColLenCvZ           = "len_cv_pt_z"
	ColOkEngSen         = "ok_eng_sen"
)

// Columns returns the engineered column set in order.
func Columns() []string {
	return []string{
		ColTechOverlapCount,
		ColIsSapVaga, ColCandHasSap, ColSapPair,
		ColVagaIngRank, ColVagaEspRank, ColCandIngRank, ColCandEspRank,
		ColInglesOK, ColEspanholOK,
		ColVagaSenRank, ColCandSenRank, ColSenioridadeGap, ColSenioridadeOK,
		ColDaysUpdate, ColSituacaoOrd,
		ColLenCvBin, ColLenCvZ,
		ColOkEngSen,
	}
}

// Engineer derives the full feature table from the cleaned joined rows.
func Engineer(rows []preprocess.JoinedRow) *dataset.Table {
	t := dataset.New(Columns())

	cvLengths := make([]float64, len(rows))
	for i, r := range rows {
		cvLengths[i] = float64(len([]rune(r.Applicant.CvPt)))
	}
	cvBins := quartileBins(cvLengths)
	cvZ := standardize(cvLengths)

	for i, r := range rows {
		vagaTxt := r.Vaga.PrincipaisAtividades + " " + r.Vaga.CompetenciaTecnicas
		candTxt := r.Applicant.ConhecimentosTecnicos + " " + r.Applicant.CvPt

		isSapVaga := b2f(r.Vaga.VagaSap == preprocess.SapYes)
		candHasSap := b2f(textnorm.ContainsWord(candTxt, "sap"))

		vagaIng := float64(ordinal.LanguageRank(r.Vaga.NivelIngles))
		vagaEsp := float64(ordinal.LanguageRank(r.Vaga.NivelEspanhol))
		candIng := float64(ordinal.LanguageRank(r.Applicant.NivelIngles))
		candEsp := float64(ordinal.LanguageRank(r.Applicant.NivelEspanhol))

		vagaSen := float64(ordinal.SeniorityRank(r.Vaga.NivelProfissional))
		candSen := float64(ordinal.SeniorityRank(r.Applicant.TituloProfissional))

		inglesOK := b2f(candIng >= vagaIng)
		senioridadeOK := b2f(candSen >= vagaSen)

		values := []float64{
			float64(textnorm.OverlapCount(vagaTxt, candTxt)),
			isSapVaga,
			candHasSap,
			b2f(isSapVaga == 1 && candHasSap == 1),
			vagaIng, vagaEsp, candIng, candEsp,
			inglesOK,
			b2f(candEsp >= vagaEsp),
			vagaSen, candSen,
			candSen - vagaSen,
			senioridadeOK,
			daysUpdate(r.Prospect.DataCandidatura, r.Prospect.UltimaAtualizacao),
			float64(ordinal.FunnelStatusRank(r.Prospect.SituacaoCandidato)),
			cvBins[i],
			cvZ[i],
			b2f(inglesOK == 1 && senioridadeOK == 1),
		}

		key := dataset.RowKey{
			VagaID:          r.Prospect.VagaID,
			CodigoCandidato: r.Prospect.CodigoCandidato,
		}
		// width is fixed by construction above
		_ = t.Append(key, values)
	}

	return t
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// dayFirstLayouts are tried in order when parsing application dates.
var dayFirstLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
}

// parseDate parses a day-first date, reporting ok=false when no layout
// matches. Unparseable dates become "missing", never an error.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dayFirstLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// daysUpdate is the whole-day delta between the application date and the
// last update. Either side missing maps to 0. A negative delta from
// dirty data passes through unclamped; consumers tolerate it.
func daysUpdate(candidatura, atualizacao string) float64 {
	start, okStart := parseDate(candidatura)
	end, okEnd := parseDate(atualizacao)
	if !okStart || !okEnd {
		return 0
	}
	return float64(int(end.Sub(start).Hours() / 24))
}

// quartileBins assigns each value an equal-frequency bin 0-3 using
// rank-based binning with ties broken by first-seen order, so the bin
// edges adapt to the dataset at hand. Note the latent train/serve skew:
// bins computed over a different subset are not comparable, so serving
// reuses the training-time table rather than re-binning.
func quartileBins(values []float64) []float64 {
	n := len(values)
	bins := make([]float64, n)
	if n == 0 {
		return bins
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	for rank, idx := range order {
		bins[idx] = float64(4 * rank / n)
	}
	return bins
}

// standardize z-scores the values over the whole column. A degenerate
// column (zero variance) maps to all zeros.
func standardize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	mean, std := stat.MeanStdDev(values, nil)
	if std == 0 || len(values) < 2 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out
}
