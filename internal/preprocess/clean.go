package preprocess

import "strings"

// SAP flag canonical values. The raw field is tri-state-ish free text;
// anything outside the synonym table collapses to "Não", the safe
// default.
const (
	SapYes = "Sim"
	SapNo  = "Não"
)

var sapSynonyms = map[string]string{
	"sim":  SapYes,
	"yes":  SapYes,
	"true": SapYes,
	"não":  SapNo,
	"nao":  SapNo,
	"no":   SapNo,
}

// NormalizeSapFlag maps the raw vaga_sap value to exactly Sim or Não.
func NormalizeSapFlag(s string) string {
	if v, ok := sapSynonyms[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return SapNo
}

// Clean de-duplicates on (vaga_id, codigo_candidato) keeping the first
// occurrence, trims whitespace on every text field and normalizes the
// SAP flag. Output order follows input order.
func Clean(rows []JoinedRow) []JoinedRow {
	seen := make(map[[2]string]bool, len(rows))
	out := make([]JoinedRow, 0, len(rows))

	for _, r := range rows {
		key := [2]string{r.Prospect.VagaID, r.Prospect.CodigoCandidato}
		if seen[key] {
			continue
		}
		seen[key] = true

		trimRow(&r)
		r.Vaga.VagaSap = NormalizeSapFlag(r.Vaga.VagaSap)
		out = append(out, r)
	}
	return out
}

func trimRow(r *JoinedRow) {
	for _, s := range []*string{
		&r.Prospect.VagaID, &r.Prospect.CodigoCandidato, &r.Prospect.Nome,
		&r.Prospect.SituacaoCandidato, &r.Prospect.DataCandidatura, &r.Prospect.UltimaAtualizacao,
		&r.Vaga.VagaID, &r.Vaga.Titulo, &r.Vaga.VagaSap, &r.Vaga.Cliente,
		&r.Vaga.NivelProfissional, &r.Vaga.NivelIngles, &r.Vaga.NivelEspanhol,
		&r.Vaga.Cidade, &r.Vaga.Estado, &r.Vaga.Pais,
		&r.Vaga.PrincipaisAtividades, &r.Vaga.CompetenciaTecnicas,
		&r.Applicant.CodigoCandidato, &r.Applicant.Nome, &r.Applicant.TituloProfissional,
		&r.Applicant.AreaAtuacao, &r.Applicant.NivelAcademico,
		&r.Applicant.NivelIngles, &r.Applicant.NivelEspanhol,
		&r.Applicant.ConhecimentosTecnicos, &r.Applicant.CvPt,
	} {
		*s = strings.TrimSpace(*s)
	}
}
