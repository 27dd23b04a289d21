package preprocess

import (
	"sort"
	"strings"
)

// FlattenVagas produces one row per job opening, keyed by the top-level
// vaga id. Rows come out in sorted key order so repeated runs over the
// same input yield identical tables.
func FlattenVagas(raw map[string]RawVaga) []VagaRow {
	rows := make([]VagaRow, 0, len(raw))
	for _, id := range sortedKeys(raw) {
		v := raw[id]
		rows = append(rows, VagaRow{
			VagaID:               id,
			Titulo:               v.InformacoesBasicas.TituloVaga,
			VagaSap:              v.InformacoesBasicas.VagaSap,
			Cliente:              v.InformacoesBasicas.Cliente,
			NivelProfissional:    v.PerfilVaga.NivelProfissional,
			NivelIngles:          v.PerfilVaga.NivelIngles,
			NivelEspanhol:        v.PerfilVaga.NivelEspanhol,
			Cidade:               v.PerfilVaga.Cidade,
			Estado:               v.PerfilVaga.Estado,
			Pais:                 v.PerfilVaga.Pais,
			PrincipaisAtividades: v.PerfilVaga.PrincipaisAtividades,
			CompetenciaTecnicas:  v.PerfilVaga.CompetenciaTecnicasEComportamentais,
		})
	}
	return rows
}

// FlattenProspects produces one row per (vaga, prospect sub-record),
// injecting the vaga id, which is only present as the document key.
func FlattenProspects(raw map[string]RawProspectGroup) []ProspectRow {
	var rows []ProspectRow
	for _, vagaID := range sortedKeys(raw) {
		for _, p := range raw[vagaID].Prospects {
			rows = append(rows, ProspectRow{
				VagaID:            vagaID,
				CodigoCandidato:   p.Codigo,
				Nome:              p.Nome,
				SituacaoCandidato: p.SituacaoCandidato,
				DataCandidatura:   p.DataCandidatura,
				UltimaAtualizacao: p.UltimaAtualizacao,
			})
		}
	}
	return rows
}

// FlattenApplicants produces one row per candidate profile. When the
// nested codigo_profissional is present it overrides the top-level key
// as the canonical candidate id; the key fills in when it is blank.
func FlattenApplicants(raw map[string]RawApplicant) []ApplicantRow {
	rows := make([]ApplicantRow, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		a := raw[key]
		codigo := strings.TrimSpace(a.InfosBasicas.CodigoProfissional)
		if codigo == "" {
			codigo = key
		}
		rows = append(rows, ApplicantRow{
			CodigoCandidato:       codigo,
			Nome:                  a.InfosBasicas.Nome,
			TituloProfissional:    a.InformacoesProfissionais.TituloProfissional,
			AreaAtuacao:           a.InformacoesProfissionais.AreaAtuacao,
			NivelAcademico:        a.FormacaoEIdiomas.NivelAcademico,
			NivelIngles:           a.FormacaoEIdiomas.NivelIngles,
			NivelEspanhol:         a.FormacaoEIdiomas.NivelEspanhol,
			ConhecimentosTecnicos: a.InformacoesProfissionais.ConhecimentosTecnicos,
			CvPt:                  a.CvPt,
		})
	}
	return rows
}

// Join left-joins prospects with vagas on vaga id and with applicants on
// candidate id. Unmatched keys keep zero-valued right sides; no prospect
// row is ever dropped here.
func Join(prospects []ProspectRow, vagas []VagaRow, applicants []ApplicantRow) []JoinedRow {
	vagaByID := make(map[string]VagaRow, len(vagas))
	for _, v := range vagas {
		vagaByID[v.VagaID] = v
	}
	applicantByID := make(map[string]ApplicantRow, len(applicants))
	for _, a := range applicants {
		applicantByID[a.CodigoCandidato] = a
	}

	rows := make([]JoinedRow, 0, len(prospects))
	for _, p := range prospects {
		rows = append(rows, JoinedRow{
			Prospect:  p,
			Vaga:      vagaByID[p.VagaID],
			Applicant: applicantByID[p.CodigoCandidato],
		})
	}
	return rows
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
