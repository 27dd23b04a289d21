// Package preprocess turns the three raw JSON exports of the recruitment
// funnel (job openings, prospect lists, candidate profiles) into one
// flat, de-duplicated row per (vaga, candidato) pair, ready for feature
// engineering.
package preprocess

// RawVaga mirrors one job opening record as exported, keyed by vaga id
// at the top level of the document.
type RawVaga struct {
	InformacoesBasicas struct {
		TituloVaga string `json:"titulo_vaga"`
		VagaSap    string `json:"vaga_sap"`
		Cliente    string `json:"cliente"`
	} `json:"informacoes_basicas"`
	PerfilVaga struct {
		NivelProfissional                  string `json:"nivel_profissional"`
		NivelIngles                        string `json:"nivel_ingles"`
		NivelEspanhol                      string `json:"nivel_espanhol"`
		Cidade                             string `json:"cidade"`
		Estado                             string `json:"estado"`
		Pais                               string `json:"pais"`
		PrincipaisAtividades               string `json:"principais_atividades"`
		CompetenciaTecnicasEComportamentais string `json:"competencia_tecnicas_e_comportamentais"`
	} `json:"perfil_vaga"`
}

// RawProspectGroup is the per-vaga entry of the prospects export: the
// vaga id is the document key, the applications live in Prospects.
type RawProspectGroup struct {
	Titulo     string        `json:"titulo"`
	Modalidade string        `json:"modalidade"`
	Prospects  []RawProspect `json:"prospects"`
}

// RawProspect is one candidate's application state against one vaga.
// "situacao_candidado" is the source data's own spelling.
type RawProspect struct {
	Nome              string `json:"nome"`
	Codigo            string `json:"codigo"`
	SituacaoCandidato string `json:"situacao_candidado"`
	DataCandidatura   string `json:"data_candidatura"`
	UltimaAtualizacao string `json:"ultima_atualizacao"`
	Comentario        string `json:"comentario"`
	Recrutador        string `json:"recrutador"`
}

// RawApplicant mirrors one candidate profile record, keyed by candidate
// code at the top level of the document.
type RawApplicant struct {
	InfosBasicas struct {
		Nome                string `json:"nome"`
		CodigoProfissional  string `json:"codigo_profissional"`
	} `json:"infos_basicas"`
	InformacoesProfissionais struct {
		TituloProfissional    string `json:"titulo_profissional"`
		AreaAtuacao           string `json:"area_atuacao"`
		ConhecimentosTecnicos string `json:"conhecimentos_tecnicos"`
	} `json:"informacoes_profissionais"`
	FormacaoEIdiomas struct {
		NivelAcademico string `json:"nivel_academico"`
		NivelIngles    string `json:"nivel_ingles"`
		NivelEspanhol  string `json:"nivel_espanhol"`
	} `json:"formacao_e_idiomas"`
	CvPt string `json:"cv_pt"`
}

// VagaRow is one flattened job opening.
type VagaRow struct {
	VagaID               string
	Titulo               string
	VagaSap              string
	Cliente              string
	NivelProfissional    string
	NivelIngles          string
	NivelEspanhol        string
	Cidade               string
	Estado               string
	Pais                 string
	PrincipaisAtividades string
	CompetenciaTecnicas  string
}

// ProspectRow is one flattened (vaga, prospect) application.
type ProspectRow struct {
	VagaID            string
	CodigoCandidato   string
	Nome              string
	SituacaoCandidato string
	DataCandidatura   string
	UltimaAtualizacao string
}

// ApplicantRow is one flattened candidate profile.
type ApplicantRow struct {
	CodigoCandidato       string
	Nome                  string
	TituloProfissional    string
	AreaAtuacao           string
	NivelAcademico        string
	NivelIngles           string
	NivelEspanhol         string
	ConhecimentosTecnicos string
	CvPt                  string
}

// JoinedRow is the left-join of a prospect with its vaga and candidate
// profile. Right-side fields stay zero-valued when the key is unmatched.
type JoinedRow struct {
	Prospect  ProspectRow
	Vaga      VagaRow
	Applicant ApplicantRow
}
