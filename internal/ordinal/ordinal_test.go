package ordinal

import "testing"

func TestLanguageRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "cefr a1", input: "Inglês A1", expect: 1},
		{name: "cefr b2", input: "nível b2 comprovado", expect: 4},
		{name: "cefr c2", input: "C2", expect: 7},
		{name: "keyword basico", input: "Básico", expect: 1},
		{name: "keyword intermediario", input: "Intermediário", expect: 3},
		{name: "keyword avancado", input: "Avançado", expect: 5},
		{name: "keyword fluente", input: "Fluente em conversação", expect: 6},
		{name: "cefr wins over keyword", input: "intermediário (b2)", expect: 4},
		{name: "unrecognized", input: "nenhum", expect: 0},
		{name: "empty", input: "", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LanguageRank(tt.input); got != tt.expect {
				t.Fatalf("LanguageRank(%q) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestLanguageRankMonotonicCEFR(t *testing.T) {
	t.Parallel()

	order := []string{"a1", "a2", "b1", "b2", "c1", "c2"}
	for i := 1; i < len(order); i++ {
		lo := LanguageRank(order[i-1])
		hi := LanguageRank(order[i])
		if hi <= lo {
			t.Fatalf("LanguageRank(%q)=%d not greater than LanguageRank(%q)=%d",
				order[i], hi, order[i-1], lo)
		}
	}
}

func TestSeniorityRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "senior", input: "Analista Senior", expect: 3},
		{name: "pleno", input: "Desenvolvedor Pleno", expect: 2},
		{name: "junior", input: "Junior", expect: 1},
		{name: "senior wins over junior", input: "senior ou junior", expect: 3},
		{name: "accented senior does not match ascii keyword", input: "Sênior", expect: 0},
		{name: "unknown", input: "Especialista", expect: 0},
		{name: "empty", input: "", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeniorityRank(tt.input); got != tt.expect {
				t.Fatalf("SeniorityRank(%q) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFunnelStatusRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "hired", input: "Contratado pela Decision", expect: StatusHired},
		{name: "approved", input: "Aprovado", expect: StatusApproved},
		{name: "interview", input: "Entrevista Técnica", expect: StatusInterview},
		{name: "forwarded", input: "Encaminhado ao Requisitante", expect: StatusInProgress},
		{name: "contacted", input: "Contato Inicial", expect: StatusContacted},
		{name: "registered", input: "Cadastrado", expect: StatusRegistered},
		{name: "aprovado outranks reprovado in priority order", input: "Não Aprovado — Reprovado", expect: StatusApproved},
		{name: "rejected", input: "Reprovado", expect: StatusRejected},
		{name: "empty defaults to in progress", input: "", expect: StatusInProgress},
		{name: "unknown defaults to in progress", input: "Sem Interesse", expect: StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FunnelStatusRank(tt.input)
			if got != tt.expect {
				t.Fatalf("FunnelStatusRank(%q) = %d, want %d", tt.input, got, tt.expect)
			}
			if got < 0 || got > 6 {
				t.Fatalf("FunnelStatusRank(%q) = %d outside 0..6", tt.input, got)
			}
		})
	}
}
