package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
		{
			name:   "lowercases and trims",
			input:  "  Desenvolvedor JAVA  ",
			expect: "desenvolvedor java",
		},
		{
			name:   "keeps accents and special tech chars",
			input:  "Análise C#/.NET — nível sênior!",
			expect: "análise c# .net nível sênior",
		},
		{
			name:   "collapses whitespace runs",
			input:  "python \t\n docker",
			expect: "python docker",
		},
		{
			name:   "strips punctuation to spaces",
			input:  "sap,abap;hana",
			expect: "sap abap hana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expect {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Dev SAP Sênior (São Paulo)",
		"C++ / C# / .NET developer!!",
		"  múltiplos   espaços  ",
		"já normalizado c# .net",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExtractTerms(t *testing.T) {
	t.Parallel()

	terms := ExtractTerms("Experiência com Python, SAP e Docker em ambientes AWS")
	for _, want := range []string{"python", "sap", "docker", "aws"} {
		if _, ok := terms[want]; !ok {
			t.Fatalf("expected term %q in %v", want, terms)
		}
	}
	if _, ok := terms["java"]; ok {
		t.Fatalf("did not expect java in %v", terms)
	}
}

func TestOverlapCountCommutative(t *testing.T) {
	t.Parallel()

	job := "Vaga Python e AWS"
	cand := "Python, SAP, Docker"

	if got := OverlapCount(job, cand); got != 1 {
		t.Fatalf("OverlapCount = %d, want 1", got)
	}
	if OverlapCount(job, cand) != OverlapCount(cand, job) {
		t.Fatalf("OverlapCount is not commutative")
	}
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect bool
	}{
		{name: "whole word", text: "consultor SAP pleno", expect: true},
		{name: "word with trailing dot", text: "migração para sap.", expect: true},
		{name: "inside longer token", text: "fábrica de sapatos", expect: false},
		{name: "absent", text: "desenvolvedor java", expect: false},
		{name: "empty", text: "", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsWord(tt.text, "sap"); got != tt.expect {
				t.Fatalf("ContainsWord(%q) = %v, want %v", tt.text, got, tt.expect)
			}
		})
	}
}
