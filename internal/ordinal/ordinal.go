// Package ordinal maps the qualitative Portuguese text fields of the
// recruitment data onto fixed ordinal scales: language proficiency
// (0-7), seniority (0-3) and funnel status (0-6). All mappers are total
// functions; missing or unrecognized input maps to a named default
// instead of failing.
package ordinal

import (
	"regexp"
	"strings"

	"github.com/decisionai/candidate-ranker/internal/textnorm"
)

// Funnel status ordinals. Hired is the positive training label; rejected
// sits above it only as an encoding, not as an ordering of desirability.
const (
	StatusRegistered = 0
	StatusContacted  = 1
	StatusInProgress = 2
	StatusInterview  = 3
	StatusApproved   = 4
	StatusHired      = 5
	StatusRejected   = 6
)

// cefrPattern matches a CEFR level token (a1..c2) on normalized text.
var cefrPattern = regexp.MustCompile(`\b([abc][12])\b`)

type keywordRank struct {
	keyword string
	rank    int
}

// languageTable is searched in order; the first keyword found as a
// substring wins. Accented and unaccented spellings both appear because
// normalization preserves accents.
var languageTable = []keywordRank{
	{"basico", 1}, {"básico", 1},
	{"a1", 1}, {"a2", 2},
	{"intermediario", 3}, {"intermediário", 3},
	{"b1", 3}, {"b2", 4},
	{"avancado", 5}, {"avançado", 5},
	{"fluente", 6},
	{"c1", 6}, {"c2", 7},
}

var cefrRanks = map[string]int{
	"a1": 1, "a2": 2, "b1": 3, "b2": 4, "c1": 6, "c2": 7,
}

// seniorityTable priority order is fixed: a text containing both "sen"
// and "jun" maps to senior.
var seniorityTable = []keywordRank{
	{"sen", 3},
	{"plen", 2},
	{"jun", 1},
}

// funnelTable priority order is fixed. "contratado" is checked before
// "contato" so the longer keyword cannot be shadowed.
var funnelTable = []keywordRank{
	{"contratado", StatusHired},
	{"aprovado", StatusApproved},
	{"entrevista", StatusInterview},
	{"encaminhado", StatusInProgress},
	{"contato", StatusContacted},
	{"cadastrado", StatusRegistered},
	{"reprovado", StatusRejected},
}

// LanguageRank maps a proficiency description to 0-7. A CEFR token wins
// over keywords; otherwise the first matching keyword in languageTable
// decides; unrecognized text maps to 0 (no proficiency claimed).
func LanguageRank(s string) int {
	t := textnorm.Normalize(s)
	if m := cefrPattern.FindStringSubmatch(t); m != nil {
		return cefrRanks[m[1]]
	}
	return rankBySubstring(t, languageTable, 0)
}

// SeniorityRank maps a professional level or title to 0-3 by substring
// priority: senior, pleno, junior, unknown.
func SeniorityRank(s string) int {
	return rankBySubstring(textnorm.Normalize(s), seniorityTable, 0)
}

// FunnelStatusRank maps a funnel status description to 0-6. Missing or
// unrecognized statuses map to StatusInProgress: an application we know
// nothing about is assumed to still be moving, not failed.
func FunnelStatusRank(s string) int {
	return rankBySubstring(textnorm.Normalize(s), funnelTable, StatusInProgress)
}

func rankBySubstring(normalized string, table []keywordRank, fallback int) int {
	for _, e := range table {
		if strings.Contains(normalized, e.keyword) {
			return e.rank
		}
	}
	return fallback
}
