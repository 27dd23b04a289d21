// Package textnorm canonicalizes the free-text fields of job openings and
// candidate profiles and extracts technical terms from them. Every
// text-derived feature goes through Normalize first, so matching is
// insensitive to case, punctuation and whitespace noise.
package textnorm

import "strings"

// TechTerms is the fixed vocabulary of technology terms recognized in job
// requirements and candidate CVs. Matching is substring-based over
// normalized text.
var TechTerms = []string{
	"sap", "abap", "hana", "sql", "python", "java", ".net", "c#", "node",
	"aws", "azure", "gcp", "linux", "docker", "kubernetes", "oracle",
	"mysql", "postgres", "power bi", "tableau", "react", "angular", "vue",
}

// allowed vowels with diacritics kept by Normalize. The source data is
// Portuguese, so accented vowels and ç are significant.
const accented = "áâãàéêíóôõúç"

// Normalize lower-cases s, replaces every rune outside the allowed set
// (a-z, 0-9, accented Latin vowels, ç, '+', '#', '.', '-', space) with a
// space, collapses whitespace runs and trims. It is total: any input,
// including the empty string, yields a string, and the result is a fixed
// point of Normalize itself.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '#' || r == '.' || r == '-':
			b.WriteRune(r)
		case strings.ContainsRune(accented, r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExtractTerms returns the subset of TechTerms appearing as substrings of
// the normalized text.
func ExtractTerms(s string) map[string]struct{} {
	t := Normalize(s)
	terms := make(map[string]struct{})
	for _, term := range TechTerms {
		if strings.Contains(t, term) {
			terms[term] = struct{}{}
		}
	}
	return terms
}

// OverlapCount is the size of the intersection of the term sets extracted
// from a and b. Intersection is commutative, so the order of the
// arguments does not matter.
func OverlapCount(a, b string) int {
	ta := ExtractTerms(a)
	tb := ExtractTerms(b)

	n := 0
	for term := range ta {
		if _, ok := tb[term]; ok {
			n++
		}
	}
	return n
}

// ContainsWord reports whether the normalized text contains word as a
// whole word, i.e. not surrounded by letters or digits. Used for the SAP
// flag, where "sap" inside a longer token such as "sapato" must not
// count, while "sap." or "sap," must.
func ContainsWord(s, word string) bool {
	t := Normalize(s)
	for i := 0; ; {
		j := strings.Index(t[i:], word)
		if j < 0 {
			return false
		}
		j += i
		end := j + len(word)
		if !isWordRune(runeBefore(t, j)) && !isWordRune(runeAt(t, end)) {
			return true
		}
		i = j + 1
	}
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		strings.ContainsRune(accented, r)
}

func runeAt(s string, i int) rune {
	if i < 0 || i >= len(s) {
		return ' '
	}
	r := []rune(s[i:])
	return r[0]
}

func runeBefore(s string, i int) rune {
	if i <= 0 || i > len(s) {
		return ' '
	}
	r := []rune(s[:i])
	return r[len(r)-1]
}
