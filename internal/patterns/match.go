package patterns

import "strings"

// Normalize lowercases text and collapses punctuation to spaces so that
// phrase tables match regardless of casing and surrounding punctuation.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return collapseSpaces(b.String())
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsTerm reports whether normalized text contains the term as a whole
// word or phrase. The text argument must already be normalized; the term is
// normalized here (tables store terms in display form).
func ContainsTerm(normalized, term string) bool {
	t := strings.TrimSpace(Normalize(term))
	if t == "" {
		return false
	}
	return strings.Contains(normalized, " "+t+" ")
}

// MatchTerms returns the subset of terms present in the text, preserving
// table order. The text is normalized once up front.
func MatchTerms(text string, terms []string) []string {
	normalized := Normalize(text)
	var matched []string
	for _, term := range terms {
		if ContainsTerm(normalized, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
