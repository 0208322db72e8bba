package grading

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinKeywordLength is the shortest token, in runes, that counts as a keyword.
const MinKeywordLength = 4

// Keywords extracts the distinct keywords of text: maximal runs of Unicode
// letters, combining marks and digits that are at least MinKeywordLength
// runes long, lower-cased. Text is NFC-normalized first so that composed
// and decomposed accents produce the same keyword.
func Keywords(text string) map[string]struct{} {
	text = strings.ToLower(norm.NFC.String(text))

	set := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(text, isSeparator) {
		if utf8.RuneCountInString(tok) >= MinKeywordLength {
			set[tok] = struct{}{}
		}
	}
	return set
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
}

// KeywordOverlap returns the fraction of the reference keywords present in
// the submitted text. ok is false when the reference has no keywords, in
// which case no overlap can be established.
func KeywordOverlap(reference, submitted string) (overlap float64, ok bool) {
	ref := Keywords(reference)
	if len(ref) == 0 {
		return 0, false
	}

	sub := Keywords(submitted)
	hits := 0
	for k := range ref {
		if _, found := sub[k]; found {
			hits++
		}
	}
	return float64(hits) / float64(len(ref)), true
}
