// Package tokenize turns free-form text into the lowercase alphabetic tokens
// that name the vertices of a word graph.
//
// Normalization policy:
//
//   - Every maximal run of characters outside [A-Za-z] becomes one separator.
//     Digits, punctuation, apostrophes and non-ASCII letters all separate words.
//   - The remaining letters are lowercased.
//   - Empty fragments are discarded.
//
// There are no error conditions: malformed input yields fewer (or zero) tokens.
package tokenize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separator replaces each run of non-letter characters.
const separator = ' '

// lower returns a fresh language-neutral Caser. A Caser keeps state and must
// not be shared between goroutines. After separation only ASCII letters
// remain, so the result is exactly ASCII lower casing.
func lower() cases.Caser {
	return cases.Lower(language.Und)
}

// Tokenize returns the ordered tokens of text.
// Empty or letter-free input yields an empty, non-nil slice.
//
// Complexity: O(len(text)).
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	return strings.Fields(lower().String(Clean(text)))
}

// Clean replaces every maximal run of non-ASCII-letter bytes with a single space
// and leaves letters as they are. Multi-byte runes are non-letters by policy.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isASCIILetter(c) {
			b.WriteByte(c)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(separator)
			inRun = true
		}
	}

	return b.String()
}

// Normalize maps a single user-supplied word onto the vertex namespace:
// trimmed and lowercased. It does not strip inner punctuation; a query word
// containing non-letters simply never matches a vertex.
func Normalize(word string) string {
	return lower().String(strings.TrimSpace(word))
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
