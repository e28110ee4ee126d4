package bridge

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Find.
var (
	// ErrMissingInput indicates a nil, empty or whitespace-only word.
	ErrMissingInput = errors.New("bridge: both words are required")

	// ErrBothAbsent indicates neither word is a vertex of the graph.
	ErrBothAbsent = errors.New("bridge: neither word in graph")

	// ErrWord1Absent indicates only the first word is missing from the graph.
	ErrWord1Absent = errors.New("bridge: word1 not in graph")

	// ErrWord2Absent indicates only the second word is missing from the graph.
	ErrWord2Absent = errors.New("bridge: word2 not in graph")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("bridge: graph is nil")
)

// FormatList renders words as a natural-language list:
//
//	[a]       → a
//	[a b]     → a, and b
//	[a b c]   → a, b, and c
//
// The two-element form keeps the serial comma so every plural list reads the
// same way. An empty slice renders as "".
func FormatList(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	last := len(words) - 1

	return strings.Join(words[:last], ", ") + ", and " + words[last]
}
