// Package bridge finds bridge words and uses them to enrich new text.
//
// A bridge word between w1 and w2 is any vertex m such that both w1→m and
// m→w2 are edges of the graph.
//
// Find validates its inputs and distinguishes four failure classes through
// sentinel errors (ErrMissingInput, ErrBothAbsent, ErrWord1Absent,
// ErrWord2Absent). "No bridge words" is not an error: it is an empty result.
//
// Generate inserts one uniformly chosen bridge word between every pair of
// consecutive input words that has at least one. Randomness comes only from
// the *rand.Rand the caller injects.
//
// Complexity:
//
//   - Find:     O(d log d) where d = out-degree(w1) (d membership tests + sort).
//   - Generate: O(n · d) for n input tokens.
package bridge
