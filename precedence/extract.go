// Package precedence implements the constraint extractor in this file:
// the consecutive-pair scan that turns a sorted word list into graph edges.
package precedence

import (
	"errors"
	"fmt"

	"github.com/veltran/lexorder/alphabet"
)

// ErrPrefixContradiction indicates that a word was listed after a strictly
// longer word of which it is a prefix — an ordering no lexicographic rule
// can produce.
var ErrPrefixContradiction = errors.New("precedence: longer word precedes its own prefix")

// FromWords builds a fresh constraint graph over alphabet a and extracts all
// pairwise constraints from words. A nil alphabet defaults to the lowercase
// Latin universe. On contradiction the partially built graph is discarded
// and only the error is returned.
// Complexity: O(total length of words).
func FromWords(a *alphabet.Alphabet, words []string) (*Graph, error) {
	g := NewGraph(a)
	if err := Scan(g, words); err != nil {
		return nil, err
	}

	return g, nil
}

// Scan extracts ordering constraints from words into g.
//
// For each consecutive pair it compares symbol-by-symbol up to the shorter
// length; the first differing position yields exactly one constraint and
// ends the pair (later positions carry no further ordering information once
// an earlier one disambiguates). If no position differs within the shared
// length, the pair is valid only when the first word is no longer than the
// second; otherwise Scan stops immediately with ErrPrefixContradiction,
// leaving g partially built. Identical adjacent words are valid and emit
// nothing. Zero or one word emits nothing.
// Complexity: O(total length of words).
func Scan(g *Graph, words []string) error {
	// 1. Walk consecutive pairs
	for i := 0; i+1 < len(words); i++ {
		prev, next := []rune(words[i]), []rune(words[i+1])

		// 2. Compare within the shared length
		limit := len(prev)
		if len(next) < limit {
			limit = len(next)
		}
		differed := false
		for j := 0; j < limit; j++ {
			if prev[j] != next[j] {
				// 2a. First difference: one constraint, pair done
				g.AddConstraint(prev[j], next[j])
				differed = true

				break
			}
		}
		if differed {
			continue
		}

		// 3. Shared length exhausted without a difference: prefix rule.
		//    The shorter word must come first.
		if len(prev) > len(next) {
			return fmt.Errorf("%w: %q before %q", ErrPrefixContradiction, words[i], words[i+1])
		}
	}

	return nil
}
