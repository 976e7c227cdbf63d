// Package alphabet provides the immutable symbol-universe value consumed by
// the precedence and resolve packages.
//
// This file declares the Alphabet type, its sentinel errors, and the
// constructors New and Latin.
package alphabet

import "errors"

// Sentinel errors for alphabet construction.
var (
	// ErrEmptyAlphabet indicates that New was called with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols supplied")

	// ErrDuplicateSymbol indicates that the same symbol appeared more than
	// once in the sequence passed to New.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)

// latinSize is the number of symbols in the reference Latin universe.
const latinSize = 26

// Alphabet is a fixed, finite, totally enumerable symbol universe.
//
// The declaration order of the symbols is the universe's natural enumeration
// order. Alphabet values are immutable after construction and safe for
// concurrent readers.
type Alphabet struct {
	symbols []rune       // natural enumeration order
	rank    map[rune]int // symbol → position in symbols
}

// New builds an Alphabet from the given symbol sequence.
// The sequence order becomes the natural enumeration order.
// Returns ErrEmptyAlphabet for an empty sequence and ErrDuplicateSymbol
// if any symbol repeats.
// Complexity: O(n) where n = len(symbols).
func New(symbols []rune) (*Alphabet, error) {
	// 1. Reject an empty universe
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	// 2. Copy the sequence and index each symbol by its position
	a := &Alphabet{
		symbols: make([]rune, len(symbols)),
		rank:    make(map[rune]int, len(symbols)),
	}
	for i, s := range symbols {
		// 2a. A symbol seen before makes the enumeration ambiguous
		if _, dup := a.rank[s]; dup {
			return nil, ErrDuplicateSymbol
		}
		a.symbols[i] = s
		a.rank[s] = i
	}

	return a, nil
}

// Latin returns the reference universe: the 26 lowercase Latin letters
// 'a'..'z' in their usual order.
// Complexity: O(1) amortized over the fixed universe size.
func Latin() *Alphabet {
	symbols := make([]rune, latinSize)
	for i := range symbols {
		symbols[i] = 'a' + rune(i)
	}
	// New cannot fail here: the sequence is non-empty and duplicate-free.
	a, _ := New(symbols)

	return a
}

// Len reports the number of symbols in the universe.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Contains reports whether s belongs to the universe.
func (a *Alphabet) Contains(s rune) bool {
	_, ok := a.rank[s]

	return ok
}

// Rank returns the position of s in the natural enumeration order,
// and whether s belongs to the universe at all.
func (a *Alphabet) Rank(s rune) (int, bool) {
	i, ok := a.rank[s]

	return i, ok
}

// Symbols returns a copy of the universe in natural enumeration order.
// The returned slice is owned by the caller.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// String renders the universe as a string in natural enumeration order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
