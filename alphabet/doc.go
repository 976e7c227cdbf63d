// Package alphabet defines the Alphabet type: a fixed, finite, totally
// enumerable universe of symbols over which an ordering can be inferred.
//
// What:
//
//   - Alphabet: an immutable set of distinct symbols together with their
//     natural enumeration order (the order in which they were declared).
//   - New: construct an Alphabet from an explicit symbol sequence,
//     validating it up front.
//   - Latin: the reference universe — the 26 lowercase Latin letters.
//
// Why:
//
//   - Order inference needs the universe as an explicit configuration value,
//     not a hardcoded constant, so the same machinery generalizes to any
//     finite symbol set (digits, DNA bases, custom token sets).
//   - The natural enumeration order doubles as the deterministic tie-break
//     for symbols that carry no ordering constraints.
//
// Key Types & Functions:
//
//   - Alphabet                    immutable symbol universe
//   - New([]rune) (*Alphabet, error)  validated constructor
//   - Latin() *Alphabet           lowercase a..z
//   - Len, Contains, Rank, Symbols, String  read-only accessors
//
// Errors:
//
//   - ErrEmptyAlphabet      no symbols supplied
//   - ErrDuplicateSymbol    the same symbol declared twice
//
// An Alphabet is never mutated after construction; Symbols returns a copy,
// so instances are safe for concurrent read access.
package alphabet
