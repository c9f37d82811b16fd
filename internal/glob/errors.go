// errors.go defines sentinel errors for pattern compilation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct compilation failure category; detailed messages are provided
// by wrapping these with fmt.Errorf at the failure site.
//
// Matching never fails: a path that does not conform simply does not
// match. Every error a pattern can produce is raised by Compile.

package glob

import "errors"

var (
	// ErrSyntax indicates a malformed pattern: unbalanced `{` or `[`,
	// `**` sharing a segment with other characters, a reversed class
	// range, or an empty path segment.
	ErrSyntax = errors.New("syntax error in pattern")

	// ErrEmptyClass indicates a character class with no members (`[]`).
	ErrEmptyClass = errors.New("empty character class")

	// ErrTooComplex indicates alternation expansion exceeded the
	// configured ceiling.
	ErrTooComplex = errors.New("pattern too complex")
)
