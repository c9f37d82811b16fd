// Package glob compiles extended glob patterns and matches them against
// slash-separated paths.
//
// Patterns support the following syntax:
//   - `*` matches one or more characters within a path segment
//   - `?` matches exactly one character within a path segment
//   - `**` matches any number of whole path segments, including none
//   - `{a,b}` groups sub-patterns into an OR expression
//     (e.g. `**/*.{ts,js}` matches all TypeScript and JavaScript files)
//   - `[0-9]` matches one character from a set or range
//   - `[!0-9]` matches one character outside a set or range
//
// A pattern is compiled once into an immutable [Pattern] and matched many
// times. All validation happens at compile time; matching is a pure
// function that never fails. A compiled Pattern is safe for concurrent
// use without synchronisation.
package glob

import "strings"

// Pattern is the compiled form of an extended glob pattern. The zero
// value matches only the empty path.
type Pattern struct {
	segs      []segment
	recursive bool
}

// Match reports whether path matches pattern, compiling the pattern on
// every call. Callers matching many paths against the same pattern
// should [Compile] once and reuse the result.
func Match(pattern, path string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(path), nil
}

// Match reports whether the slash-separated path matches the pattern.
// The empty string is the zero-segment path. Paths are expected to be
// pre-normalised: no `.` or `..` segments, forward slashes only.
func (p *Pattern) Match(path string) bool {
	return p.MatchSegments(SplitPath(path))
}

// SplitPath splits a slash-separated path into its segments. The empty
// string yields nil, the zero-segment path.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// String returns the pattern source. Consecutive `**` segments are
// collapsed at compile time, so the result is the normalised form.
func (p *Pattern) String() string {
	parts := make([]string, len(p.segs))
	for i := range p.segs {
		parts[i] = p.segs[i].src
	}
	return strings.Join(parts, "/")
}

// Recursive reports whether the pattern contains a `**` segment.
func (p *Pattern) Recursive() bool {
	return p.recursive
}

// SplitFixedPrefix splits the pattern into its leading literal segments
// and a pattern matching whatever remains. A directory walker can
// descend the fixed prefix directly instead of matching segment by
// segment.
func (p *Pattern) SplitFixedPrefix() ([]string, *Pattern) {
	n := 0
	for n < len(p.segs) && p.segs[n].kind == segLiteral {
		n++
	}
	fixed := make([]string, n)
	for i := 0; i < n; i++ {
		fixed[i] = p.segs[i].lit
	}
	return fixed, &Pattern{segs: p.segs[n:], recursive: p.recursive}
}
