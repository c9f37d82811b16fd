// compile.go turns a pattern string into the segment list the matcher
// walks.
//
// Compilation is segment-wise: the pattern splits on `/`, then each raw
// segment is either the recursive wildcard, or expanded (alternation)
// and tokenised. `**` must own its whole segment; consecutive `**`
// segments collapse into one so the matcher never backtracks through
// adjacent recursive wildcards.

package glob

import (
	"fmt"
	"strings"
)

// DefaultMaxExpansion is the ceiling on alternation variants per segment
// applied by [Compile]. Generous for hand-written patterns while keeping
// cartesian blowup from nested groups finite.
const DefaultMaxExpansion = 10000

// Compile parses an extended glob pattern. The empty pattern compiles to
// a Pattern matching only the zero-segment path. Returns an error
// wrapping ErrSyntax, ErrEmptyClass or ErrTooComplex when the pattern
// violates the grammar.
func Compile(pattern string) (*Pattern, error) {
	return CompileLimit(pattern, DefaultMaxExpansion)
}

// CompileLimit is Compile with an explicit alternation expansion ceiling.
func CompileLimit(pattern string, maxExpansion int) (*Pattern, error) {
	p := &Pattern{}
	if pattern == "" {
		return p, nil
	}
	for _, raw := range strings.Split(pattern, "/") {
		if raw == "" {
			return nil, fmt.Errorf("%w: empty path segment in %q", ErrSyntax, pattern)
		}
		if raw == "**" {
			if n := len(p.segs); n > 0 && p.segs[n-1].kind == segRecursive {
				continue
			}
			p.segs = append(p.segs, segment{kind: segRecursive, src: "**"})
			p.recursive = true
			continue
		}
		if strings.Contains(raw, "**") {
			return nil, fmt.Errorf("%w: %q combines '**' with other characters; '**' must be a whole segment", ErrSyntax, raw)
		}
		seg, err := compileSegment(raw, maxExpansion)
		if err != nil {
			return nil, err
		}
		p.segs = append(p.segs, seg)
	}
	return p, nil
}

func compileSegment(raw string, maxExpansion int) (segment, error) {
	variants, err := expand(raw, maxExpansion)
	if err != nil {
		return segment{}, err
	}
	alts := make([][]token, 0, len(variants))
	for _, v := range variants {
		toks, err := scanTokens(v)
		if err != nil {
			return segment{}, err
		}
		alts = append(alts, toks)
	}
	// Single plain literal variants skip the token matcher entirely.
	if len(alts) == 1 && len(alts[0]) == 1 && alts[0][0].kind == tokLiteral {
		return segment{kind: segLiteral, src: raw, lit: string(alts[0][0].lit)}, nil
	}
	return segment{kind: segTokens, src: raw, alts: alts}, nil
}

// scanTokens tokenises one expanded segment variant. Alternation groups
// are gone by this point; only literal runs, `*`, `?` and classes remain.
func scanTokens(raw string) ([]token, error) {
	rs := []rune(raw)
	var toks []token
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			toks = append(toks, token{kind: tokLiteral, lit: lit})
			lit = nil
		}
	}
	for i := 0; i < len(rs); {
		switch rs[i] {
		case '*':
			flush()
			toks = append(toks, token{kind: tokStar})
			i++
		case '?':
			flush()
			toks = append(toks, token{kind: tokQuestion})
			i++
		case '[':
			flush()
			cc, next, err := parseClass(rs, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokClass, class: cc})
			i = next
		case '{', '}':
			return nil, fmt.Errorf("%w: unbalanced %q in %q", ErrSyntax, string(rs[i]), raw)
		default:
			lit = append(lit, rs[i])
			i++
		}
	}
	flush()
	return toks, nil
}
