// class.go implements character class parsing and matching.
//
// A class is a set of individual characters and inclusive ranges, with
// an optional `!` negation flag. `[a-]`, `[-]` and `[a-b-]` treat the
// dangling `-` as the literal character, not a malformed range.

package glob

import "fmt"

type charRange struct {
	lo, hi rune
}

type charClass struct {
	negated bool
	chars   []rune
	ranges  []charRange
}

// matches reports whether r satisfies the class: (member) XOR negated.
func (c *charClass) matches(r rune) bool {
	in := false
	for _, ch := range c.chars {
		if ch == r {
			in = true
			break
		}
	}
	if !in {
		for _, rg := range c.ranges {
			if r >= rg.lo && r <= rg.hi {
				in = true
				break
			}
		}
	}
	return in != c.negated
}

// parseClass parses a character class starting at the `[` at rs[i].
// Returns the class and the index just past the closing `]`.
func parseClass(rs []rune, i int) (*charClass, int, error) {
	start := i
	i++ // consume '['
	cc := &charClass{}
	if i < len(rs) && rs[i] == '!' {
		cc.negated = true
		i++
	}
	closed := false
	for i < len(rs) {
		if rs[i] == ']' {
			i++
			closed = true
			break
		}
		lo := rs[i]
		i++
		if i+1 < len(rs) && rs[i] == '-' && rs[i+1] != ']' {
			hi := rs[i+1]
			if hi < lo {
				return nil, 0, fmt.Errorf("%w: reversed range %q", ErrSyntax, string([]rune{lo, '-', hi}))
			}
			cc.ranges = append(cc.ranges, charRange{lo: lo, hi: hi})
			i += 2
		} else {
			cc.chars = append(cc.chars, lo)
		}
	}
	if !closed {
		return nil, 0, fmt.Errorf("%w: unterminated '[' in %q", ErrSyntax, string(rs[start:]))
	}
	if len(cc.chars) == 0 && len(cc.ranges) == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrEmptyClass, string(rs[start:i]))
	}
	return cc, i, nil
}
