// expand.go implements alternation expansion.
//
// `{a,b}` groups are expanded eagerly at compile time into the full list
// of segment variants: `pre{a,b}post` becomes `preapost` and `prebpost`,
// multiple groups in one segment produce the cartesian product, and
// members may contain nested groups. The matcher then only ever sees
// flat token sequences. Expansion is bounded by a variant ceiling so a
// pathological pattern fails fast with ErrTooComplex instead of
// exhausting memory.
//
// Commas are only separators inside a group; a comma outside any group
// is a literal character. A `}` outside any group is a syntax error.

package glob

import "fmt"

// expand returns every variant of the raw segment text with all
// alternation groups expanded. Brace characters inside a character
// class are literal class members and are skipped here.
func expand(raw string, limit int) ([]string, error) {
	inClass := false
	for i := 0; i < len(raw); i++ {
		if inClass {
			if raw[i] == ']' {
				inClass = false
			}
			continue
		}
		switch raw[i] {
		case '[':
			inClass = true
		case '}':
			return nil, fmt.Errorf("%w: unmatched '}' in %q", ErrSyntax, raw)
		case '{':
			return expandGroup(raw, i, limit)
		}
	}
	return []string{raw}, nil
}

// expandGroup expands the group opening at raw[open] against the text
// before and after it, recursing into members and the remainder.
func expandGroup(raw string, open, limit int) ([]string, error) {
	prefix := raw[:open]

	var members []string
	depth := 1
	inClass := false
	start := open + 1
	i := open + 1
scan:
	for ; i < len(raw); i++ {
		if inClass {
			if raw[i] == ']' {
				inClass = false
			}
			continue
		}
		switch raw[i] {
		case '[':
			inClass = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				members = append(members, raw[start:i])
				break scan
			}
		case ',':
			if depth == 1 {
				members = append(members, raw[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unterminated '{' in %q", ErrSyntax, raw)
	}

	restVariants, err := expand(raw[i+1:], limit)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, m := range members {
		memberVariants, err := expand(m, limit)
		if err != nil {
			return nil, err
		}
		for _, mv := range memberVariants {
			for _, rv := range restVariants {
				out = append(out, prefix+mv+rv)
				if len(out) > limit {
					return nil, fmt.Errorf("%w: alternation expands to more than %d variants", ErrTooComplex, limit)
				}
			}
		}
	}
	return out, nil
}
