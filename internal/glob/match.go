// match.go implements matching of compiled patterns against segment
// lists.
//
// The matcher walks two indices — pattern segment and path segment —
// recursively. `**` is the one non-local decision point: it tries every
// split of the remaining path. Results are memoised per call on the
// index pair, which bounds the worst case even for adversarial patterns;
// the memo table is local to the call, so concurrent matches on one
// Pattern share nothing.
//
// Within a single segment, tokens are matched left to right over runes.
// `*` consumes one or more characters, trying the longest suffix first
// and backtracking shorter; `?` and classes consume exactly one
// character; literal runs must match exactly. Matching is
// case-sensitive.

package glob

// MatchSegments reports whether the candidate path, given as its ordered
// segment list, matches the pattern. It is total: every input yields
// true or false, never an error or a panic.
func (p *Pattern) MatchSegments(segs []string) bool {
	m := matchState{segs: p.segs, path: segs}
	return m.match(0, 0)
}

// MatchPrefix reports whether segs could be extended with further
// segments into a path that matches. Directory walkers use this to
// prune subtrees that can never produce a match.
func (p *Pattern) MatchPrefix(segs []string) bool {
	m := matchState{segs: p.segs, path: segs, prefix: true}
	return m.match(0, 0)
}

type matchState struct {
	segs   []segment
	path   []string
	prefix bool
	memo   map[int]bool
}

func (m *matchState) match(pi, ci int) bool {
	if m.prefix && ci == len(m.path) {
		return true
	}
	if pi == len(m.segs) {
		return ci == len(m.path)
	}
	key := pi*(len(m.path)+1) + ci
	if v, ok := m.memo[key]; ok {
		return v
	}
	var ok bool
	seg := &m.segs[pi]
	switch seg.kind {
	case segRecursive:
		// Consume zero or more path segments, then the rest of the
		// pattern must match the remaining suffix.
		for k := ci; k <= len(m.path); k++ {
			if m.match(pi+1, k) {
				ok = true
				break
			}
		}
	case segLiteral:
		ok = ci < len(m.path) && m.path[ci] == seg.lit && m.match(pi+1, ci+1)
	case segTokens:
		ok = ci < len(m.path) && seg.matchText(m.path[ci]) && m.match(pi+1, ci+1)
	}
	if m.memo == nil {
		m.memo = make(map[int]bool)
	}
	m.memo[key] = ok
	return ok
}

// matchText reports whether one path segment's text matches any of the
// segment's alternative token sequences.
func (s *segment) matchText(text string) bool {
	rs := []rune(text)
	for _, alt := range s.alts {
		if matchTokens(alt, rs, 0, 0) {
			return true
		}
	}
	return false
}

func matchTokens(toks []token, rs []rune, ti, si int) bool {
	if ti == len(toks) {
		return si == len(rs)
	}
	t := &toks[ti]
	switch t.kind {
	case tokLiteral:
		if si+len(t.lit) > len(rs) {
			return false
		}
		for j, r := range t.lit {
			if rs[si+j] != r {
				return false
			}
		}
		return matchTokens(toks, rs, ti+1, si+len(t.lit))
	case tokQuestion:
		return si < len(rs) && matchTokens(toks, rs, ti+1, si+1)
	case tokClass:
		return si < len(rs) && t.class.matches(rs[si]) && matchTokens(toks, rs, ti+1, si+1)
	case tokStar:
		// One or more characters, longest first.
		for k := len(rs); k > si; k-- {
			if matchTokens(toks, rs, ti+1, k) {
				return true
			}
		}
		return false
	}
	return false
}
