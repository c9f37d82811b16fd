// describe.go exposes the compiled structure of a pattern for
// introspection. The CLI explain command and the MCP compile tool use
// this to show users what a pattern actually compiled to.

package glob

// SegmentInfo describes one compiled segment of a pattern.
type SegmentInfo struct {
	Source       string `json:"source"`
	Kind         string `json:"kind"`
	Alternatives int    `json:"alternatives"`
}

// Segments returns a description of each compiled segment in order.
// Kind is one of "literal", "wildcard" or "recursive". Alternatives
// counts the expanded alternation variants a segment matches against;
// it is 1 for segments without alternation.
func (p *Pattern) Segments() []SegmentInfo {
	infos := make([]SegmentInfo, len(p.segs))
	for i, s := range p.segs {
		info := SegmentInfo{Source: s.src, Alternatives: 1}
		switch s.kind {
		case segLiteral:
			info.Kind = "literal"
		case segTokens:
			info.Kind = "wildcard"
			info.Alternatives = len(s.alts)
		case segRecursive:
			info.Kind = "recursive"
		}
		infos[i] = info
	}
	return infos
}
