// token.go defines the compiled node types: segments and the tokens
// within a segment.
//
// A pattern compiles to an ordered list of segments. Literal segments
// and recursive (`**`) segments are their own kinds so the matcher can
// handle the common cases without touching token lists. Everything else
// compiles to a list of alternative token sequences: alternation groups
// are expanded eagerly at compile time, so by match time a segment is
// just "does the text match any of these sequences".

package glob

type segKind uint8

const (
	segLiteral segKind = iota
	segTokens
	segRecursive
)

type segment struct {
	kind segKind
	src  string     // raw source text of this segment
	lit  string     // segLiteral only
	alts [][]token  // segTokens: one token sequence per expanded variant
}

type tokKind uint8

const (
	tokLiteral tokKind = iota
	tokStar
	tokQuestion
	tokClass
)

type token struct {
	kind  tokKind
	lit   []rune     // tokLiteral only
	class *charClass // tokClass only
}
