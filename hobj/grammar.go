package hobj

import (
	"sync"

	"github.com/npillmayer/cube4d/peg"
)

// Node tags for higher object parse trees.
const (
	RootTag peg.Tag = iota + 1
	ObjectTag
	VertexTag
	FacetTag
	NameTag
	NumberTag
	IndexTag
)

// TagString returns the name of a node tag. It is a peg.TagStringer.
func TagString(tag peg.Tag) string {
	switch tag {
	case RootTag:
		return "Root"
	case ObjectTag:
		return "Object"
	case VertexTag:
		return "Vertex"
	case FacetTag:
		return "Facet"
	case NameTag:
		return "Name"
	case NumberTag:
		return "Number"
	case IndexTag:
		return "Index"
	}
	return "?"
}

var _ peg.TagStringer = TagString

// Builder is the grammar builder type all rules operate on.
type Builder = peg.Builder[rune]

// --- Lexical rules ---------------------------------------------------------

// EndOfLine matches LF, or CR optionally followed by LF.
func EndOfLine(b *Builder) *Builder {
	return b.Choice().
		Sym('\n').
		Begin().Sym('\r').Optional().Sym('\n').End().End().
		End()
}

// WhiteSpace matches a single blank, tab, form feed or vertical tab.
func WhiteSpace(b *Builder) *Builder {
	return b.Set(' ', '\t', '\f', '\v')
}

// WhiteSpaces matches a run of white space.
func WhiteSpaces(b *Builder) *Builder {
	return b.OneOrMore().Apply(WhiteSpace).End()
}

// EOFOrEOL matches the end of input or the end of a line.
func EOFOrEOL(b *Builder) *Builder {
	return b.Choice().Empty().Apply(EndOfLine).End()
}

// Comment matches '#' and anything up to the end of line or input,
// including the line terminator.
func Comment(b *Builder) *Builder {
	return b.Begin().
		Sym('#').
		ZeroOrMore().Not().Apply(EOFOrEOL).End().Any().End().
		Apply(EOFOrEOL).
		End()
}

// LineEnd terminates a record line.
func LineEnd(b *Builder) *Builder {
	return b.Choice().Apply(Comment, EOFOrEOL).End()
}

// Space is anything allowed between records: comments, white space and
// empty lines.
func Space(b *Builder) *Builder {
	return b.Choice().Apply(Comment, WhiteSpaces, EndOfLine).End()
}

// Identifier matches a letter or underscore, followed by letters, digits or
// underscores.
func Identifier(b *Builder) *Builder {
	return b.Begin().
		Choice().Sym('_').Range('a', 'z').Range('A', 'Z').End().
		ZeroOrMore().Choice().Sym('_').Range('a', 'z').Range('A', 'Z').Range('0', '9').End().End().
		End()
}

// Number matches a signed decimal number without exponent, like "-1.5".
// It produces a node tagged NumberTag.
func Number(b *Builder) *Builder {
	return b.Node(NumberTag).
		Optional().Set('+', '-').End().
		OneOrMore().Range('0', '9').End().
		Optional().Sym('.').OneOrMore().Range('0', '9').End().End().
		End()
}

// Index matches an unsigned integer. A leading '0' is a complete index:
// "0123" matches just "0". It produces a node tagged IndexTag.
func Index(b *Builder) *Builder {
	return b.Node(IndexTag).
		Choice().
		Begin().Range('1', '9').ZeroOrMore().Range('0', '9').End().End().
		Sym('0').
		End().
		End()
}

// --- Structural rules ------------------------------------------------------

// VertexLine matches a vertex line "v x y z w" and produces a node tagged
// VertexTag, with four Number children.
func VertexLine(b *Builder) *Builder {
	return b.Node(VertexTag).
		Optional().Apply(WhiteSpaces).End().
		Set('v', 'V').
		Apply(WhiteSpaces, Number, WhiteSpaces, Number).
		Apply(WhiteSpaces, Number, WhiteSpaces, Number).
		Optional().Apply(WhiteSpaces).End().
		Apply(LineEnd).
		End()
}

// FacetLine matches a facet line "f a b c" and produces a node tagged
// FacetTag, with three Index children.
func FacetLine(b *Builder) *Builder {
	return b.Node(FacetTag).
		Optional().Apply(WhiteSpaces).End().
		Set('f', 'F').
		Apply(WhiteSpaces, Index, WhiteSpaces, Index, WhiteSpaces, Index).
		Optional().Apply(WhiteSpaces).End().
		Apply(LineEnd).
		End()
}

// ObjectHeader matches an object header line "o name". The name produces
// a node tagged NameTag.
func ObjectHeader(b *Builder) *Builder {
	return b.Begin().
		Optional().Apply(WhiteSpaces).End().
		Set('o', 'O').
		Apply(WhiteSpaces).
		Node(NameTag).Apply(Identifier).End().
		Optional().Apply(WhiteSpaces).End().
		Apply(LineEnd).
		End()
}

// Object matches an object block: a header, vertex lines and facet lines,
// each of them possibly preceded by space. It produces a node tagged
// ObjectTag with children [Name, Vertex+, Facet+].
func Object(b *Builder) *Builder {
	return b.Node(ObjectTag).
		ZeroOrMore().Apply(Space).End().
		Apply(ObjectHeader).
		OneOrMore().ZeroOrMore().Apply(Space).End().Apply(VertexLine).End().
		OneOrMore().ZeroOrMore().Apply(Space).End().Apply(FacetLine).End().
		End()
}

// Root matches a complete source: any number of objects, followed by
// space up to the end of input. It produces a node tagged RootTag.
func Root(b *Builder) *Builder {
	return b.Node(RootTag).
		ZeroOrMore().Apply(Object).End().
		ZeroOrMore().Apply(Space).End().
		Empty().
		End()
}

// ---------------------------------------------------------------------------

// ParserFor builds a parser for a single rule.
func ParserFor(rule peg.Rule[rune]) peg.Parser[rune] {
	return peg.NewRuneBuilder().Apply(rule).Build()
}

var grammar peg.Parser[rune]
var grammarOnce sync.Once // monitors one-time creation of the grammar

// Grammar returns the parser for complete higher object sources. The parser
// is created once and may be used concurrently.
func Grammar() peg.Parser[rune] {
	grammarOnce.Do(func() {
		tracer().Infof("Creating higher object grammar")
		grammar = ParserFor(Root)
	})
	return grammar
}
