package peg

import (
	"github.com/emirpasic/gods/utils"
)

// Parser is the common interface of all combinators.
//
// Parse tries to match the input at the cursor position. On failure the
// cursor must be left in the state it had before the call.
type Parser[S any] interface {
	Parse(c *Cursor[S]) bool
}

// ParserFunc adapts an ordinary function to the Parser interface.
// The function has to honor the rollback-on-failure contract.
type ParserFunc[S any] func(c *Cursor[S]) bool

// Parse calls f(c).
func (f ParserFunc[S]) Parse(c *Cursor[S]) bool {
	return f(c)
}

// Equality tests two symbols for equality.
type Equality[S any] func(a, b S) bool

// Equal is the default equality for comparable symbol types.
func Equal[S comparable](a, b S) bool {
	return a == b
}

// --- Terminals -------------------------------------------------------------

type failParser[S any] struct{}

// Fail returns a parser which never matches.
func Fail[S any]() Parser[S] {
	return failParser[S]{}
}

func (failParser[S]) Parse(*Cursor[S]) bool {
	return false
}

type emptyParser[S any] struct{}

// Empty returns a parser which matches the end of input, without consuming anything.
func Empty[S any]() Parser[S] {
	return emptyParser[S]{}
}

func (emptyParser[S]) Parse(c *Cursor[S]) bool {
	return c.IsEmpty()
}

type anyParser[S any] struct{}

// Any returns a parser which matches any single symbol.
func Any[S any]() Parser[S] {
	return anyParser[S]{}
}

func (anyParser[S]) Parse(c *Cursor[S]) bool {
	if c.IsEmpty() {
		return false
	}
	c.Advance()
	return true
}

type symbolParser[S any] struct {
	sym S
	eq  Equality[S]
}

// Symbol returns a parser which matches a single symbol equal to sym.
func Symbol[S any](sym S, eq Equality[S]) Parser[S] {
	return symbolParser[S]{sym: sym, eq: eq}
}

func (p symbolParser[S]) Parse(c *Cursor[S]) bool {
	if c.IsEmpty() || !p.eq(c.Current(), p.sym) {
		return false
	}
	c.Advance()
	return true
}

type literalParser[S any] struct {
	syms []S
	eq   Equality[S]
}

// Literal returns a parser which matches the sequence syms as a whole.
func Literal[S any](syms []S, eq Equality[S]) Parser[S] {
	l := make([]S, len(syms))
	copy(l, syms)
	return literalParser[S]{syms: l, eq: eq}
}

func (p literalParser[S]) Parse(c *Cursor[S]) bool {
	c.Save()
	for _, s := range p.syms {
		if c.IsEmpty() || !p.eq(c.Current(), s) {
			c.Backtrack()
			return false
		}
		c.Advance()
	}
	c.Commit()
	return true
}

type rangeParser[S any] struct {
	from, to S
	cmp      utils.Comparator
}

// Range returns a parser which matches a single symbol s with from ≤ s ≤ to,
// using a comparator for ordering symbols.
func Range[S any](from, to S, cmp utils.Comparator) Parser[S] {
	return rangeParser[S]{from: from, to: to, cmp: cmp}
}

func (p rangeParser[S]) Parse(c *Cursor[S]) bool {
	if c.IsEmpty() {
		return false
	}
	s := c.Current()
	if p.cmp(s, p.from) < 0 || p.cmp(p.to, s) < 0 {
		return false
	}
	c.Advance()
	return true
}

type setParser[S any] struct {
	set []S
	eq  Equality[S]
}

// Set returns a parser which matches a single symbol equal to one of set.
func Set[S any](eq Equality[S], set ...S) Parser[S] {
	l := make([]S, len(set))
	copy(l, set)
	return setParser[S]{set: l, eq: eq}
}

func (p setParser[S]) Parse(c *Cursor[S]) bool {
	if c.IsEmpty() {
		return false
	}
	cur := c.Current()
	for _, s := range p.set {
		if p.eq(cur, s) {
			c.Advance()
			return true
		}
	}
	return false
}

// --- Lookahead -------------------------------------------------------------

type andParser[S any] struct {
	child Parser[S]
}

// And returns a positive lookahead: it matches if child matches, but never
// consumes input or produces nodes.
func And[S any](child Parser[S]) Parser[S] {
	return andParser[S]{child: child}
}

func (p andParser[S]) Parse(c *Cursor[S]) bool {
	c.Save()
	defer c.Backtrack()
	return p.child.Parse(c)
}

type notParser[S any] struct {
	child Parser[S]
}

// Not returns a negative lookahead: it matches if child does not match. It
// never consumes input or produces nodes.
func Not[S any](child Parser[S]) Parser[S] {
	return notParser[S]{child: child}
}

func (p notParser[S]) Parse(c *Cursor[S]) bool {
	c.Save()
	defer c.Backtrack()
	return !p.child.Parse(c)
}

// --- Repetition ------------------------------------------------------------

type optionalParser[S any] struct {
	child Parser[S]
}

// Optional returns a parser which tries child once and always succeeds.
func Optional[S any](child Parser[S]) Parser[S] {
	return optionalParser[S]{child: child}
}

func (p optionalParser[S]) Parse(c *Cursor[S]) bool {
	p.child.Parse(c)
	return true
}

type zeroOrMoreParser[S any] struct {
	child Parser[S]
}

// ZeroOrMore returns a parser which applies child until it fails. It always
// succeeds. Matched repetitions are kept, there is no backtracking between
// them.
func ZeroOrMore[S any](child Parser[S]) Parser[S] {
	return zeroOrMoreParser[S]{child: child}
}

func (p zeroOrMoreParser[S]) Parse(c *Cursor[S]) bool {
	for p.child.Parse(c) {
	}
	return true
}

type oneOrMoreParser[S any] struct {
	child Parser[S]
}

// OneOrMore returns a parser like ZeroOrMore, which fails if child did not
// match at least once.
func OneOrMore[S any](child Parser[S]) Parser[S] {
	return oneOrMoreParser[S]{child: child}
}

func (p oneOrMoreParser[S]) Parse(c *Cursor[S]) bool {
	matched := false
	for p.child.Parse(c) {
		matched = true
	}
	return matched
}

// --- Composition -----------------------------------------------------------

type sequenceParser[S any] struct {
	children []Parser[S]
}

// Sequence returns a parser which matches all children in order. If one of
// them fails, the whole sequence is rolled back.
func Sequence[S any](children ...Parser[S]) Parser[S] {
	l := make([]Parser[S], len(children))
	copy(l, children)
	return sequenceParser[S]{children: l}
}

func (p sequenceParser[S]) Parse(c *Cursor[S]) bool {
	c.Save()
	for _, child := range p.children {
		if !child.Parse(c) {
			c.Backtrack()
			return false
		}
	}
	c.Commit()
	return true
}

type choiceParser[S any] struct {
	children []Parser[S]
}

// Choice returns an ordered choice: children are tried in order and the first
// one to match wins.
func Choice[S any](children ...Parser[S]) Parser[S] {
	l := make([]Parser[S], len(children))
	copy(l, children)
	return choiceParser[S]{children: l}
}

func (p choiceParser[S]) Parse(c *Cursor[S]) bool {
	for _, child := range p.children {
		if child.Parse(c) {
			return true
		}
	}
	return false
}

// --- Nodes -----------------------------------------------------------------

type captureParser[S any] struct {
	tag   Tag
	child Parser[S]
}

// Capture returns a parser which produces a node with the given tag for
// the input matched by child. Nodes produced by child become children
// of the new node.
func Capture[S any](tag Tag, child Parser[S]) Parser[S] {
	if tag == NoTag {
		return child
	}
	return captureParser[S]{tag: tag, child: child}
}

func (p captureParser[S]) Parse(c *Cursor[S]) bool {
	c.SaveTag(p.tag)
	if p.child.Parse(c) {
		c.Commit()
		return true
	}
	c.Backtrack()
	return false
}
