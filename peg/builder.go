package peg

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
)

// ErrNoScope is raised (as a panic) if End is called without an open scope.
var ErrNoScope = errors.New("no open scope")

// Builder assembles a parser in a fluent style.
//
// Terminals are appended to a list of pending fragments. Composite parsers
// are opened as scopes and collect all fragments appended until the matching
// End. Example:
//
//    b := peg.NewRuneBuilder()
//    b.Choice().          // Choice(
//        Sym('\n').       //     '\n',
//        Begin().         //     Sequence(
//            Sym('\r').   //         '\r',
//            Optional().  //         Optional(
//                Sym('\n').
//            End().       //         ))
//        End().
//    End()                // )
//    eol := b.Build()
//
// A builder must not be used after Build has been called.
type Builder[S any] struct {
	fragments []Parser[S]
	scopes    *arraystack.Stack // of scope
	eq        Equality[S]
	cmp       utils.Comparator
}

// scope is an open composite parser. It records the start of its fragments
// and a constructor for the composite.
type scope[S any] struct {
	start     int
	construct func([]Parser[S]) Parser[S]
}

// Rule is a named grammar rule. Rules are functions extending a builder and
// are included into other rules with Apply.
type Rule[S any] func(*Builder[S]) *Builder[S]

// NewBuilder creates a builder using eq to test symbols for equality and cmp to
// order them (for ranges).
func NewBuilder[S any](eq Equality[S], cmp utils.Comparator) *Builder[S] {
	return &Builder[S]{
		scopes: arraystack.New(),
		eq:     eq,
		cmp:    cmp,
	}
}

// NewRuneBuilder creates a builder for grammars over runes.
func NewRuneBuilder() *Builder[rune] {
	return NewBuilder[rune](Equal[rune], utils.RuneComparator)
}

// --- Terminals -------------------------------------------------------------

// Fail appends a parser which never matches.
func (b *Builder[S]) Fail() *Builder[S] {
	return b.add(Fail[S]())
}

// Empty appends a parser matching the end of input.
func (b *Builder[S]) Empty() *Builder[S] {
	return b.add(Empty[S]())
}

// Any appends a parser matching any symbol.
func (b *Builder[S]) Any() *Builder[S] {
	return b.add(Any[S]())
}

// Sym appends a parser matching symbol s.
func (b *Builder[S]) Sym(s S) *Builder[S] {
	return b.add(Symbol(s, b.eq))
}

// Lit appends a parser matching the sequence of symbols syms.
func (b *Builder[S]) Lit(syms ...S) *Builder[S] {
	return b.add(Literal(syms, b.eq))
}

// Range appends a parser matching a symbol between from and to (inclusive).
func (b *Builder[S]) Range(from, to S) *Builder[S] {
	return b.add(Range[S](from, to, b.cmp))
}

// Set appends a parser matching any of the symbols in set.
func (b *Builder[S]) Set(set ...S) *Builder[S] {
	return b.add(Set(b.eq, set...))
}

// Parser appends an arbitrary parser.
func (b *Builder[S]) Parser(p Parser[S]) *Builder[S] {
	return b.add(p)
}

// Apply extends the builder by a sequence of rules.
func (b *Builder[S]) Apply(rules ...Rule[S]) *Builder[S] {
	for _, rule := range rules {
		b = rule(b)
	}
	return b
}

// --- Scopes ----------------------------------------------------------------

// Begin opens a sequence.
func (b *Builder[S]) Begin() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return Sequence(ps...)
	})
}

// Choice opens an ordered choice. Every fragment of the scope is an alternative.
func (b *Builder[S]) Choice() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return Choice(ps...)
	})
}

// Optional opens an optional sequence.
func (b *Builder[S]) Optional() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return Optional(sequenceOf(ps))
	})
}

// ZeroOrMore opens a sequence repeated zero or more times.
func (b *Builder[S]) ZeroOrMore() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return ZeroOrMore(sequenceOf(ps))
	})
}

// OneOrMore opens a sequence repeated one or more times.
func (b *Builder[S]) OneOrMore() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return OneOrMore(sequenceOf(ps))
	})
}

// Node opens a sequence which will produce a node tagged with tag.
func (b *Builder[S]) Node(tag Tag) *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return Capture(tag, sequenceOf(ps))
	})
}

// And opens a positive lookahead for a sequence.
func (b *Builder[S]) And() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return And(sequenceOf(ps))
	})
}

// Not opens a negative lookahead for a sequence.
func (b *Builder[S]) Not() *Builder[S] {
	return b.open(func(ps []Parser[S]) Parser[S] {
		return Not(sequenceOf(ps))
	})
}

// End closes the innermost open scope. Calling End without an open scope
// panics.
func (b *Builder[S]) End() *Builder[S] {
	top, ok := b.scopes.Pop()
	if !ok {
		panic(fmt.Errorf("builder: end: %w", ErrNoScope))
	}
	sc := top.(scope[S])
	composite := sc.construct(b.fragments[sc.start:])
	for i := sc.start; i < len(b.fragments); i++ {
		b.fragments[i] = nil
	}
	b.fragments = append(b.fragments[:sc.start], composite)
	return b
}

// Build closes all open scopes and returns the sequence of all top-level
// fragments. If nothing has been added to the builder, Build returns a
// parser which always fails.
func (b *Builder[S]) Build() Parser[S] {
	if len(b.fragments) == 0 {
		return Fail[S]()
	}
	if b.scopes.Size() > 0 {
		tracer().Debugf("builder: closing %d open scopes", b.scopes.Size())
	}
	for b.scopes.Size() > 0 {
		b.End()
	}
	return Sequence(b.fragments...)
}

func (b *Builder[S]) add(p Parser[S]) *Builder[S] {
	b.fragments = append(b.fragments, p)
	return b
}

func (b *Builder[S]) open(construct func([]Parser[S]) Parser[S]) *Builder[S] {
	b.scopes.Push(scope[S]{start: len(b.fragments), construct: construct})
	return b
}

func sequenceOf[S any](ps []Parser[S]) Parser[S] {
	if len(ps) == 1 {
		return ps[0]
	}
	return Sequence(ps...)
}
