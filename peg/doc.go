/*
Package peg implements a small backtracking parser-combinator framework.

Parsers operate on a Cursor, a read-only view over a finite, indexable
sequence of symbols. The cursor keeps a stack of marks for backtracking and
collects parse tree nodes for committed, tagged parses. Every parser shares
one contract:

    Parse(cursor) bool

On failure the cursor is left exactly as it was before the call (position and
collected nodes). On success the cursor has advanced and/or collected nodes
for what has been matched. There is no memoization: grammars are expected to
be small and not left-recursive.

Building a Grammar

Grammars are assembled with a Builder. Scopes (sequences, choices,
repetitions, lookaheads and node captures) are opened by the respective
method and closed by End():

    b := peg.NewRuneBuilder()
    b.Node(TagNumber).              // Number  <- [+-]? [0-9]+
        Optional().Set('+', '-').End().
        OneOrMore().Range('0', '9').End().
    End()
    p := b.Build()

Named sub-rules are plain functions taking and returning the builder,
included with Apply:

    func Digits(b *peg.Builder[rune]) *peg.Builder[rune] {
        return b.OneOrMore().Range('0', '9').End()
    }

    b.Node(TagIndex).Apply(Digits).End()

A finished parser tree is immutable and may be shared between goroutines,
each of them parsing with its own cursor. Builders and cursors must not be
shared.

Zero-or-more and one-or-more repetitions must not be applied to parsers
which may succeed without consuming input. Such a grammar loops forever.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package peg

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cube4d.peg'.
func tracer() tracing.Trace {
	return tracing.Select("cube4d.peg")
}

// Contract violations. These are programming errors and will be raised as
// panics, wrapping one of the following errors.
var (
	ErrEmptyCursor = errors.New("cursor is at end of input")
	ErrUnbalanced  = errors.New("unbalanced mark stack")
)
