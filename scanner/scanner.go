/*
Package scanner defines an interface for scanners producing cube4d.Tokens.

A default implementation is provided as an adapter for lexmachine DFA lexers.
Scanners are not needed for parsing (the peg package works on symbols
directly), but are useful for tooling, e.g. listing the lexical units of a
source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/cube4d"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cube4d.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cube4d.scanner")
}

// EOF is the token type of the end-of-input token.
const EOF cube4d.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cube4d.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   cube4d.TokType
	lexeme string
	Val    interface{}
	span   cube4d.Span
}

var _ cube4d.Token = DefaultToken{}

// MakeDefaultToken creates a token. Spans are byte offsets into the input.
func MakeDefaultToken(typ cube4d.TokType, lexeme string, span cube4d.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() cube4d.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cube4d.Span {
	return t.span
}

// Tokens drains a tokenizer and returns all tokens up to (excluding) EOF.
func Tokens(tokenizer Tokenizer) []cube4d.Token {
	var tokens []cube4d.Token
	for {
		token := tokenizer.NextToken()
		if token.TokType() == EOF {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
