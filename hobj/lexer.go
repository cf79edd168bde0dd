package hobj

import (
	"sync"

	"github.com/npillmayer/cube4d"
	"github.com/npillmayer/cube4d/scanner"
	"github.com/timtadh/lexmachine"
)

// Token types of the higher object lexer.
const (
	TokObject cube4d.TokType = iota + 1
	TokVertex
	TokFacet
	TokNumber
	TokIdent
	TokComment
	TokEOL
)

// TokString returns the name of a token type. It is a cube4d.TokTypeStringer.
func TokString(t cube4d.TokType) string {
	switch t {
	case TokObject:
		return "o"
	case TokVertex:
		return "v"
	case TokFacet:
		return "f"
	case TokNumber:
		return "number"
	case TokIdent:
		return "ident"
	case TokComment:
		return "comment"
	case TokEOL:
		return "eol"
	case scanner.EOF:
		return "EOF"
	}
	return "?"
}

var _ cube4d.TokTypeStringer = TokString

var keywords = []string{"o", "O", "v", "V", "f", "F"}

var keywordIds = map[string]int{
	"o": int(TokObject), "O": int(TokObject),
	"v": int(TokVertex), "V": int(TokVertex),
	"f": int(TokFacet), "F": int(TokFacet),
}

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns a lexmachine adapter splitting higher object sources into
// tokens. Blanks, tabs, form feeds and vertical tabs are skipped.
//
// The grammar does not depend on the lexer. Tokens are used for inspecting
// and highlighting sources.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = scanner.NewLMAdapter(func(lx *lexmachine.Lexer) {
			lx.Add([]byte("#[^\n\r]*"), scanner.MakeToken("comment", int(TokComment)))
			lx.Add([]byte("\r\n|\n|\r"), scanner.MakeToken("eol", int(TokEOL)))
			lx.Add([]byte("( |\t|\f|\v)+"), scanner.Skip)
			lx.Add([]byte(`(\+|-)?[0-9]+(\.[0-9]+)?`), scanner.MakeToken("number", int(TokNumber)))
			lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), scanner.MakeToken("ident", int(TokIdent)))
		}, nil, keywords, keywordIds)
	})
	return lexer, lexerErr
}

// Tokens splits a source into tokens. Input the lexer cannot match is
// skipped and reported as an error, together with the remaining tokens.
func Tokens(source string) ([]cube4d.Token, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lx.Scanner(source)
	if err != nil {
		return nil, err
	}
	var first error
	sc.SetErrorHandler(func(e error) {
		tracer().Errorf("lexer: %v", e)
		if first == nil {
			first = e
		}
	})
	return scanner.Tokens(sc), first
}
