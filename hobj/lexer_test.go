package hobj

import (
	"testing"

	"github.com/npillmayer/cube4d"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.hobj")
	defer teardown()
	//
	tokens, err := Tokens("o Simplex # c\nv 1 -1.5 0 0\n")
	if err != nil {
		t.Fatal(err)
	}
	expected := []cube4d.TokType{TokObject, TokIdent, TokComment, TokEOL,
		TokVertex, TokNumber, TokNumber, TokNumber, TokNumber, TokEOL}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.TokType() != expected[i] {
			t.Errorf("expected token #%d to be %s, is %s (%q)", i,
				TokString(expected[i]), TokString(tok.TokType()), tok.Lexeme())
		}
	}
	if tokens[1].Lexeme() != "Simplex" || tokens[6].Lexeme() != "-1.5" {
		t.Errorf("unexpected lexemes %q and %q", tokens[1].Lexeme(), tokens[6].Lexeme())
	}
	if span := tokens[1].Span(); span.From() != 2 || span.To() != 9 {
		t.Errorf("expected name to span (2…9), is %s", span)
	}
}

func TestTokensKeywordPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.hobj")
	defer teardown()
	//
	tokens, err := Tokens("o v1 fo")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[1].TokType() != TokIdent || tokens[2].TokType() != TokIdent {
		t.Errorf("expected identifiers starting with keyword letters, have %v", tokens)
	}
}

func TestTokensError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.hobj")
	defer teardown()
	//
	tokens, err := Tokens("o X $ y")
	if err == nil {
		t.Errorf("expected unmatched input to be reported")
	}
	if len(tokens) != 3 {
		t.Errorf("expected lexer to skip unmatched input, have %d tokens", len(tokens))
	}
}

func TestTokensWhiteSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.hobj")
	defer teardown()
	//
	source := "v\f1 2\v3\t4 \n"
	if _, err := Read("o X\n"+source+"v 0 0 0 0\nv 1 1 1 1\nf 0 1 2\n", RejectDuplicates(false)); err != nil {
		t.Fatalf("expected source to be valid, have %v", err)
	}
	tokens, err := Tokens(source)
	if err != nil {
		t.Fatalf("expected form feed and vertical tab to be skipped, have %v", err)
	}
	if len(tokens) != 6 {
		t.Errorf("expected 6 tokens, have %d: %v", len(tokens), tokens)
	}
}

func TestTokensKeywordCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.hobj")
	defer teardown()
	//
	tokens, err := Tokens("O V F x")
	if err != nil {
		t.Fatal(err)
	}
	expected := []cube4d.TokType{TokObject, TokVertex, TokFacet, TokIdent}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.TokType() != expected[i] {
			t.Errorf("expected token #%d to be %s, is %s", i, TokString(expected[i]), TokString(tok.TokType()))
		}
	}
}
