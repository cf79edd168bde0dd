package peg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuildNothingFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	p := NewRuneBuilder().Build()
	for _, input := range []string{"test", ""} {
		if p.Parse(cursor(input)) {
			t.Errorf("expected empty builder to fail on %q", input)
		}
	}
}

// Scopes left open are closed by Build.
func TestBuilderTerminalsAndScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	tests := []parserTest{
		{"fail", NewRuneBuilder().Fail().Build(), "test", false, 0},
		{"empty", NewRuneBuilder().Empty().Build(), "", true, 0},
		{"empty on input", NewRuneBuilder().Empty().Build(), "test", false, 0},
		{"any", NewRuneBuilder().Any().Build(), "bc", true, 1},
		{"sym", NewRuneBuilder().Sym('t').Build(), "test", true, 1},
		{"sym mismatch", NewRuneBuilder().Sym('t').Build(), "eest", false, 0},
		{"lit", NewRuneBuilder().Lit([]rune("test")...).Build(), "test", true, 4},
		{"lit mismatch", NewRuneBuilder().Lit([]rune("test")...).Build(), "eest", false, 0},
		{"range", NewRuneBuilder().Range('0', '9').Build(), "9est", true, 1},
		{"set", NewRuneBuilder().Set('a', 'b', 'c').Build(), "cest", true, 1},
		{"set mismatch", NewRuneBuilder().Set('a', 'b', 'c').Build(), "test", false, 0},
		{"and", NewRuneBuilder().And().Sym('t').Build(), "test", true, 0},
		{"and mismatch", NewRuneBuilder().And().Sym('t').Build(), "eest", false, 0},
		{"not", NewRuneBuilder().Not().Sym('t').Build(), "eest", true, 0},
		{"not mismatch", NewRuneBuilder().Not().Sym('t').Build(), "test", false, 0},
		{"optional", NewRuneBuilder().Optional().Sym('t').Build(), "test", true, 1},
		{"optional mismatch", NewRuneBuilder().Optional().Sym('t').Build(), "eest", true, 0},
		{"zero-or-more", NewRuneBuilder().ZeroOrMore().Sym('t').Build(), "tttest", true, 3},
		{"zero-or-more none", NewRuneBuilder().ZeroOrMore().Sym('t').Build(), "eest", true, 0},
		{"one-or-more", NewRuneBuilder().OneOrMore().Sym('t').Build(), "tttest", true, 3},
		{"one-or-more none", NewRuneBuilder().OneOrMore().Sym('t').Build(), "eest", false, 0},
		{"sequence", NewRuneBuilder().Begin().Sym('t').Sym('e').Build(), "test", true, 2},
		{"sequence mismatch", NewRuneBuilder().Begin().Sym('t').Sym('e').Build(), "tast", false, 0},
		{"choice first", NewRuneBuilder().Choice().Sym('t').Sym('e').Build(), "test", true, 1},
		{"choice second", NewRuneBuilder().Choice().Sym('t').Sym('e').Build(), "east", true, 1},
		{"choice none", NewRuneBuilder().Choice().Sym('t').Sym('e').Build(), "aast", false, 0},
	}
	runParserTests(t, tests)
}

func TestBuilderNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	p := NewRuneBuilder().Node(100).Sym('t').Build()
	c := cursor("eest")
	if p.Parse(c) || c.Position() != 0 || len(c.Nodes()) != 0 {
		t.Errorf("expected node parser to fail without nodes on %q", "eest")
	}
	c = cursor("test")
	if !p.Parse(c) || c.Position() != 1 {
		t.Fatalf("expected node parser to match 't'")
	}
	nodes := c.Nodes()
	if len(nodes) != 1 || nodes[0].Tag() != 100 || nodes[0].Begin() != 0 || nodes[0].End() != 1 {
		t.Errorf("expected node 100 (0…1), have %v", nodes)
	}
}

func TestBuilderNestedScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	const (
		tagList Tag = iota + 1
		tagItem
	)
	item := func(b *Builder[rune]) *Builder[rune] {
		return b.Node(tagItem).OneOrMore().Range('a', 'z').End().End()
	}
	b := NewRuneBuilder()
	b.Node(tagList).Sym('[')
	b.Optional().Apply(item).ZeroOrMore().Sym(',').Apply(item).End().End()
	b.Sym(']').End().Empty()
	p := b.Build()
	c := cursor("[ab,c,def]")
	if !p.Parse(c) {
		t.Fatalf("expected list to match")
	}
	tracing.Select("cube4d.peg").SetTraceLevel(tracing.LevelDebug)
	list := c.Nodes()[0]
	Dump(list, NewRuneSource("[ab,c,def]"), nil, tracing.LevelDebug)
	if list.Tag() != tagList || list.ChildCount() != 3 {
		t.Fatalf("expected list node with 3 items, have %v", list)
	}
	if list.Child(2).Begin() != 6 || list.Child(2).End() != 9 {
		t.Errorf("expected third item at (6…9), is %v", list.Child(2).Span())
	}
	c = cursor("[ab,]")
	if p.Parse(c) || len(c.Nodes()) != 0 || c.Position() != 0 {
		t.Errorf("expected '[ab,]' to be rejected without residue")
	}
}

func TestBuilderEndWithoutScopePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoScope) {
			t.Errorf("expected panic with ErrNoScope, got %v", r)
		}
	}()
	NewRuneBuilder().Sym('x').End()
}

func TestTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	p := NewRuneBuilder().Node(1).Node(2).Sym('a').End().Sym('b').End().Build()
	src := NewRuneSource("ab")
	c := NewCursor[rune](src)
	if !p.Parse(c) {
		t.Fatalf("expected 'ab' to match")
	}
	tags := func(tag Tag) string {
		return map[Tag]string{1: "Outer", 2: "Inner"}[tag]
	}
	s := TreeString(c.Nodes()[0], src, tags)
	expected := "Outer (0…2)\n  Inner (0…1) \"a\"\n"
	if s != expected {
		t.Errorf("expected tree string %q, have %q", expected, s)
	}
	count := 0
	Walk(c.Nodes()[0], func(*Node, int) { count++ })
	if count != 2 {
		t.Errorf("expected walk to visit 2 nodes, visited %d", count)
	}
}
