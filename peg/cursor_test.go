package peg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCursorAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	c := NewCursor[rune](NewRuneSource("ab"))
	if c.IsEmpty() || c.Current() != 'a' || c.Position() != 0 {
		t.Fatalf("expected cursor at 'a'/0, is %q/%d", c.Current(), c.Position())
	}
	c.Advance()
	if c.Current() != 'b' || c.Position() != 1 {
		t.Errorf("expected cursor at 'b'/1, is %q/%d", c.Current(), c.Position())
	}
	c.Advance()
	if !c.IsEmpty() {
		t.Errorf("expected cursor to be empty at position %d", c.Position())
	}
}

func TestCursorAdvanceEmptyPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	c := NewCursor[rune](NewRuneSource(""))
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyCursor) {
			t.Errorf("expected panic with ErrEmptyCursor, got %v", r)
		}
	}()
	c.Advance()
}

func TestCursorUnbalancedPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	for _, op := range []string{"backtrack", "commit"} {
		func() {
			c := NewCursor[rune](NewRuneSource("x"))
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrUnbalanced) {
					t.Errorf("%s: expected panic with ErrUnbalanced, got %v", op, r)
				}
			}()
			if op == "backtrack" {
				c.Backtrack()
			} else {
				c.Commit()
			}
		}()
	}
}

func TestCursorBacktrack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	c := NewCursor[rune](NewRuneSource("abc"))
	c.Save()
	c.SaveTag(1)
	c.Advance()
	c.Commit()
	c.Advance()
	if len(c.Nodes()) != 1 || c.Position() != 2 {
		t.Fatalf("expected 1 node at position 2, have %d at %d", len(c.Nodes()), c.Position())
	}
	c.Backtrack()
	if len(c.Nodes()) != 0 || c.Position() != 0 {
		t.Errorf("expected 0 nodes at position 0, have %d at %d", len(c.Nodes()), c.Position())
	}
	if c.Furthest() != 2 {
		t.Errorf("expected furthest position 2, is %d", c.Furthest())
	}
	if c.Depth() != 0 {
		t.Errorf("expected no open marks, have %d", c.Depth())
	}
}

func TestCursorCommitTagged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	c := NewCursor[rune](NewRuneSource("abcd"))
	c.Advance()
	c.SaveTag(1) // outer node from 1
	c.SaveTag(2) // 'b'
	c.Advance()
	c.Commit()
	c.Save() // untagged: no node
	c.SaveTag(3)
	c.Advance() // 'c'
	c.Commit()
	c.Commit()
	c.Commit()
	nodes := c.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 top-level node, have %d", len(nodes))
	}
	root := nodes[0]
	if root.Tag() != 1 || root.Begin() != 1 || root.End() != 3 {
		t.Errorf("expected node 1 (1…3), have %v", root)
	}
	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 children, have %d", root.ChildCount())
	}
	if root.Child(0).Tag() != 2 || root.Child(1).Tag() != 3 {
		t.Errorf("expected children tagged 2 and 3, have %v and %v", root.Child(0), root.Child(1))
	}
	if root.Child(1).Span().From() != 2 || root.Child(1).Len() != 1 {
		t.Errorf("expected child 3 to span (2…3), is %v", root.Child(1).Span())
	}
}

func TestCursorCommitUntaggedKeepsNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	c := NewCursor[rune](NewRuneSource("ab"))
	c.Save()
	c.SaveTag(5)
	c.Advance()
	c.Commit()
	c.SaveTag(6)
	c.Advance()
	c.Commit()
	c.Commit()
	nodes := c.Nodes()
	if len(nodes) != 2 || nodes[0].Tag() != 5 || nodes[1].Tag() != 6 {
		t.Errorf("expected nodes 5 and 6 to survive untagged commit, have %v", nodes)
	}
}

func TestSliceSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cube4d.peg")
	defer teardown()
	//
	src := NewSliceSource([]int{3, 1, 4})
	c := NewCursor[int](src)
	p := Sequence[int](Symbol[int](3, Equal[int]), Symbol[int](1, Equal[int]), Symbol[int](4, Equal[int]), Empty[int]())
	if !p.Parse(c) {
		t.Errorf("expected 3 1 4 to match")
	}
}
