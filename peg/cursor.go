package peg

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// mark records the cursor state at a call to Save.
type mark struct {
	position  int
	tag       Tag
	nodeCount int
}

// Cursor is a position within a source, together with a stack of marks for
// backtracking and a list of nodes collected from committed, tagged marks.
//
// A cursor is used for a single parse run and must not be shared.
type Cursor[S any] struct {
	src      Source[S]
	position int
	furthest int
	marks    *arraystack.Stack // of mark
	nodes    []*Node
}

// NewCursor creates a cursor positioned at the start of src.
func NewCursor[S any](src Source[S]) *Cursor[S] {
	return &Cursor[S]{
		src:   src,
		marks: arraystack.New(),
	}
}

// Current returns the symbol at the cursor position. Calling Current on an
// empty cursor is an error.
func (c *Cursor[S]) Current() S {
	return c.src.At(c.position)
}

// Position returns the current position.
func (c *Cursor[S]) Position() int {
	return c.position
}

// Furthest returns the highest position the cursor has ever reached,
// including positions which later have been backtracked.
func (c *Cursor[S]) Furthest() int {
	return c.furthest
}

// IsEmpty is true if the cursor is at the end of the source.
func (c *Cursor[S]) IsEmpty() bool {
	return c.position >= c.src.Len()
}

// Advance moves the cursor to the next symbol.
// Advancing an empty cursor panics.
func (c *Cursor[S]) Advance() {
	if c.IsEmpty() {
		panic(fmt.Errorf("cannot advance at position %d: %w", c.position, ErrEmptyCursor))
	}
	c.position++
	if c.position > c.furthest {
		c.furthest = c.position
	}
}

// Save pushes a mark without a tag.
func (c *Cursor[S]) Save() {
	c.SaveTag(NoTag)
}

// SaveTag pushes a mark. If the mark will be committed, it will produce
// a node with the given tag.
func (c *Cursor[S]) SaveTag(tag Tag) {
	c.marks.Push(mark{
		position:  c.position,
		tag:       tag,
		nodeCount: len(c.nodes),
	})
}

// Backtrack pops the topmost mark and restores the cursor to the state
// recorded by it. Nodes collected since the mark are dropped.
func (c *Cursor[S]) Backtrack() {
	m := c.pop("backtrack")
	c.position = m.position
	for i := m.nodeCount; i < len(c.nodes); i++ {
		c.nodes[i] = nil
	}
	c.nodes = c.nodes[:m.nodeCount]
}

// Commit pops the topmost mark. If the mark carries a tag, all nodes
// collected since the mark are replaced by a single new node with that tag,
// having the replaced nodes as children. Otherwise committing leaves
// position and nodes untouched.
func (c *Cursor[S]) Commit() {
	m := c.pop("commit")
	if m.tag == NoTag {
		return
	}
	node := NewNode(m.tag, m.position, c.position, c.nodes[m.nodeCount:])
	for i := m.nodeCount; i < len(c.nodes); i++ {
		c.nodes[i] = nil
	}
	c.nodes = append(c.nodes[:m.nodeCount], node)
	tracer().Debugf("commit node %d %s", node.Tag(), node.Span())
}

// Depth returns the number of open marks.
func (c *Cursor[S]) Depth() int {
	return c.marks.Size()
}

// Nodes returns the list of top-level nodes collected so far.
func (c *Cursor[S]) Nodes() []*Node {
	nodes := make([]*Node, len(c.nodes))
	copy(nodes, c.nodes)
	return nodes
}

func (c *Cursor[S]) pop(op string) mark {
	m, ok := c.marks.Pop()
	if !ok {
		panic(fmt.Errorf("%s at position %d without mark: %w", op, c.position, ErrUnbalanced))
	}
	return m.(mark)
}
