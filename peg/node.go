package peg

import (
	"fmt"

	"github.com/npillmayer/cube4d"
)

// Tag identifies the grammar rule which produced a node. Applications define
// their own tag constants, starting with 1.
type Tag int

// NoTag is reserved: a mark without a tag will not produce a node.
const NoTag Tag = 0

// TagStringer is a type to be provided by grammars to be able to print out
// node tags.
type TagStringer func(Tag) string

// Node is a parse tree node. It covers a span of the input and has an ordered
// list of children. Nodes are immutable once created.
type Node struct {
	tag      Tag
	span     cube4d.Span
	children []*Node
}

// NewNode creates a node for span [begin, end). The children slice is copied.
func NewNode(tag Tag, begin, end int, children []*Node) *Node {
	n := &Node{
		tag:  tag,
		span: cube4d.Span{begin, end},
	}
	if len(children) > 0 {
		n.children = make([]*Node, len(children))
		copy(n.children, children)
	}
	return n
}

// Tag returns the tag of the rule which produced the node.
func (n *Node) Tag() Tag {
	return n.tag
}

// Begin returns the position of the first symbol covered by the node.
func (n *Node) Begin() int {
	return n.span.From()
}

// End returns the position just behind the last symbol covered by the node.
func (n *Node) End() int {
	return n.span.To()
}

// Span returns the input span covered by the node.
func (n *Node) Span() cube4d.Span {
	return n.span
}

// Len returns the number of symbols covered by the node.
func (n *Node) Len() int {
	return n.span.Len()
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child number i.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the list of children.
func (n *Node) Children() []*Node {
	ch := make([]*Node, len(n.children))
	copy(ch, n.children)
	return ch
}

func (n *Node) String() string {
	return fmt.Sprintf("<node %d %s #%d>", n.tag, n.span, len(n.children))
}
