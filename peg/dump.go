package peg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Text is a source which is able to return the text for a span of positions.
// RuneSource implements it.
type Text interface {
	Slice(begin, end int) string
}

// Walk calls f for node and all of its descendants, in pre-order.
// depth is 0 for node.
func Walk(node *Node, f func(n *Node, depth int)) {
	walk(node, 0, f)
}

func walk(node *Node, depth int, f func(*Node, int)) {
	if node == nil {
		return
	}
	f(node, depth)
	for _, ch := range node.children {
		walk(ch, depth+1, f)
	}
}

// Label returns a one-line description of a node. Leaf nodes show the
// text they cover, if text is not nil.
func Label(node *Node, text Text, tags TagStringer) string {
	name := fmt.Sprintf("%d", node.Tag())
	if tags != nil {
		name = tags(node.Tag())
	}
	if text != nil && node.ChildCount() == 0 {
		return fmt.Sprintf("%s %s %q", name, node.Span(), text.Slice(node.Begin(), node.End()))
	}
	return fmt.Sprintf("%s %s", name, node.Span())
}

// TreeString returns an indented representation of a parse tree.
func TreeString(node *Node, text Text, tags TagStringer) string {
	var b bytes.Buffer
	Walk(node, func(n *Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(Label(n, text, tags))
		b.WriteString("\n")
	})
	return b.String()
}

// Dump traces a parse tree, one line per node, at the given trace level.
func Dump(node *Node, text Text, tags TagStringer, level tracing.TraceLevel) {
	trace := tracer().Debugf
	switch level {
	case tracing.LevelError:
		trace = tracer().Errorf
	case tracing.LevelInfo:
		trace = tracer().Infof
	}
	Walk(node, func(n *Node, depth int) {
		trace("%s%s", strings.Repeat("  ", depth), Label(n, text, tags))
	})
}
