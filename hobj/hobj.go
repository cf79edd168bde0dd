package hobj

import (
	"fmt"
	"os"

	"github.com/npillmayer/cube4d/peg"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// FormatError is returned by Read if a source does not conform to the
// higher object syntax. It wraps ErrInvalidFormat.
type FormatError struct {
	Offset int // furthest position (in runes) the parser has reached
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: parser stuck at position %d", ErrInvalidFormat, e.Offset)
}

// Unwrap returns ErrInvalidFormat.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// --- Options ---------------------------------------------------------------

// Option configures Read and Build.
type Option func(*options)

type options struct {
	rejectDuplicates bool
	strictSet        bool
	tree             **peg.Node
}

// RejectDuplicates lets Read fail with ErrDuplicateName whenever an object
// name is re-defined by a different object. Without this option, the
// configuration key 'hobj-reject-duplicates' decides.
func RejectDuplicates(reject bool) Option {
	return func(o *options) {
		o.rejectDuplicates = reject
		o.strictSet = true
	}
}

// KeepTree makes Read store the parse tree at *tree.
func KeepTree(tree **peg.Node) Option {
	return func(o *options) {
		o.tree = tree
	}
}

func makeOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.strictSet {
		o.rejectDuplicates = gconf.GetBool("hobj-reject-duplicates")
	}
	return o
}

// --- Reading ---------------------------------------------------------------

// Parse runs the higher object grammar on source. It returns the parse tree
// and the rune source the tree's positions refer to. If the source cannot
// be parsed completely, a *FormatError is returned.
func Parse(source string) (*peg.Node, *peg.RuneSource, error) {
	src := peg.NewRuneSource(source)
	cursor := peg.NewCursor[rune](src)
	if !Grammar().Parse(cursor) {
		tracer().Infof("higher object source rejected at position %d", cursor.Furthest())
		return nil, src, &FormatError{Offset: cursor.Furthest()}
	}
	nodes := cursor.Nodes()
	if len(nodes) != 1 {
		return nil, src, fmt.Errorf("expected single root node, have %d: %w", len(nodes), ErrInvalidFormat)
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		peg.Dump(nodes[0], src, TagString, tracing.LevelDebug)
	}
	return nodes[0], src, nil
}

// Read parses a higher object source and returns the objects it defines.
func Read(source string, opts ...Option) (Collection, error) {
	root, src, err := Parse(source)
	if err != nil {
		return nil, err
	}
	o := makeOptions(opts)
	if o.tree != nil {
		*o.tree = root
	}
	return build(src, root, o)
}

// ReadFile reads a higher object source from a file.
func ReadFile(path string, opts ...Option) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("reading higher objects from %s", path)
	return Read(string(data), opts...)
}
