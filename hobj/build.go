package hobj

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/cube4d/peg"
)

// Build creates higher objects from a parse tree, as produced by Grammar.
// text is the source the tree has been parsed from.
//
// Objects are collected by name. If a name occurs more than once, the later
// object replaces the earlier one, unless option RejectDuplicates is set.
func Build(text peg.Text, root *peg.Node, opts ...Option) (Collection, error) {
	if root == nil || root.Tag() != RootTag {
		return nil, fmt.Errorf("build: expected root node, have %v", root)
	}
	return build(text, root, makeOptions(opts))
}

func build(text peg.Text, root *peg.Node, o options) (Collection, error) {
	objects := make(Collection)
	for _, node := range root.Children() {
		if node.Tag() != ObjectTag {
			continue
		}
		h, err := buildObject(text, node)
		if err != nil {
			return nil, err
		}
		if prev, ok := objects[h.Name()]; ok {
			tracer().Infof("object %q is defined more than once", h.Name())
			if o.rejectDuplicates && prev.Fingerprint() != h.Fingerprint() {
				return nil, fmt.Errorf("object %q at position %d: %w", h.Name(), node.Begin(), ErrDuplicateName)
			}
		}
		objects[h.Name()] = h
	}
	return objects, nil
}

func buildObject(text peg.Text, objectNode *peg.Node) (*HigherObject, error) {
	var name string
	var vertices []Vertex
	var facets []Facet
	for _, node := range objectNode.Children() {
		switch node.Tag() {
		case NameTag:
			name = text.Slice(node.Begin(), node.End())
		case VertexTag:
			v, err := buildVertex(text, node)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)
		case FacetTag:
			f, err := buildFacet(text, node)
			if err != nil {
				return nil, err
			}
			facets = append(facets, f)
		}
	}
	tracer().Debugf("object %q: %d vertices, %d facets", name, len(vertices), len(facets))
	return NewHigherObject(name, vertices, facets)
}

func buildVertex(text peg.Text, vertexNode *peg.Node) (Vertex, error) {
	var c [4]float64
	if vertexNode.ChildCount() != len(c) {
		return Vertex{}, fmt.Errorf("vertex at position %d has %d coordinates",
			vertexNode.Begin(), vertexNode.ChildCount())
	}
	for i := range c {
		n := vertexNode.Child(i)
		if n.Tag() != NumberTag {
			return Vertex{}, fmt.Errorf("expected number at position %d", n.Begin())
		}
		// out-of-range coordinates decode to ±Inf
		f, err := strconv.ParseFloat(text.Slice(n.Begin(), n.End()), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Vertex{}, err
		}
		c[i] = f
	}
	return Vertex{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
}

func buildFacet(text peg.Text, facetNode *peg.Node) (Facet, error) {
	var x [3]int
	if facetNode.ChildCount() != len(x) {
		return Facet{}, fmt.Errorf("facet at position %d has %d indices",
			facetNode.Begin(), facetNode.ChildCount())
	}
	for i := range x {
		n := facetNode.Child(i)
		if n.Tag() != IndexTag {
			return Facet{}, fmt.Errorf("expected index at position %d", n.Begin())
		}
		k, err := strconv.Atoi(text.Slice(n.Begin(), n.End()))
		if errors.Is(err, strconv.ErrRange) {
			return Facet{}, fmt.Errorf("index at position %d: %v: %w", n.Begin(), err, ErrFacetIndex)
		} else if err != nil {
			return Facet{}, err
		}
		x[i] = k
	}
	return Facet{A: x[0], B: x[1], C: x[2]}, nil
}
