package hobj

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Vertex is a point in 4-dimensional space.
type Vertex struct {
	X, Y, Z, W float64
}

// Facet is a triangle, given as three 0-based indices into the vertex list
// of a higher object.
type Facet struct {
	A, B, C int
}

// HigherObject is a named 4-dimensional polytope.
//
// Every facet index of a higher object is a valid index into its list of
// vertices.
type HigherObject struct {
	name     string
	vertices []Vertex
	facets   []Facet
}

// NewHigherObject creates a higher object. It returns an error wrapping
// ErrFacetIndex if a facet references a vertex not present in vertices.
func NewHigherObject(name string, vertices []Vertex, facets []Facet) (*HigherObject, error) {
	h := &HigherObject{
		name:     name,
		vertices: make([]Vertex, len(vertices)),
		facets:   make([]Facet, 0, len(facets)),
	}
	copy(h.vertices, vertices)
	for _, f := range facets {
		if err := h.AddFacet(f); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Name returns the name of the object.
func (h *HigherObject) Name() string {
	return h.name
}

// Vertices returns a copy of the list of vertices.
func (h *HigherObject) Vertices() []Vertex {
	v := make([]Vertex, len(h.vertices))
	copy(v, h.vertices)
	return v
}

// Facets returns a copy of the list of facets.
func (h *HigherObject) Facets() []Facet {
	f := make([]Facet, len(h.facets))
	copy(f, h.facets)
	return f
}

// VertexCount returns the number of vertices.
func (h *HigherObject) VertexCount() int {
	return len(h.vertices)
}

// FacetCount returns the number of facets.
func (h *HigherObject) FacetCount() int {
	return len(h.facets)
}

// AddVertex appends a vertex.
func (h *HigherObject) AddVertex(v Vertex) {
	h.vertices = append(h.vertices, v)
}

// AddFacet appends a facet. All of its indices must refer to vertices
// already present, otherwise an error wrapping ErrFacetIndex is returned
// and the facet is not added.
func (h *HigherObject) AddFacet(f Facet) error {
	n := len(h.vertices)
	for _, i := range [3]int{f.A, f.B, f.C} {
		if i < 0 || i >= n {
			return fmt.Errorf("object %q, facet #%d (%d %d %d), %d vertices: %w",
				h.name, len(h.facets), f.A, f.B, f.C, n, ErrFacetIndex)
		}
	}
	h.facets = append(h.facets, f)
	return nil
}

// Fingerprint returns a hash of the name and geometry of the object.
// Objects with equal fingerprints describe the same polytope.
func (h *HigherObject) Fingerprint() string {
	hash, err := structhash.Hash(struct {
		Name     string
		Vertices []Vertex
		Facets   []Facet
	}{h.name, h.vertices, h.facets}, 1)
	if err != nil {
		tracer().Errorf("cannot hash object %q: %v", h.name, err)
		return ""
	}
	return hash
}

func (h *HigherObject) String() string {
	return fmt.Sprintf("<hobj %s: %d vertices, %d facets>", h.name, len(h.vertices), len(h.facets))
}

// Collection maps object names to higher objects.
type Collection map[string]*HigherObject

// Names returns the object names of a collection in sorted order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
