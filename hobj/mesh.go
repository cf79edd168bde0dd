package hobj

// Mesh is a flattened, render-ready form of a higher object. Positions hold
// the first three coordinates of every vertex, W holds the fourth one.
// Triangles lists the vertex indices of all facets, three per facet.
type Mesh struct {
	Name      string
	Positions [][3]float32
	W         []float32
	Triangles []int
}

// MakeMesh converts a higher object into a mesh.
func MakeMesh(h *HigherObject) *Mesh {
	m := &Mesh{
		Name:      h.name,
		Positions: make([][3]float32, len(h.vertices)),
		W:         make([]float32, len(h.vertices)),
		Triangles: make([]int, 0, 3*len(h.facets)),
	}
	for i, v := range h.vertices {
		m.Positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		m.W[i] = float32(v.W)
	}
	for _, f := range h.facets {
		m.Triangles = append(m.Triangles, f.A, f.B, f.C)
	}
	return m
}
