package mesh

import (
	"github.com/Faultbox/affine/pkg/math"
)

// Cube returns an axis-aligned cube centered at the origin with the
// given edge length. Corner normals point away from the center.
func Cube(size float32) *TriMesh {
	h := size / 2

	corners := []math.Vec3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}

	m := &TriMesh{
		Vertices: make([]Vertex, len(corners)),
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // back
			4, 6, 5, 4, 7, 6, // front
			0, 4, 5, 0, 5, 1, // bottom
			3, 2, 6, 3, 6, 7, // top
			0, 3, 7, 0, 7, 4, // left
			1, 5, 6, 1, 6, 2, // right
		},
	}
	for i, c := range corners {
		m.Vertices[i] = Vertex{Position: c, Normal: c.Normalize()}
	}
	m.ComputeBounds()
	return m
}

// Pyramid returns a square-based pyramid centered at the origin with
// the given base edge and height.
func Pyramid(base, height float32) *TriMesh {
	h := base / 2

	positions := []math.Vec3{
		{X: -h, Y: -height / 2, Z: -h},
		{X: h, Y: -height / 2, Z: -h},
		{X: h, Y: -height / 2, Z: h},
		{X: -h, Y: -height / 2, Z: h},
		{X: 0, Y: height / 2, Z: 0}, // apex
	}

	m := &TriMesh{
		Vertices: make([]Vertex, len(positions)),
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // base
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
	}
	for i, p := range positions {
		m.Vertices[i] = Vertex{Position: p, Normal: p.Normalize()}
	}
	m.ComputeBounds()
	return m
}

// Transform returns a new mesh with every vertex position put through
// the full affine transform and every normal through the linear part
// only, re-normalized. Indices are shared with the receiver.
func (m *TriMesh) Transform(t math.Mat4) *TriMesh {
	out := &TriMesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  m.Indices,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = Vertex{
			Position: t.TransformPoint(v.Position),
			Normal:   t.TransformDirection(v.Normal).Normalize(),
		}
	}
	out.ComputeBounds()
	return out
}

// ComputeBounds recomputes the axis-aligned bounding box from the
// current vertex positions.
func (m *TriMesh) ComputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}

	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, v := range m.Vertices {
		p := v.Position
		bounds.Min = math.Vec3{
			X: minf(bounds.Min.X, p.X),
			Y: minf(bounds.Min.Y, p.Y),
			Z: minf(bounds.Min.Z, p.Z),
		}
		bounds.Max = math.Vec3{
			X: maxf(bounds.Max.X, p.X),
			Y: maxf(bounds.Max.Y, p.Y),
			Z: maxf(bounds.Max.Z, p.Z),
		}
	}
	m.Bounds = bounds
}

// Edges returns the unique undirected edges of the triangle list with
// the smaller index first.
func (m *TriMesh) Edges() [][2]uint32 {
	seen := make(map[[2]uint32]bool)
	var edges [][2]uint32

	addEdge := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		key := [2]uint32{a, b}
		if !seen[key] {
			seen[key] = true
			edges = append(edges, key)
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		addEdge(a, b)
		addEdge(b, c)
		addEdge(c, a)
	}
	return edges
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
