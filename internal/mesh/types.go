// Package mesh provides a minimal triangle-mesh container consumed by
// the transform kit and the terminal viewer.
package mesh

import "github.com/Faultbox/affine/pkg/math"

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// TriMesh holds indexed triangle geometry.
type TriMesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}
