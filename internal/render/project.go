// Package render draws a triangle mesh as a depth-shaded point cloud
// on a terminal screen.
package render

import (
	"sort"

	"github.com/Faultbox/affine/internal/mesh"
	"github.com/Faultbox/affine/pkg/math"
)

// Projector maps world coordinates to screen cells with a simple
// orthographic projection. AspectY compensates for terminal cells
// being roughly twice as tall as they are wide.
type Projector struct {
	Scale   float32
	Center  math.Vec2
	AspectY float32
}

// NewProjector returns a projector fitted to a w x h cell screen.
func NewProjector(w, h int, worldExtent float32) Projector {
	if worldExtent <= 0 {
		worldExtent = 1
	}
	scale := minf(float32(w), float32(h)*2) / (2 * worldExtent)
	return Projector{
		Scale:   scale,
		Center:  math.Vec2{X: float32(w) / 2, Y: float32(h) / 2},
		AspectY: 0.5,
	}
}

// Project maps a world position to screen space. The returned depth is
// the world Z, larger meaning closer to the viewer.
func (p Projector) Project(v math.Vec3) (math.Vec2, float32) {
	screen := math.Vec2{
		X: v.X*p.Scale + p.Center.X,
		Y: -v.Y*p.Scale*p.AspectY + p.Center.Y,
	}
	return screen, v.Z
}

// Cell is one shaded screen cell produced by the rasterizer.
type Cell struct {
	X, Y  int
	Depth float32
	Ch    rune
}

// Shading character ramps, far to near.
var shadeStyles = [][]rune{
	{'·', '░', '▒', '▓', '█'},
	{'.', ':', '+', '*', '#', '@'},
	{'∘', '◦', '○', '◎', '●'},
}

// StyleCount reports how many shading ramps are available.
func StyleCount() int {
	return len(shadeStyles)
}

func shadeRune(depth float32, style int) rune {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	ramp := shadeStyles[style%len(shadeStyles)]
	return ramp[int(depth*float32(len(ramp)-1))]
}

// Frame rasterizes the mesh edges into shaded cells for a w x h
// screen, sorted far to near so callers can paint in order.
func Frame(m *mesh.TriMesh, p Projector, w, h, style int) []Cell {
	if len(m.Vertices) == 0 {
		return nil
	}

	minZ := m.Bounds.Min.Z
	maxZ := m.Bounds.Max.Z
	depthRange := maxZ - minZ
	if depthRange == 0 {
		depthRange = 1
	}

	var cells []Cell
	emit := func(v math.Vec3) {
		screen, z := p.Project(v)
		x, y := int(screen.X), int(screen.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		depth := (z - minZ) / depthRange
		cells = append(cells, Cell{
			X: x, Y: y,
			Depth: depth,
			Ch:    shadeRune(depth, style),
		})
	}

	for _, e := range m.Edges() {
		a := m.Vertices[e[0]].Position
		b := m.Vertices[e[1]].Position

		steps := edgeSteps(a, b, p.Scale)
		for s := 0; s <= steps; s++ {
			t := float32(s) / float32(steps)
			emit(a.Add(b.Sub(a).Scale(t)))
		}
	}

	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Depth < cells[j].Depth
	})
	return cells
}

// edgeSteps picks a sample count that leaves no gaps at the given
// screen scale.
func edgeSteps(a, b math.Vec3, scale float32) int {
	steps := int(a.Distance(b)*scale) + 1
	if steps < 1 {
		steps = 1
	}
	if steps > 512 {
		steps = 512
	}
	return steps
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
