package math

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Mat4 is a 4x4 matrix in row-major order.
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Element (row, col) lives at offset row*4+col. Mat4 is a value type:
// assignment copies all 16 elements.
type Mat4 [16]float32

// Init selects the fill pattern for New.
type Init int

const (
	// InitIdentity fills the diagonal with 1 and everything else with 0.
	InitIdentity Init = iota
	// InitOnes fills every element with 1.
	InitOnes
	// InitZeros fills every element with 0.
	InitZeros
)

// New returns a matrix initialized per the given mode.
// Unknown modes fall back to identity.
func New(mode Init) Mat4 {
	switch mode {
	case InitOnes:
		return Ones()
	case InitZeros:
		return Zeros()
	default:
		return Identity()
	}
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ones returns a matrix with every element set to 1.
func Ones() Mat4 {
	return Mat4{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}
}

// Zeros returns a matrix with every element set to 0.
func Zeros() Mat4 {
	return Mat4{}
}

// RotateX returns a rotation matrix around the X axis.
// angleDeg is in degrees.
func RotateX(angleDeg float32) Mat4 {
	c := cosDeg(angleDeg)
	s := sinDeg(angleDeg)

	m := Identity()
	m[5] = c
	m[6] = -s
	m[9] = s
	m[10] = c
	return m
}

// RotateY returns a rotation matrix around the Y axis.
// angleDeg is in degrees.
func RotateY(angleDeg float32) Mat4 {
	c := cosDeg(angleDeg)
	s := sinDeg(angleDeg)

	m := Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	return m
}

// RotateZ returns a rotation matrix around the Z axis.
// angleDeg is in degrees.
func RotateZ(angleDeg float32) Mat4 {
	c := cosDeg(angleDeg)
	s := sinDeg(angleDeg)

	m := Identity()
	m[0] = c
	m[1] = -s
	m[4] = s
	m[5] = c
	return m
}

// Translate returns a translation matrix with v in the last column
// of the top three rows.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

// Scale returns a non-uniform scale matrix.
func Scale(sx, sy, sz float32) Mat4 {
	m := Identity()
	m[0] = sx
	m[5] = sy
	m[10] = sz
	return m
}

// Get returns the element at (row, col).
// row and col must be in [0,4); out-of-range indices panic.
func (m Mat4) Get(row, col int) float32 {
	return m[row*4+col]
}

// Set overwrites the element at (row, col).
// row and col must be in [0,4); out-of-range indices panic.
func (m *Mat4) Set(row, col int, v float32) {
	m[row*4+col] = v
}

// SetZeros overwrites every element with 0 and returns m for chaining.
func (m *Mat4) SetZeros() *Mat4 {
	*m = Zeros()
	return m
}

// SetOnes overwrites every element with 1 and returns m for chaining.
func (m *Mat4) SetOnes() *Mat4 {
	*m = Ones()
	return m
}

// SetIdentity overwrites m with the identity and returns m for chaining.
func (m *Mat4) SetIdentity() *Mat4 {
	*m = Identity()
	return m
}

// SetUniform overwrites every element with an independent draw from the
// uniform distribution over [low, high) and returns m for chaining.
// A nil rng uses the process-wide source; callers that need reproducible
// fills or concurrent safety supply their own generator.
func (m *Mat4) SetUniform(rng *rand.Rand, low, high float32) *Mat4 {
	for i := range m {
		var u float32
		if rng != nil {
			u = rng.Float32()
		} else {
			u = rand.Float32()
		}
		m[i] = low + u*(high-low)
	}
	return m
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col*4+row] = m[row*4+col]
		}
	}
	return result
}

// Add returns the elementwise sum m + other.
func (m Mat4) Add(other Mat4) Mat4 {
	var result Mat4
	for i := range m {
		result[i] = m[i] + other[i]
	}
	return result
}

// Sub returns the elementwise difference m - other.
func (m Mat4) Sub(other Mat4) Mat4 {
	var result Mat4
	for i := range m {
		result[i] = m[i] - other[i]
	}
	return result
}

// Mul returns the matrix product m * other. Transforms compose
// right-to-left: Translate(t).Mul(RotateZ(a)).Mul(Scale(s,s,s)) scales
// first, then rotates, then translates.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row*4+col] =
				m[row*4+0]*other[0*4+col] +
					m[row*4+1]*other[1*4+col] +
					m[row*4+2]*other[2*4+col] +
					m[row*4+3]*other[3*4+col]
		}
	}
	return result
}

// MulScalar returns m with every element multiplied by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	var result Mat4
	for i := range m {
		result[i] = m[i] * s
	}
	return result
}

// Hadamard returns the elementwise product of m and other.
func (m Mat4) Hadamard(other Mat4) Mat4 {
	var result Mat4
	for i := range m {
		result[i] = m[i] * other[i]
	}
	return result
}

// TransformDirection applies the upper-left 3x3 block of m to v,
// ignoring the translation column and the homogeneous row. Use it for
// directions and normals; use TransformPoint for positions.
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// TransformPoint applies the full affine transform to v (assumes w=1),
// including translation.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// ColumnMajor returns the 16 elements in column-major order, the layout
// expected by most graphics APIs for uniform uploads.
func (m Mat4) ColumnMajor() [16]float32 {
	var out [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row+col*4] = m[row*4+col]
		}
	}
	return out
}

// ColumnMajorInto writes the 16 elements into dst in column-major order.
// dst must have length at least 16.
func (m Mat4) ColumnMajorInto(dst []float32) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			dst[row+col*4] = m[row*4+col]
		}
	}
}

// Translation returns the translation components of m (the last column
// of the top three rows).
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// String renders m as four lines of four space-separated values,
// row-major. Diagnostic output only, not a persisted format.
func (m Mat4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			fmt.Fprintf(&b, "%g ", m[row*4+col])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cosDeg(angleDeg float32) float32 {
	return float32(math.Cos(float64(angleDeg) / 180 * math.Pi))
}

func sinDeg(angleDeg float32) float32 {
	return float32(math.Sin(float64(angleDeg) / 180 * math.Pi))
}
