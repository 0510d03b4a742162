package math

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewModes(t *testing.T) {
	id := New(InitIdentity)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if id.Get(i, j) != want {
				t.Errorf("identity(%d,%d) = %v, want %v", i, j, id.Get(i, j), want)
			}
		}
	}

	ones := New(InitOnes)
	zeros := New(InitZeros)
	for i := 0; i < 16; i++ {
		if ones[i] != 1 {
			t.Errorf("ones[%d] = %v, want 1", i, ones[i])
		}
		if zeros[i] != 0 {
			t.Errorf("zeros[%d] = %v, want 0", i, zeros[i])
		}
	}
}

func TestNewDefaultsToIdentity(t *testing.T) {
	if New(Init(99)) != Identity() {
		t.Error("unknown init mode should fall back to identity")
	}
}

func TestGetSet(t *testing.T) {
	m := Zeros()
	m.Set(2, 3, 7.5)
	if m.Get(2, 3) != 7.5 {
		t.Errorf("Get(2,3) = %v, want 7.5", m.Get(2, 3))
	}
	// Row-major: (2,3) lives at offset 11.
	if m[11] != 7.5 {
		t.Errorf("m[11] = %v, want 7.5", m[11])
	}
}

func TestSetChaining(t *testing.T) {
	var m Mat4
	got := *m.SetOnes().SetZeros().SetIdentity()
	if got != Identity() {
		t.Errorf("chained mutators = %v, want identity", got)
	}
}

func TestTransposeSelfInverse(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
	if m.Transpose().Get(0, 1) != m.Get(1, 0) {
		t.Error("transpose should swap (0,1) and (1,0)")
	}
}

func TestMulIdentity(t *testing.T) {
	m := randomMatrix(1)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestMulAssociative(t *testing.T) {
	a := randomMatrix(2)
	b := randomMatrix(3)
	c := randomMatrix(4)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	for i := 0; i < 16; i++ {
		if abs(left[i]-right[i]) > 1e-3 {
			t.Errorf("(A*B)*C != A*(B*C) at %d: %v vs %v", i, left[i], right[i])
		}
	}
}

func TestRotateZZero(t *testing.T) {
	m := RotateZ(0)
	for i := 0; i < 16; i++ {
		if abs(m[i]-Identity()[i]) > 1e-6 {
			t.Errorf("RotateZ(0)[%d] = %v, want identity", i, m[i])
		}
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(90)

	want := Mat4{
		0, -1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	for i := 0; i < 16; i++ {
		if abs(m[i]-want[i]) > 1e-6 {
			t.Errorf("RotateZ(90)[%d] = %v, want %v", i, m[i], want[i])
		}
	}
}

func TestRotateZTransform(t *testing.T) {
	// 90 degrees about Z sends +X to +Y.
	got := RotateZ(90).TransformDirection(Vec3{1, 0, 0})
	if abs(got.X) > 1e-6 || abs(got.Y-1) > 1e-6 || abs(got.Z) > 1e-6 {
		t.Errorf("RotateZ(90) * (1,0,0) = %v, want (0,1,0)", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	if m.Get(0, 3) != 5 || m.Get(1, 3) != 10 || m.Get(2, 3) != 15 {
		t.Errorf("Translate last column = (%v, %v, %v), want (5, 10, 15)",
			m.Get(0, 3), m.Get(1, 3), m.Get(2, 3))
	}
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v, want {5 10 15}", got)
	}
}

func TestScaleTransform(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformDirection(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Scale(2,3,4) * (1,1,1) = %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformDirection(Vec3{1, 2, 3})
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("direction transform picked up translation: %v", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestAddSub(t *testing.T) {
	a := randomMatrix(5)
	b := randomMatrix(6)

	if a.Add(b) != b.Add(a) {
		t.Error("Add should be commutative")
	}
	if a.Sub(a) != Zeros() {
		t.Error("A - A should be the zero matrix")
	}

	sum := a.Add(b)
	for i := 0; i < 16; i++ {
		if sum[i] != a[i]+b[i] {
			t.Errorf("Add[%d] = %v, want %v", i, sum[i], a[i]+b[i])
		}
	}
}

func TestHadamard(t *testing.T) {
	a := randomMatrix(7)
	b := randomMatrix(8)

	if a.Hadamard(b) != b.Hadamard(a) {
		t.Error("Hadamard should be commutative")
	}
	got := a.Hadamard(b)
	for i := 0; i < 16; i++ {
		if got[i] != a[i]*b[i] {
			t.Errorf("Hadamard[%d] = %v, want %v", i, got[i], a[i]*b[i])
		}
	}
}

func TestMulScalar(t *testing.T) {
	m := randomMatrix(9)
	if m.MulScalar(1) != m {
		t.Error("scalar multiply by 1 should be identity")
	}
	if m.MulScalar(0) != Zeros() {
		t.Error("scalar multiply by 0 should yield the zero matrix")
	}
}

func TestColumnMajorIdentity(t *testing.T) {
	got := Identity().ColumnMajor()
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if got != want {
		t.Errorf("ColumnMajor(I) = %v, want %v", got, want)
	}
}

func TestColumnMajorTranslate(t *testing.T) {
	// Row-major translation column becomes the tail of the flat buffer.
	m := Translate(Vec3{1, 2, 3})
	got := m.ColumnMajor()
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ColumnMajor mismatch (-want +got):\n%s", diff)
	}

	dst := make([]float32, 16)
	m.ColumnMajorInto(dst)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("ColumnMajorInto[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSetUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		var m Mat4
		m.SetUniform(rng, -2, 3)
		for i, v := range m {
			if v < -2 || v >= 3 {
				t.Fatalf("trial %d: element %d = %v outside [-2, 3)", trial, i, v)
			}
		}
	}
}

func TestSetUniformDeterministic(t *testing.T) {
	var a, b Mat4
	a.SetUniform(rand.New(rand.NewSource(7)), 0, 1)
	b.SetUniform(rand.New(rand.NewSource(7)), 0, 1)
	if a != b {
		t.Error("same seed should produce the same fill")
	}
}

func TestString(t *testing.T) {
	got := Identity().String()
	want := "1 0 0 0 \n0 1 0 0 \n0 0 1 0 \n0 0 0 1 \n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestComposeOrder(t *testing.T) {
	// T * R * S applied to a point: scale first, rotate, then translate.
	tf := Translate(Vec3{10, 0, 0}).Mul(RotateZ(90)).Mul(Scale(2, 2, 2))
	got := tf.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) -> scaled (2,0,0) -> rotated (0,2,0) -> translated (10,2,0)
	if abs(got.X-10) > 1e-5 || abs(got.Y-2) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("T*R*S point transform = %v, want (10, 2, 0)", got)
	}
}

// randomMatrix returns a deterministic pseudo-random matrix per seed.
func randomMatrix(seed int64) Mat4 {
	var m Mat4
	m.SetUniform(rand.New(rand.NewSource(seed)), -5, 5)
	return m
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
