package mathutil

import (
	"math"
	"testing"
)

func vecAlmostEqual(a, b Vec4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat4Identity(t *testing.T) {
	id := Mat4Identity()
	if !id.IsIdentity() {
		t.Error("identity matrix failed IsIdentity")
	}

	v := Vec4{1, 2, 3, 1}
	if got := id.MulVec4(v); got != v {
		t.Errorf("identity * %v = %v", v, got)
	}
}

func TestMat4ScaleTranslate(t *testing.T) {
	v := Vec4{1, 2, 3, 1}

	if got := Mat4Scale(2, 3, 4).MulVec4(v); got != (Vec4{2, 6, 12, 1}) {
		t.Errorf("scale = %v, want (2 6 12 1)", got)
	}
	if got := Mat4Translation(10, 20, 30).MulVec4(v); got != (Vec4{11, 22, 33, 1}) {
		t.Errorf("translate = %v, want (11 22 33 1)", got)
	}
}

func TestMat4Rotations(t *testing.T) {
	const tol = 1e-12
	half := math.Pi / 2

	tests := []struct {
		name string
		m    Mat4
		in   Vec4
		want Vec4
	}{
		{"Z by 90 maps x to y", Mat4RotationZ(half), Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}},
		{"X by 90 maps y to z", Mat4RotationX(half), Vec4{0, 1, 0, 1}, Vec4{0, 0, 1, 1}},
		{"Y by 90 maps z to x", Mat4RotationY(half), Vec4{0, 0, 1, 1}, Vec4{1, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec4(tt.in); !vecAlmostEqual(got, tt.want, tol) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMat4Mul_ComposesInOrder(t *testing.T) {
	// Translation after scale: T * S applies the scale first.
	m := Mat4Mul(Mat4Translation(10, 0, 0), Mat4Scale(2, 2, 2))
	got := m.MulVec4(Vec4{1, 1, 1, 1})
	want := Vec4{12, 2, 2, 1}
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Errorf("T*S*v = %v, want %v", got, want)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := Deg2Rad(90)
	proj := Mat4Perspective(fov, 1, 1, 100)

	// A point on the optical axis keeps its z in w for the divide.
	p := proj.MulVec4(Vec4{0, 0, 10, 1})
	if math.Abs(p[3]-10) > 1e-12 {
		t.Errorf("w = %v, want original z 10", p[3])
	}

	// After the divide, the near plane maps to z=0 and the far plane to z=1.
	near := proj.MulVec4Project(Vec4{0, 0, 1, 1})
	far := proj.MulVec4Project(Vec4{0, 0, 100, 1})
	if math.Abs(near[2]) > 1e-9 {
		t.Errorf("near-plane z = %v, want 0", near[2])
	}
	if math.Abs(far[2]-1) > 1e-9 {
		t.Errorf("far-plane z = %v, want 1", far[2])
	}

	// A point at 45° from the axis with 90° fov lands on the frustum edge.
	edge := proj.MulVec4Project(Vec4{0, 10, 10, 1})
	if math.Abs(edge[1]-1) > 1e-9 {
		t.Errorf("frustum-edge y = %v, want 1", edge[1])
	}
}

func TestMulVec4Project_ZeroWGuard(t *testing.T) {
	var zero Mat4 // maps everything to w=0
	got := zero.MulVec4Project(Vec4{1, 2, 3, 1})
	if got != (Vec4{0, 0, 0, 0}) {
		t.Errorf("zero-w projection = %v, want unchanged zero vector", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	// Camera at the origin looking down +Z is the identity view.
	view := Mat4LookAt(Vec3{0, 0, 0}, Vec3{0, 0, 1}, Vec3{0, 1, 0})
	if !view.IsIdentity() {
		t.Errorf("origin look-at = %v, want identity", view)
	}

	// Translating the camera moves the world the opposite way.
	view = Mat4LookAt(Vec3{0, 0, -5}, Vec3{0, 0, 1}, Vec3{0, 1, 0})
	got := view.MulVec4(Vec4{0, 0, 0, 1})
	if !vecAlmostEqual(got, Vec4{0, 0, 5, 1}, 1e-12) {
		t.Errorf("world origin in view space = %v, want (0 0 5 1)", got)
	}
}

func TestVec3Rotate(t *testing.T) {
	const tol = 1e-12
	v := Vec3{1, 0, 0}

	got := v.RotateZ(math.Pi / 2)
	if math.Abs(got[0]) > tol || math.Abs(got[1]-1) > tol {
		t.Errorf("RotateZ(90°) of x-axis = %v, want y-axis", got)
	}

	// Matrix and vector rotations must agree.
	m := Mat4RotationY(0.7)
	a := m.MulVec4(Vec4FromVec3(Vec3{1, 2, 3})).Vec3()
	b := Vec3{1, 2, 3}.RotateY(0.7)
	if a.Sub(b).Len() > tol {
		t.Errorf("matrix rotation %v != vector rotation %v", a, b)
	}
}

func TestVec2Cross(t *testing.T) {
	a := Vec2{3, 0}
	b := Vec2{0, 4}
	if got := a.Cross(b); got != 12 {
		t.Errorf("cross = %v, want 12 (twice the triangle area)", got)
	}
	if got := b.Cross(a); got != -12 {
		t.Errorf("reversed cross = %v, want -12", got)
	}
}
