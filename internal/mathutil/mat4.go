package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major. Used for model, view, and
// projection transforms.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Scale builds a scaling matrix with factors sx, sy, sz on the diagonal.
func Mat4Scale(sx, sy, sz float64) Mat4 {
	m := Mat4Identity()
	m[0] = sx
	m[5] = sy
	m[10] = sz
	return m
}

// Mat4Translation builds a translation matrix moving points by (tx, ty, tz).
func Mat4Translation(tx, ty, tz float64) Mat4 {
	m := Mat4Identity()
	m[3] = tx
	m[7] = ty
	m[11] = tz
	return m
}

// Mat4RotationX builds a rotation matrix around the X axis (angle in radians).
func Mat4RotationX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[5] = c
	m[6] = -s
	m[9] = s
	m[10] = c
	return m
}

// Mat4RotationY builds a rotation matrix around the Y axis. The sign of the
// sin terms is swapped relative to X and Z so all three axes rotate in the
// same clockwise direction.
func Mat4RotationY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	return m
}

// Mat4RotationZ builds a rotation matrix around the Z axis (angle in radians).
func Mat4RotationZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[0] = c
	m[1] = -s
	m[4] = s
	m[5] = c
	return m
}

// Mat4Perspective builds a perspective projection matrix. fov is the vertical
// field of view in radians, aspect is height/width. The original z is carried
// into the w component for the perspective divide.
func Mat4Perspective(fov, aspect, znear, zfar float64) Mat4 {
	var m Mat4
	f := 1 / math.Tan(fov/2)
	m[0] = aspect * f
	m[5] = f
	m[10] = zfar / (zfar - znear)
	m[11] = (-zfar * znear) / (zfar - znear)
	m[14] = 1
	return m
}

// Mat4LookAt builds a view matrix for a camera at eye looking at target.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	z := target.Sub(eye).Normalize() // forward
	x := up.Cross(z).Normalize()     // right
	y := z.Cross(x)                  // up, already unit length

	return Mat4{
		x[0], x[1], x[2], -x.Dot(eye),
		y[0], y[1], y[2], -y.Dot(eye),
		z[0], z[1], z[2], -z.Dot(eye),
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec4 transforms a homogeneous vector by the matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulVec4Project transforms v by the projection matrix and performs the
// perspective divide. The pre-divide w is kept in the result so it stays
// available for perspective-correct interpolation downstream.
func (m Mat4) MulVec4Project(v Vec4) Vec4 {
	r := m.MulVec4(v)
	if r[3] != 0 {
		r[0] /= r[3]
		r[1] /= r[3]
		r[2] /= r[3]
	}
	return r
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
