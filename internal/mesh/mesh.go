package mesh

import "softrender/internal/mathutil"

// TexCoord is a texture coordinate pair, nominally in [0,1] but not clamped.
type TexCoord struct {
	U, V float64
}

// Face references three mesh vertices by index, with per-corner texture
// coordinates and a solid fill color used when no texture is bound.
type Face struct {
	A, B, C       int
	AUV, BUV, CUV TexCoord
	Color         uint32
}

// Mesh is an indexed triangle mesh plus its model transform.
type Mesh struct {
	Vertices []mathutil.Vec3
	Faces    []Face

	Rotation    mathutil.Vec3 // Euler angles, radians
	Scale       mathutil.Vec3
	Translation mathutil.Vec3
}

// New returns an empty mesh with an identity transform.
func New() *Mesh {
	return &Mesh{Scale: mathutil.Vec3{1, 1, 1}}
}

// Radius returns the distance from the origin to the farthest vertex,
// used to frame the mesh in front of the camera.
func (m *Mesh) Radius() float64 {
	var r float64
	for _, v := range m.Vertices {
		if l := v.Len(); l > r {
			r = l
		}
	}
	return r
}

// NewCube returns a unit cube centered on the origin, two triangles per side,
// with texture coordinates covering each face.
func NewCube() *Mesh {
	m := New()
	m.Vertices = []mathutil.Vec3{
		{-1, -1, -1},
		{-1, 1, -1},
		{1, 1, -1},
		{1, -1, -1},
		{1, 1, 1},
		{1, -1, 1},
		{-1, 1, 1},
		{-1, -1, 1},
	}
	const white = 0xFFFFFFFF
	quad := func(a, b, c, d int) {
		m.Faces = append(m.Faces,
			Face{A: a, B: b, C: c, AUV: TexCoord{0, 1}, BUV: TexCoord{0, 0}, CUV: TexCoord{1, 0}, Color: white},
			Face{A: a, B: c, C: d, AUV: TexCoord{0, 1}, BUV: TexCoord{1, 0}, CUV: TexCoord{1, 1}, Color: white},
		)
	}
	quad(0, 1, 2, 3) // front
	quad(3, 2, 4, 5) // right
	quad(5, 4, 6, 7) // back
	quad(7, 6, 1, 0) // left
	quad(1, 6, 4, 2) // top
	quad(7, 0, 3, 5) // bottom
	return m
}
