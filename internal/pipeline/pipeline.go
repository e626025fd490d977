// Package pipeline transforms mesh triangles into screen-space vertices and
// feeds them to the rasterizer: model/view/projection composition, backface
// culling, perspective divide, and viewport mapping. Frustum clipping is not
// performed; callers keep geometry in front of the camera.
package pipeline

import (
	"math"

	"softrender/internal/mathutil"
	"softrender/internal/mesh"
	"softrender/internal/raster"
	"softrender/internal/texture"
)

// Mode selects how triangles are drawn.
type Mode int

const (
	ModeWireframe Mode = iota
	ModeWireframeVertex
	ModeFilled
	ModeFilledWire
	ModeTextured
	ModeTexturedWire
)

var modeNames = map[string]Mode{
	"wireframe":     ModeWireframe,
	"vertex":        ModeWireframeVertex,
	"filled":        ModeFilled,
	"filled-wire":   ModeFilledWire,
	"textured":      ModeTextured,
	"textured-wire": ModeTexturedWire,
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, bool) {
	m, ok := modeNames[name]
	return m, ok
}

// Camera is a look-direction camera placed in world space.
type Camera struct {
	Position  mathutil.Vec3
	Direction mathutil.Vec3
	Up        mathutil.Vec3
}

// DefaultCamera sits at the origin looking down +Z.
func DefaultCamera() Camera {
	return Camera{
		Direction: mathutil.Vec3{0, 0, 1},
		Up:        mathutil.Vec3{0, 1, 0},
	}
}

// ViewMatrix builds the camera's look-at view matrix.
func (c Camera) ViewMatrix() mathutil.Mat4 {
	target := c.Position.Add(c.Direction)
	return mathutil.Mat4LookAt(c.Position, target, c.Up)
}

// Options controls one render pass.
type Options struct {
	Mode            Mode
	BackfaceCulling bool
	FOV             float64 // vertical field of view, radians
	ZNear, ZFar     float64
	WireColor       uint32
	VertexColor     uint32
}

// DefaultOptions returns the standard pass settings: textured, culled,
// 60° field of view.
func DefaultOptions() Options {
	return Options{
		Mode:            ModeTextured,
		BackfaceCulling: true,
		FOV:             mathutil.Deg2Rad(60),
		ZNear:           0.1,
		ZFar:            100,
		WireColor:       0xFF00FF00,
		VertexColor:     0xFFFF0000,
	}
}

// FitDistance returns how far along +Z a mesh of the given bounding radius
// must sit so it fills the view at the given field of view, with some margin.
func FitDistance(radius, fov float64) float64 {
	if radius <= 0 {
		radius = 1
	}
	return radius / math.Tan(fov/2) * 1.25
}

// RenderMesh transforms every face of the mesh and rasterizes it into the
// frame buffer. tex may be nil; textured modes then fall back to the face's
// solid color.
func RenderMesh(fb *raster.FrameBuffer, m *mesh.Mesh, tex *texture.Texture, cam Camera, opts Options) {
	world := worldMatrix(m)
	view := cam.ViewMatrix()
	aspect := float64(fb.Height) / float64(fb.Width)
	proj := mathutil.Mat4Perspective(opts.FOV, aspect, opts.ZNear, opts.ZFar)
	worldView := mathutil.Mat4Mul(view, world)

	halfW := float64(fb.Width) / 2
	halfH := float64(fb.Height) / 2

	for _, face := range m.Faces {
		var camSpace [3]mathutil.Vec4
		camSpace[0] = worldView.MulVec4(mathutil.Vec4FromVec3(m.Vertices[face.A]))
		camSpace[1] = worldView.MulVec4(mathutil.Vec4FromVec3(m.Vertices[face.B]))
		camSpace[2] = worldView.MulVec4(mathutil.Vec4FromVec3(m.Vertices[face.C]))

		if opts.BackfaceCulling && !faceVisible(camSpace) {
			continue
		}

		var verts [3]raster.Vertex
		uvs := [3]mesh.TexCoord{face.AUV, face.BUV, face.CUV}
		for i, cs := range camSpace {
			p := proj.MulVec4Project(cs)

			// Viewport mapping: scale into the half-extents, flip y so
			// screen y grows downward, then center.
			sx := p[0]*halfW + halfW
			sy := -p[1]*halfH + halfH

			verts[i] = raster.Vertex{
				X: int(sx),
				Y: int(sy),
				Z: p[2],
				W: p[3],
				U: uvs[i].U,
				V: uvs[i].V,
			}
		}

		drawFace(fb, verts, face.Color, tex, opts)
	}
}

// worldMatrix composes the mesh transform: scale, then rotate XYZ, then
// translate.
func worldMatrix(m *mesh.Mesh) mathutil.Mat4 {
	world := mathutil.Mat4Scale(m.Scale[0], m.Scale[1], m.Scale[2])
	world = mathutil.Mat4Mul(mathutil.Mat4RotationX(m.Rotation[0]), world)
	world = mathutil.Mat4Mul(mathutil.Mat4RotationY(m.Rotation[1]), world)
	world = mathutil.Mat4Mul(mathutil.Mat4RotationZ(m.Rotation[2]), world)
	world = mathutil.Mat4Mul(mathutil.Mat4Translation(m.Translation[0], m.Translation[1], m.Translation[2]), world)
	return world
}

// faceVisible reports whether the face's camera-space normal points toward
// the camera at the origin.
func faceVisible(cs [3]mathutil.Vec4) bool {
	a := cs[0].Vec3()
	b := cs[1].Vec3()
	c := cs[2].Vec3()

	normal := b.Sub(a).Cross(c.Sub(a))
	cameraRay := mathutil.Vec3{}.Sub(a)
	return normal.Dot(cameraRay) > 0
}

func drawFace(fb *raster.FrameBuffer, v [3]raster.Vertex, color uint32, tex *texture.Texture, opts Options) {
	switch opts.Mode {
	case ModeWireframe:
		raster.DrawTriangle(fb, v[0], v[1], v[2], opts.WireColor)
	case ModeWireframeVertex:
		raster.DrawTriangle(fb, v[0], v[1], v[2], opts.WireColor)
		for _, p := range v {
			fb.DrawRect(p.X-2, p.Y-2, 4, 4, opts.VertexColor)
		}
	case ModeFilled:
		raster.FillTriangle(fb, v[0], v[1], v[2], color)
	case ModeFilledWire:
		raster.FillTriangle(fb, v[0], v[1], v[2], color)
		raster.DrawTriangle(fb, v[0], v[1], v[2], opts.WireColor)
	case ModeTextured:
		if tex != nil {
			raster.FillTexturedTriangle(fb, v[0], v[1], v[2], tex)
		} else {
			raster.FillTriangle(fb, v[0], v[1], v[2], color)
		}
	case ModeTexturedWire:
		if tex != nil {
			raster.FillTexturedTriangle(fb, v[0], v[1], v[2], tex)
		} else {
			raster.FillTriangle(fb, v[0], v[1], v[2], color)
		}
		raster.DrawTriangle(fb, v[0], v[1], v[2], opts.WireColor)
	}
}
