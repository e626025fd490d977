package raster

import (
	"softrender/internal/mathutil"
	"softrender/internal/texture"
)

// Vertex is one projected triangle corner in screen space. X and Y are device
// pixel coordinates (origin top-left, y growing downward). Z is the projected
// depth and W the pre-divide homogeneous coordinate, kept intact so the pixel
// resolvers can interpolate attributes perspective-correctly. U and V are
// texture coordinates, used only by the textured fill.
type Vertex struct {
	X, Y int
	Z, W float64
	U, V float64
}

// Vec2 returns the 2D screen projection of the vertex.
func (v Vertex) Vec2() mathutil.Vec2 {
	return mathutil.Vec2{float64(v.X), float64(v.Y)}
}

// DrawTriangle draws the triangle outline with three line calls.
func DrawTriangle(fb *FrameBuffer, a, b, c Vertex, color uint32) {
	fb.DrawLine(a.X, a.Y, b.X, b.Y, color)
	fb.DrawLine(b.X, b.Y, c.X, c.Y, color)
	fb.DrawLine(c.X, c.Y, a.X, a.Y, color)
}

// FillTriangle scan-converts a triangle and fills it with a solid color,
// depth-testing every pixel against the frame's depth buffer.
//
// The triangle is split at the middle vertex into a flat-bottom and a
// flat-top half, each bounded by two edges of constant inverse slope, so
// rows can be stepped without per-pixel edge tests. Spans are half-open on
// the right edge: adjacent triangles sharing an edge never double-draw the
// boundary column.
func FillTriangle(fb *FrameBuffer, a, b, c Vertex, color uint32) {
	// Sort by y ascending; whole vertex records swap so every attribute
	// stays in lockstep.
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	scanHalves(a, b, c, func(x, y int) {
		drawTrianglePixel(fb, x, y, color, a, b, c)
	})
}

// FillTexturedTriangle scan-converts a triangle and fills it by sampling the
// texture with perspective-correct coordinates, depth-testing every pixel.
func FillTexturedTriangle(fb *FrameBuffer, a, b, c Vertex, tex *texture.Texture) {
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	// Flip V once, before any interpolation: source images store v growing
	// downward while the interpolation math assumes it growing upward.
	a.V = 1 - a.V
	b.V = 1 - b.V
	c.V = 1 - c.V

	scanHalves(a, b, c, func(x, y int) {
		drawTexel(fb, x, y, tex, a, b, c)
	})
}

// scanHalves walks the two trapezoid halves of a y-sorted triangle and
// invokes the pixel resolver for every covered column. A half with zero
// vertical extent is skipped entirely.
func scanHalves(a, b, c Vertex, resolve func(x, y int)) {
	// Upper half (flat-bottom): rows a.Y..b.Y.
	var invSlope1, invSlope2 float64
	if b.Y-a.Y != 0 {
		invSlope1 = float64(b.X-a.X) / float64(absInt(b.Y-a.Y))
	}
	if c.Y-a.Y != 0 {
		invSlope2 = float64(c.X-a.X) / float64(absInt(c.Y-a.Y))
	}

	if b.Y-a.Y != 0 {
		for y := a.Y; y <= b.Y; y++ {
			xStart := int(float64(b.X) + float64(y-b.Y)*invSlope1)
			xEnd := int(float64(a.X) + float64(y-a.Y)*invSlope2)

			if xEnd < xStart {
				xStart, xEnd = xEnd, xStart
			}

			for x := xStart; x < xEnd; x++ {
				resolve(x, y)
			}
		}
	}

	// Lower half (flat-top): rows b.Y..c.Y.
	invSlope1 = 0
	invSlope2 = 0
	if c.Y-b.Y != 0 {
		invSlope1 = float64(c.X-b.X) / float64(absInt(c.Y-b.Y))
	}
	if c.Y-a.Y != 0 {
		invSlope2 = float64(c.X-a.X) / float64(absInt(c.Y-a.Y))
	}

	if c.Y-b.Y != 0 {
		for y := b.Y; y <= c.Y; y++ {
			xStart := int(float64(b.X) + float64(y-b.Y)*invSlope1)
			xEnd := int(float64(a.X) + float64(y-a.Y)*invSlope2)

			if xEnd < xStart {
				xStart, xEnd = xEnd, xStart
			}

			for x := xStart; x < xEnd; x++ {
				resolve(x, y)
			}
		}
	}
}

// drawTrianglePixel resolves one solid-color pixel: interpolate reciprocal
// depth at (x, y), depth-test, and write color and depth only on a pass.
func drawTrianglePixel(fb *FrameBuffer, x, y int, color uint32, a, b, c Vertex) {
	p := mathutil.Vec2{float64(x), float64(y)}
	w := BarycentricWeights(a.Vec2(), b.Vec2(), c.Vec2(), p)

	interpW := w.Alpha/a.W + w.Beta/b.W + w.Gamma/c.W

	// Invert so surfaces closer to the camera carry smaller values.
	depth := 1.0 - interpW

	if depth < fb.DepthAt(x, y) {
		fb.SetPixel(x, y, color)
		fb.SetDepthAt(x, y, depth)
	}
}

// drawTexel resolves one textured pixel: recover perspective-correct u/v by
// interpolating the attributes over w and dividing back by the interpolated
// reciprocal w, then depth-test and sample on a pass.
//
// Texel addressing wraps with abs+modulo instead of clamping. Out-of-range
// coordinates tile the texture, which can tear along seams between faces;
// that is the fixed convention here, with SampleBilinear as the opt-in
// alternative for callers that want filtering.
func drawTexel(fb *FrameBuffer, x, y int, tex *texture.Texture, a, b, c Vertex) {
	p := mathutil.Vec2{float64(x), float64(y)}
	w := BarycentricWeights(a.Vec2(), b.Vec2(), c.Vec2(), p)

	interpU := (a.U/a.W)*w.Alpha + (b.U/b.W)*w.Beta + (c.U/c.W)*w.Gamma
	interpV := (a.V/a.W)*w.Alpha + (b.V/b.W)*w.Beta + (c.V/c.W)*w.Gamma
	interpW := w.Alpha/a.W + w.Beta/b.W + w.Gamma/c.W

	// Undo the perspective foreshortening of the attributes.
	interpU /= interpW
	interpV /= interpW

	texX := wrapTexel(interpU, tex.Width)
	texY := wrapTexel(interpV, tex.Height)

	depth := 1.0 - interpW

	if depth < fb.DepthAt(x, y) {
		fb.SetPixel(x, y, tex.Pix[texY*tex.Width+texX])
		fb.SetDepthAt(x, y, depth)
	}
}

// wrapTexel maps a perspective-corrected texture coordinate onto a texel
// index of the given dimension by wrapping rather than clamping.
func wrapTexel(coord float64, dim int) int {
	return absInt(int(coord*float64(dim))) % dim
}
