package raster

import "image"

// MaxDepth is the far-plane sentinel the depth buffer is reset to. Depth
// metrics are derived as 1 − interpolated(1/w), so anything visible in front
// of the far plane compares smaller than this.
const MaxDepth = 1.0

// FrameBuffer is the frame context for one rendered frame: a packed color
// buffer and a per-pixel depth buffer, held as flat slices for cache
// locality. Colors are 0xAARRGGBB. The caller owns the buffer for the
// lifetime of a frame and resets it with Clear/ClearDepth before submitting
// triangles.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32  // packed colors, len = W*H
	Depth  []float64 // depth metric per pixel, len = W*H
}

// NewFrameBuffer allocates a zeroed color buffer and a depth buffer reset to
// the far sentinel.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
		Depth:  make([]float64, w*h),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills the color buffer with a single color.
func (fb *FrameBuffer) Clear(color uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = color
	}
}

// ClearDepth resets every depth cell to the far sentinel. Called once per
// frame before any triangle is rasterized.
func (fb *FrameBuffer) ClearDepth() {
	for i := range fb.Depth {
		fb.Depth[i] = MaxDepth
	}
}

// SetPixel writes a color at (x, y). Out-of-range coordinates are dropped.
func (fb *FrameBuffer) SetPixel(x, y int, color uint32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = color
}

// DepthAt returns the stored depth metric at (x, y). Out-of-range
// coordinates read as the far sentinel, so they always fail the depth test.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return MaxDepth
	}
	return fb.Depth[y*fb.Width+x]
}

// SetDepthAt overwrites the depth cell at (x, y). Out-of-range writes are
// dropped.
func (fb *FrameBuffer) SetDepthAt(x, y int, depth float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Depth[y*fb.Width+x] = depth
}

// DrawLine draws a line with Bresenham stepping. Both endpoints are plotted.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1 int, color uint32) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		fb.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawRect fills an axis-aligned rectangle of the given size.
func (fb *FrameBuffer) DrawRect(x, y, w, h int, color uint32) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			fb.SetPixel(x+dx, y+dy, color)
		}
	}
}

// DrawGrid draws a dot every step pixels, as a background reference.
func (fb *FrameBuffer) DrawGrid(step int, color uint32) {
	if step <= 0 {
		return
	}
	for y := 0; y < fb.Height; y += step {
		for x := 0; x < fb.Width; x += step {
			fb.Pix[y*fb.Width+x] = color
		}
	}
}

// ToNRGBA unpacks the color buffer into an NRGBA image for encoding or
// presentation.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pix {
		j := i * 4
		img.Pix[j] = uint8(c >> 16)
		img.Pix[j+1] = uint8(c >> 8)
		img.Pix[j+2] = uint8(c)
		img.Pix[j+3] = uint8(c >> 24)
	}
	return img
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
