package texture

import (
	"image"
	"image/color"
)

// Texture is a read-only sampling source: packed 0xAARRGGBB colors in a
// row-major buffer indexable by row*Width+col.
type Texture struct {
	Width  int
	Height int
	Pix    []uint32
}

// New wraps a packed color buffer. The buffer must hold w*h entries.
func New(w, h int, pix []uint32) *Texture {
	return &Texture{Width: w, Height: h, Pix: pix}
}

// FromImage converts any image into a packed texture.
func FromImage(src image.Image) *Texture {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	t := &Texture{Width: w, Height: h, Pix: make([]uint32, w*h)}

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := y * n.Stride
			for x := 0; x < w; x++ {
				i := off + x*4
				t.Pix[y*w+x] = uint32(n.Pix[i+3])<<24 |
					uint32(n.Pix[i])<<16 |
					uint32(n.Pix[i+1])<<8 |
					uint32(n.Pix[i+2])
			}
		}
		return t
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			t.Pix[y*w+x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return t
}

// SampleBilinear samples the texture at (u, v) with wrapping and bilinear
// filtering. This is an opt-in smoother path; the rasterizer's default
// sampling is nearest-texel.
func (t *Texture) SampleBilinear(u, v float64) uint32 {
	w, h := t.Width, t.Height
	if w == 0 || h == 0 {
		return 0
	}

	// Wrap into [0,1)
	u = u - float64(int(u))
	if u < 0 {
		u += 1
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	c00 := t.Pix[y0*w+x0]
	c10 := t.Pix[y0*w+x1]
	c01 := t.Pix[y1*w+x0]
	c11 := t.Pix[y1*w+x1]

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	blend := func(shift uint) uint32 {
		f := float64(c00>>shift&0xFF)*w00 + float64(c10>>shift&0xFF)*w10 +
			float64(c01>>shift&0xFF)*w01 + float64(c11>>shift&0xFF)*w11
		return uint32(f + 0.5)
	}

	return blend(24)<<24 | blend(16)<<16 | blend(8)<<8 | blend(0)
}
