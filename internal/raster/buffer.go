package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // window-space depth per pixel in [0, 1], len = W*H
}

// ClearColor is the background gray.
var ClearColor = [4]float64{0.4, 0.4, 0.4, 1}

// NewFrameBuffer allocates a buffer cleared to ClearColor and far depth.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  make([]float64, n),
	}
	fb.Clear(ClearColor)
	return fb
}

// Clear fills the color buffer with c and resets depth to the far plane.
func (fb *FrameBuffer) Clear(c [4]float64) {
	r, g, b, a := clamp255(c[0]*255), clamp255(c[1]*255), clamp255(c[2]*255), clamp255(c[3]*255)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
	for i := range fb.Depth {
		fb.Depth[i] = 1
	}
}

// At returns the RGBA color of pixel (x, y).
func (fb *FrameBuffer) At(x, y int) [4]uint8 {
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// plot writes color c at (x, y) if z passes the LESS depth test.
func (fb *FrameBuffer) plot(x, y int, z float64, c [4]float64) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	if z < 0 || z > 1 || math.IsNaN(z) {
		return false
	}
	idx := y*fb.Width + x
	if z >= fb.Depth[idx] {
		return false
	}
	fb.Depth[idx] = z

	// Blending is off, so fragments are always opaque.
	p := idx * 4
	fb.Color[p] = clamp255(c[0] * 255)
	fb.Color[p+1] = clamp255(c[1] * 255)
	fb.Color[p+2] = clamp255(c[2] * 255)
	fb.Color[p+3] = 255
	return true
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
