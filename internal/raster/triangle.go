package raster

import "math"

// screenVertex is a vertex after the perspective divide and viewport
// transform. Colors are pre-divided by w for perspective-correct
// interpolation.
type screenVertex struct {
	x, y, z float64 // window coordinates, z in [0, 1]
	invW    float64
	color   [4]float64 // color / w
}

// toScreen applies the perspective divide and viewport transform.
// Window y grows downward, matching image rows.
func (fb *FrameBuffer) toScreen(v *vertex) screenVertex {
	invW := 1 / v.pos[3]
	sv := screenVertex{
		x:    (v.pos[0]*invW + 1) * 0.5 * float64(fb.Width),
		y:    (1 - v.pos[1]*invW) * 0.5 * float64(fb.Height),
		z:    (v.pos[2]*invW + 1) * 0.5,
		invW: invW,
	}
	for k := 0; k < 4; k++ {
		sv.color[k] = v.color[k] * invW
	}
	return sv
}

// RasterizeTriangle fills a triangle with Gouraud shading and the LESS
// depth test. Both windings are drawn since face culling is off.
// It returns the number of fragments written.
//
// This is the HOT PATH; the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 *screenVertex) int {
	x0, y0 := v0.x, v0.y
	x1, y1 := v1.x, v1.y
	x2, y2 := v2.x, v2.y

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return 0
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return 0
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	written := 0
	for sy := minY; sy <= maxY; sy++ {
		// Sample at pixel centers
		dsy := float64(sy) + 0.5 - y2
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			iw := w0*v0.invW + w1*v1.invW + w2*v2.invW
			if iw <= 0 {
				continue
			}
			var c [4]float64
			for k := 0; k < 4; k++ {
				c[k] = (w0*v0.color[k] + w1*v1.color[k] + w2*v2.color[k]) / iw
			}
			if fb.plot(sx, sy, z, c) {
				written++
			}
		}
	}
	return written
}
