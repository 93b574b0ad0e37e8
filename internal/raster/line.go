package raster

import "math"

// RasterizeLine draws a one pixel wide depth-tested segment with
// interpolated color. It returns the number of fragments written.
func RasterizeLine(fb *FrameBuffer, a, b *screenVertex) int {
	// Liang-Barsky against the viewport so off-screen spans cost nothing
	t0, t1 := 0.0, 1.0
	dx, dy := b.x-a.x, b.y-a.y
	edges := [4][2]float64{
		{-dx, a.x},
		{dx, float64(fb.Width) - a.x},
		{-dy, a.y},
		{dy, float64(fb.Height) - a.y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if t0 > t1 {
		return 0
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * (t1 - t0)))
	if steps < 1 {
		steps = 1
	}

	written := 0
	for i := 0; i <= steps; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(steps)
		x := a.x + dx*t
		y := a.y + dy*t
		z := a.z + (b.z-a.z)*t
		iw := a.invW + (b.invW-a.invW)*t
		if iw <= 0 {
			continue
		}
		var c [4]float64
		for k := 0; k < 4; k++ {
			c[k] = (a.color[k] + (b.color[k]-a.color[k])*t) / iw
		}
		if fb.plot(int(math.Floor(x)), int(math.Floor(y)), z, c) {
			written++
		}
	}
	return written
}
