package raster

// vertex is a lit vertex in clip space.
type vertex struct {
	pos   [4]float64 // clip coordinates
	color [4]float64
}

// nearDist is the signed distance to the near plane (z >= -w).
func nearDist(v *vertex) float64 {
	return v.pos[2] + v.pos[3]
}

func lerpVertex(a, b *vertex, t float64) vertex {
	var out vertex
	for k := 0; k < 4; k++ {
		out.pos[k] = a.pos[k] + (b.pos[k]-a.pos[k])*t
		out.color[k] = a.color[k] + (b.color[k]-a.color[k])*t
	}
	return out
}

// clipPolygonNear clips a convex polygon against the near plane
// (Sutherland-Hodgman), appending the result to out.
func clipPolygonNear(in []vertex, out []vertex) []vertex {
	out = out[:0]
	n := len(in)
	for i := 0; i < n; i++ {
		a, b := &in[i], &in[(i+1)%n]
		da, db := nearDist(a), nearDist(b)
		if da >= 0 {
			out = append(out, *a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpVertex(a, b, da/(da-db)))
		}
	}
	return out
}

// clipLineNear clips segment a-b against the near plane. It reports false
// if the whole segment is behind it.
func clipLineNear(a, b vertex) (vertex, vertex, bool) {
	da, db := nearDist(&a), nearDist(&b)
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		a = lerpVertex(&a, &b, da/(da-db))
	case db < 0:
		b = lerpVertex(&a, &b, da/(da-db))
	}
	return a, b, true
}
