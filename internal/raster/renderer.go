package raster

import (
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/mesh"
)

// Stats counts the work done by a Renderer.
type Stats struct {
	Primitives int
	Triangles  int
	Lines      int
	Fragments  int
}

// Renderer draws primitives into a FrameBuffer the way a fixed-function
// pipeline does: per-vertex lighting in eye space, near-plane clipping,
// perspective divide, then Gouraud fill or wireframe lines.
// It implements robot.Drawer.
type Renderer struct {
	FB         *FrameBuffer
	Projection mathutil.Mat4
	Lights     LightConfig
	Meshes     mesh.Resolver

	material material.Material
	stats    Stats

	// scratch buffers reused across draws
	lit  []vertex
	poly []vertex
	clip []vertex
}

// NewRenderer creates a renderer targeting fb with the default lights.
func NewRenderer(fb *FrameBuffer, projection mathutil.Mat4, meshes mesh.Resolver) *Renderer {
	return &Renderer{
		FB:         fb,
		Projection: projection,
		Lights:     DefaultLightConfig(),
		Meshes:     meshes,
	}
}

// SetMaterial sets the material for subsequent draws.
func (r *Renderer) SetMaterial(m material.Material) {
	r.material = m
}

// Stats returns the work counters accumulated so far.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// DrawPrimitive tessellates p and draws it with the given model-view matrix.
func (r *Renderer) DrawPrimitive(_ string, p mesh.Primitive, modelView mathutil.Mat4) {
	m := r.Meshes.Resolve(p)
	if m == nil || len(m.Verts) == 0 {
		return
	}
	r.stats.Primitives++

	// Transform and light every vertex once
	normalMat := modelView.NormalMatrix()
	mvp := mathutil.Mat4Mul(r.Projection, modelView)
	r.lit = r.lit[:0]
	for i, v := range m.Verts {
		eye := modelView.MulPoint(v)
		n := normalMat.MulVec3(m.Normals[i]).Normalize()
		r.lit = append(r.lit, vertex{
			pos:   mvp.MulVec4(v),
			color: r.Lights.ComputeShade(&r.material, eye, n),
		})
	}

	for _, t := range m.Tris {
		r.drawTriangle(&r.lit[t[0]], &r.lit[t[1]], &r.lit[t[2]])
	}
	for _, l := range m.Lines {
		r.drawLine(r.lit[l[0]], r.lit[l[1]])
	}
}

func (r *Renderer) drawTriangle(a, b, c *vertex) {
	r.poly = append(r.poly[:0], *a, *b, *c)
	r.clip = clipPolygonNear(r.poly, r.clip)
	if len(r.clip) < 3 {
		return
	}

	// Clipping a triangle yields a convex polygon; fan it
	s0 := r.FB.toScreen(&r.clip[0])
	for i := 1; i+1 < len(r.clip); i++ {
		s1 := r.FB.toScreen(&r.clip[i])
		s2 := r.FB.toScreen(&r.clip[i+1])
		r.stats.Triangles++
		r.stats.Fragments += RasterizeTriangle(r.FB, &s0, &s1, &s2)
	}
}

func (r *Renderer) drawLine(a, b vertex) {
	a, b, ok := clipLineNear(a, b)
	if !ok {
		return
	}
	sa := r.FB.toScreen(&a)
	sb := r.FB.toScreen(&b)
	r.stats.Lines++
	r.stats.Fragments += RasterizeLine(r.FB, &sa, &sb)
}
