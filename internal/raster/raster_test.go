package raster

import (
	"testing"

	"robot-renderer/internal/camera"
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

var clearPixel = [4]uint8{102, 102, 102, 255}

func newTestRenderer(w, h int) *Renderer {
	cam := camera.Default(w, h)
	return NewRenderer(NewFrameBuffer(w, h), cam.Projection(), mesh.NewCache(16, 4))
}

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	assert.Equal(t, clearPixel, fb.At(3, 2))
	assert.Equal(t, 1.0, fb.Depth[0])

	img := fb.Image()
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, uint8(102), img.Pix[0])
}

func TestComputeShadeAmbientOnly(t *testing.T) {
	lc := LightConfig{GlobalAmbient: [4]float64{0.2, 0.2, 0.2, 1}}
	m := material.Material{Ambient: [4]float64{0.5, 1, 0, 1}, Diffuse: [4]float64{1, 1, 1, 0.25}}

	c := lc.ComputeShade(&m, mathutil.Vec3{}, mathutil.Vec3{0, 0, 1})
	assert.InDelta(t, 0.1, c[0], tol)
	assert.InDelta(t, 0.2, c[1], tol)
	assert.InDelta(t, 0.0, c[2], tol)
	assert.Equal(t, 0.25, c[3])
}

func TestComputeShadeFacingLight(t *testing.T) {
	lc := DefaultLightConfig()
	m := material.Body
	pos := mathutil.Vec3{0, 0, -10}

	toward := lc.ComputeShade(&m, pos, mathutil.Vec3{0, 1, 0})
	away := lc.ComputeShade(&m, pos, mathutil.Vec3{0, -1, 0})
	for k := 0; k < 3; k++ {
		assert.Greater(t, toward[k], away[k])
		assert.LessOrEqual(t, toward[k], 1.0)
	}

	// Facing away: global ambient plus both lights' ambient terms only
	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0.6*m.Ambient[k], away[k], tol)
	}
}

func TestClipPolygonNear(t *testing.T) {
	// One vertex behind the near plane turns the triangle into a quad
	in := []vertex{
		{pos: [4]float64{0, 0, 0, 1}},
		{pos: [4]float64{1, 0, 0, 1}},
		{pos: [4]float64{0, 0, -3, 1}},
	}
	out := clipPolygonNear(in, nil)
	require.Len(t, out, 4)
	for _, v := range out {
		assert.GreaterOrEqual(t, nearDist(&v), -tol)
	}

	all := []vertex{
		{pos: [4]float64{0, 0, -2, 1}},
		{pos: [4]float64{1, 0, -2, 1}},
		{pos: [4]float64{0, 1, -2, 1}},
	}
	assert.Empty(t, clipPolygonNear(all, nil))
}

func TestClipLineNear(t *testing.T) {
	a := vertex{pos: [4]float64{0, 0, -3, 1}, color: [4]float64{0, 0, 0, 1}}
	b := vertex{pos: [4]float64{0, 0, 1, 1}, color: [4]float64{1, 1, 1, 1}}
	ca, cb, ok := clipLineNear(a, b)
	require.True(t, ok)
	assert.InDelta(t, 0, nearDist(&ca), tol)
	assert.InDelta(t, 0.5, ca.color[0], tol)
	assert.Equal(t, b, cb)

	_, _, ok = clipLineNear(a, a)
	assert.False(t, ok)
}

func TestDrawCubeCoversCenter(t *testing.T) {
	r := newTestRenderer(64, 48)
	r.SetMaterial(material.Body)
	r.DrawPrimitive("cube", mesh.Cube(), mathutil.Mat4Translate(mathutil.Vec3{0, 0, -5}))

	assert.NotEqual(t, clearPixel, r.FB.At(32, 24))
	assert.Equal(t, clearPixel, r.FB.At(0, 0))
	assert.Less(t, r.FB.Depth[24*64+32], 1.0)

	st := r.Stats()
	assert.Equal(t, 1, st.Primitives)
	assert.Equal(t, 12, st.Triangles)
	assert.Zero(t, st.Lines)
	assert.Positive(t, st.Fragments)
}

func TestDepthTestNearestWins(t *testing.T) {
	near := material.Material{Ambient: [4]float64{1, 0, 0, 1}}
	far := material.Material{Ambient: [4]float64{0, 0, 1, 1}}
	lights := LightConfig{GlobalAmbient: [4]float64{1, 1, 1, 1}}

	draw := func(first, second material.Material, firstZ, secondZ float64) [4]uint8 {
		r := newTestRenderer(32, 32)
		r.Lights = lights
		r.SetMaterial(first)
		r.DrawPrimitive("a", mesh.Cube(), mathutil.Mat4Translate(mathutil.Vec3{0, 0, firstZ}))
		r.SetMaterial(second)
		r.DrawPrimitive("b", mesh.Cube(), mathutil.Mat4Translate(mathutil.Vec3{0, 0, secondZ}))
		return r.FB.At(16, 16)
	}

	red := [4]uint8{255, 0, 0, 255}
	assert.Equal(t, red, draw(near, far, -4, -8))
	assert.Equal(t, red, draw(far, near, -8, -4))
}

func TestWireDiskDrawsLinesOnly(t *testing.T) {
	r := newTestRenderer(64, 64)
	r.SetMaterial(material.Gun)
	r.DrawPrimitive("cap", mesh.Disk(0, 1).Wire(), mathutil.Mat4Translate(mathutil.Vec3{0, 0, -4}))

	st := r.Stats()
	assert.Zero(t, st.Triangles)
	assert.Positive(t, st.Lines)
	assert.Positive(t, st.Fragments)
}

func TestPrimitiveCrossingNearPlane(t *testing.T) {
	r := newTestRenderer(32, 32)
	r.SetMaterial(material.Ground)
	// The camera sits inside the cube; clipped faces must still draw
	assert.NotPanics(t, func() {
		r.DrawPrimitive("cube", mesh.Cube(), mathutil.Mat4Scale(mathutil.Vec3{4, 4, 4}))
	})
	assert.Positive(t, r.Stats().Fragments)

	r.FB.Clear(ClearColor)
	assert.Equal(t, clearPixel, r.FB.At(16, 16))
	assert.Equal(t, 1.0, r.FB.Depth[16*32+16])
}

func TestRasterizeLineOffscreen(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	a := screenVertex{x: -100, y: -100, z: 0.5, invW: 1}
	b := screenVertex{x: -50, y: 200, z: 0.5, invW: 1}
	assert.Zero(t, RasterizeLine(fb, &a, &b))
}
