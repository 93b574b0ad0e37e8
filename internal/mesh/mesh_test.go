package mesh

import (
	"math"
	"sync"
	"testing"

	"robot-renderer/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestCubeIsUnitAndCentered(t *testing.T) {
	m := Tessellate(Cube(), 8, 8)
	require.Len(t, m.Verts, 24)
	assert.Len(t, m.Tris, 12)
	assert.Empty(t, m.Lines)
	for i, v := range m.Verts {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, 0.5, math.Abs(v[k]), tol)
		}
		// Each vertex lies on the face its normal points out of.
		assert.InDelta(t, 0.5, v.Dot(m.Normals[i]), tol)
	}
}

func TestCylinderShell(t *testing.T) {
	m := Tessellate(Cylinder(2, 1, 3), 12, 4)
	require.Len(t, m.Verts, 13*5)
	assert.Len(t, m.Tris, 12*4*2)

	for i, v := range m.Verts {
		assert.GreaterOrEqual(t, v[2], -tol)
		assert.LessOrEqual(t, v[2], 3+tol)
		r := math.Hypot(v[0], v[1])
		want := 2 - v[2]/3
		assert.InDelta(t, want, r, 1e-9, "vertex %d", i)
		assert.InDelta(t, 1, m.Normals[i].Len(), tol)
	}

	// First ring starts on +Y.
	assert.True(t, m.Verts[0].ApproxEqual(mathutil.Vec3{0, 2, 0}, tol))
}

func TestCylinderWireHasRingsAndSlices(t *testing.T) {
	m := Tessellate(Cylinder(1, 1, 1).Wire(), 10, 3)
	assert.Empty(t, m.Tris)
	// (stacks+1) rings of slices segments + slices+1 seams of stacks segments
	assert.Len(t, m.Lines, 4*10+11*3)
}

func TestDiskIsFlat(t *testing.T) {
	m := Tessellate(Disk(0, 1.9), 16, 2)
	for i, v := range m.Verts {
		assert.Equal(t, 0.0, v[2])
		assert.LessOrEqual(t, math.Hypot(v[0], v[1]), 1.9+tol)
		assert.Equal(t, mathutil.Vec3{0, 0, 1}, m.Normals[i])
	}
}

func TestGroundSpan(t *testing.T) {
	m := Tessellate(Ground(32, 16), 0, 0)
	require.Len(t, m.Verts, 17*17)
	assert.Len(t, m.Tris, 16*16*2)
	assert.Equal(t, mathutil.Vec3{-16, 0, 16}, m.Verts[0])
	assert.Equal(t, mathutil.Vec3{16, 0, -16}, m.Verts[len(m.Verts)-1])
}

func TestTessellateClampsDetail(t *testing.T) {
	m := Tessellate(Cylinder(1, 1, 1), 0, 0)
	assert.Len(t, m.Verts, 4*2)
}

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "cube", Cube().String())
	assert.Equal(t, "cylinder(0.5, 0.5, 7) wire", Cylinder(0.5, 0.5, 7).Wire().String())
	assert.Equal(t, "disk(0, 1.9)", Disk(0, 1.9).String())
}

func TestCacheSharesMeshes(t *testing.T) {
	c := NewCache(16, 4)
	var wg sync.WaitGroup
	got := make([]*Mesh, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Resolve(Cylinder(1, 1, 2))
		}(i)
	}
	wg.Wait()
	for _, m := range got[1:] {
		assert.Same(t, got[0], m)
	}
	assert.Equal(t, 1, c.Len())

	assert.NotSame(t, got[0], c.Resolve(Cylinder(1, 1, 2).Wire()))
	assert.Equal(t, 2, c.Len())
}
