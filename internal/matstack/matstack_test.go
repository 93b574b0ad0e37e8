package matstack

import (
	"testing"

	"robot-renderer/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopRestores(t *testing.T) {
	base := mathutil.Mat4Translate(mathutil.Vec3{0, -6, -22})
	s := New(base)
	s.Push()
	s.Rotate(30, mathutil.AxisX)
	s.Translate(mathutil.Vec3{1, 2, 3})
	assert.Equal(t, 2, s.Depth())
	require.NoError(t, s.Pop())
	assert.Equal(t, base, s.Top())
	assert.Equal(t, 1, s.Depth())
}

func TestPopUnderflow(t *testing.T) {
	s := New(mathutil.Mat4Identity())
	assert.ErrorIs(t, s.Pop(), ErrUnderflow)
	assert.Equal(t, 1, s.Depth())
}

func TestLastOpAppliesFirst(t *testing.T) {
	s := New(mathutil.Mat4Identity())
	s.Translate(mathutil.Vec3{5, 0, 0})
	s.Scale(mathutil.Vec3{2, 2, 2})
	// scale, then translate
	assert.Equal(t, mathutil.Vec3{7, 2, 2}, s.Top().MulPoint(mathutil.Vec3{1, 1, 1}))
}

func TestPivotRotationKeepsPivotFixed(t *testing.T) {
	pivot := mathutil.Vec3{2.25, -7.9, -0.55}
	for _, deg := range []float64{-60, 0, 10, 90, 725} {
		s := New(mathutil.Mat4Identity())
		s.Translate(pivot)
		s.Rotate(deg, mathutil.AxisX)
		s.Translate(pivot.Neg())
		got := s.Top().MulPoint(pivot)
		assert.True(t, got.ApproxEqual(pivot, 1e-9), "deg %v: %v", deg, got)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	pivot := mathutil.Vec3{0, 0.1, 1}
	s := New(mathutil.Mat4Translate(mathutil.Vec3{3, 4, 5}))
	before := s.Top()
	for _, deg := range []float64{17, -17} {
		s.Translate(pivot)
		s.Rotate(deg, mathutil.AxisZ)
		s.Translate(pivot.Neg())
	}
	assert.True(t, s.Top().ApproxEqual(before, 1e-12))
}

func TestLoad(t *testing.T) {
	s := New(mathutil.Mat4Identity())
	s.Push()
	m := mathutil.Mat4Scale(mathutil.Vec3{1, 2, 3})
	s.Load(m)
	assert.Equal(t, m, s.Top())
	require.NoError(t, s.Pop())
	assert.True(t, s.Top().IsIdentity())
}
