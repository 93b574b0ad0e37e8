// Package camera holds the fixed viewing setup: a perspective projection
// recomputed on resize and a static look-at view.
package camera

import (
	"robot-renderer/internal/mathutil"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera. Only Width and Height change at runtime.
type Camera struct {
	Eye    mathutil.Vec3
	Target mathutil.Vec3
	Up     mathutil.Vec3

	FovY float64 // degrees
	Near float64
	Far  float64

	Width  int
	Height int
}

// Default returns the reference camera: eye (0, 6, 22) looking at the
// origin with +Y up, 60° vertical field of view, near 0.2, far 40.
func Default(width, height int) Camera {
	return Camera{
		Eye:    mathutil.Vec3{0, 6, 22},
		Target: mathutil.Vec3{0, 0, 0},
		Up:     mathutil.Vec3{0, 1, 0},
		FovY:   60,
		Near:   0.2,
		Far:    40,
		Width:  width,
		Height: height,
	}
}

// Resize updates the viewport. The view vectors are left untouched.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Aspect returns width/height, or 1 for an empty viewport.
func (c Camera) Aspect() float64 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// View returns the world-to-eye transform.
func (c Camera) View() mathutil.Mat4 {
	m := mgl64.LookAtV(vec(c.Eye), vec(c.Target), vec(c.Up))
	return mathutil.FromColumnMajor(m)
}

// Projection returns the eye-to-clip transform for the current aspect.
func (c Camera) Projection() mathutil.Mat4 {
	m := mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
	return mathutil.FromColumnMajor(m)
}

func vec(v mathutil.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
