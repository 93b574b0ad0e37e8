package camera

import (
	"math"
	"testing"

	"robot-renderer/internal/mathutil"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestViewMapsEyeToOrigin(t *testing.T) {
	c := Default(650, 500)
	v := c.View()
	assert.True(t, v.MulPoint(c.Eye).ApproxEqual(mathutil.Vec3{}, tol))

	// The target lies straight down -Z in eye space.
	target := v.MulPoint(c.Target)
	assert.InDelta(t, 0, target[0], tol)
	assert.InDelta(t, 0, target[1], tol)
	assert.InDelta(t, -math.Sqrt(6*6+22*22), target[2], tol)
}

func TestProjectionMatchesPerspective(t *testing.T) {
	c := Default(650, 500)
	p := c.Projection()
	f := 1 / math.Tan(mathutil.Deg2Rad(30))
	assert.InDelta(t, f/(650.0/500.0), p[0], tol)
	assert.InDelta(t, f, p[5], tol)
	assert.InDelta(t, (40+0.2)/(0.2-40), p[10], tol)
	assert.InDelta(t, 2*40*0.2/(0.2-40), p[11], tol)
	assert.Equal(t, -1.0, p[14])

	// Near and far planes land on NDC -1 and +1.
	for _, tc := range []struct{ z, ndc float64 }{{-0.2, -1}, {-40, 1}} {
		clip := p.MulVec4(mathutil.Vec3{0, 0, tc.z})
		assert.InDelta(t, tc.ndc, clip[2]/clip[3], 1e-9)
	}
}

func TestResizeOnlyChangesAspect(t *testing.T) {
	c := Default(650, 500)
	view := c.View()
	proj := c.Projection()

	c.Resize(1300, 500)
	assert.Equal(t, mathutil.Vec3{0, 6, 22}, c.Eye)
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, c.Target)
	assert.Equal(t, mathutil.Vec3{0, 1, 0}, c.Up)
	assert.Equal(t, view, c.View())

	p := c.Projection()
	assert.InDelta(t, proj[0]/2, p[0], tol)
	assert.Equal(t, proj[5], p[5])
	assert.Equal(t, 2.6, c.Aspect())
}

func TestAspectOfEmptyViewport(t *testing.T) {
	c := Default(0, 0)
	assert.Equal(t, 1.0, c.Aspect())
}
