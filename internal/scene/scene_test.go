package scene

import (
	"testing"

	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/mesh"
	"robot-renderer/internal/robot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func newScene() *Scene {
	return New(robot.NewDimensions(robot.DefaultBodyWidth), mesh.NewCache(12, 2))
}

func TestDrawAddsGroundLast(t *testing.T) {
	s := newScene()
	var rec robot.Recorder
	s.Draw(robot.DefaultJoints(), &rec)

	require.NotEmpty(t, rec.Calls)
	last := rec.Calls[len(rec.Calls)-1]
	assert.Equal(t, GroundPart, last.Part)
	assert.Equal(t, "ground", last.Material)

	want := mathutil.Mat4Mul(s.Camera.View(), mathutil.Mat4Translate(mathutil.Vec3{0, -20, 0}))
	assert.True(t, want.ApproxEqual(last.ModelView, tol))
}

func TestDrawWithoutGround(t *testing.T) {
	s := newScene()
	s.Ground = false
	var rec robot.Recorder
	s.Draw(robot.DefaultJoints(), &rec)
	assert.Empty(t, rec.ByPart(GroundPart))
}

func TestDrawStartsFromView(t *testing.T) {
	s := newScene()
	var rec robot.Recorder
	s.Draw(robot.DefaultJoints(), &rec)

	// The body cube is centered on the world origin
	body := rec.ByPart(robot.PartBody)
	require.Len(t, body, 1)
	assert.True(t, body[0].Center().ApproxEqual(s.Camera.View().MulPoint(mathutil.Vec3{}), tol))
}

func TestRenderSize(t *testing.T) {
	s := newScene()
	img, st := s.RenderStats(robot.DefaultJoints(), 65, 50, 2)
	assert.Equal(t, 65, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
	assert.Positive(t, st.Triangles)
	assert.Positive(t, st.Lines)

	// Corner stays the clear color, the center shows the body
	assert.InDelta(t, 102, int(img.Pix[0]), 1)
	assert.Equal(t, uint8(255), img.Pix[3])

	c := img.PixOffset(32, 25)
	assert.NotEqual(t, []uint8{102, 102, 102}, img.Pix[c:c+3])

	// The shared camera is untouched
	assert.Equal(t, 650, s.Camera.Width)
}

func TestRenderChangesWithPose(t *testing.T) {
	s := newScene()
	j := robot.DefaultJoints()
	a := s.Render(j, 40, 30, 1)
	j.Base = 90
	b := s.Render(j, 40, 30, 1)
	assert.NotEqual(t, a.Pix, b.Pix)
}
