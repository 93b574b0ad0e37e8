package app

import (
	"testing"
	"time"

	"robot-renderer/internal/config"
	"robot-renderer/internal/input"
	"robot-renderer/internal/robot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{Width: 40, Height: 30, Slices: 8, Stacks: 1}
	cfg.Resolve(config.Flags{})
	return New(cfg, epoch)
}

func TestNewSession(t *testing.T) {
	a := newApp(t)
	w, h := a.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, robot.DefaultJoints(), a.Joints)
	assert.Equal(t, 10*time.Millisecond, a.Cannon.Period)
	assert.Equal(t, 2.0, a.Controller.Step)
}

func TestFrameOnlyWhenDirty(t *testing.T) {
	a := newApp(t)

	img, ok := a.Frame()
	require.True(t, ok)
	assert.Equal(t, 40, img.Bounds().Dx())

	_, ok = a.Frame()
	assert.False(t, ok)

	a.Controller.Key('x')
	_, ok = a.Frame()
	assert.True(t, ok)
}

func TestScriptedSession(t *testing.T) {
	a := newApp(t)
	actions, err := input.ParseScript("h right*3 c wait=100ms C")
	require.NoError(t, err)

	a.Apply(actions)
	assert.Equal(t, 6.0, a.Joints.Hip)
	assert.Equal(t, 60.0, a.Joints.Cannon)
	assert.False(t, a.Cannon.Running())
}

func TestAdvanceDrivesCannon(t *testing.T) {
	a := newApp(t)
	a.Controller.Key('c')
	a.Advance(epoch.Add(20 * time.Millisecond))
	assert.Equal(t, 20.0, a.Joints.Cannon)
}

func TestResizeKeepsPose(t *testing.T) {
	a := newApp(t)
	a.Frame()
	a.Joints.Base = 30
	view := a.Scene.Camera.View()

	assert.True(t, a.Resize(80, 30))
	assert.False(t, a.Resize(80, 30))
	assert.False(t, a.Resize(0, 10))

	assert.Equal(t, view, a.Scene.Camera.View())
	assert.InDelta(t, 80.0/30.0, a.Scene.Camera.Aspect(), 1e-12)
	assert.Equal(t, 30.0, a.Joints.Base)

	img, ok := a.Frame()
	require.True(t, ok)
	assert.Equal(t, 80, img.Bounds().Dx())
}

func TestNegativeRootScaleReachesFigure(t *testing.T) {
	w := -10.0
	cfg := config.Config{BodyWidth: &w, Width: 20, Height: 15, Slices: 8, Stacks: 1}
	cfg.Resolve(config.Flags{})
	a := New(cfg, epoch)

	assert.Equal(t, -10.0, a.Scene.Dims.BodyWidth)
	assert.Equal(t, -2.0, a.Scene.Dims.BodyLength)
	assert.NotPanics(t, func() { a.Render() })
}
