// Package scene composes the robot, the ground and the camera into frames.
package scene

import (
	"image"

	"robot-renderer/internal/camera"
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/matstack"
	"robot-renderer/internal/mesh"
	"robot-renderer/internal/postprocess"
	"robot-renderer/internal/raster"
	"robot-renderer/internal/robot"
)

// Ground plane placement: a 32x32 grid of 16x16 cells, 20 units below the
// world origin.
const (
	GroundPart   = "ground"
	GroundSize   = 32.0
	GroundCells  = 16
	GroundHeight = -20.0
)

// Scene is everything needed to draw a frame except the pose. A Scene is
// read-only while rendering, so one value can serve concurrent renders as
// long as Meshes is safe for concurrent use.
type Scene struct {
	Dims   robot.Dimensions
	Figure *robot.Part
	Camera camera.Camera
	Meshes mesh.Resolver
	Ground bool
}

// New builds the figure for d, viewed by the default 650x500 camera.
func New(d robot.Dimensions, meshes mesh.Resolver) *Scene {
	return &Scene{
		Dims:   d,
		Figure: robot.NewFigure(d),
		Camera: camera.Default(650, 500),
		Meshes: meshes,
		Ground: true,
	}
}

// Draw issues the whole frame to d: the robot under the camera's view
// transform, then the ground plane.
func (s *Scene) Draw(j robot.Joints, d robot.Drawer) {
	view := s.Camera.View()
	stack := matstack.New(view)
	robot.Render(s.Figure, j, stack, d)

	if s.Ground {
		d.SetMaterial(material.Ground)
		mv := mathutil.Mat4Mul(view, mathutil.Mat4Translate(mathutil.Vec3{0, GroundHeight, 0}))
		d.DrawPrimitive(GroundPart, mesh.Ground(GroundSize, GroundCells), mv)
	}
}

// Render rasterizes pose j to a w x h image. With supersample > 1 the frame
// is drawn that many times larger and filtered down.
func (s *Scene) Render(j robot.Joints, w, h, supersample int) *image.NRGBA {
	img, _ := s.RenderStats(j, w, h, supersample)
	return img
}

// RenderStats is Render that also returns the rasterizer counters.
func (s *Scene) RenderStats(j robot.Joints, w, h, supersample int) (*image.NRGBA, raster.Stats) {
	if supersample < 1 {
		supersample = 1
	}
	rw, rh := w*supersample, h*supersample

	cam := s.Camera
	cam.Resize(rw, rh)
	fb := raster.NewFrameBuffer(rw, rh)
	r := raster.NewRenderer(fb, cam.Projection(), s.Meshes)

	frame := *s
	frame.Camera = cam
	frame.Draw(j, r)

	img := fb.Image()
	if supersample > 1 {
		img = postprocess.Downsample(img, w, h)
	}
	return img, r.Stats()
}
