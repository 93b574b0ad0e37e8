package robot

import (
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/mesh"
)

// DrawCall is one primitive issued by a traversal.
type DrawCall struct {
	Part      string         `json:"part"`
	Primitive mesh.Primitive `json:"-"`
	Shape     string         `json:"shape"`
	Material  string         `json:"material"`
	ModelView mathutil.Mat4  `json:"model_view"`
}

// Center returns the primitive's local origin after the model-view transform.
func (c DrawCall) Center() mathutil.Vec3 {
	return c.ModelView.Translation()
}

// Recorder is a Drawer that keeps every draw call in order.
type Recorder struct {
	Calls []DrawCall

	current material.Material
}

func (r *Recorder) SetMaterial(m material.Material) {
	r.current = m
}

func (r *Recorder) DrawPrimitive(part string, p mesh.Primitive, modelView mathutil.Mat4) {
	r.Calls = append(r.Calls, DrawCall{
		Part:      part,
		Primitive: p,
		Shape:     p.String(),
		Material:  r.current.Name,
		ModelView: modelView,
	})
}

// ByPart returns the calls issued for the named part.
func (r *Recorder) ByPart(name string) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Part == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.current = material.Material{}
}

// Tee forwards every call to each drawer in order.
type Tee []Drawer

func (t Tee) SetMaterial(m material.Material) {
	for _, d := range t {
		d.SetMaterial(m)
	}
}

func (t Tee) DrawPrimitive(part string, p mesh.Primitive, modelView mathutil.Mat4) {
	for _, d := range t {
		d.DrawPrimitive(part, p, modelView)
	}
}
