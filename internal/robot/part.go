package robot

import (
	"fmt"

	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/matstack"
	"robot-renderer/internal/mesh"
)

// OpKind identifies a transform-stack operation.
type OpKind int

const (
	OpTranslate OpKind = iota
	OpRotate
	OpScale
)

// Op is one transform-stack operation. Rotate uses Angle (degrees) about V;
// Translate and Scale use V.
type Op struct {
	Kind  OpKind
	V     mathutil.Vec3
	Angle float64
}

func Translate(x, y, z float64) Op {
	return Op{Kind: OpTranslate, V: mathutil.Vec3{x, y, z}}
}

func Rotate(deg float64, axis mathutil.Vec3) Op {
	return Op{Kind: OpRotate, V: axis, Angle: deg}
}

func Scale(x, y, z float64) Op {
	return Op{Kind: OpScale, V: mathutil.Vec3{x, y, z}}
}

// Apply composes the op onto the stack top.
func (o Op) Apply(s *matstack.Stack) {
	s.Mul(o.Matrix())
}

// Matrix returns the op as a 4×4 matrix.
func (o Op) Matrix() mathutil.Mat4 {
	switch o.Kind {
	case OpRotate:
		return mathutil.Mat4Rotate(o.Angle, o.V)
	case OpScale:
		return mathutil.Mat4Scale(o.V)
	}
	return mathutil.Mat4Translate(o.V)
}

func (o Op) String() string {
	switch o.Kind {
	case OpRotate:
		return fmt.Sprintf("rotate(%g, %v)", o.Angle, o.V)
	case OpScale:
		return fmt.Sprintf("scale%v", o.V)
	}
	return fmt.Sprintf("translate%v", o.V)
}

// Pivot rotates a part about a point given in its parent's frame. The angle
// is either fixed or read from a joint, in which case Angle is a bias added
// to the joint value.
type Pivot struct {
	Offset mathutil.Vec3
	Axis   mathutil.Vec3
	Joint  JointID
	Driven bool
	Angle  float64
}

// Fixed is a pivot with a constant angle.
func Fixed(offset, axis mathutil.Vec3, deg float64) *Pivot {
	return &Pivot{Offset: offset, Axis: axis, Angle: deg}
}

// Driven is a pivot following joint id, offset by bias degrees.
func Driven(id JointID, offset, axis mathutil.Vec3, bias float64) *Pivot {
	return &Pivot{Offset: offset, Axis: axis, Joint: id, Driven: true, Angle: bias}
}

// AngleFor returns the rotation in degrees for the given pose.
func (p *Pivot) AngleFor(j Joints) float64 {
	if p.Driven {
		return j.Angle(p.Joint) + p.Angle
	}
	return p.Angle
}

// Apply composes translate-to-pivot, rotate, translate-back onto the stack.
// The two translations are exact negatives, so the pivot point stays fixed.
func (p *Pivot) Apply(s *matstack.Stack, j Joints) {
	s.Translate(p.Offset)
	s.Rotate(p.AngleFor(j), p.Axis)
	s.Translate(p.Offset.Neg())
}

// Matrix returns the pivot rotation as a single matrix.
func (p *Pivot) Matrix(j Joints) mathutil.Mat4 {
	m := mathutil.Mat4Mul(mathutil.Mat4Translate(p.Offset), mathutil.Mat4Rotate(p.AngleFor(j), p.Axis))
	return mathutil.Mat4Mul(m, mathutil.Mat4Translate(p.Offset.Neg()))
}

// Shape is a primitive placed by ops that do not carry over to children.
type Shape struct {
	Ops  []Op
	Prim mesh.Primitive
}

// Part is one node of the kinematic tree. Its frame is the parent's frame
// followed by the pivot rotation and then the Frame ops; children inherit
// that frame, shapes add their own ops on top of it.
type Part struct {
	Name     string
	Pivot    *Pivot
	Frame    []Op
	Material material.Material // zero value keeps the current material
	Shapes   []Shape
	Children []*Part

	parent *Part
}

// Add attaches children and returns p.
func (p *Part) Add(children ...*Part) *Part {
	for _, c := range children {
		c.parent = p
		p.Children = append(p.Children, c)
	}
	return p
}

// Local returns the part's frame relative to its parent for pose j.
func (p *Part) Local(j Joints) mathutil.Mat4 {
	m := mathutil.Mat4Identity()
	if p.Pivot != nil {
		m = p.Pivot.Matrix(j)
	}
	for _, op := range p.Frame {
		m = mathutil.Mat4Mul(m, op.Matrix())
	}
	return m
}

// Walk visits p and its descendants depth-first, parents before children.
func (p *Part) Walk(fn func(part *Part, depth int)) {
	p.walk(fn, 0)
}

func (p *Part) walk(fn func(*Part, int), depth int) {
	fn(p, depth)
	for _, c := range p.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the descendant named name, or nil.
func (p *Part) Find(name string) *Part {
	var found *Part
	p.Walk(func(part *Part, _ int) {
		if found == nil && part.Name == name {
			found = part
		}
	})
	return found
}

// InSubtree reports whether p is root or one of its descendants.
func (p *Part) InSubtree(root *Part) bool {
	for q := p; q != nil; q = q.parent {
		if q == root {
			return true
		}
	}
	return false
}
