package robot

import (
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/mesh"
)

// Fixed leg angles in degrees. The left lower leg also follows the knee
// joint, whose rest value equals LowerLegAngle.
const (
	UpperLegAngle = 30.0
	LowerLegAngle = -60.0
	MuzzleAngle   = -90.0
)

// CappedCylinder is an open cylinder shell closed by two disks. Each of the
// three primitives is placed independently, so caps need not sit exactly
// on the shell's end planes.
type CappedCylinder struct {
	Radius    float64
	Height    float64
	CapRadius float64

	Shell   mathutil.Vec3
	NearCap mathutil.Vec3
	FarCap  mathutil.Vec3
}

// Shapes returns the shell and both caps, each placed by pre followed by
// its own translation. Caps are drawn as wireframe disks.
func (c CappedCylinder) Shapes(pre ...Op) []Shape {
	place := func(t mathutil.Vec3) []Op {
		ops := append([]Op(nil), pre...)
		return append(ops, Translate(t[0], t[1], t[2]))
	}
	return []Shape{
		{Ops: place(c.Shell), Prim: mesh.Cylinder(c.Radius, c.Radius, c.Height)},
		{Ops: place(c.NearCap), Prim: mesh.Disk(0, c.CapRadius).Wire()},
		{Ops: place(c.FarCap), Prim: mesh.Disk(0, c.CapRadius).Wire()},
	}
}

// Part names of the figure.
const (
	PartRobot         = "robot"
	PartBody          = "body"
	PartHead          = "head"
	PartCannon        = "cannon"
	PartMuzzle        = "muzzle"
	PartBase          = "base"
	PartHipJoint      = "hip-joint"
	PartLeftUpperLeg  = "left-upper-leg"
	PartLeftKnee      = "left-knee"
	PartLeftLowerLeg  = "left-lower-leg"
	PartLeftFoot      = "left-foot"
	PartRightUpperLeg = "right-upper-leg"
	PartRightLowerLeg = "right-lower-leg"
	PartRightFoot     = "right-foot"
)

// NewFigure builds the robot's kinematic tree.
//
// The root carries the base yaw. Under it, two sibling branches are pushed
// independently: the body branch follows the hip yaw and holds the head and
// the cannon; the base branch holds the hip joint, the legs and the feet and
// never sees the hip angle.
func NewFigure(d Dimensions) *Part {
	w, l := d.BodyWidth, d.BodyLength

	root := &Part{
		Name:  PartRobot,
		Pivot: Driven(JointBase, mathutil.Vec3{}, mathutil.AxisY, 0),
	}

	body := &Part{
		Name:     PartBody,
		Pivot:    Driven(JointHip, mathutil.Vec3{}, mathutil.AxisY, 0),
		Material: material.Body,
		Shapes:   []Shape{{Ops: []Op{Scale(w, l, d.BodyDepth)}, Prim: mesh.Cube()}},
	}

	head := &Part{
		Name:     PartHead,
		Frame:    []Op{Translate(0, 0.5*l+0.5*d.HeadLength, 0)},
		Material: material.Body,
		Shapes:   []Shape{{Ops: []Op{Scale(0.8*w, 0.6*w, 0.6*w)}, Prim: mesh.Cube()}},
	}

	cannonPivot := mathutil.Vec3{0, 0.05 * l, 0.1 * w}
	cannon := &Part{
		Name:     PartCannon,
		Pivot:    Driven(JointCannon, cannonPivot, mathutil.AxisZ, 0),
		Frame:    []Op{Translate(cannonPivot[0], cannonPivot[1], cannonPivot[2])},
		Material: material.Gun,
		Shapes: []Shape{{
			Prim: mesh.Cylinder(d.CannonRadius, d.CannonRadius, d.CannonHeight).Wire(),
		}},
	}

	muzzlePivot := mathutil.Vec3{0, 0.2 * l, 0.68 * w}
	muzzle := &Part{
		Name:  PartMuzzle,
		Pivot: Fixed(muzzlePivot, mathutil.AxisX, MuzzleAngle),
		Frame: []Op{Translate(muzzlePivot[0], muzzlePivot[1], muzzlePivot[2])},
		Shapes: []Shape{{
			Prim: mesh.Cylinder(0.4*d.CannonRadius, 0.4*d.CannonRadius, 0.1*d.CannonHeight).Wire(),
		}},
	}

	root.Add(
		body.Add(head, cannon.Add(muzzle)),
		newBase(d),
	)
	return root
}

func newBase(d Dimensions) *Part {
	w, l := d.BodyWidth, d.BodyLength
	llw := d.LowerLegWidth

	hipJoint := &Part{
		Name:     PartHipJoint,
		Frame:    []Op{Rotate(90, mathutil.AxisY)},
		Material: material.LowerBody,
		Shapes: CappedCylinder{
			Radius:    0.2 * w,
			Height:    0.5 * d.BodyDepth,
			CapRadius: 0.19 * w,
			Shell:     mathutil.Vec3{0, -1.5 * l, -0.15 * w},
			NearCap:   mathutil.Vec3{0, -1.5 * l, 0.01 * w},
			FarCap:    mathutil.Vec3{0, -1.5 * l, 0.15 * w},
		}.Shapes(),
	}

	legX := 0.25*w + -0.25*d.UpperLegWidth
	hip := mathutil.Vec3{legX, -0.5 * w, -0.075 * w}
	knee := mathutil.Vec3{legX, -0.79 * w, -0.055 * w}
	mirror := mathutil.Vec3{-1, 1, 1}

	upperLeg := func(name string, at mathutil.Vec3) *Part {
		return &Part{
			Name:     name,
			Pivot:    Fixed(at, mathutil.AxisX, UpperLegAngle),
			Frame:    []Op{Translate(at[0], at[1], at[2])},
			Material: material.Leg,
			Shapes: []Shape{{
				Ops:  []Op{Scale(d.UpperLegWidth, d.UpperLegLength, d.UpperLegWidth)},
				Prim: mesh.Cube(),
			}},
		}
	}
	lowerLeg := func(name string, at mathutil.Vec3) *Part {
		return &Part{
			Name:     name,
			Pivot:    Fixed(at, mathutil.AxisX, LowerLegAngle),
			Frame:    []Op{Translate(at[0], at[1], at[2])},
			Material: material.Leg,
			Shapes: []Shape{{
				Ops:  []Op{Scale(llw, d.LowerLegLength, llw)},
				Prim: mesh.Cube(),
			}},
		}
	}

	// The knee rotates the left lower leg and foot about the same pivot as
	// the lower leg's fixed angle. Biasing by -LowerLegAngle makes the knee
	// rest value a no-op for both.
	leftKnee := &Part{
		Name:  PartLeftKnee,
		Pivot: Driven(JointKnee, knee, mathutil.AxisX, -LowerLegAngle),
	}
	leftKnee.Add(
		lowerLeg(PartLeftLowerLeg, knee),
		newFoot(PartLeftFoot, d, footLayout{
			ankle: CappedCylinder{Shell: mathutil.Vec3{-1.5 * llw, -4.1 * l, llw}, NearCap: mathutil.Vec3{-1.5 * llw, -4.1 * l, 2.1 * llw}, FarCap: mathutil.Vec3{-1.5 * llw, -4.1 * l, 1.1 * llw}},
			foot:  mathutil.Vec3{1.55 * llw, -5.0 * l, 0.6 * llw},
			front: mathutil.Vec3{1.55 * llw, -5.3 * l, 1.3 * llw},
			outer: mathutil.Vec3{2.2 * llw, -5.3 * l, 0.6 * llw},
			inner: mathutil.Vec3{0.9 * llw, -5.3 * l, 0.6 * llw},
		}),
	)

	base := &Part{Name: PartBase}
	base.Add(
		hipJoint,
		upperLeg(PartLeftUpperLeg, hip),
		leftKnee,
		upperLeg(PartRightUpperLeg, hip.Mul(mirror)),
		lowerLeg(PartRightLowerLeg, knee.Mul(mirror)),
		newFoot(PartRightFoot, d, footLayout{
			ankle: CappedCylinder{Shell: mathutil.Vec3{-1.5 * llw, -4.1 * l, -2.1 * llw}, NearCap: mathutil.Vec3{-1.5 * llw, -4.1 * l, -2.1 * llw}, FarCap: mathutil.Vec3{-1.5 * llw, -4.1 * l, -1.1 * llw}},
			foot:  mathutil.Vec3{-1.55 * llw, -5.0 * l, 0.6 * llw},
			front: mathutil.Vec3{-1.55 * llw, -5.3 * l, 1.3 * llw},
			outer: mathutil.Vec3{-2.2 * llw, -5.3 * l, 0.6 * llw},
			inner: mathutil.Vec3{-0.9 * llw, -5.3 * l, 0.6 * llw},
		}),
	)
	return base
}

// footLayout holds the literal per-foot offsets. The left and right feet are
// not exact mirror images; the values are kept as sculpted.
type footLayout struct {
	ankle CappedCylinder // positions only; radii come from the dimensions
	foot  mathutil.Vec3
	front mathutil.Vec3
	outer mathutil.Vec3
	inner mathutil.Vec3
}

func newFoot(name string, d Dimensions, fl footLayout) *Part {
	llw := d.LowerLegWidth

	ankle := fl.ankle
	ankle.Radius = 0.3 * llw
	ankle.Height = 1.1 * llw
	ankle.CapRadius = 0.29 * llw

	claw := func(at mathutil.Vec3, sideways bool) Shape {
		ops := []Op{Translate(at[0], at[1], at[2]), Rotate(90, mathutil.AxisX)}
		if sideways {
			ops = append(ops, Rotate(90, mathutil.AxisZ))
		}
		ops = append(ops, Scale(d.ClawWidth, d.ClawLength, d.ClawWidth))
		return Shape{Ops: ops, Prim: mesh.Cube()}
	}

	shapes := ankle.Shapes(Rotate(90, mathutil.AxisY))
	shapes = append(shapes,
		Shape{
			Ops:  []Op{Translate(fl.foot[0], fl.foot[1], fl.foot[2]), Scale(llw, 0.3*d.LowerLegLength, llw)},
			Prim: mesh.Cube(),
		},
		claw(fl.front, false),
		claw(fl.outer, true),
		claw(fl.inner, true),
	)

	return &Part{
		Name:     name,
		Material: material.LowerBody,
		Shapes:   shapes,
	}
}
