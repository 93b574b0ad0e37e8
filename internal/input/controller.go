// Package input maps keyboard events onto the joint store and the cannon
// animator.
package input

import (
	"log/slog"

	"robot-renderer/internal/anim"
	"robot-renderer/internal/eventloop"
	"robot-renderer/internal/robot"
)

// SpecialKey is a non-character key.
type SpecialKey int

const (
	KeyLeft SpecialKey = iota
	KeyRight
)

func (k SpecialKey) String() string {
	if k == KeyLeft {
		return "left"
	}
	return "right"
}

// DefaultStep is the joint change per arrow press, in degrees.
const DefaultStep = 2.0

// Controller applies key presses. Every press, mapped or not, requests a
// redraw.
type Controller struct {
	Step float64

	loop   *eventloop.Loop
	joints *robot.Joints
	cannon *anim.Cannon
}

// NewController wires a controller to the shared loop, joints and animator.
func NewController(loop *eventloop.Loop, joints *robot.Joints, cannon *anim.Cannon) *Controller {
	return &Controller{
		Step:   DefaultStep,
		loop:   loop,
		joints: joints,
		cannon: cannon,
	}
}

// Key handles a character key and reports whether it was bound.
//
//	b, h, k  select the base, hip or knee joint
//	c        start the cannon
//	C        stop the cannon
func (c *Controller) Key(r rune) bool {
	defer c.loop.PostRedisplay()

	switch r {
	case 'b':
		return c.selectJoint(robot.JointBase)
	case 'h':
		return c.selectJoint(robot.JointHip)
	case 'k':
		return c.selectJoint(robot.JointKnee)
	case 'c':
		c.cannon.Start()
		return true
	case 'C':
		c.cannon.Stop()
		return true
	}
	return false
}

// Special handles an arrow key: left subtracts Step from the active joint,
// right adds it.
func (c *Controller) Special(k SpecialKey) bool {
	defer c.loop.PostRedisplay()

	switch k {
	case KeyLeft:
		c.joints.Adjust(-c.Step)
	case KeyRight:
		c.joints.Adjust(c.Step)
	default:
		return false
	}
	slog.Debug("input: adjust", "joint", c.joints.Active, "angle", c.joints.Angle(c.joints.Active))
	return true
}

func (c *Controller) selectJoint(id robot.JointID) bool {
	c.joints.Select(id)
	slog.Debug("input: select", "joint", id)
	return true
}
