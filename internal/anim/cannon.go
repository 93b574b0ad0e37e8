// Package anim drives the continuous cannon rotation.
package anim

import (
	"log/slog"
	"time"

	"robot-renderer/internal/eventloop"
	"robot-renderer/internal/robot"
)

// Defaults for the cannon spin: 5 degrees every 10ms.
const (
	DefaultPeriod = 10 * time.Millisecond
	DefaultStep   = 5.0
)

// Cannon spins the cannon joint on a repeating loop task. At most one task
// is armed at a time.
type Cannon struct {
	Period time.Duration
	Step   float64

	loop   *eventloop.Loop
	joints *robot.Joints
	task   *eventloop.Task
}

// NewCannon creates a stopped animator with the default period and step.
func NewCannon(loop *eventloop.Loop, joints *robot.Joints) *Cannon {
	return &Cannon{
		Period: DefaultPeriod,
		Step:   DefaultStep,
		loop:   loop,
		joints: joints,
	}
}

// Start arms the repeating tick. Starting a running animator changes
// nothing and returns false.
func (c *Cannon) Start() bool {
	if c.Running() {
		return false
	}
	c.task = c.loop.Every(c.Period, c.tick)
	slog.Debug("anim: cannon started", "period", c.Period, "step", c.Step)
	return true
}

// Stop cancels the tick; no further increments happen. It returns false if
// the animator was not running. A stopped animator can be started again.
func (c *Cannon) Stop() bool {
	if !c.Running() {
		return false
	}
	c.task.Cancel()
	c.task = nil
	slog.Debug("anim: cannon stopped", "angle", c.joints.Cannon)
	return true
}

// Running reports whether the tick is armed.
func (c *Cannon) Running() bool {
	return c.task != nil && c.task.Active()
}

func (c *Cannon) tick(time.Time) {
	c.joints.Tick(c.Step)
	c.loop.PostRedisplay()
}
