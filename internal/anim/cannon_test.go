package anim

import (
	"testing"
	"time"

	"robot-renderer/internal/eventloop"
	"robot-renderer/internal/robot"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func setup() (*eventloop.Loop, *robot.Joints, *Cannon) {
	loop := eventloop.New(epoch)
	j := robot.DefaultJoints()
	return loop, &j, NewCannon(loop, &j)
}

func TestCannonTicks(t *testing.T) {
	loop, j, c := setup()
	assert.False(t, c.Running())
	assert.True(t, c.Start())

	loop.Advance(epoch.Add(30 * time.Millisecond))
	assert.Equal(t, 25.0, j.Cannon)
	assert.True(t, loop.TakeRedisplay())
}

func TestCannonStartIsIdempotent(t *testing.T) {
	loop, j, c := setup()
	c.Start()
	assert.False(t, c.Start())
	assert.Equal(t, 1, loop.Pending())

	loop.Advance(epoch.Add(10 * time.Millisecond))
	assert.Equal(t, 15.0, j.Cannon)
}

func TestCannonStopIsImmediate(t *testing.T) {
	loop, j, c := setup()
	c.Start()
	loop.Advance(epoch.Add(20 * time.Millisecond))
	assert.Equal(t, 20.0, j.Cannon)

	assert.True(t, c.Stop())
	assert.False(t, c.Running())
	loop.Advance(epoch.Add(time.Second))
	assert.Equal(t, 20.0, j.Cannon)
	assert.False(t, c.Stop())
}

func TestCannonRestart(t *testing.T) {
	loop, j, c := setup()
	c.Start()
	loop.Advance(epoch.Add(10 * time.Millisecond))
	c.Stop()
	loop.Advance(epoch.Add(15 * time.Millisecond))

	// The restarted task counts its period from the restart time
	assert.True(t, c.Start())
	loop.Advance(epoch.Add(24 * time.Millisecond))
	assert.Equal(t, 15.0, j.Cannon)
	loop.Advance(epoch.Add(25 * time.Millisecond))
	assert.Equal(t, 20.0, j.Cannon)
}

func TestStopBeforeStart(t *testing.T) {
	loop, j, c := setup()
	assert.False(t, c.Stop())
	loop.Advance(epoch.Add(time.Second))
	assert.Equal(t, robot.DefaultCannonAngle, j.Cannon)
}
