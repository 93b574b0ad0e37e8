package eventloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEveryRunsOncePerPeriod(t *testing.T) {
	l := New(epoch)
	var fired []time.Duration
	l.Every(10*time.Millisecond, func(now time.Time) {
		fired = append(fired, now.Sub(epoch))
	})

	assert.Zero(t, l.Advance(epoch.Add(9*time.Millisecond)))
	assert.Equal(t, 3, l.Advance(epoch.Add(35*time.Millisecond)))
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, fired)
	assert.Equal(t, epoch.Add(35*time.Millisecond), l.Now())
}

func TestDeadlineOrder(t *testing.T) {
	l := New(epoch)
	var order []string
	l.Every(20*time.Millisecond, func(time.Time) { order = append(order, "slow") })
	l.Every(10*time.Millisecond, func(time.Time) { order = append(order, "fast") })
	l.Every(10*time.Millisecond, func(time.Time) { order = append(order, "fast2") })

	l.Advance(epoch.Add(20 * time.Millisecond))
	// Equal deadlines run in scheduling order
	assert.Equal(t, []string{"fast", "fast2", "slow", "fast", "fast2"}, order)
	assert.Equal(t, 3, l.Pending())
}

func TestCancelTakesEffectImmediately(t *testing.T) {
	l := New(epoch)
	n := 0
	task := l.Every(10*time.Millisecond, func(time.Time) { n++ })
	l.Advance(epoch.Add(10 * time.Millisecond))
	assert.Equal(t, 1, n)

	task.Cancel()
	assert.False(t, task.Active())
	l.Advance(epoch.Add(time.Second))
	assert.Equal(t, 1, n)

	// Cancelling twice is harmless
	task.Cancel()
	assert.Zero(t, l.Pending())
}

func TestCancelFromCallback(t *testing.T) {
	l := New(epoch)
	n := 0
	var task *Task
	task = l.Every(10*time.Millisecond, func(time.Time) {
		n++
		if n == 2 {
			task.Cancel()
		}
	})
	l.Advance(epoch.Add(time.Second))
	assert.Equal(t, 2, n)
	assert.Zero(t, l.Pending())
}

func TestCancelOtherDueTask(t *testing.T) {
	l := New(epoch)
	ran := false
	var victim *Task
	l.Every(10*time.Millisecond, func(time.Time) { victim.Cancel() })
	victim = l.Every(10*time.Millisecond, func(time.Time) { ran = true })

	l.Advance(epoch.Add(10 * time.Millisecond))
	assert.False(t, ran)
	assert.Equal(t, 1, l.Pending())
}

func TestAdvanceBackwardsIsNoop(t *testing.T) {
	l := New(epoch.Add(time.Second))
	l.Every(time.Millisecond, func(time.Time) {})
	assert.Zero(t, l.Advance(epoch))
	assert.Equal(t, epoch.Add(time.Second), l.Now())
}

func TestNonPositivePeriodIsClamped(t *testing.T) {
	l := New(epoch)
	n := 0
	l.Every(0, func(time.Time) { n++ })
	l.Advance(epoch.Add(5 * time.Nanosecond))
	assert.Equal(t, 5, n)
}

func TestRedisplayCoalesces(t *testing.T) {
	l := New(epoch)
	assert.False(t, l.TakeRedisplay())
	l.PostRedisplay()
	l.PostRedisplay()
	assert.True(t, l.TakeRedisplay())
	assert.False(t, l.TakeRedisplay())
}
