// Package eventloop is a single-threaded scheduler for timer callbacks and
// redraw requests. Time only moves when Advance is called, so the same code
// serves a real-time window and deterministic headless runs.
package eventloop

import (
	"container/heap"
	"log/slog"
	"time"
)

// Task is a scheduled callback. A Task is owned by the Loop that created it
// and must only be used from the loop's goroutine.
type Task struct {
	loop   *Loop
	fn     func(now time.Time)
	period time.Duration
	next   time.Time
	seq    uint64 // tie-breaker keeping insertion order for equal deadlines
	index  int    // position in the heap, -1 when not queued
	active bool
}

// Cancel stops the task. It takes effect at once: a cancelled task never
// runs again, even if it was already due in the current Advance.
func (t *Task) Cancel() {
	if !t.active {
		return
	}
	t.active = false
	if t.index >= 0 {
		heap.Remove(&t.loop.queue, t.index)
	}
}

// Active reports whether the task will run again.
func (t *Task) Active() bool {
	return t.active
}

// Loop runs due tasks in deadline order.
type Loop struct {
	now       time.Time
	queue     taskQueue
	seq       uint64
	redisplay bool
}

// New creates a loop whose clock starts at start.
func New(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop clock.
func (l *Loop) Now() time.Time {
	return l.now
}

// Every schedules fn to run every period, first one period from now.
// Non-positive periods are raised to one nanosecond.
func (l *Loop) Every(period time.Duration, fn func(now time.Time)) *Task {
	if period <= 0 {
		period = time.Nanosecond
	}
	l.seq++
	t := &Task{
		loop:   l,
		fn:     fn,
		period: period,
		next:   l.now.Add(period),
		seq:    l.seq,
		index:  -1,
		active: true,
	}
	heap.Push(&l.queue, t)
	return t
}

// Advance moves the clock to now, running every task due on the way in
// deadline order. The clock reads each task's deadline while it runs.
// Going backwards is a no-op. It returns the number of callbacks run.
func (l *Loop) Advance(now time.Time) int {
	if now.Before(l.now) {
		return 0
	}
	ran := 0
	for len(l.queue) > 0 && !l.queue[0].next.After(now) {
		t := heap.Pop(&l.queue).(*Task)
		l.now = t.next
		t.next = t.next.Add(t.period)
		t.fn(l.now)
		ran++

		// The callback may have cancelled its own task
		if t.active && t.index < 0 {
			heap.Push(&l.queue, t)
		}
	}
	l.now = now
	if ran > 0 {
		slog.Debug("eventloop: advanced", "tasks", ran, "pending", l.Pending())
	}
	return ran
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	return len(l.queue)
}

// PostRedisplay marks the frame dirty.
func (l *Loop) PostRedisplay() {
	l.redisplay = true
}

// TakeRedisplay reports whether a redraw was requested and clears the flag.
// Multiple posts between two takes coalesce into one redraw.
func (l *Loop) TakeRedisplay() bool {
	r := l.redisplay
	l.redisplay = false
	return r
}

// taskQueue is a min-heap ordered by deadline, then creation order.
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].next.Equal(q[j].next) {
		return q[i].seq < q[j].seq
	}
	return q[i].next.Before(q[j].next)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
