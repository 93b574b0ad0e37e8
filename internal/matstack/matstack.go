// Package matstack keeps the current model-view transform as a stack of
// 4×4 matrices, with the push/pop/translate/rotate/scale surface of the
// fixed-function GL matrix stack.
package matstack

import (
	"errors"

	"robot-renderer/internal/mathutil"
)

// ErrUnderflow is returned by Pop when only the base entry remains.
var ErrUnderflow = errors.New("matstack: pop would empty the stack")

// Stack is a transform stack. The zero value is not usable; call New.
type Stack struct {
	entries []mathutil.Mat4
}

// New returns a stack holding a single base entry.
func New(base mathutil.Mat4) *Stack {
	s := &Stack{entries: make([]mathutil.Mat4, 1, 16)}
	s.entries[0] = base
	return s
}

// Push duplicates the top entry.
func (s *Stack) Push() {
	s.entries = append(s.entries, s.Top())
}

// Pop discards the top entry, restoring the one saved by the matching Push.
func (s *Stack) Pop() error {
	if len(s.entries) <= 1 {
		return ErrUnderflow
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// Top returns the current transform.
func (s *Stack) Top() mathutil.Mat4 {
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries, including the base.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Load replaces the top entry.
func (s *Stack) Load(m mathutil.Mat4) {
	s.entries[len(s.entries)-1] = m
}

// Mul post-multiplies the top entry by m, so m applies to vertices before
// everything already on the stack.
func (s *Stack) Mul(m mathutil.Mat4) {
	top := &s.entries[len(s.entries)-1]
	*top = mathutil.Mat4Mul(*top, m)
}

func (s *Stack) Translate(t mathutil.Vec3) {
	s.Mul(mathutil.Mat4Translate(t))
}

// Rotate applies a rotation of deg degrees about axis.
func (s *Stack) Rotate(deg float64, axis mathutil.Vec3) {
	s.Mul(mathutil.Mat4Rotate(deg, axis))
}

func (s *Stack) Scale(v mathutil.Vec3) {
	s.Mul(mathutil.Mat4Scale(v))
}
