package robot

import "fmt"

// JointID names a controllable joint.
type JointID int

const (
	JointBase JointID = iota
	JointHip
	JointKnee
	JointCannon
)

func (id JointID) String() string {
	switch id {
	case JointBase:
		return "base"
	case JointHip:
		return "hip"
	case JointKnee:
		return "knee"
	case JointCannon:
		return "cannon"
	}
	return fmt.Sprintf("joint(%d)", int(id))
}

// Default joint angles in degrees.
const (
	DefaultKneeAngle   = -60.0
	DefaultCannonAngle = 10.0
)

// Joints is the mutable pose: one angle per joint, in degrees, plus the
// joint that Adjust addresses. Angles are unbounded; values past ±360 wrap
// visually and are never clamped.
type Joints struct {
	Base   float64 `json:"base"`
	Hip    float64 `json:"hip"`
	Knee   float64 `json:"knee"`
	Cannon float64 `json:"cannon"`

	Active JointID `json:"-"`
}

// DefaultJoints returns the rest pose with the base joint selected.
func DefaultJoints() Joints {
	return Joints{
		Knee:   DefaultKneeAngle,
		Cannon: DefaultCannonAngle,
		Active: JointBase,
	}
}

// Select makes id the joint that Adjust modifies. Only base, hip and knee
// are selectable; other ids leave the selection unchanged and return false.
// Selecting never resets an accumulated angle.
func (j *Joints) Select(id JointID) bool {
	switch id {
	case JointBase, JointHip, JointKnee:
		j.Active = id
		return true
	}
	return false
}

// Adjust adds delta degrees to the active joint.
func (j *Joints) Adjust(delta float64) {
	*j.angle(j.Active) += delta
}

// Tick advances the cannon by step degrees.
func (j *Joints) Tick(step float64) {
	j.Cannon += step
}

// Angle returns the current angle of id.
func (j Joints) Angle(id JointID) float64 {
	return *j.angle(id)
}

func (j *Joints) angle(id JointID) *float64 {
	switch id {
	case JointHip:
		return &j.Hip
	case JointKnee:
		return &j.Knee
	case JointCannon:
		return &j.Cannon
	}
	return &j.Base
}
