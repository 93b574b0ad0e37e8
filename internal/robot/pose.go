package robot

import "robot-renderer/internal/mathutil"

// Bone is a part flattened into parent-index form. Parents always precede
// their children.
type Bone struct {
	Name   string
	Parent int // -1 for the root
	Depth  int
	Part   *Part
}

// Flatten lists the tree depth-first.
func Flatten(root *Part) []Bone {
	var bones []Bone
	index := make(map[*Part]int)
	root.Walk(func(p *Part, depth int) {
		parent := -1
		if p.parent != nil && p != root {
			parent = index[p.parent]
		}
		index[p] = len(bones)
		bones = append(bones, Bone{Name: p.Name, Parent: parent, Depth: depth, Part: p})
	})
	return bones
}

// BuildWorldMatrices computes every part's frame for pose j without a
// transform stack: each frame is its parent's frame times the part's local
// transform, with base standing in for the root's parent.
// Returns a slice of 4×4 matrices indexed like bones.
func BuildWorldMatrices(bones []Bone, j Joints, base mathutil.Mat4) []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, len(bones))
	for i, bone := range bones {
		local := bone.Part.Local(j)

		// Chain with parent
		if bone.Parent >= 0 && bone.Parent < i {
			worlds[i] = mathutil.Mat4Mul(worlds[bone.Parent], local)
		} else {
			worlds[i] = mathutil.Mat4Mul(base, local)
		}
	}
	return worlds
}

// Pose maps part names to their frames for pose j, relative to base.
func Pose(root *Part, j Joints, base mathutil.Mat4) map[string]mathutil.Mat4 {
	bones := Flatten(root)
	worlds := BuildWorldMatrices(bones, j, base)
	out := make(map[string]mathutil.Mat4, len(bones))
	for i, b := range bones {
		out[b.Name] = worlds[i]
	}
	return out
}
