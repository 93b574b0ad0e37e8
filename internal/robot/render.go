package robot

import (
	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/matstack"
	"robot-renderer/internal/mesh"
)

// Drawer receives the output of a traversal: material changes and
// primitives with the model-view matrix in effect when they were issued.
type Drawer interface {
	SetMaterial(m material.Material)
	DrawPrimitive(part string, p mesh.Primitive, modelView mathutil.Mat4)
}

// Render walks the tree rooted at root for pose j, composing every part's
// transform onto s and issuing its shapes to d. The stack is left as it was
// found.
func Render(root *Part, j Joints, s *matstack.Stack, d Drawer) {
	renderPart(root, j, s, d)
}

func renderPart(p *Part, j Joints, s *matstack.Stack, d Drawer) {
	s.Push()

	if p.Pivot != nil {
		p.Pivot.Apply(s, j)
	}
	for _, op := range p.Frame {
		op.Apply(s)
	}
	if p.Material.Name != "" {
		d.SetMaterial(p.Material)
	}

	for _, sh := range p.Shapes {
		s.Push()
		for _, op := range sh.Ops {
			op.Apply(s)
		}
		d.DrawPrimitive(p.Name, sh.Prim, s.Top())
		_ = s.Pop() // paired with the Push above
	}

	for _, c := range p.Children {
		renderPart(c, j, s, d)
	}

	_ = s.Pop() // paired with the Push on entry
}
