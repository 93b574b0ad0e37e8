// Package mesh tessellates the unit primitives the figure is built from:
// the solid cube, the open cylinder shell, the flat disk and the ground grid.
package mesh

import (
	"fmt"

	"robot-renderer/internal/mathutil"
)

// Kind identifies a primitive shape.
type Kind int

const (
	KindCube Kind = iota
	KindCylinder
	KindDisk
	KindGround
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindDisk:
		return "disk"
	case KindGround:
		return "ground"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Style selects filled polygons or a wireframe of the tessellation edges.
type Style int

const (
	Fill Style = iota
	Line
)

// Primitive describes one drawable shape in its own local frame. It is a
// comparable value so it can key the tessellation cache.
type Primitive struct {
	Kind  Kind
	Style Style

	// Cylinder: radius at z=0, radius at z=Height.
	Base, Top, Height float64

	// Disk: radii in the z=0 plane.
	Inner, Outer float64

	// Ground: edge length and cells per edge.
	Size  float64
	Cells int
}

// Cube is a unit cube centered on the origin.
func Cube() Primitive {
	return Primitive{Kind: KindCube}
}

// Cylinder is an open shell along +Z from z=0 to z=height.
func Cylinder(base, top, height float64) Primitive {
	return Primitive{Kind: KindCylinder, Base: base, Top: top, Height: height}
}

// Disk is an annulus in the z=0 plane facing +Z.
func Disk(inner, outer float64) Primitive {
	return Primitive{Kind: KindDisk, Inner: inner, Outer: outer}
}

// Ground is a flat square grid in the y=0 plane centered on the origin, facing +Y.
func Ground(size float64, cells int) Primitive {
	return Primitive{Kind: KindGround, Size: size, Cells: cells}
}

// Wire returns p drawn as lines.
func (p Primitive) Wire() Primitive {
	p.Style = Line
	return p
}

func (p Primitive) String() string {
	var s string
	switch p.Kind {
	case KindCylinder:
		s = fmt.Sprintf("cylinder(%g, %g, %g)", p.Base, p.Top, p.Height)
	case KindDisk:
		s = fmt.Sprintf("disk(%g, %g)", p.Inner, p.Outer)
	case KindGround:
		s = fmt.Sprintf("ground(%g, %d)", p.Size, p.Cells)
	default:
		s = p.Kind.String()
	}
	if p.Style == Line {
		s += " wire"
	}
	return s
}

// Mesh holds tessellated geometry: per-vertex positions and normals, and
// index lists for filled triangles and wireframe segments.
type Mesh struct {
	Verts   []mathutil.Vec3
	Normals []mathutil.Vec3
	Tris    [][3]int
	Lines   [][2]int
}
