package mesh

import (
	"math"

	"robot-renderer/internal/mathutil"
)

// Tessellate builds the mesh for p. slices subdivide around the Z axis of
// cylinders and disks; stacks subdivide along the cylinder height and
// across the disk radius. Filled primitives get Tris, wire ones get Lines.
func Tessellate(p Primitive, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 1 {
		stacks = 1
	}

	var m *Mesh
	switch p.Kind {
	case KindCylinder:
		m = cylinder(p.Base, p.Top, p.Height, slices, stacks)
	case KindDisk:
		m = disk(p.Inner, p.Outer, slices, stacks)
	case KindGround:
		m = ground(p.Size, p.Cells)
	default:
		m = cube()
	}

	if p.Style == Line {
		m.Tris = nil
	} else {
		m.Lines = nil
	}
	return m
}

// cube has four vertices per face so each face keeps its own normal.
func cube() *Mesh {
	faces := []struct {
		n    mathutil.Vec3
		u, v mathutil.Vec3
	}{
		{mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 0, 1}},
		{mathutil.Vec3{-1, 0, 0}, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 1, 0}},
		{mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 0, 1}, mathutil.Vec3{1, 0, 0}},
		{mathutil.Vec3{0, -1, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 0, 1}},
		{mathutil.Vec3{0, 0, 1}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}},
		{mathutil.Vec3{0, 0, -1}, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{1, 0, 0}},
	}

	m := &Mesh{}
	for _, f := range faces {
		c := f.n.Scale(0.5)
		base := len(m.Verts)
		for _, corner := range [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}} {
			m.Verts = append(m.Verts, c.Add(f.u.Scale(corner[0])).Add(f.v.Scale(corner[1])))
			m.Normals = append(m.Normals, f.n)
		}
		m.Tris = append(m.Tris, [3]int{base, base + 1, base + 2}, [3]int{base, base + 2, base + 3})
		m.Lines = append(m.Lines,
			[2]int{base, base + 1}, [2]int{base + 1, base + 2},
			[2]int{base + 2, base + 3}, [2]int{base + 3, base})
	}
	return m
}

// cylinder follows the quadric convention: vertex i of a ring sits at
// (r·sin θ, r·cos θ, z), and the shell normal tilts by the radius slope.
func cylinder(base, top, height float64, slices, stacks int) *Mesh {
	delta := base - top
	length := math.Sqrt(delta*delta + height*height)
	zNormal, xyRatio := 0.0, 1.0
	if length > 0 {
		zNormal = delta / length
		xyRatio = height / length
	}

	m := &Mesh{}
	for j := 0; j <= stacks; j++ {
		t := float64(j) / float64(stacks)
		r := base - delta*t
		z := height * t
		for i := 0; i <= slices; i++ {
			sin, cos := ringAngle(i, slices)
			m.Verts = append(m.Verts, mathutil.Vec3{r * sin, r * cos, z})
			m.Normals = append(m.Normals, mathutil.Vec3{sin * xyRatio, cos * xyRatio, zNormal})
		}
	}
	grid(m, slices, stacks)
	return m
}

// disk rings run from inner to outer radius.
func disk(inner, outer float64, slices, loops int) *Mesh {
	m := &Mesh{}
	up := mathutil.Vec3{0, 0, 1}
	for j := 0; j <= loops; j++ {
		r := inner + (outer-inner)*float64(j)/float64(loops)
		for i := 0; i <= slices; i++ {
			sin, cos := ringAngle(i, slices)
			m.Verts = append(m.Verts, mathutil.Vec3{r * sin, r * cos, 0})
			m.Normals = append(m.Normals, up)
		}
	}
	grid(m, slices, loops)
	return m
}

// ground spans [-size/2, size/2] on X and Z.
func ground(size float64, cells int) *Mesh {
	if cells < 1 {
		cells = 1
	}
	m := &Mesh{}
	up := mathutil.Vec3{0, 1, 0}
	step := size / float64(cells)
	origin := mathutil.Vec3{-size / 2, 0, size / 2}
	for j := 0; j <= cells; j++ {
		for i := 0; i <= cells; i++ {
			m.Verts = append(m.Verts, origin.Add(mathutil.Vec3{float64(i) * step, 0, -float64(j) * step}))
			m.Normals = append(m.Normals, up)
		}
	}
	grid(m, cells, cells)
	return m
}

// grid fills triangles and edge segments for a (rows+1)×(cols+1) vertex
// lattice laid out row by row.
func grid(m *Mesh, cols, rows int) {
	stride := cols + 1
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			a := j*stride + i
			if i < cols {
				m.Lines = append(m.Lines, [2]int{a, a + 1})
			}
			if j < rows {
				m.Lines = append(m.Lines, [2]int{a, a + stride})
			}
			if i < cols && j < rows {
				b, c, d := a+1, a+stride+1, a+stride
				m.Tris = append(m.Tris, [3]int{a, b, c}, [3]int{a, c, d})
			}
		}
	}
}

func ringAngle(i, slices int) (sin, cos float64) {
	if i == slices {
		i = 0
	}
	return math.Sincos(2 * math.Pi * float64(i) / float64(slices))
}
