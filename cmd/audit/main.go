package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"robot-renderer/internal/config"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/matstack"
	"robot-renderer/internal/mesh"
	"robot-renderer/internal/robot"
)

// Sweeps every joint through a range of angles and checks that the stack
// traversal and the parent-chained pose agree on every draw call.
func main() {
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	step := flag.Float64("step", 45, "Sweep step in degrees")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if *step <= 0 {
		*step = 45
	}

	fig := robot.NewFigure(robot.NewDimensions(cfg.RootScale()))
	bones := robot.Flatten(fig)

	// Stats
	poses := 0
	calls := 0
	mismatches := 0
	unbalanced := 0
	prims := map[mesh.Primitive]int{}

	for _, id := range []robot.JointID{robot.JointBase, robot.JointHip, robot.JointKnee, robot.JointCannon} {
		for deg := -180.0; deg <= 180; deg += *step {
			j := robot.DefaultJoints()
			switch id {
			case robot.JointBase:
				j.Base = deg
			case robot.JointHip:
				j.Hip = deg
			case robot.JointKnee:
				j.Knee = deg
			case robot.JointCannon:
				j.Cannon = deg
			}
			poses++

			var rec robot.Recorder
			s := matstack.New(mathutil.Mat4Identity())
			robot.Render(fig, j, s, &rec)
			if s.Depth() != 1 {
				unbalanced++
				fmt.Printf("  %s=%.0f: stack depth %d after traversal\n", id, deg, s.Depth())
			}

			worlds := robot.BuildWorldMatrices(bones, j, mathutil.Mat4Identity())
			for i, b := range bones {
				got := rec.ByPart(b.Name)
				if len(got) != len(b.Part.Shapes) {
					mismatches++
					fmt.Printf("  %s=%.0f: %s drew %d shapes, want %d\n", id, deg, b.Name, len(got), len(b.Part.Shapes))
					continue
				}
				for k, sh := range b.Part.Shapes {
					want := worlds[i]
					for _, op := range sh.Ops {
						want = mathutil.Mat4Mul(want, op.Matrix())
					}
					calls++
					prims[sh.Prim]++
					if !want.ApproxEqual(got[k].ModelView, 1e-9) {
						mismatches++
						fmt.Printf("  %s=%.0f: %s shape %d (%s) off pose\n", id, deg, b.Name, k, sh.Prim)
					}
				}
			}
		}
	}

	fmt.Printf("Parts: %d, Poses: %d, Draw calls: %d\n", len(bones), poses, calls)
	fmt.Printf("Stack imbalances: %d, Pose mismatches: %d\n", unbalanced, mismatches)

	// Tessellation cost per distinct primitive
	fmt.Printf("\n--- Primitives (slices=%d stacks=%d) ---\n", cfg.Slices, cfg.Stacks)
	cache := mesh.NewCache(cfg.Slices, cfg.Stacks)
	keys := make([]mesh.Primitive, 0, len(prims))
	for p := range prims {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].String() < keys[b].String() })
	for _, p := range keys {
		m := cache.Resolve(p)
		fmt.Printf("  %-32s verts=%6d tris=%6d lines=%6d\n", p, len(m.Verts), len(m.Tris), len(m.Lines))
	}
	fmt.Printf("Distinct primitives: %d\n", cache.Len())

	if unbalanced > 0 || mismatches > 0 {
		os.Exit(1)
	}
}
