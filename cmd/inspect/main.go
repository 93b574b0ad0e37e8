package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"robot-renderer/internal/app"
	"robot-renderer/internal/config"
	"robot-renderer/internal/input"
	"robot-renderer/internal/mathutil"
	"robot-renderer/internal/robot"
)

func main() {
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	keys := flag.String("keys", "", "Key script applied before printing the pose")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	actions, err := input.ParseScript(*keys)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	a := app.New(cfg, time.Unix(0, 0).UTC())
	a.Apply(actions)

	d := a.Scene.Dims
	fmt.Printf("Body:     %.2f x %.2f x %.2f\n", d.BodyWidth, d.BodyLength, d.BodyDepth)
	fmt.Printf("Head:     %.2f x %.2f x %.2f\n", d.HeadWidth, d.HeadLength, d.HeadDepth)
	fmt.Printf("Cannon:   height %.2f, radius %.2f\n", d.CannonHeight, d.CannonRadius)
	fmt.Printf("UpperLeg: %.2f x %.2f\n", d.UpperLegLength, d.UpperLegWidth)
	fmt.Printf("LowerLeg: %.2f x %.2f\n", d.LowerLegLength, d.LowerLegWidth)
	fmt.Printf("Claw:     %.2f x %.2f\n", d.ClawLength, d.ClawWidth)

	j := a.Joints
	fmt.Printf("\nJoints: base=%.1f hip=%.1f knee=%.1f cannon=%.1f active=%s\n",
		j.Base, j.Hip, j.Knee, j.Cannon, j.Active)

	fmt.Println("\n--- Hierarchy ---")
	a.Scene.Figure.Walk(func(p *robot.Part, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Printf("%s%s", indent, p.Name)
		if p.Material.Name != "" {
			fmt.Printf(" [%s]", p.Material.Name)
		}
		fmt.Println()
		if pv := p.Pivot; pv != nil {
			src := "fixed"
			if pv.Driven {
				src = pv.Joint.String()
			}
			fmt.Printf("%s  pivot %s at %v about %v, %.1f°\n", indent, src, pv.Offset, pv.Axis, pv.AngleFor(j))
		}
		for _, op := range p.Frame {
			fmt.Printf("%s  frame %s\n", indent, op)
		}
		for _, sh := range p.Shapes {
			ops := make([]string, len(sh.Ops))
			for i, op := range sh.Ops {
				ops[i] = op.String()
			}
			fmt.Printf("%s  shape %s %s\n", indent, sh.Prim, strings.Join(ops, " "))
		}
	})

	fmt.Println("\n--- World pose ---")
	bones := robot.Flatten(a.Scene.Figure)
	worlds := robot.BuildWorldMatrices(bones, j, mathutil.Mat4Identity())
	for i, b := range bones {
		o := worlds[i].Translation()
		x := worlds[i].MulDir(mathutil.AxisX).Normalize()
		fmt.Printf("  %-16s origin (%7.2f, %7.2f, %7.2f)  x-axis (%5.2f, %5.2f, %5.2f)\n",
			b.Name, o[0], o[1], o[2], x[0], x[1], x[2])
	}
}
