package raster

import (
	"math"

	"robot-renderer/internal/material"
	"robot-renderer/internal/mathutil"
)

// Light is a positional light. Position is in eye space.
type Light struct {
	Position mathutil.Vec3
	Ambient  [4]float64
	Diffuse  [4]float64
	Specular [4]float64
}

// LightConfig is the fixed-function lighting state.
type LightConfig struct {
	GlobalAmbient [4]float64
	Lights        []Light
}

// DefaultLightConfig returns the two white lights above and in front of the
// viewer, placed in eye space.
func DefaultLightConfig() LightConfig {
	light := func(x float64) Light {
		return Light{
			Position: mathutil.Vec3{x, 8, 8},
			Ambient:  [4]float64{0.2, 0.2, 0.2, 1},
			Diffuse:  [4]float64{1, 1, 1, 1},
			Specular: [4]float64{1, 1, 1, 1},
		}
	}
	return LightConfig{
		GlobalAmbient: [4]float64{0.2, 0.2, 0.2, 1},
		Lights:        []Light{light(-4), light(4)},
	}
}

// eyeDir is the non-local viewer direction used for the half vector.
var eyeDir = mathutil.Vec3{0, 0, 1}

// ComputeShade returns the lit RGBA color of a vertex at pos (eye space)
// with unit normal n. Components are clamped to [0, 1]; alpha is the
// material's diffuse alpha.
func (lc *LightConfig) ComputeShade(m *material.Material, pos, n mathutil.Vec3) [4]float64 {
	var c [4]float64
	for k := 0; k < 3; k++ {
		c[k] = lc.GlobalAmbient[k] * m.Ambient[k]
	}

	for i := range lc.Lights {
		l := &lc.Lights[i]
		dir := l.Position.Sub(pos).Normalize()
		ndl := n.Dot(dir)
		if ndl < 0 {
			ndl = 0
		}

		// Blinn-Phong specular, only for surfaces facing the light
		var spec float64
		if ndl > 0 {
			ndh := n.Dot(dir.Add(eyeDir).Normalize())
			if ndh > 0 {
				spec = math.Pow(ndh, m.Shininess)
			}
		}

		for k := 0; k < 3; k++ {
			c[k] += l.Ambient[k]*m.Ambient[k] + ndl*l.Diffuse[k]*m.Diffuse[k] + spec*l.Specular[k]*m.Specular[k]
		}
	}

	for k := 0; k < 3; k++ {
		c[k] = math.Min(math.Max(c[k], 0), 1)
	}
	c[3] = m.Diffuse[3]
	return c
}
