// Package material holds the fixed-function surface parameters of each
// visually distinct part group.
package material

// Material is an ambient/diffuse/specular/shininess quadruple. Colors are RGBA.
type Material struct {
	Name      string
	Ambient   [4]float64
	Diffuse   [4]float64
	Specular  [4]float64
	Shininess float64
}

// Part group materials. Static; never mutated.
var (
	Body = Material{
		Name:      "body",
		Ambient:   [4]float64{0, 0, 0, 1},
		Diffuse:   [4]float64{0.1, 0.35, 0.1, 1},
		Specular:  [4]float64{0.45, 0.55, 0.45, 1},
		Shininess: 32,
	}

	Leg = Material{
		Name:      "leg",
		Ambient:   [4]float64{0.0215, 0.1745, 0.0215, 0.55},
		Diffuse:   [4]float64{0.5, 0, 0, 1},
		Specular:  [4]float64{0.7, 0.6, 0.6, 1},
		Shininess: 32,
	}

	Gun = Material{
		Name:      "gun",
		Ambient:   [4]float64{0, 0, 0, 1},
		Diffuse:   [4]float64{0.01, 0, 0.01, 0.01},
		Specular:  [4]float64{0.5, 0.5, 0.5, 1},
		Shininess: 100,
	}

	LowerBody = Material{
		Name:      "lowerbody",
		Ambient:   [4]float64{0.25, 0.25, 0.25, 1},
		Diffuse:   [4]float64{0.4, 0.4, 0.4, 1},
		Specular:  [4]float64{0.774597, 0.774597, 0.774597, 1},
		Shininess: 76.8,
	}

	Ground = Material{
		Name:      "ground",
		Ambient:   [4]float64{0, 0.05, 0, 1},
		Diffuse:   [4]float64{0.4, 0.8, 0.4, 1},
		Specular:  [4]float64{0.04, 0.04, 0.04, 1},
		Shininess: 0.2,
	}
)
