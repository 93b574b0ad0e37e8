package robot

// Dimensions are the figure's measurements. Every value is a fixed ratio of
// BodyWidth, so changing the root scale rescales the whole figure.
type Dimensions struct {
	BodyWidth  float64
	BodyLength float64
	BodyDepth  float64

	HeadWidth  float64
	HeadLength float64
	HeadDepth  float64

	CannonHeight float64
	CannonRadius float64

	UpperLegLength float64
	UpperLegWidth  float64
	LowerLegLength float64
	LowerLegWidth  float64

	ClawWidth  float64
	ClawLength float64
}

// DefaultBodyWidth is the root scale of the reference figure.
const DefaultBodyWidth = 10.0

// NewDimensions derives all measurements from the root scale.
func NewDimensions(bodyWidth float64) Dimensions {
	d := Dimensions{
		BodyWidth:  bodyWidth,
		BodyLength: 0.2 * bodyWidth,
		BodyDepth:  0.6 * bodyWidth,
	}

	d.HeadWidth = d.BodyWidth
	d.HeadLength = d.BodyLength * 2
	d.HeadDepth = d.BodyDepth

	d.CannonHeight = d.BodyWidth * 0.7
	d.CannonRadius = d.BodyLength / 4

	d.UpperLegLength = d.BodyLength * 2
	d.UpperLegWidth = 0.15 * d.BodyWidth

	d.LowerLegLength = d.UpperLegLength * 1.2
	d.LowerLegWidth = d.UpperLegWidth * 0.9

	d.ClawWidth = 0.5 * d.LowerLegWidth
	d.ClawLength = 0.3 * d.LowerLegLength
	return d
}
