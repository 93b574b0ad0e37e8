package mathutil

// Principal axes, used as rotation axes by the kinematic tree.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// Epsilon is the default tolerance for matrix comparisons.
const Epsilon = 1e-9
