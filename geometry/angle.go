package geometry

import "math"

// Angle is an angle in radians.
//
// Angles start at the positive X axis and increase clockwise on screen,
// because the Y axis points down.
type Angle float32

// Degrees creates an angle from degrees.
func Degrees(deg float32) Angle {
	return Angle(float64(deg) * math.Pi / 180)
}

// Radians creates an angle from radians.
func Radians(rad float32) Angle {
	return Angle(rad)
}

// ToDegrees returns the angle in degrees.
func (a Angle) ToDegrees() float32 {
	return float32(float64(a) * 180 / math.Pi)
}

// ToRadians returns the angle in radians.
func (a Angle) ToRadians() float32 {
	return float32(a)
}

// Normalize returns the angle wrapped into [0, 2π).
func (a Angle) Normalize() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle(r)
}

// IsFullTurn reports whether the magnitude of the angle is at least 360°.
// The comparison tolerates the rounding of Degrees(360).
func (a Angle) IsFullTurn() bool {
	return math.Abs(float64(a)) >= 2*math.Pi-1e-6
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}
