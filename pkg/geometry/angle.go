package geometry

import "math"

// NormalizeAngle wraps an angle in degrees into [0, 360)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// SnapToCardinal rounds an angle (degrees) to the nearest multiple of 90 if it
// lies within the given tolerance, otherwise the angle is returned unchanged.
func SnapToCardinal(angle, tol float64) float64 {
	nearest := math.Round(angle/90) * 90
	if math.Abs(angle-nearest) <= tol {
		return NormalizeAngle(nearest)
	}
	return angle
}

// AngleDelta180 returns the smallest difference between two direction angles
// (degrees) treating opposite directions as equal. The result is in [0, 90].
func AngleDelta180(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 180))
	if d > 90 {
		d = 180 - d
	}
	return d
}

// IsParallel reports whether two direction angles agree within tol degrees,
// modulo 180
func IsParallel(a, b, tol float64) bool {
	return AngleDelta180(a, b) <= tol
}

// IsPerpendicular reports whether two direction angles differ by 90 degrees
// within tol degrees, modulo 180
func IsPerpendicular(a, b, tol float64) bool {
	return math.Abs(AngleDelta180(a, b)-90) <= tol
}
