package math

import "math"

// Pi as float32.
const Pi = float32(math.Pi)

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / Pi
}

func sincos(angle float32) (s, c float32) {
	sf, cf := math.Sincos(float64(angle))
	return float32(sf), float32(cf)
}

// Cos returns the cosine of a float32 angle in radians.
func Cos(angle float32) float32 {
	return float32(math.Cos(float64(angle)))
}

// Sin returns the sine of a float32 angle in radians.
func Sin(angle float32) float32 {
	return float32(math.Sin(float64(angle)))
}
