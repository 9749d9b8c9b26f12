package fixed

/*
Fixed-point multiplication on 32-bit integers. A value is stored as an int32
scaled by 2^point, where point is the number of fractional bits. Products are
formed in 64 bits and rescaled with an arithmetic right shift.
*/

import "math"

// Point is the number of fractional bits used for Pi.
const Point = 16

// Pi is π scaled by 2^Point and rounded to the nearest integer (0x3243F).
var Pi = PiFixed(Point)

// Multiply multiplies x and y, both scaled by 2^point, and returns the
// product at the same scale.
//
// By casting to int64 first, the product itself cannot overflow. The shift
// rounds toward negative infinity, so Multiply(-100, Pi, 16) is -315 rather
// than -314. A result outside the int32 range wraps.
func Multiply(x, y int32, point uint) int32 {
	return int32((int64(x) * int64(y)) >> point)
}

// MultiplyByPi returns number*π using the 16-bit Pi constant.
func MultiplyByPi(number int32) int32 {
	return Multiply(number, Pi, Point)
}

// PiFixed returns round(π × 2^point). Only point <= 29 fits in an int32.
func PiFixed(point uint) int32 {
	return int32(int64(math.Round(math.Ldexp(math.Pi, int(point)))))
}

// Float converts x, scaled by 2^point, to a float64.
func Float(x int32, point uint) float64 {
	return math.Ldexp(float64(x), -int(point))
}
