// SPDX-License-Identifier: EPL-2.0

package utils

// Float is the set of sample types the helpers operate on.
type Float interface {
	~float32 | ~float64
}

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at x, the fractional position between y1 (x=0) and y2 (x=1).
func CubicInterpolate[T Float](y0, y1, y2, y3, x T) T {
	a := (3*(y1-y2) + y3 - y0) / 2
	b := y0 - (5*y1)/2 + 2*y2 - y3/2
	c := (y2 - y0) / 2

	// Horner form of a*x^3 + b*x^2 + c*x + y1.
	return ((a*x+b)*x+c)*x + y1
}
