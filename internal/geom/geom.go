// Package geom provides the handful of 3D vector primitives the topology
// pipeline needs: point subtraction, cross/dot products, normalization and
// the triangle angle used by the handedness filter.
package geom

import "math"

// Point is a position or free vector in 3D space.
type Point struct {
	X, Y, Z float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalized returns p scaled to unit length. A zero vector is returned
// unchanged rather than producing NaNs.
func (p Point) Normalized() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Angle returns the angle, in radians, at the vertex p2 formed by the rays
// p2->p0 and p2->p1.
func Angle(p0, p1, p2 Point) float64 {
	v0 := p0.Sub(p2)
	v1 := p1.Sub(p2)
	denom := v0.Norm() * v1.Norm()
	if denom == 0 {
		return 0
	}
	cos := v0.Dot(v1) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
