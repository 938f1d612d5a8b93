/*
 * geometry.go, part of gochem.
 */

package mcstep

import "math"

// MakePeriodic wraps a single-axis displacement into the minimum-image
// convention for that axis: a move of more than half the box length is
// assumed never to happen in one step. Applying it twice in a row to an
// already-wrapped value is a no-op.
func MakePeriodic(x float64, d int, L [3]float64) float64 {
	half := L[d] / 2
	switch {
	case x < -half:
		return x + L[d]
	case x > half:
		return x - L[d]
	default:
		return x
	}
}

// DistSquared returns the minimum-image squared distance between atoms a1
// and a2.
func (b *Box) DistSquared(a1, a2 int) float64 {
	var d2 float64
	for d := 0; d < 3; d++ {
		delta := MakePeriodic(b.Coords[d][a2]-b.Coords[d][a1], d, b.L)
		d2 += delta * delta
	}
	return d2
}

// TranslateAtom adds delta elementwise to atom a's coordinates.
func (b *Box) TranslateAtom(a int, delta [3]float64) {
	for d := 0; d < 3; d++ {
		b.Coords[d][a] += delta[d]
	}
}

// RotateAtom rotates atom a about pivot by rx degrees around X, then ry
// degrees around Y, then rz degrees around Z, in that fixed order -- the
// order is part of this package's observable behavior and must not be
// reordered by callers or future edits.
func (b *Box) RotateAtom(a, pivot int, rx, ry, rz float64) {
	p := [3]float64{b.Coords[0][pivot], b.Coords[1][pivot], b.Coords[2][pivot]}
	x := b.Coords[0][a] - p[0]
	y := b.Coords[1][a] - p[1]
	z := b.Coords[2][a] - p[2]

	y, z = rotateAxis(y, z, rx)
	z, x = rotateAxis(z, x, ry)
	x, y = rotateAxis(x, y, rz)

	b.Coords[0][a] = x + p[0]
	b.Coords[1][a] = y + p[1]
	b.Coords[2][a] = z + p[2]
}

// rotateAxis applies the package's fixed rotation convention to the pair
// (u, v), the two coordinates orthogonal to the rotation axis: u leads v
// in the right-handed ordering each of RotateAtom's three calls uses
// (y,z) for X, (z,x) for Y, (x,y) for Z.
func rotateAxis(u, v, degrees float64) (float64, float64) {
	theta := degrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	return u*c + v*s, v*c - u*s
}
