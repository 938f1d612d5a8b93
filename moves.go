/*
 * moves.go, part of gochem.
 */

package mcstep

import (
	"math"
	"sync"
)

// parallelAtomThreshold is the molecule size at or above which the
// rigid-body move fans the per-atom transform out across goroutines
// instead of running the loop inline. Below it, goroutine setup would
// cost more than the loop it replaces. Rollback always copies inline.
const parallelAtomThreshold = 64

func vecSub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func vecCross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func vecDot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func vecNorm(a [3]float64) float64 {
	return math.Sqrt(vecDot(a, a))
}

func vecScale(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}

func vecAdd(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (b *Box) atomVec(global int) [3]float64 {
	return [3]float64{b.Coords[0][global], b.Coords[1][global], b.Coords[2][global]}
}

func (b *Box) setAtomVec(global int, v [3]float64) {
	b.Coords[0][global] = v[0]
	b.Coords[1][global] = v[1]
	b.Coords[2][global] = v[2]
}

// StretchBond perturbs the stretch offset of molecule m's bondLocal-th
// bond by delta, moving every atom on either side of the bond by delta/2
// along the bond's unit vector. If the bond lies on a ring (the
// union-find partition can't separate its two endpoints), the call is a
// documented no-op: nothing moves and BondLength is unchanged.
func (b *Box) StretchBond(m, bondLocal int, delta float64) {
	uf, side1, side2 := b.bondPartition(m, bondLocal)
	if side1 == side2 {
		return
	}
	start := b.MolStart[m]
	bondIdx := b.MolBondStart[m] + bondLocal
	e1, e2 := b.BondA1[bondIdx], b.BondA2[bondIdx]

	dir := vecSub(b.atomVec(start+e2), b.atomVec(start+e1))
	dir = vecScale(dir, 1/vecNorm(dir))
	half := vecScale(dir, delta/2)

	molLen := b.MolLen[m]
	for i := 0; i < molLen; i++ {
		global := start + i
		if uf.find(i) == side2 {
			b.setAtomVec(global, vecAdd(b.atomVec(global), half))
		} else {
			b.setAtomVec(global, vecSub(b.atomVec(global), half))
		}
	}
	b.BondLength[bondIdx] += delta
}

// ExpandAngle perturbs molecule m's angleLocal-th angle by deltaDegrees,
// rotating the atoms on the e1 side one way and the atoms on the e2 side
// the other, about the axis normal to the angle's plane through the
// vertex atom. A ring angle (union-find can't separate e1 from e2) is a
// no-op, exactly like StretchBond.
func (b *Box) ExpandAngle(m, angleLocal int, deltaDegrees float64) {
	angleIdx := b.MolAngleStart[m] + angleLocal
	e1, mid, e2 := b.AngleA1[angleIdx], b.AngleMid[angleIdx], b.AngleA2[angleIdx]

	uf, side1, side2 := b.anglePartition(m, mid, e1, e2)
	if side1 == side2 {
		return
	}
	start := b.MolStart[m]
	midV := b.atomVec(start + mid)
	axis := vecCross(vecSub(midV, b.atomVec(start+e1)), vecSub(midV, b.atomVec(start+e2)))
	axis = vecScale(axis, 1/vecNorm(axis))

	molLen := b.MolLen[m]
	for i := 0; i < molLen; i++ {
		var theta float64
		switch uf.find(i) {
		case side1:
			theta = -deltaDegrees * math.Pi / 180
		case side2:
			theta = deltaDegrees * math.Pi / 180
		default:
			continue
		}
		global := start + i
		p := vecSub(b.atomVec(global), midV)
		rotated := rodrigues(p, axis, theta)
		b.setAtomVec(global, vecAdd(rotated, midV))
	}
	b.AngleSize[angleIdx] += deltaDegrees
}

// rodrigues rotates vector p by theta radians about the unit axis n
// (Rodrigues' rotation formula).
func rodrigues(p, n [3]float64, theta float64) [3]float64 {
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	term1 := vecScale(n, vecDot(n, p)*(1-cosT))
	term2 := vecScale(p, cosT)
	term3 := vecScale(vecCross(n, p), sinT)
	return vecAdd(vecAdd(term1, term2), term3)
}

// RigidBodyMove samples a translation and a rotation from src, snapshots
// molecule m's coordinates for rollback, applies the rotation (about a
// randomly chosen vertex atom of m) and translation to every other atom,
// translates the vertex atom, and finally re-wraps m into the box.
func (b *Box) RigidBodyMove(m int, src Source) {
	b.snapshotCoords(m)

	delta := [3]float64{
		src.Uniform(-b.MaxTranslate, b.MaxTranslate),
		src.Uniform(-b.MaxTranslate, b.MaxTranslate),
		src.Uniform(-b.MaxTranslate, b.MaxTranslate),
	}
	rx := src.Uniform(-b.MaxRotate, b.MaxRotate)
	ry := src.Uniform(-b.MaxRotate, b.MaxRotate)
	rz := src.Uniform(-b.MaxRotate, b.MaxRotate)

	start, molLen := b.MolStart[m], b.MolLen[m]
	vertex := UniformInt(src, 0, molLen)
	pivot := start + vertex

	transform := func(local int) {
		if local == vertex {
			return
		}
		global := start + local
		b.RotateAtom(global, pivot, rx, ry, rz)
		b.TranslateAtom(global, delta)
	}

	if molLen >= parallelAtomThreshold {
		var wg sync.WaitGroup
		for i := 0; i < molLen; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				transform(i)
			}()
		}
		wg.Wait()
	} else {
		for i := 0; i < molLen; i++ {
			transform(i)
		}
	}
	b.TranslateAtom(pivot, delta)

	b.keepMoleculeInBox(m)
}

// keepMoleculeInBox re-centers molecule m by at most one box length per
// axis, based on the position of its primary atom: this is the sequence
// point that must run only after every atom's rigid-body transform above
// has completed.
func (b *Box) keepMoleculeInBox(m int) {
	start, molLen := b.MolStart[m], b.MolLen[m]
	primary := b.PrimaryAtom[m]
	for d := 0; d < 3; d++ {
		x := b.Coords[d][primary]
		var shift float64
		switch {
		case x < 0:
			shift = b.L[d]
		case x > b.L[d]:
			shift = -b.L[d]
		default:
			continue
		}
		for i := 0; i < molLen; i++ {
			b.Coords[d][start+i] += shift
		}
	}
}
