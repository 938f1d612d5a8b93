/*
 * bridge.go, part of gochem.
 */

package mcstep

import v3 "github.com/rmera/mcstep/v3"

// ToV3 converts the box's column-major [dim][atom] coordinate block into
// the row-major v3.Matrix the rest of the dependency pack's trajectory and
// geometry code expects. It is pure data marshalling for external
// collaborators (trajectory writers, plotting routines); the engine's own
// operations never call it.
func ToV3(b *Box) *v3.Matrix {
	m := v3.Zeros(b.NAtoms())
	for a := 0; a < b.NAtoms(); a++ {
		m.SetVec(a, [3]float64{b.Coords[0][a], b.Coords[1][a], b.Coords[2][a]})
	}
	return m
}

// FromV3 overwrites b's coordinates with the vectors held by m, which must
// have exactly b.NAtoms() rows.
func FromV3(b *Box, m *v3.Matrix) {
	if m.NVecs() != b.NAtoms() {
		panic("mcstep: FromV3 given a matrix with the wrong number of vectors")
	}
	for a := 0; a < b.NAtoms(); a++ {
		v := m.Vec(a)
		b.Coords[0][a] = v[0]
		b.Coords[1][a] = v[1]
		b.Coords[2][a] = v[2]
	}
}
