package mcstep

import "testing"

// ringBox builds a 3-atom ring A-B-C-A as a single molecule: 3 bonds, no
// angles, to exercise the union-find ring detection in isolation.
func ringBox(Te *testing.T) *Box {
	b := &Box{
		Coords: [3][]float64{
			{0, 1, 0.5},
			{0, 0, 1},
			{0, 0, 0},
		},
		Sigma: []float64{1, 1, 1}, Epsilon: []float64{1, 1, 1}, Charge: []float64{0, 0, 0},
		MolStart: []int{0}, MolLen: []int{3}, MolType: []int{0},
		MolBondStart: []int{0}, MolBondCount: []int{3},
		MolAngleStart: []int{0}, MolAngleCount: []int{0},
		PrimaryAtom: []int{0},
		BondA1:      []int{0, 1, 2}, BondA2: []int{1, 2, 0},
		BondEq: []float64{1, 1, 1}, BondK: []float64{100, 100, 100},
		BondVariable: []bool{true, true, true},
		BondLength:   []float64{1, 1, 1},
		ExcludeAtoms: [][][]int{{{1, 2}, {0, 2}, {0, 1}}},
		FudgeAtoms:   [][][]int{{{}, {}, {}}},
	}
	box, err := NewBox(b)
	if err != nil {
		Te.Fatal(err)
	}
	return box
}

func TestBondPartitionSplitsLinearChain(Te *testing.T) {
	b := linearChainBox(Te)
	_, side1, side2 := b.bondPartition(0, 0) // bond A-B (local 0)
	if side1 == side2 {
		Te.Error("A-B bond of a linear chain should split the molecule")
	}
}

func TestBondPartitionDetectsRing(Te *testing.T) {
	b := ringBox(Te)
	_, side1, side2 := b.bondPartition(0, 0)
	if side1 != side2 {
		Te.Error("a bond on a 3-atom ring should have coincident union-find roots")
	}
}

func TestAnglePartitionSplitsLinearChain(Te *testing.T) {
	b := linearChainBox(Te)
	_, side1, side2 := b.anglePartition(0, 1, 0, 2) // mid=B, e1=A, e2=C
	if side1 == side2 {
		Te.Error("the angle of a linear A-B-C chain should split A from C")
	}
}
