package mcstep

import (
	"math"
	"testing"
)

func TestBondAngleEnergyZeroAtEquilibrium(Te *testing.T) {
	b := linearChainBox(Te)
	if got := b.BondEnergy(0); got != 0 {
		Te.Errorf("BondEnergy at equilibrium = %v, want 0", got)
	}
	if got := b.AngleEnergy(0); got != 0 {
		Te.Errorf("AngleEnergy at equilibrium = %v, want 0", got)
	}
}

func TestIntraEnergySumsDecomposition(Te *testing.T) {
	b := linearChainBox(Te)
	bond, angle, nonbonded := b.IntraEnergyDecomposed(0)
	total := b.IntraEnergy(0)
	if math.Abs((bond+angle+nonbonded)-total) > 1e-12 {
		Te.Errorf("decomposed sum %v != IntraEnergy %v", bond+angle+nonbonded, total)
	}
}

func TestIntraEnergyTranslationInvariant(Te *testing.T) {
	b := linearChainBox(Te)
	before := b.IntraEnergy(0)
	for i := 0; i < b.MolLen[0]; i++ {
		b.Coords[0][i] += 0.3
		b.Coords[1][i] -= 0.2
		b.Coords[2][i] += 0.1
	}
	after := b.IntraEnergy(0)
	if math.Abs(before-after) > 1e-9 {
		Te.Errorf("translation changed intra energy: %v vs %v", before, after)
	}
}

func TestFudgeFactorClassification(Te *testing.T) {
	if fudgeFactor([]int{2}, []int{5}, 2) != 0 {
		Te.Error("excluded pair should score 0")
	}
	if fudgeFactor([]int{2}, []int{5}, 5) != 0.5 {
		Te.Error("fudged pair should score 0.5")
	}
	if fudgeFactor([]int{2}, []int{5}, 9) != 1 {
		Te.Error("unrelated pair should score 1")
	}
}
