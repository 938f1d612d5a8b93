package mcstep

import (
	"math"
	"testing"
)

func TestBruteForceSweepSkipsSelf(Te *testing.T) {
	b := linearChainBox(Te)
	if got := (BruteForceSweep{}).IntermolecularContribution(b, 0, 0); got != 0 {
		Te.Errorf("single-molecule system should have 0 intermolecular energy, got %v", got)
	}
}

func TestCalcSystemEnergyDecomposedMatchesTotal(Te *testing.T) {
	b := linearChainBox(Te)
	total, bond, angle, nonbonded, inter := b.CalcSystemEnergyDecomposed(1, 2, BruteForceSweep{})
	want := 1 + 2 + bond + angle + nonbonded + inter
	if math.Abs(total-want) > 1e-9 {
		Te.Errorf("decomposed total %v != recombined %v", total, want)
	}
	plain := b.CalcSystemEnergy(1, 2, BruteForceSweep{})
	if math.Abs(total-plain) > 1e-9 {
		Te.Errorf("CalcSystemEnergyDecomposed total %v != CalcSystemEnergy %v", total, plain)
	}
}
