/*
 * systemenergy.go, part of gochem.
 */

package mcstep

// PairSweep computes the intermolecular contribution of molecule m against
// every molecule from index startFrom onward, honoring whatever cutoff the
// implementation uses. It is supplied by a neighbour-list or cell-list
// subsystem external to this package; BruteForceSweep is the default,
// non-performance-critical implementation used when nothing better is
// wired in.
type PairSweep interface {
	IntermolecularContribution(box *Box, m, startFrom int) float64
}

// BruteForceSweep sums pair energy over every atom of m against every atom
// of every other molecule from startFrom onward, with no cutoff. It exists
// so CalcSystemEnergy is runnable and testable without a real neighbour
// list; callers with large systems should supply their own PairSweep.
type BruteForceSweep struct{}

func (BruteForceSweep) IntermolecularContribution(box *Box, m, startFrom int) float64 {
	mStart, mLen := box.MolStart[m], box.MolLen[m]
	var e float64
	for other := startFrom; other < box.NMol(); other++ {
		if other == m {
			continue
		}
		oStart, oLen := box.MolStart[other], box.MolLen[other]
		for i := 0; i < mLen; i++ {
			for j := 0; j < oLen; j++ {
				e += box.PairEnergy(mStart+i, oStart+j)
			}
		}
	}
	return e
}

// CalcSystemEnergy returns the total system energy: the given subtotals
// (already-computed long-range LJ/Coulomb corrections, if any, supplied by
// the caller) plus, for every molecule, its intermolecular contribution
// via sweep and its intramolecular energy.
func (b *Box) CalcSystemEnergy(subLJ, subCharge float64, sweep PairSweep) float64 {
	total := subLJ + subCharge
	for m := 0; m < b.NMol(); m++ {
		total += sweep.IntermolecularContribution(b, m, m)
		total += b.IntraEnergy(m)
	}
	return total
}

// CalcSystemEnergyDecomposed returns the same total as CalcSystemEnergy,
// plus the bond/angle/nonbonded-intramolecular/intermolecular
// contributions aggregated separately, for diagnostics.
func (b *Box) CalcSystemEnergyDecomposed(subLJ, subCharge float64, sweep PairSweep) (total, bondE, angleE, nonBondE, interE float64) {
	total = subLJ + subCharge
	for m := 0; m < b.NMol(); m++ {
		inter := sweep.IntermolecularContribution(b, m, m)
		bond, angle, nonbonded := b.IntraEnergyDecomposed(m)
		bondE += bond
		angleE += angle
		nonBondE += nonbonded
		interE += inter
		total += inter + bond + angle + nonbonded
	}
	return
}
