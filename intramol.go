/*
 * intramol.go, part of gochem.
 */

package mcstep

// BondEnergy returns the sum of K*(eq-length)^2 over molecule m's variable
// bonds.
func (b *Box) BondEnergy(m int) float64 {
	start, count := b.MolBondStart[m], b.MolBondCount[m]
	var e float64
	for i := start; i < start+count; i++ {
		if !b.BondVariable[i] {
			continue
		}
		diff := b.BondEq[i] - b.BondLength[i]
		e += b.BondK[i] * diff * diff
	}
	return e
}

// AngleEnergy returns the sum of K*(eq-size)^2 over molecule m's variable
// angles.
func (b *Box) AngleEnergy(m int) float64 {
	start, count := b.MolAngleStart[m], b.MolAngleCount[m]
	var e float64
	for i := start; i < start+count; i++ {
		if !b.AngleVariable[i] {
			continue
		}
		diff := b.AngleEq[i] - b.AngleSize[i]
		e += b.AngleK[i] * diff * diff
	}
	return e
}

// IntraNonBondedEnergy sums fudge-scaled LJ+Coulomb over every unordered
// pair of molecule m's atoms, using the exclusion/fudge tables for m's
// molecule type. The lookup is keyed on the lower local index, so the
// inner loop is always run with i<j.
func (b *Box) IntraNonBondedEnergy(m int) float64 {
	start, molLen := b.MolStart[m], b.MolLen[m]
	t := b.MolType[m]
	exclude, fudge := b.ExcludeAtoms[t], b.FudgeAtoms[t]
	var e float64
	for i := 0; i < molLen; i++ {
		for j := i + 1; j < molLen; j++ {
			scale := fudgeFactor(exclude[i], fudge[i], j)
			if scale == 0 {
				continue
			}
			e += scale * b.PairEnergy(start+i, start+j)
		}
	}
	return e
}

func fudgeFactor(exclude, fudge []int, j int) float64 {
	for _, v := range exclude {
		if v == j {
			return 0
		}
	}
	for _, v := range fudge {
		if v == j {
			return 0.5
		}
	}
	return 1
}

// IntraEnergy returns molecule m's total intramolecular energy: bonds,
// angles, and fudge-scaled nonbonded pairs.
func (b *Box) IntraEnergy(m int) float64 {
	return b.BondEnergy(m) + b.AngleEnergy(m) + b.IntraNonBondedEnergy(m)
}

// IntraEnergyDecomposed returns the same total as IntraEnergy, broken out
// into its three contributions for diagnostics.
func (b *Box) IntraEnergyDecomposed(m int) (bond, angle, nonbonded float64) {
	bond = b.BondEnergy(m)
	angle = b.AngleEnergy(m)
	nonbonded = b.IntraNonBondedEnergy(m)
	return
}
