package topology

import "testing"

// A-B-C-D, a linear 4-atom chain: A=0 B=1 C=2 D=3.
func chainBonds() []BondSpec {
	return []BondSpec{{0, 1}, {1, 2}, {2, 3}}
}

func TestBuildExclusionTablesLinearChain(Te *testing.T) {
	exclude, fudge, err := BuildExclusionTables(4, chainBonds())
	if err != nil {
		Te.Fatal(err)
	}

	if ExcludedOrFudged(exclude, fudge, 0, 2) != 0.0 {
		Te.Error("A-C (1-3) should be excluded")
	}
	if ExcludedOrFudged(exclude, fudge, 0, 3) != 0.5 {
		Te.Error("A-D (1-4) should be fudged by 0.5")
	}
	if ExcludedOrFudged(exclude, fudge, 0, 1) != 0.0 {
		Te.Error("A-B (1-2) should be excluded")
	}
	if ExcludedOrFudged(exclude, fudge, 1, 3) != 0.0 {
		Te.Error("B-D (1-3) should be excluded, not fudged")
	}
}

func TestExcludedOrFudgedPanicsOnWrongOrder(Te *testing.T) {
	exclude, fudge, err := BuildExclusionTables(4, chainBonds())
	if err != nil {
		Te.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic when i >= j")
		}
	}()
	ExcludedOrFudged(exclude, fudge, 2, 0)
}

func TestRingBondsDetectsCycle(Te *testing.T) {
	// A 3-atom ring: A-B-C-A.
	bonds := []BondSpec{{0, 1}, {1, 2}, {2, 0}}
	rings, err := RingBonds(3, bonds)
	if err != nil {
		Te.Fatal(err)
	}
	for i, isRing := range rings {
		if !isRing {
			Te.Errorf("bond %d expected to be flagged as a ring bond", i)
		}
	}
}

func TestRingBondsLinearChainHasNone(Te *testing.T) {
	rings, err := RingBonds(4, chainBonds())
	if err != nil {
		Te.Fatal(err)
	}
	for i, isRing := range rings {
		if isRing {
			Te.Errorf("bond %d of a linear chain should not be a ring bond", i)
		}
	}
}

func TestBuildExclusionTablesRejectsOutOfRangeBond(Te *testing.T) {
	if _, _, err := BuildExclusionTables(2, []BondSpec{{0, 5}}); err == nil {
		Te.Error("expected an error for an out-of-range bond")
	}
}
