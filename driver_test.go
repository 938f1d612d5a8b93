package mcstep

import (
	"math/rand"
	"testing"
)

func newTestEngine(Te *testing.T) *Engine {
	b := linearChainBox(Te)
	src := NewSource(rand.New(rand.NewSource(42)))
	e, err := NewEngine(b, src, BruteForceSweep{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return e
}

func TestNewEngineRejectsNilCollaborators(Te *testing.T) {
	b := linearChainBox(Te)
	src := NewSource(nil)
	if _, err := NewEngine(nil, src, BruteForceSweep{}, nil); err == nil {
		Te.Error("expected an error for a nil box")
	}
	if _, err := NewEngine(b, nil, BruteForceSweep{}, nil); err == nil {
		Te.Error("expected an error for a nil source")
	}
	if _, err := NewEngine(b, src, nil, nil); err == nil {
		Te.Error("expected an error for a nil sweep")
	}
}

func TestAcceptMoveAlwaysAcceptsDecrease(Te *testing.T) {
	e := newTestEngine(Te)
	if !e.AcceptMove(10, 5) {
		Te.Error("an energy decrease must always be accepted")
	}
}

func TestAcceptMoveDeterministicAtZeroTemperature(Te *testing.T) {
	b := linearChainBox(Te)
	b.KT = 1e-12
	e, err := NewEngine(b, NewSource(rand.New(rand.NewSource(1))), BruteForceSweep{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if e.AcceptMove(5, 10) {
		Te.Error("an energy increase at ~0 temperature should essentially never be accepted")
	}
}

func TestChooseMoleculeInRange(Te *testing.T) {
	e := newTestEngine(Te)
	for i := 0; i < 50; i++ {
		m := e.ChooseMolecule()
		if m != 0 {
			Te.Fatalf("ChooseMolecule = %d, want 0 (only one molecule)", m)
		}
	}
}

func TestChangeMoleculeThenRollbackRestoresBonds(Te *testing.T) {
	e := newTestEngine(Te)
	b := e.Box
	beforeBonds := append([]float64{}, b.BondLength...)
	beforeAngles := append([]float64{}, b.AngleSize...)

	e.ChangeMolecule(0)
	e.Rollback(0)

	for i, v := range beforeBonds {
		if b.BondLength[i] != v {
			Te.Errorf("BondLength[%d] = %v, want %v after rollback", i, b.BondLength[i], v)
		}
	}
	for i, v := range beforeAngles {
		if b.AngleSize[i] != v {
			Te.Errorf("AngleSize[%d] = %v, want %v after rollback", i, b.AngleSize[i], v)
		}
	}
}

func TestTuningAdjustsMaxBondDelta(Te *testing.T) {
	e := newTestEngine(Te)
	b := e.Box
	b.NumBondMoves = 100
	b.NumAcceptedBondMoves = 80 // ratio 0.8, well above target 0.4
	before := b.MaxBondDelta
	e.tune()
	if b.MaxBondDelta <= before {
		Te.Errorf("MaxBondDelta should have increased: before=%v after=%v", before, b.MaxBondDelta)
	}
	if b.NumBondMoves != 0 || b.NumAcceptedBondMoves != 0 {
		Te.Error("tune should reset the bond move counters")
	}
}

func TestDistinctIndicesAreDistinct(Te *testing.T) {
	src := NewSource(rand.New(rand.NewSource(3)))
	idx := distinctIndices(src, 10, 4)
	if len(idx) != 4 {
		Te.Fatalf("len(idx) = %d, want 4", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		if seen[i] {
			Te.Fatalf("duplicate index %d", i)
		}
		seen[i] = true
	}
}
