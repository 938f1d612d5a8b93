/*
 * driver.go, part of gochem.
 */

package mcstep

import "math"

// Engine bundles a Box with the collaborators the step driver needs: a
// random Source, a PairSweep for intermolecular energy, and an optional
// StepLog. It replaces the process-wide singleton box of the original
// implementation -- every operation is a method on an *Engine (or takes a
// *Box explicitly), so a process may run several simulations at once, one
// Engine each.
type Engine struct {
	Box   *Box
	Src   Source
	Sweep PairSweep
	Log   StepLog

	enabledBond, enabledAngle, enabledDihedral bool
	tuningEnabled                              bool
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithMoveTypes turns individual internal-coordinate move types on or off.
// Dihedral moves are reserved plumbing (see Box.DihedralCount) and have no
// move logic behind them even when enabled here; enabling them only
// affects the numMoveTypes tuning arithmetic.
func WithMoveTypes(bond, angle, dihedral bool) EngineOption {
	return func(e *Engine) {
		e.enabledBond, e.enabledAngle, e.enabledDihedral = bond, angle, dihedral
	}
}

// WithTuning turns step-size tuning on or off.
func WithTuning(enabled bool) EngineOption {
	return func(e *Engine) { e.tuningEnabled = enabled }
}

// NewEngine constructs a bound Engine. box, src and sweep must be
// non-nil; log may be nil, in which case a NullStepLog is used. By
// default both bond and angle moves and tuning are enabled.
func NewEngine(box *Box, src Source, sweep PairSweep, log StepLog, opts ...EngineOption) (*Engine, Error) {
	if box == nil || src == nil || sweep == nil {
		return nil, newError("NewEngine", "box, src and sweep must all be non-nil")
	}
	if log == nil {
		log = NullStepLog{}
	}
	e := &Engine{
		Box: box, Src: src, Sweep: sweep, Log: log,
		enabledBond: true, enabledAngle: true, tuningEnabled: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ChooseMolecule returns a uniformly random molecule index.
func (e *Engine) ChooseMolecule() int {
	return UniformInt(e.Src, 0, e.Box.NMol())
}

// AcceptMove is the Metropolis criterion: always accept an energy
// decrease, otherwise accept with probability exp(-(Enew-Eold)/kT). The
// branch ordering keeps the exponent argument <= 0, avoiding overflow.
func (e *Engine) AcceptMove(eOld, eNew float64) bool {
	if eNew < eOld {
		return true
	}
	return math.Exp(-(eNew-eOld)/e.Box.KT) >= e.Src.Uniform(0, 1)
}

// Rollback restores molecule m's pre-move state.
func (e *Engine) Rollback(m int) {
	e.Box.Rollback(m)
}

// IntraEnergy, BondEnergy, AngleEnergy and CalcSystemEnergy are pure reads
// forwarded to the underlying Box for convenience on the Engine handle.
func (e *Engine) IntraEnergy(m int) float64 { return e.Box.IntraEnergy(m) }
func (e *Engine) BondEnergy(m int) float64  { return e.Box.BondEnergy(m) }
func (e *Engine) AngleEnergy(m int) float64 { return e.Box.AngleEnergy(m) }
func (e *Engine) CalcSystemEnergy(subLJ, subCharge float64) float64 {
	return e.Box.CalcSystemEnergy(subLJ, subCharge, e.Sweep)
}

// ChangeMolecule performs a full move on molecule m: a rigid-body
// translation+rotation (which also snapshots coordinates for rollback),
// followed by a batch of bond and/or angle moves whose own accept/reject
// outcome exists purely to drive step-size tuning statistics -- it is
// never rolled back here. The caller (the outer Metropolis driver) is
// responsible for computing the real energy delta from before/after this
// call and rolling back molecule m via Rollback if it rejects the whole
// move.
func (e *Engine) ChangeMolecule(m int) {
	e.Box.RigidBodyMove(m, e.Src)
	e.intramolecularMove(m)
}

func (e *Engine) intramolecularMove(m int) {
	b := e.Box
	b.snapshotBonds(m)
	b.snapshotAngles(m)

	numMoveTypes := boolCount(e.enabledBond) + boolCount(e.enabledAngle) + boolCount(e.enabledDihedral)
	if numMoveTypes == 0 {
		numMoveTypes = 1
	}
	intraScale := 0.25 + 0.75/float64(numMoveTypes)

	eBefore := b.IntraEnergy(m)

	if e.enabledBond && b.MolBondCount[m] > 0 {
		eBefore = e.bondBatch(m, eBefore, intraScale)
	}
	if e.enabledAngle && b.MolAngleCount[m] > 0 {
		eBefore = e.angleBatch(m, eBefore, intraScale)
	}

	if e.tuningEnabled && b.StepNum != 0 && b.StepNum%TuneInterval == 0 {
		e.tune()
	}

	bondRatio, angleRatio := 0.0, 0.0
	if b.NumBondMoves > 0 {
		bondRatio = float64(b.NumAcceptedBondMoves) / float64(b.NumBondMoves)
	}
	if b.NumAngleMoves > 0 {
		angleRatio = float64(b.NumAcceptedAngleMoves) / float64(b.NumAngleMoves)
	}
	e.Log.Record(b.StepNum, bondRatio, angleRatio, eBefore)
}

func boolCount(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (e *Engine) bondBatch(m int, eBefore, intraScale float64) float64 {
	b := e.Box
	nBonds := b.MolBondCount[m]
	nToMove := nBonds
	if nToMove > 3 {
		nToMove = UniformInt(e.Src, 2, nBonds)
	}
	if nToMove > b.MaxIntraMoves {
		nToMove = b.MaxIntraMoves
	}
	scale := 0.25 + (0.75/float64(nToMove))*intraScale

	for _, idx := range distinctIndices(e.Src, nBonds, nToMove) {
		delta := scale * e.Src.Uniform(-b.MaxBondDelta, b.MaxBondDelta)
		b.StretchBond(m, idx, delta)
	}
	eAfter := b.IntraEnergy(m)
	if e.AcceptMove(eBefore, eAfter) {
		b.NumAcceptedBondMoves++
	}
	b.NumBondMoves += nToMove
	return eAfter
}

func (e *Engine) angleBatch(m int, eBefore, intraScale float64) float64 {
	b := e.Box
	nAngles := b.MolAngleCount[m]
	nToMove := nAngles
	if nToMove > 3 {
		nToMove = UniformInt(e.Src, 2, nAngles)
	}
	if nToMove > b.MaxIntraMoves {
		nToMove = b.MaxIntraMoves
	}
	scale := 0.25 + (0.75/float64(nToMove))*intraScale

	for _, idx := range distinctIndices(e.Src, nAngles, nToMove) {
		delta := scale * e.Src.Uniform(-b.MaxAngleDelta, b.MaxAngleDelta)
		b.ExpandAngle(m, idx, delta)
	}
	eAfter := b.IntraEnergy(m)
	if e.AcceptMove(eBefore, eAfter) {
		b.NumAcceptedAngleMoves++
	}
	b.NumAngleMoves += nToMove
	return eAfter
}

// distinctIndices draws n distinct values from [0, universe) using src.
func distinctIndices(src Source, universe, n int) []int {
	if n >= universe {
		out := make([]int, universe)
		for i := range out {
			out[i] = i
		}
		return out
	}
	seen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		i := UniformInt(src, 0, universe)
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

func (e *Engine) tune() {
	b := e.Box
	if b.NumBondMoves > 0 {
		bondRatio := float64(b.NumAcceptedBondMoves) / float64(b.NumBondMoves)
		diff := bondRatio - TargetAcceptRatio
		if math.Abs(diff) > RatioMargin {
			b.MaxBondDelta *= 1 + diff
		}
	}
	if b.NumAngleMoves > 0 {
		angleRatio := float64(b.NumAcceptedAngleMoves) / float64(b.NumAngleMoves)
		diff := angleRatio - TargetAcceptRatio
		// Both branches test |diff|, not |angleDelta| -- fixing the
		// asymmetry the two tuning branches had in the reference this
		// was ported from.
		if math.Abs(diff) > RatioMargin {
			b.MaxAngleDelta *= 1 + diff
		}
	}
	b.NumBondMoves, b.NumAcceptedBondMoves = 0, 0
	b.NumAngleMoves, b.NumAcceptedAngleMoves = 0, 0
}
