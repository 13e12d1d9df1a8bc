package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// Sparsify derives candRow's new sides from cand <- cand + scale*eq,
// where eqRow is an equality row.
func (e *activeEngine) Sparsify(eqRow, candRow int, scale *big.Rat, v problem.View) error {
	if scale.Sign() == 0 {
		panic("cert: Sparsify requires a nonzero scale")
	}
	if e.reg.lhsOf(eqRow) == Unknown || e.reg.rhsOf(eqRow) == Unknown {
		panic("cert: Sparsify requires eqRow to be an equality")
	}

	sPrime := new(big.Rat).Mul(scale, new(big.Rat).SetInt(e.reg.scaleOf(candRow)))
	sPrime.Quo(sPrime, new(big.Rat).SetInt(e.reg.scaleOf(eqRow)))

	switch {
	case sPrime.IsInt():
		return e.sparsifyIntegral(eqRow, candRow, sPrime)
	case sPrime.Sign() != 0 && reciprocalIsInt(sPrime):
		return e.sparsifyInverseIntegral(eqRow, candRow, sPrime)
	default:
		return e.sparsifyFractional(eqRow, candRow, scale, v)
	}
}

func reciprocalIsInt(r *big.Rat) bool {
	return new(big.Rat).Inv(r).IsInt()
}

// sparsifyIntegral is sub-case 1: s' is already integral, so each
// finite side of cand is restated as a single POL combination with
// one side of eq: the matching side when s' is positive, the opposite
// side when it is negative.
func (e *activeEngine) sparsifyIntegral(eqRow, candRow int, sPrime *big.Rat) error {
	mult := new(big.Int).Abs(new(big.Int).Set(sPrime.Num()))
	positive := sPrime.Sign() > 0
	return e.sparsifyBothSides(eqRow, candRow, positive, func(candID, eqID ID) []polTerm {
		return []polTerm{{ID: eqID, Mult: mult}, {ID: candID, Mult: big.NewInt(1)}}
	})
}

// sparsifyInverseIntegral is sub-case 2: 1/s' is integral, so cand
// must first be rescaled by that integer before the combination with
// eq lands on integer coefficients. Both sides of scale[candRow] move
// together even if only one side is currently live.
func (e *activeEngine) sparsifyInverseIntegral(eqRow, candRow int, sPrime *big.Rat) error {
	mult := new(big.Int).Abs(new(big.Int).Set(new(big.Rat).Inv(sPrime).Num()))
	positive := sPrime.Sign() > 0
	e.reg.scale[candRow].Mul(e.reg.scale[candRow], mult)
	return e.sparsifyBothSides(eqRow, candRow, positive, func(candID, eqID ID) []polTerm {
		return []polTerm{{ID: candID, Mult: mult}, {ID: eqID, Mult: big.NewInt(1)}}
	})
}

// sparsifyFractional is sub-case 3: neither s' nor its reciprocal is
// integral. q/p is the reduced fraction of -scale (big.Rat already
// keeps it in lowest terms), and mismatchColumn anchors the co-walk
// VeriPb.hpp's sparsify uses to confirm a combinable column exists.
func (e *activeEngine) sparsifyFractional(eqRow, candRow int, scale *big.Rat, v problem.View) error {
	neg := new(big.Rat).Neg(scale)
	q := new(big.Int).Set(neg.Num())
	p := new(big.Int).Set(neg.Denom())
	if _, ok := mismatchColumn(v.RowCoefficients(eqRow), v.RowCoefficients(candRow)); !ok {
		panic("cert: Sparsify fractional case found no combinable column")
	}

	candMult := new(big.Int).Abs(new(big.Int).Mul(q, e.reg.scaleOf(eqRow)))
	eqMult := new(big.Int).Abs(new(big.Int).Mul(p, e.reg.scaleOf(candRow)))
	e.reg.scale[candRow].Mul(e.reg.scale[candRow], new(big.Int).Abs(new(big.Int).Mul(p, e.reg.scaleOf(eqRow))))

	positive := scale.Sign() > 0
	return e.sparsifyBothSides(eqRow, candRow, positive, func(candID, eqID ID) []polTerm {
		return []polTerm{{ID: candID, Mult: candMult}, {ID: eqID, Mult: eqMult}}
	})
}

// sparsifyBothSides rewrites every finite side of candRow, pairing it
// with the matching (positive) or opposite (negative) side of eqRow
// per the supplied combination builder, then deletes the old cand id
// and installs the new one.
func (e *activeEngine) sparsifyBothSides(eqRow, candRow int, positive bool, build func(candID, eqID ID) []polTerm) error {
	for _, s := range []side{rhsSide, lhsSide} {
		candID := e.defSideID(candRow, s)
		if candID == Unknown {
			continue
		}
		eqSide := s
		if !positive {
			eqSide = other(s)
		}
		eqID := e.defSideID(eqRow, eqSide)
		terms := build(candID, eqID)
		newID := e.reg.allocate()
		if err := e.fmt.pol(terms); err != nil {
			return err
		}
		if err := e.fmt.deleteID(candID); err != nil {
			return err
		}
		e.setDefSide(candRow, s, newID)
	}
	return nil
}

// mismatchColumn performs a co-ordered walk: both rows have indices
// sorted ascending, so the first column present in a but absent from
// b (or vice versa) is found in a single linear pass.
func mismatchColumn(a, b problem.SparseRow) (int, bool) {
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			return a.Indices[i], true
		default:
			return b.Indices[j], true
		}
	}
	if i < len(a.Indices) {
		return a.Indices[i], true
	}
	if j < len(b.Indices) {
		return b.Indices[j], true
	}
	return 0, false
}
