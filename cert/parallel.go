package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// ChangeRhsParallelRow derives row's new right-hand side from a row
// that is a scalar multiple of it.
func (e *activeEngine) ChangeRhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error {
	return e.parallelRowMerge(row, parallelRow, v, rhsSide)
}

// ChangeLhsParallelRow derives row's new left-hand side from a row
// that is a scalar multiple of it.
func (e *activeEngine) ChangeLhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error {
	return e.parallelRowMerge(row, parallelRow, v, lhsSide)
}

// parallelRowMerge implements the shared derivation behind
// VeriPb.hpp's change_rhs_parallel_row and change_lhs_parallel_row,
// which share every rule except which side of row is being defined
// and which side of the source row's id that implies.
func (e *activeEngine) parallelRowMerge(row, parallelRow int, v problem.View, defining side) error {
	ft := firstNonzeroScaled(v, row, e.reg.scaleOf(row))
	fp := firstNonzeroScaled(v, parallelRow, e.reg.scaleOf(parallelRow))
	factor := new(big.Rat).Quo(new(big.Rat).SetInt(ft), new(big.Rat).SetInt(fp))
	absFactor := new(big.Rat).Abs(factor)
	if absFactor.Cmp(big.NewRat(1, 1)) < 0 {
		panic("cert: parallel row factor must have absolute value >= 1")
	}
	positive := factor.Sign() > 0

	sourceID := e.parallelSourceID(parallelRow, defining, positive)
	if err := e.fmt.comment(commentID(sourceID) + " is parallel to " + commentID(e.defSideID(row, defining)) + "/" + commentID(e.defSideID(row, other(defining))) + "."); err != nil {
		return err
	}

	if absFactor.Cmp(big.NewRat(1, 1)) == 0 {
		// Case A: id transfer, no new derivation, counter untouched.
		e.setDefSide(row, defining, sourceID)
		e.setSkipDelete(defining, sourceID)
		return nil
	}

	integral := factor.IsInt()
	var multiplier *big.Int
	if integral {
		multiplier = new(big.Int).Abs(new(big.Int).Set(factor.Num()))
	} else {
		multiplier = new(big.Int).Abs(ft)
	}

	newID := e.reg.allocate()
	if err := e.fmt.pol([]polTerm{{ID: sourceID, Mult: multiplier}}); err != nil {
		return err
	}
	if old := e.defSideID(row, defining); old != Unknown {
		if err := e.fmt.deleteID(old); err != nil {
			return err
		}
	}
	e.setDefSide(row, defining, newID)

	if !integral {
		otherSide := other(defining)
		if otherID := e.defSideID(row, otherSide); otherID != Unknown {
			absFp := new(big.Int).Abs(fp)
			rescaledID := e.reg.allocate()
			if err := e.fmt.pol([]polTerm{{ID: otherID, Mult: absFp}}); err != nil {
				return err
			}
			if err := e.fmt.deleteID(otherID); err != nil {
				return err
			}
			e.setDefSide(row, otherSide, rescaledID)
			e.reg.scale[row].Mul(e.reg.scale[row], absFp)
		}
	}
	return nil
}

// firstNonzeroScaled returns the first nonzero coefficient of row,
// scaled by scale, as an exact integer. Rows compared by
// parallelRowMerge are assumed identically ordered.
func firstNonzeroScaled(v problem.View, row int, scale *big.Int) *big.Int {
	sp := v.RowCoefficients(row)
	if sp.Len() == 0 {
		panic("cert: parallel row merge on an empty row")
	}
	return problem.MustInt(problem.ScaleBy(sp.Values[0], scale))
}

func other(s side) side {
	if s == rhsSide {
		return lhsSide
	}
	return rhsSide
}

// parallelSourceID picks which id of parallelRow the derivation
// consumes: the side that matches defining when the factor is
// positive, the opposite side when it is negative.
func (e *activeEngine) parallelSourceID(parallelRow int, defining side, positive bool) ID {
	s := defining
	if !positive {
		s = other(defining)
	}
	return e.defSideID(parallelRow, s)
}

func (e *activeEngine) defSideID(row int, s side) ID {
	if s == rhsSide {
		return e.reg.rhsOf(row)
	}
	return e.reg.lhsOf(row)
}

func (e *activeEngine) setDefSide(row int, s side, id ID) {
	if s == rhsSide {
		e.reg.replaceRHS(row, id)
	} else {
		e.reg.replaceLHS(row, id)
	}
}

func (e *activeEngine) setSkipDelete(s side, id ID) {
	if s == rhsSide {
		e.reg.skipDeleteRHS = id
	} else {
		e.reg.skipDeleteLHS = id
	}
}

func commentID(id ID) string {
	return itoa(int(id))
}
