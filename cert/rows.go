package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// ChangeRhs replaces row's right-hand side with val. The previous
// rhs id is not deleted here: orchestrating that deletion is
// left to the caller, the way handlers that actually retire a side
// (MarkRowRedundant, UpdateRow) do it themselves.
func (e *activeEngine) ChangeRhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error {
	scale := e.reg.scaleOf(row)
	sp := v.RowCoefficients(row)
	terms, offset := buildSideExpr(sp, scale, names, colMap, rhsSide)
	valScaled := problem.MustInt(problem.ScaleBy(val, scale))
	k := sideK(rhsSide, valScaled, offset)
	id := e.reg.allocate()
	if err := e.fmt.rup(terms, k); err != nil {
		return err
	}
	e.reg.replaceRHS(row, id)
	return nil
}

// ChangeLhs replaces row's left-hand side with val.
func (e *activeEngine) ChangeLhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error {
	scale := e.reg.scaleOf(row)
	sp := v.RowCoefficients(row)
	terms, offset := buildSideExpr(sp, scale, names, colMap, lhsSide)
	valScaled := problem.MustInt(problem.ScaleBy(val, scale))
	k := sideK(lhsSide, valScaled, offset)
	id := e.reg.allocate()
	if err := e.fmt.rup(terms, k); err != nil {
		return err
	}
	e.reg.replaceLHS(row, id)
	return nil
}

// DropLHS records that row's left-hand side became infinite,
// grounded on VeriPb.hpp's change_lhs_inf: the slot's id is simply
// deleted and cleared.
func (e *activeEngine) DropLHS(row int) error {
	id := e.reg.lhsOf(row)
	if id == Unknown {
		panic("cert: DropLHS on row with no finite lhs")
	}
	if err := e.fmt.deleteID(id); err != nil {
		return err
	}
	e.reg.replaceLHS(row, Unknown)
	return nil
}

// DropRHS records that row's right-hand side became infinite,
// grounded on VeriPb.hpp's change_rhs_inf.
func (e *activeEngine) DropRHS(row int) error {
	id := e.reg.rhsOf(row)
	if id == Unknown {
		panic("cert: DropRHS on row with no finite rhs")
	}
	if err := e.fmt.deleteID(id); err != nil {
		return err
	}
	e.reg.replaceRHS(row, Unknown)
	return nil
}

// UpdateRow reconstructs row's finite sides after column col's
// coefficient changes to newVal. Each finite side is an
// independent RUP derivation followed by deleting the side's previous
// id; a newVal of zero omits that term from the emitted line.
func (e *activeEngine) UpdateRow(row, col int, newVal *big.Rat, v problem.View, names []string, colMap []int) error {
	scale := e.reg.scaleOf(row)
	base := v.RowCoefficients(row)
	updated := withOverride(base, col, newVal)

	if !v.Flags(row).Test(problem.LhsInf) {
		terms, offset := buildSideExpr(updated, scale, names, colMap, lhsSide)
		lhsScaled := problem.MustInt(problem.ScaleBy(v.Lhs(row), scale))
		k := sideK(lhsSide, lhsScaled, offset)
		id := e.reg.allocate()
		if err := e.fmt.rup(terms, k); err != nil {
			return err
		}
		oldID := e.reg.lhsOf(row)
		if err := e.fmt.deleteID(oldID); err != nil {
			return err
		}
		e.reg.replaceLHS(row, id)
	}
	if !v.Flags(row).Test(problem.RhsInf) {
		terms, offset := buildSideExpr(updated, scale, names, colMap, rhsSide)
		rhsScaled := problem.MustInt(problem.ScaleBy(v.Rhs(row), scale))
		k := sideK(rhsSide, rhsScaled, offset)
		id := e.reg.allocate()
		if err := e.fmt.rup(terms, k); err != nil {
			return err
		}
		oldID := e.reg.rhsOf(row)
		if err := e.fmt.deleteID(oldID); err != nil {
			return err
		}
		e.reg.replaceRHS(row, id)
	}
	return nil
}

// MarkRowRedundant retires both of row's live ids. A side whose id
// matches the corresponding skip-delete marker is released without
// emitting a DELETE, since that id was transferred to another row by
// a prior parallel-row merge rather than retired.
func (e *activeEngine) MarkRowRedundant(row int) error {
	lhs := e.reg.lhsOf(row)
	if lhs != Unknown {
		if lhs == e.reg.skipDeleteLHS {
			e.reg.skipDeleteLHS = Unknown
		} else {
			if err := e.fmt.deleteID(lhs); err != nil {
				return err
			}
		}
		e.reg.replaceLHS(row, Unknown)
	}
	rhs := e.reg.rhsOf(row)
	if rhs != Unknown {
		if rhs == e.reg.skipDeleteRHS {
			e.reg.skipDeleteRHS = Unknown
		} else {
			if err := e.fmt.deleteID(rhs); err != nil {
				return err
			}
		}
		e.reg.replaceRHS(row, Unknown)
	}
	return nil
}
