package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// SubstituteWithEquality substitutes col using a free-standing 2-term
// equality not yet tracked by the registry. It first proves the
// equality's two directions as independent RUP lines and keeps
// both ids alive for postsolve, then drives the same column-support
// rewrite SubstituteWithRow uses.
func (e *activeEngine) SubstituteWithEquality(col int, equality problem.SparseRow, offset *big.Rat, v problem.View, names []string, colMap []int) error {
	one := big.NewInt(1)
	k := problem.MustInt(offset)

	geTerms, geOffset := buildSideExpr(equality, one, names, colMap, lhsSide)
	geK := sideK(lhsSide, k, geOffset)
	geID := e.reg.allocate()
	if err := e.fmt.comment("postsolve stack: substitution equality, >= direction"); err != nil {
		return err
	}
	if err := e.fmt.rup(geTerms, geK); err != nil {
		return err
	}

	leTerms, leOffset := buildSideExpr(equality, one, names, colMap, rhsSide)
	leK := sideK(rhsSide, k, leOffset)
	leID := e.reg.allocate()
	if err := e.fmt.comment("postsolve stack: substitution equality, <= direction"); err != nil {
		return err
	}
	if err := e.fmt.rup(leTerms, leK); err != nil {
		return err
	}

	factor := findFactor(equality, col)
	return e.substituteColumn(col, factor, geID, leID, v, -1)
}

// SubstituteWithRow substitutes col using an equality already live in
// the registry at row; its two ids are deleted and pushed to the
// postsolve stack once every supporting row has been rewritten.
func (e *activeEngine) SubstituteWithRow(col, row int, v problem.View) error {
	lhsID := e.reg.lhsOf(row)
	rhsID := e.reg.rhsOf(row)
	if lhsID == Unknown || rhsID == Unknown {
		panic("cert: SubstituteWithRow requires row to be an equality")
	}
	factor := findFactor(v.RowCoefficients(row), col)
	if err := e.substituteColumn(col, factor, lhsID, rhsID, v, row); err != nil {
		return err
	}
	if err := e.fmt.deleteID(lhsID); err != nil {
		return err
	}
	if err := e.fmt.deleteID(rhsID); err != nil {
		return err
	}
	if err := e.fmt.comment("postsolve stack: substitution row lhs " + commentID(lhsID)); err != nil {
		return err
	}
	if err := e.fmt.comment("postsolve stack: substitution row rhs " + commentID(rhsID)); err != nil {
		return err
	}
	e.reg.replaceLHS(row, Unknown)
	e.reg.replaceRHS(row, Unknown)
	return nil
}

// substituteColumn rewrites every row in col's support, skipping
// originatingRow (the equality row itself, when there is one), per
// the three divisibility sub-cases of VeriPb.hpp's substitution
// routine. lID/rID are the substituted equality's (lhs, rhs) ids.
func (e *activeEngine) substituteColumn(col int, s *big.Int, lID, rID ID, v problem.View, originatingRow int) error {
	support := v.ColumnCoefficients(col)
	for i, r := range support.Indices {
		if r == originatingRow {
			continue
		}
		f := problem.MustInt(problem.ScaleBy(support.Values[i], e.reg.scaleOf(r)))
		switch {
		case divides(s, f):
			m := new(big.Int).Abs(new(big.Int).Div(f, s))
			if err := e.substituteRewrite(r, sameSign(s, f), lID, rID, auxMultiplier(m)); err != nil {
				return err
			}
		case divides(f, s):
			m := new(big.Int).Abs(new(big.Int).Div(s, f))
			e.reg.scale[r].Mul(e.reg.scale[r], m)
			if err := e.substituteRewrite(r, sameSign(s, f), lID, rID, rowMultiplier(m)); err != nil {
				return err
			}
		default:
			absF, absS := new(big.Int).Abs(f), new(big.Int).Abs(s)
			e.reg.scale[r].Mul(e.reg.scale[r], absS)
			if err := e.substituteRewrite(r, sameSign(s, f), lID, rID, dualMultiplier(absF, absS)); err != nil {
				return err
			}
		}
	}
	return nil
}

// rowMultiplier builds the POL term list for the f|s sub-case
// (m = s/f): the row side carries the multiplier, the auxiliary id is
// pushed bare.
func rowMultiplier(m *big.Int) func(rowID, auxID ID) []polTerm {
	return func(rowID, auxID ID) []polTerm {
		return []polTerm{{ID: rowID, Mult: m}, {ID: auxID, Mult: big.NewInt(1)}}
	}
}

// auxMultiplier builds the POL term list for the s|f sub-case
// (m = f/s): the multiplier goes on the auxiliary id, the row side is
// pushed bare. Putting it on the row side instead (rowMultiplier's
// shape) scales the wrong constraint.
func auxMultiplier(m *big.Int) func(rowID, auxID ID) []polTerm {
	return func(rowID, auxID ID) []polTerm {
		return []polTerm{{ID: auxID, Mult: m}, {ID: rowID, Mult: big.NewInt(1)}}
	}
}

// dualMultiplier builds the POL term list for the neither-divides
// sub-case: both multipliers stay explicit.
func dualMultiplier(absF, absS *big.Int) func(rowID, auxID ID) []polTerm {
	return func(rowID, auxID ID) []polTerm {
		return []polTerm{{ID: auxID, Mult: absF}, {ID: rowID, Mult: absS}}
	}
}

// substituteRewrite applies build(rowSideID, auxID) to every finite
// side of r, per the sign rule shared by all sub-cases: when same is
// true each row side pairs with the opposite aux side (rhs-of-row with
// lID, lhs-of-row with rID), otherwise with the matching one.
func (e *activeEngine) substituteRewrite(r int, same bool, lID, rID ID, build func(rowID, auxID ID) []polTerm) error {
	for _, s := range []side{rhsSide, lhsSide} {
		rowID := e.defSideID(r, s)
		if rowID == Unknown {
			continue
		}
		auxSide := s
		if same {
			auxSide = other(s)
		}
		auxID := rID
		if auxSide == lhsSide {
			auxID = lID
		}
		newID := e.reg.allocate()
		if err := e.fmt.pol(build(rowID, auxID)); err != nil {
			return err
		}
		if err := e.fmt.deleteID(rowID); err != nil {
			return err
		}
		e.setDefSide(r, s, newID)
	}
	return nil
}

func sameSign(a, b *big.Int) bool {
	return (a.Sign() * b.Sign()) > 0
}

func divides(divisor, n *big.Int) bool {
	if divisor.Sign() == 0 {
		return false
	}
	var rem big.Int
	rem.Mod(n, new(big.Int).Abs(divisor))
	return rem.Sign() == 0
}

func findFactor(sp problem.SparseRow, col int) *big.Int {
	for i, c := range sp.Indices {
		if c == col {
			return problem.MustInt(sp.Values[i])
		}
	}
	panic("cert: substitution column not present in the equality row")
}
