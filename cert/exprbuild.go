package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// side picks which literal sign triggers negation and contributes to
// the running offset when normalizing a row's sparse coefficients
// into a pb-expr. rhsSide restates "sum a_i x_i <= rhs" as a >=
// inequality (so positive coefficients flip); lhsSide restates
// "sum a_i x_i >= lhs" directly (so negative coefficients flip),
// following VeriPb.hpp's change_rhs/change_lhs.
type side int

const (
	rhsSide side = iota
	lhsSide
)

// buildSideExpr scales sp by scale, asserts Invariant C per element,
// and returns the normalized terms plus the signed sum of the
// coefficients that were flipped to a negated literal.
func buildSideExpr(sp problem.SparseRow, scale *big.Int, names []string, colMap []int, s side) (terms []pbTerm, offsetSum *big.Int) {
	offsetSum = new(big.Int)
	for i, col := range sp.Indices {
		c := problem.MustInt(problem.ScaleBy(sp.Values[i], scale))
		if c.Sign() == 0 {
			continue
		}
		flip := (s == rhsSide && c.Sign() > 0) || (s == lhsSide && c.Sign() < 0)
		name := problem.ColumnName(names, colMap, col)
		abs := new(big.Int).Abs(c)
		if flip {
			terms = append(terms, pbTerm{CoeffAbs: abs, Negated: true, Var: name})
			offsetSum.Add(offsetSum, c)
		} else {
			terms = append(terms, pbTerm{CoeffAbs: abs, Negated: false, Var: name})
		}
	}
	return terms, offsetSum
}

// sideK returns the right-hand side k of the normalized inequality
// given the row's scaled value and the offset accumulated by
// buildSideExpr, per side.
func sideK(s side, valScaled, offsetSum *big.Int) *big.Int {
	k := new(big.Int)
	if s == rhsSide {
		// offsetSum >= 0 here: every contribution came from a positive coefficient.
		return k.Sub(offsetSum, valScaled)
	}
	// lhsSide: offsetSum <= 0 here: every contribution came from a negative coefficient.
	return k.Sub(valScaled, offsetSum)
}

// withOverride returns a copy of sp with column col's value replaced
// by newVal (or removed, if newVal is zero), used by UpdateRow to
// reconstruct a row around a single changed coefficient without
// mutating the underlying View.
func withOverride(sp problem.SparseRow, col int, newVal *big.Rat) problem.SparseRow {
	out := problem.SparseRow{}
	found := false
	for i, c := range sp.Indices {
		if c == col {
			found = true
			if newVal.Sign() != 0 {
				out.Indices = append(out.Indices, c)
				out.Values = append(out.Values, newVal)
			}
			continue
		}
		out.Indices = append(out.Indices, c)
		out.Values = append(out.Values, sp.Values[i])
	}
	if !found && newVal.Sign() != 0 {
		// col wasn't part of the row yet: insert it in index order.
		inserted := false
		result := problem.SparseRow{}
		for i, c := range out.Indices {
			if !inserted && c > col {
				result.Indices = append(result.Indices, col)
				result.Values = append(result.Values, newVal)
				inserted = true
			}
			result.Indices = append(result.Indices, c)
			result.Values = append(result.Values, out.Values[i])
		}
		if !inserted {
			result.Indices = append(result.Indices, col)
			result.Values = append(result.Values, newVal)
		}
		return result
	}
	return out
}
