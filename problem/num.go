package problem

import "math/big"

// IsIntegral reports whether r represents an integer, the Go
// equivalent of PaPILO's Num<REAL>::isIntegral used throughout the
// original certificate code to decide whether a ratio can be emitted
// as-is or needs further rescaling.
func IsIntegral(r *big.Rat) bool {
	return r.IsInt()
}

// MustInt returns r's integer value, panicking if r is not integral.
// Callers use it at the boundary where a proof line is about to be
// emitted and every coefficient must already have been scaled to an
// exact integer.
func MustInt(r *big.Rat) *big.Int {
	if !r.IsInt() {
		panic("problem: value is not integral: " + r.String())
	}
	return new(big.Int).Set(r.Num())
}

// ScaleBy multiplies r by the integer scale and returns the exact result.
func ScaleBy(r *big.Rat, scale *big.Int) *big.Rat {
	return new(big.Rat).Mul(r, new(big.Rat).SetInt(scale))
}

// ColumnName resolves column col of the *current* (possibly
// renumbered) problem to its name in the original variable ordering,
// through colMap the way every certificate handler signature in the
// original PaPILO source takes a var_mapping alongside names.
func ColumnName(names []string, colMap []int, col int) string {
	return names[colMap[col]]
}
