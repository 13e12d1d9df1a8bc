package problem

import (
	"math/big"
	"sort"
)

// RowFlags conveys which sides of a row are currently finite. A zero
// value means both sides are finite.
type RowFlags uint8

const (
	// LhsInf marks a row whose left-hand side is -infinity (no lower bound).
	LhsInf RowFlags = 1 << iota
	// RhsInf marks a row whose right-hand side is +infinity (no upper bound).
	RhsInf
)

// Test reports whether flag is set.
func (f RowFlags) Test(flag RowFlags) bool {
	return f&flag != 0
}

// SparseRow is a read-only sparse vector: parallel Indices/Values
// slices, sorted by index, with implicit zero elsewhere. It is used
// both for a row's coefficients (Indices are column numbers) and for
// a column's coefficients (Indices are row numbers).
type SparseRow struct {
	Indices []int
	Values  []*big.Rat
}

// Len returns the number of explicit (nonzero) entries.
func (s SparseRow) Len() int {
	return len(s.Indices)
}

// View is the read-only surface of a constraint matrix that the
// certificate engine depends on. The matrix itself, variable domains,
// and the objective are out of scope for this module; View exposes
// only what the engine's transformation handlers read.
type View interface {
	// Name is the problem's name, used to derive the proof file name.
	Name() string
	// NRows is the (dense) number of rows currently indexed.
	NRows() int
	// NCols is the (dense) number of columns currently indexed.
	NCols() int
	// Flags reports which sides of row are finite.
	Flags(row int) RowFlags
	// Lhs returns the row's left-hand side. Only meaningful when
	// Flags(row) does not have LhsInf set.
	Lhs(row int) *big.Rat
	// Rhs returns the row's right-hand side. Only meaningful when
	// Flags(row) does not have RhsInf set.
	Rhs(row int) *big.Rat
	// RowCoefficients returns row's sparse coefficients, sorted by
	// column index.
	RowCoefficients(row int) SparseRow
	// ColumnCoefficients returns col's sparse coefficients across rows,
	// sorted by row index.
	ColumnCoefficients(col int) SparseRow
}

// Problem is a small in-memory View implementation used by tests and
// by this module's CLI demo. It is not a general-purpose constraint
// matrix: it exists only to exercise the certificate engine's
// read-only dependency on a View.
type Problem struct {
	name      string
	rowLhs    []*big.Rat
	rowRhs    []*big.Rat
	rowFlags  []RowFlags
	rowCoeffs []map[int]*big.Rat
	colCoeffs []map[int]*big.Rat
	names     []string
}

// New returns an empty named problem with no rows or columns.
func New(name string) *Problem {
	return &Problem{name: name}
}

// Name implements View.
func (p *Problem) Name() string { return p.name }

// NRows implements View.
func (p *Problem) NRows() int { return len(p.rowCoeffs) }

// NCols implements View.
func (p *Problem) NCols() int { return len(p.colCoeffs) }

// Flags implements View.
func (p *Problem) Flags(row int) RowFlags { return p.rowFlags[row] }

// Lhs implements View.
func (p *Problem) Lhs(row int) *big.Rat { return p.rowLhs[row] }

// Rhs implements View.
func (p *Problem) Rhs(row int) *big.Rat { return p.rowRhs[row] }

// RowCoefficients implements View.
func (p *Problem) RowCoefficients(row int) SparseRow {
	return sparseFromMap(p.rowCoeffs[row])
}

// ColumnCoefficients implements View.
func (p *Problem) ColumnCoefficients(col int) SparseRow {
	return sparseFromMap(p.colCoeffs[col])
}

// VariableNames returns the full name table, indexed by column.
func (p *Problem) VariableNames() []string { return p.names }

// AddColumn appends a fresh variable and returns its index.
func (p *Problem) AddColumn(name string) int {
	p.names = append(p.names, name)
	p.colCoeffs = append(p.colCoeffs, map[int]*big.Rat{})
	return len(p.names) - 1
}

// AddRow appends a row with the given sides and returns its index.
// A nil lhs/rhs means that side is infinite; flags are derived from
// which of lhs/rhs are nil, matching Invariant A in cert.
func (p *Problem) AddRow(lhs, rhs *big.Rat) int {
	var flags RowFlags
	if lhs == nil {
		flags |= LhsInf
	}
	if rhs == nil {
		flags |= RhsInf
	}
	p.rowLhs = append(p.rowLhs, lhs)
	p.rowRhs = append(p.rowRhs, rhs)
	p.rowFlags = append(p.rowFlags, flags)
	p.rowCoeffs = append(p.rowCoeffs, map[int]*big.Rat{})
	return len(p.rowCoeffs) - 1
}

// SetLhs updates row's left-hand side in place; pass nil to make it infinite.
func (p *Problem) SetLhs(row int, lhs *big.Rat) {
	p.rowLhs[row] = lhs
	if lhs == nil {
		p.rowFlags[row] |= LhsInf
	} else {
		p.rowFlags[row] &^= LhsInf
	}
}

// SetRhs updates row's right-hand side in place; pass nil to make it infinite.
func (p *Problem) SetRhs(row int, rhs *big.Rat) {
	p.rowRhs[row] = rhs
	if rhs == nil {
		p.rowFlags[row] |= RhsInf
	} else {
		p.rowFlags[row] &^= RhsInf
	}
}

// SetCoefficient sets the (row, col) coefficient, keeping the row-major
// and column-major views in sync. A zero value removes the entry.
func (p *Problem) SetCoefficient(row, col int, val *big.Rat) {
	if val == nil || val.Sign() == 0 {
		delete(p.rowCoeffs[row], col)
		delete(p.colCoeffs[col], row)
		return
	}
	p.rowCoeffs[row][col] = val
	p.colCoeffs[col][row] = val
}

func sparseFromMap(m map[int]*big.Rat) SparseRow {
	indices := make([]int, 0, len(m))
	for idx := range m {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	values := make([]*big.Rat, len(indices))
	for i, idx := range indices {
		values[i] = m[idx]
	}
	return SparseRow{Indices: indices, Values: values}
}
