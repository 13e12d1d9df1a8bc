package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// nullEngine satisfies Engine with no I/O, no counter updates, and no
// state changes. It is chosen at construction when proof emission is
// disabled, so the presolver's main loop can call the same handlers
// regardless of whether a proof is being written.
type nullEngine struct{}

// NewNull returns the null certificate engine.
func NewNull() Engine {
	return nullEngine{}
}

func (nullEngine) Header() error { return nil }
func (nullEngine) Flush() error  { return nil }
func (nullEngine) Close() error  { return nil }

func (nullEngine) ChangeUpperBound(val *big.Rat, name string, arg ArgumentType) error { return nil }
func (nullEngine) ChangeLowerBound(val *big.Rat, name string, arg ArgumentType) error { return nil }
func (nullEngine) DominatingColumns(dominating, dominated int, names []string, colMap []int) error {
	return nil
}

func (nullEngine) ChangeRhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error {
	return nil
}
func (nullEngine) ChangeLhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error {
	return nil
}
func (nullEngine) DropRHS(row int) error { return nil }
func (nullEngine) DropLHS(row int) error { return nil }
func (nullEngine) UpdateRow(row, col int, newVal *big.Rat, v problem.View, names []string, colMap []int) error {
	return nil
}
func (nullEngine) MarkRowRedundant(row int) error { return nil }

func (nullEngine) ChangeRhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error {
	return nil
}
func (nullEngine) ChangeLhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error {
	return nil
}

func (nullEngine) Sparsify(eqRow, candRow int, scale *big.Rat, v problem.View) error { return nil }

func (nullEngine) SubstituteWithEquality(col int, equality problem.SparseRow, offset *big.Rat, v problem.View, names []string, colMap []int) error {
	return nil
}
func (nullEngine) SubstituteWithRow(col, row int, v problem.View) error { return nil }

func (nullEngine) LogSolution(primal []int, names []string) error { return nil }

func (nullEngine) Compact(rowMapping, colMapping []int, full bool) error { return nil }

func (nullEngine) NextID() ID { return Unknown }
