package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// ID is a proof constraint identifier: a strictly increasing positive
// integer assigned by the engine's own counter. Unknown is the
// sentinel value meaning "no id assigned to this (row, side)".
type ID int

// Unknown is the registry sentinel. Proof ids start at 1, so 0 never
// collides with a real id.
const Unknown ID = 0

// ArgumentType classifies why a bound-tightening handler was called, which in turn picks the derivation rule: a Primal
// argument is provable by unit propagation (RUP); Dual and Symmetry
// arguments need a witness substitution (RED).
type ArgumentType int

const (
	Primal ArgumentType = iota
	Dual
	Symmetry
)

func (a ArgumentType) String() string {
	switch a {
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	case Symmetry:
		return "symmetry"
	default:
		return "unknown"
	}
}

// Engine is the contract shared by the active VeriPB-emitting engine
// and the Null variant. The presolver's main loop calls exactly one
// of these per transformation it applies, and calls must be
// sequential: the registry has a single owner and is never read or
// written concurrently with a handler in flight.
type Engine interface {
	// Header writes the proof preamble. Must be called once, before
	// any handler.
	Header() error
	// Flush blocks until buffered proof lines are durable enough for
	// an external checker to begin replaying them.
	Flush() error
	// Close flushes and releases the underlying proof sink.
	Close() error

	// ChangeUpperBound fixes a variable to 0.
	ChangeUpperBound(val *big.Rat, name string, arg ArgumentType) error
	// ChangeLowerBound fixes a variable to 1.
	ChangeLowerBound(val *big.Rat, name string, arg ArgumentType) error
	// DominatingColumns records that dominating dominates dominated:
	// fixing the two columns to each other's value preserves
	// feasibility, so they can be swapped in a solution for free.
	DominatingColumns(dominating, dominated int, names []string, colMap []int) error

	// ChangeRhs replaces row's right-hand side.
	ChangeRhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error
	// ChangeLhs replaces row's left-hand side.
	ChangeLhs(row int, val *big.Rat, v problem.View, names []string, colMap []int) error
	// DropRHS marks row's right-hand side as having become infinite.
	DropRHS(row int) error
	// DropLHS marks row's left-hand side as having become infinite.
	DropLHS(row int) error
	// UpdateRow reconstructs row's finite sides after col's coefficient changes.
	UpdateRow(row, col int, newVal *big.Rat, v problem.View, names []string, colMap []int) error
	// MarkRowRedundant retires both of row's live ids.
	MarkRowRedundant(row int) error

	// ChangeRhsParallelRow derives row's new rhs from a parallel row.
	ChangeRhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error
	// ChangeLhsParallelRow derives row's new lhs from a parallel row.
	ChangeLhsParallelRow(row int, val *big.Rat, parallelRow int, v problem.View, colMap []int) error

	// Sparsify derives candRow's new sides by adding scale*eqRow.
	Sparsify(eqRow, candRow int, scale *big.Rat, v problem.View) error

	// SubstituteWithEquality substitutes col using a free-standing
	// 2-term equality, not yet present in the registry.
	SubstituteWithEquality(col int, equality problem.SparseRow, offset *big.Rat, v problem.View, names []string, colMap []int) error
	// SubstituteWithRow substitutes col using an equality already
	// tracked as row in the registry.
	SubstituteWithRow(col, row int, v problem.View) error

	// LogSolution emits a feasible solution and the conclusion lines.
	LogSolution(primal []int, names []string) error

	// Compact reindexes the registry and scale table after row/column
	// renumbering.
	Compact(rowMapping, colMapping []int, full bool) error

	// NextID exposes the counter's current value, so a caller can bind
	// `c <id>` after LogSolution without re-deriving it.
	NextID() ID
}
