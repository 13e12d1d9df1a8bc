package cert

import (
	"math/big"

	"github.com/crillab/papilo-cert/problem"
)

// registry is the Identifier Registry and Scale Table: lhsID and
// rhsID are two parallel sequences indexed by row; scale holds each
// row's positive integer scale factor.
//
// skipDeleteLHS/skipDeleteRHS are the two skip-delete markers: a
// one-shot suppression of the DELETE for the given id, set by a
// parallel-row Case A transfer. Only MarkRowRedundant consults them:
// it skips the DELETE and clears the marker when it meets that id.
// Other handlers that delete an id do not check them.
type registry struct {
	lhsID         []ID
	rhsID         []ID
	scale         []*big.Int
	nextID        ID
	skipDeleteLHS ID
	skipDeleteRHS ID
}

// newRegistry allocates the registry and scale table from v, assigning a
// fresh id to every finite row side. Emits nothing; the caller is
// responsible for writing the header line that reports r.nextID.
func newRegistry(v problem.View) *registry {
	n := v.NRows()
	r := &registry{
		lhsID: make([]ID, n),
		rhsID: make([]ID, n),
		scale: make([]*big.Int, n),
	}
	for i := 0; i < n; i++ {
		r.scale[i] = big.NewInt(1)
		flags := v.Flags(i)
		if !flags.Test(problem.LhsInf) {
			r.nextID++
			r.lhsID[i] = r.nextID
		} else {
			r.lhsID[i] = Unknown
		}
		if !flags.Test(problem.RhsInf) {
			r.nextID++
			r.rhsID[i] = r.nextID
		} else {
			r.rhsID[i] = Unknown
		}
	}
	return r
}

// allocate bumps the counter and returns the freshly minted id.
func (r *registry) allocate() ID {
	r.nextID++
	return r.nextID
}

func (r *registry) scaleOf(row int) *big.Int { return r.scale[row] }

func (r *registry) lhsOf(row int) ID { return r.lhsID[row] }

func (r *registry) rhsOf(row int) ID { return r.rhsID[row] }

// replaceLHS overwrites row's lhs id. The caller must already have
// emitted `del id <old>` unless the id was transferred elsewhere
// rather than retired (a parallel-row Case A merge).
func (r *registry) replaceLHS(row int, newID ID) {
	r.lhsID[row] = newID
}

// replaceRHS overwrites row's rhs id, same contract as replaceLHS.
func (r *registry) replaceRHS(row int, newID ID) {
	r.rhsID[row] = newID
}

