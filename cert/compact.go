package cert

import (
	"math/big"

	"golang.org/x/sync/errgroup"
)

// Compact reindexes the registry and scale table after row/column
// renumbering. rowMapping[oldRow] is the row's new index, or -1 if
// the row was dropped; colMapping is accepted only so callers can
// later reconcile auxiliary proof logs and is not consulted here.
// Emits nothing.
//
// The three per-row vectors are independent, so they're reindexed
// concurrently via errgroup — the only place in the engine that
// departs from single-threaded operation.
func (e *activeEngine) Compact(rowMapping, colMapping []int, full bool) error {
	newSize := 0
	for _, n := range rowMapping {
		if n+1 > newSize {
			newSize = n + 1
		}
	}

	var newLhs, newRhs []ID
	var newScale []*big.Int
	var g errgroup.Group
	g.Go(func() error {
		newLhs = reindexID(e.reg.lhsID, rowMapping, newSize)
		return nil
	})
	g.Go(func() error {
		newRhs = reindexID(e.reg.rhsID, rowMapping, newSize)
		return nil
	})
	g.Go(func() error {
		newScale = reindexScale(e.reg.scale, rowMapping, newSize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if full {
		e.reg.lhsID = append([]ID(nil), newLhs...)
		e.reg.rhsID = append([]ID(nil), newRhs...)
		e.reg.scale = append([]*big.Int(nil), newScale...)
		return nil
	}
	e.reg.lhsID = newLhs
	e.reg.rhsID = newRhs
	e.reg.scale = newScale
	return nil
}

func reindexID(old []ID, mapping []int, newSize int) []ID {
	out := make([]ID, newSize)
	for oldRow, newRow := range mapping {
		if newRow >= 0 {
			out[newRow] = old[oldRow]
		}
	}
	return out
}

func reindexScale(old []*big.Int, mapping []int, newSize int) []*big.Int {
	out := make([]*big.Int, newSize)
	for oldRow, newRow := range mapping {
		if newRow >= 0 {
			out[newRow] = old[oldRow]
		}
	}
	return out
}

// DumpReconciliation is a diagnostic-only helper grounded on
// VeriPb.hpp's add_problem_mapping_to_log: it reports, for each
// surviving column,
// which original column index it came from, so a caller that wants a
// postsolve round-trip of the compacted problem can reconstruct the
// mapping the checker needs. It does not touch the registry and
// emits nothing to the proof sink.
func (e *activeEngine) DumpReconciliation(colMapping []int) map[int]int {
	out := make(map[int]int, len(colMapping))
	for oldCol, newCol := range colMapping {
		if newCol >= 0 {
			out[newCol] = oldCol
		}
	}
	return out
}
