package cert

import (
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

func TestCompactReindexesRegistry(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	for i := 0; i < 3; i++ {
		row := p.AddRow(r(1), nil)
		p.SetCoefficient(row, 0, r(1))
	}
	eng, _ := newTestEngine(t, p)
	oldLhs1 := eng.reg.lhsOf(1)
	oldScale1 := eng.reg.scaleOf(1)

	// Row 0 is dropped, row 1 becomes row 0, row 2 becomes row 1.
	rowMapping := []int{-1, 0, 1}
	colMapping := []int{0}

	if err := eng.Compact(rowMapping, colMapping, true); err != nil {
		t.Fatalf("Compact: %v", err)
	}

	if eng.reg.lhsOf(0) != oldLhs1 {
		t.Errorf("row 0 after compaction = %d, want old row 1's id %d", eng.reg.lhsOf(0), oldLhs1)
	}
	if eng.reg.scaleOf(0) != oldScale1 {
		t.Errorf("row 0 scale after compaction = %v, want old row 1's scale %v", eng.reg.scaleOf(0), oldScale1)
	}
	if len(eng.reg.lhsID) != 2 {
		t.Errorf("lhsID length after compaction = %d, want 2", len(eng.reg.lhsID))
	}
}

func TestDumpReconciliationMapsNewToOldColumns(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eng, _ := newTestEngine(t, p)

	got := eng.DumpReconciliation([]int{-1, 0, 1})
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("DumpReconciliation = %v, want {0:1, 1:2}", got)
	}
}
