package cert

import (
	"math/big"
	"testing"
)

func TestNullEngineIsNoOp(t *testing.T) {
	eng := NewNull()
	if err := eng.Header(); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if err := eng.ChangeUpperBound(big.NewRat(0, 1), "x1", Primal); err != nil {
		t.Fatalf("ChangeUpperBound: %v", err)
	}
	if err := eng.LogSolution([]int{1}, []string{"x1"}); err != nil {
		t.Fatalf("LogSolution: %v", err)
	}
	if eng.NextID() != Unknown {
		t.Errorf("NextID = %d, want Unknown", eng.NextID())
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
