package cert

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

// newTestEngine builds an active engine over p, writing into an
// in-memory buffer so tests can assert on exact emitted lines.
func newTestEngine(t *testing.T, p *problem.Problem) (*activeEngine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	eng, err := New(p, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng.(*activeEngine), &buf
}

func r(n int64) *big.Rat { return big.NewRat(n, 1) }

func ratio(n, d int64) *big.Rat { return big.NewRat(n, d) }
