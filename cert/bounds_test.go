package cert

import (
	"math/big"
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

// An upper-bound fix of x1 emits an exact RUP line and advances the
// counter by one.
func TestChangeUpperBoundPrimal(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eng, buf := newTestEngine(t, p)
	before := eng.NextID()

	if err := eng.ChangeUpperBound(big.NewRat(0, 1), "x1", Primal); err != nil {
		t.Fatalf("ChangeUpperBound: %v", err)
	}
	if err := eng.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "rup 1 ~x1 >= 1 ;\n"
	if got := lastLine(buf.String()); got != want {
		t.Errorf("ChangeUpperBound line = %q, want %q", got, want)
	}
	if eng.NextID() != before+1 {
		t.Errorf("NextID = %d, want %d", eng.NextID(), before+1)
	}
}

func TestChangeLowerBoundDualEmitsWitness(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eng, buf := newTestEngine(t, p)

	if err := eng.ChangeLowerBound(big.NewRat(1, 1), "x1", Dual); err != nil {
		t.Fatalf("ChangeLowerBound: %v", err)
	}
	if err := eng.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "red 1 x1 >= 1 ; x1 -> 1\n"
	if got := lastLine(buf.String()); got != want {
		t.Errorf("ChangeLowerBound line = %q, want %q", got, want)
	}
}

func TestChangeUpperBoundRejectsNonzero(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eng, _ := newTestEngine(t, p)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on non-zero upper bound value")
		}
	}()
	_ = eng.ChangeUpperBound(big.NewRat(1, 1), "x1", Primal)
}

func lastLine(s string) string {
	lines := splitLines(s)
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	return out
}
