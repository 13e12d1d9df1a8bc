package cert

import (
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

// Sparsify(eq=0, cand=1, s=-2) with both scales 1 emits two POL lines
// of the exact documented shape and replaces both of cand's ids.
func TestSparsifyIntegralShape(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eq := p.AddRow(r(1), r(1))
	p.SetCoefficient(eq, 0, r(1))
	cand := p.AddRow(r(2), r(3))
	p.SetCoefficient(cand, 0, r(1))

	eng, buf := newTestEngine(t, p)
	eqLhs, eqRhs := eng.reg.lhsOf(eq), eng.reg.rhsOf(eq)
	oldCandLhs, oldCandRhs := eng.reg.lhsOf(cand), eng.reg.rhsOf(cand)

	if err := eng.Sparsify(eq, cand, r(-2), p); err != nil {
		t.Fatalf("Sparsify: %v", err)
	}
	if err := eng.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := splitLines(buf.String())
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 lines (2 pol + 2 del), got %d: %q", len(lines), buf.String())
	}
	wantRhsLine := "pol " + itoa(int(eqLhs)) + " 2 * " + itoa(int(oldCandRhs)) + " +\n"
	wantLhsLine := "pol " + itoa(int(eqRhs)) + " 2 * " + itoa(int(oldCandLhs)) + " +\n"
	if lines[0] != wantRhsLine {
		t.Errorf("first pol line = %q, want %q", lines[0], wantRhsLine)
	}
	if !containsLine(lines, wantLhsLine) {
		t.Errorf("missing expected second pol line %q in %v", wantLhsLine, lines)
	}
	if eng.reg.lhsOf(cand) == oldCandLhs || eng.reg.rhsOf(cand) == oldCandRhs {
		t.Errorf("cand ids were not replaced: lhs=%d rhs=%d", eng.reg.lhsOf(cand), eng.reg.rhsOf(cand))
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
