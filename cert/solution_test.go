package cert

import (
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

// Solution logging emits the exact o/u/c lines and advances the
// counter by two.
func TestLogSolutionExactLines(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	p.AddColumn("x2")
	p.AddColumn("x3")
	eng, buf := newTestEngine(t, p)
	before := eng.NextID()

	if err := eng.LogSolution([]int{1, 0, 1}, p.VariableNames()); err != nil {
		t.Fatalf("LogSolution: %v", err)
	}
	if err := eng.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "o x1 ~x2 x3\nu >= 1 ;\nc " + itoa(int(eng.NextID())) + "\n"
	if got := buf.String(); got != want {
		t.Errorf("LogSolution output = %q, want %q", got, want)
	}
	if eng.NextID() != before+2 {
		t.Errorf("counter advanced by %d, want 2", eng.NextID()-before)
	}
}

func TestLogSolutionRejectsNonBinaryValue(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	eng, _ := newTestEngine(t, p)

	if err := eng.LogSolution([]int{2}, p.VariableNames()); err == nil {
		t.Errorf("expected an error for a non-binary primal value")
	}
}
