package cert

import (
	"strings"
	"testing"

	"github.com/crillab/papilo-cert/problem"
)

func TestProofFileNameStripsKnownSuffixes(t *testing.T) {
	cases := map[string]string{
		"model.mps":     "model.pbp",
		"model.mps.gz":  "model.pbp",
		"model.mps.bz2": "model.pbp",
		"model":         "model.pbp",
	}
	for in, want := range cases {
		if got := ProofFileName(in); got != want {
			t.Errorf("ProofFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHeaderReportsBaselineID(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	row := p.AddRow(r(1), r(2))
	p.SetCoefficient(row, 0, r(1))

	eng, buf := newTestEngine(t, p)
	if err := eng.Header(); err != nil {
		t.Fatalf("Header: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "pseudo-Boolean proof version 1.0\n") {
		t.Errorf("Header output missing version line: %q", out)
	}
	if !strings.Contains(out, "f "+itoa(int(eng.NextID()))+"\n") {
		t.Errorf("Header output missing baseline 'f' line for id %d: %q", eng.NextID(), out)
	}
}
