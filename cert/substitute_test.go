package cert

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/papilo-cert/problem"
)

// Substituting column x1 via the free-standing equality x1 + x2 = 1
// emits two auxiliary RUP lines for its two directions, then a POL
// chain across every other row supporting the column; the two
// auxiliary ids are never deleted.
func TestSubstituteWithEqualityKeepsAuxiliaries(t *testing.T) {
	p := problem.New("toy")
	p.AddColumn("x1")
	p.AddColumn("x2")
	row := p.AddRow(r(2), nil)
	p.SetCoefficient(row, 0, r(3))
	p.SetCoefficient(row, 1, r(-1))

	eng, buf := newTestEngine(t, p)
	equality := problem.SparseRow{Indices: []int{0, 1}, Values: []*big.Rat{r(1), r(1)}}

	err := eng.SubstituteWithEquality(0, equality, r(1), p, p.VariableNames(), identityMap(p))
	require.NoError(t, err)
	require.NoError(t, eng.Flush())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "postsolve stack"))
	assert.Contains(t, out, "rup ")
	assert.Contains(t, out, "pol ")

	lines := splitLines(out)
	require.GreaterOrEqual(t, len(lines), 3)

	// Registry construction assigns id 1 to row's only finite side
	// (its lhs); SubstituteWithEquality then allocates the two
	// auxiliary ids (2, 3) before rewriting row's support. Only the
	// row's own old id should ever be deleted.
	assert.Contains(t, lines, "del id 1\n")
	assert.NotContains(t, lines, "del id 2\n")
	assert.NotContains(t, lines, "del id 3\n")

	// s (the equality's x1 coefficient) is 1, which divides row's
	// scaled x1 coefficient f=3, so this takes the s|f sub-case: the
	// multiplier (m = f/s = 3) must land on the auxiliary id (3, the
	// <= direction, since s and f share a sign), with row's own id
	// pushed bare.
	assert.Contains(t, lines, "pol 3 3 * 1 +\n")
}
