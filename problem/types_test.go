package problem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(n int64) *big.Rat { return big.NewRat(n, 1) }

func TestAddRowInfersFlags(t *testing.T) {
	p := New("toy")
	p.AddColumn("x1")
	p.AddColumn("x2")

	eq := p.AddRow(r(1), r(1))
	assert.Equal(t, RowFlags(0), p.Flags(eq))

	ge := p.AddRow(r(1), nil)
	assert.True(t, p.Flags(ge).Test(RhsInf))
	assert.False(t, p.Flags(ge).Test(LhsInf))

	le := p.AddRow(nil, r(3))
	assert.True(t, p.Flags(le).Test(LhsInf))
}

func TestSetCoefficientKeepsRowAndColumnInSync(t *testing.T) {
	p := New("toy")
	p.AddColumn("x1")
	p.AddColumn("x2")
	row := p.AddRow(r(1), nil)

	p.SetCoefficient(row, 0, r(2))
	p.SetCoefficient(row, 1, r(-3))

	rowView := p.RowCoefficients(row)
	require.Equal(t, []int{0, 1}, rowView.Indices)
	assert.Equal(t, "2", rowView.Values[0].RatString())
	assert.Equal(t, "-3", rowView.Values[1].RatString())

	colView := p.ColumnCoefficients(1)
	require.Equal(t, []int{row}, colView.Indices)
	assert.Equal(t, "-3", colView.Values[0].RatString())

	// Zeroing an entry removes it from both views.
	p.SetCoefficient(row, 0, r(0))
	assert.Equal(t, 0, len(p.ColumnCoefficients(0).Indices))
	assert.Equal(t, 1, p.RowCoefficients(row).Len())
}

func TestSetLhsRhsTogglesFlags(t *testing.T) {
	p := New("toy")
	row := p.AddRow(r(1), r(2))
	p.SetRhs(row, nil)
	assert.True(t, p.Flags(row).Test(RhsInf))
	p.SetRhs(row, r(5))
	assert.False(t, p.Flags(row).Test(RhsInf))
	assert.Equal(t, "5", p.Rhs(row).RatString())
}
