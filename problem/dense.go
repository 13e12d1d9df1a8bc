package problem

import "gonum.org/v1/gonum/mat"

// DenseSnapshot materializes v's row coefficients into a dense
// float64 matrix, for visual inspection of small fixtures in tests
// and in the CLI's inspect subcommand. It is a diagnostic aid only —
// the engine never consults it, and it is lossy (big.Rat -> float64)
// by design: it exists to eyeball scale factors, not to replay proof
// arithmetic.
func DenseSnapshot(v View) *mat.Dense {
	rows, cols := v.NRows(), v.NCols()
	d := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		sp := v.RowCoefficients(r)
		for i, c := range sp.Indices {
			f, _ := sp.Values[i].Float64()
			d.Set(r, c, f)
		}
	}
	return d
}
