package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/crillab/papilo-cert/cert"
	"github.com/crillab/papilo-cert/problem"
)

var (
	outPath string
	useNull bool
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "papilo-cert",
		Short: "drives the certificate engine over a toy presolve run",
	}
	root.AddCommand(runCmd(), inspectCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "c error: %v\n", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "runs a toy presolve sequence, emitting a VeriPB proof",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := toyProblem()
			out := outPath
			if out == "" {
				out = cert.ProofFileName(p.Name())
			}

			var eng cert.Engine
			if useNull {
				eng = cert.NewNull()
				fmt.Println("c proof emission disabled (--null)")
			} else {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				eng, err = cert.New(p, f)
				if err != nil {
					f.Close()
					return err
				}
				fmt.Printf("c writing proof to %s\n", out)
			}
			defer eng.Close()

			if err := eng.Header(); err != nil {
				return err
			}
			if verbose {
				fmt.Println("c fixing x1 to 1 via primal bound tightening")
			}
			if err := eng.ChangeLowerBound(big.NewRat(1, 1), "x1", cert.Primal); err != nil {
				return err
			}
			if verbose {
				fmt.Println("c restating lhs of row 0")
			}
			if err := eng.ChangeLhs(0, big.NewRat(1, 1), p, p.VariableNames(), identityMap(p.NCols())); err != nil {
				return err
			}
			if err := eng.LogSolution([]int{1, 0, 1}, p.VariableNames()); err != nil {
				return err
			}
			fmt.Printf("c done, next id = %d\n", eng.NextID())
			return nil
		},
	}
	c.Flags().StringVar(&outPath, "out", "", "proof file path (default: derived from the problem name)")
	c.Flags().BoolVar(&useNull, "null", false, "use the null certificate engine (no proof output)")
	c.Flags().BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	return c
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "prints a dense snapshot of the toy problem's constraint matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := toyProblem()
			d := problem.DenseSnapshot(p)
			fmt.Printf("c %s: %d rows x %d cols\n", p.Name(), p.NRows(), p.NCols())
			fmt.Println(d.RawMatrix().Data)
			return nil
		},
	}
}

// toyProblem builds a small fixture: x1 + x2 + x3 >= 1, lhs only.
func toyProblem() *problem.Problem {
	p := problem.New("toy")
	p.AddColumn("x1")
	p.AddColumn("x2")
	p.AddColumn("x3")
	row := p.AddRow(big.NewRat(1, 1), nil)
	p.SetCoefficient(row, 0, big.NewRat(1, 1))
	p.SetCoefficient(row, 1, big.NewRat(1, 1))
	p.SetCoefficient(row, 2, big.NewRat(1, 1))
	return p
}

func identityMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}
