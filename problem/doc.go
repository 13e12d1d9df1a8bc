/*
Package problem gives access to the read-only view of a 0/1 constraint
matrix that the certificate engine (package cert) consumes while a
presolver mutates it.

The presolver's own data model — the actual constraint matrix storage,
variable domains, and objective — lives outside this module; parsing
an MPS file into one is out of scope here too. What this package
provides is the narrow read-only contract the engine needs, View (row
sides, row flags, sparse row and column coefficients), plus one small
in-memory implementation of that contract, Problem, used by tests and
by this module's CLI demo. Variable names and the column remapping
table are not part of View: callers pass them to the engine
separately (Problem.VariableNames supplies the name table, and
ColumnName resolves a column through a remapping table).

Describing a problem

A View can be built incrementally:

    p := problem.New("toy")
    p.AddColumn("x1")
    p.AddColumn("x2")
    row := p.AddRow(nil, big.NewRat(1, 1))
    p.SetCoefficient(row, 0, big.NewRat(1, 1))
    p.SetCoefficient(row, 1, big.NewRat(1, 1))

Coefficients and sides are exact rationals (*big.Rat); the certificate
engine is the component responsible for scaling them to integers in
its emitted proof lines.
*/
package problem
