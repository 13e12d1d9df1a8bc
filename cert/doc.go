/*
Package cert implements the certificate engine that keeps a
pseudo-Boolean (VeriPB) proof in lockstep with a presolver's in-place
mutations of a 0/1 constraint matrix.

The engine is instantiated once per presolve run, over a read-only
problem.View. Construction allocates a proof identifier for every
finite row side; thereafter the presolver calls one Engine method per
transformation it applies, and the engine emits the proof lines that
justify that transformation and updates its own bookkeeping (the
identifier registry and the per-row scale table) to keep tracking the
live problem.

Two implementations satisfy the Engine contract: the ordinary engine,
which writes to a proof sink, and the null engine returned by NewNull,
which accepts the identical sequence of calls with no I/O and no state, for use when certificate
generation is switched off. Both are chosen once, at construction time;
nothing in this package reads configuration from the environment.
*/
package cert
