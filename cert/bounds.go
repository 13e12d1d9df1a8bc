package cert

import (
	"math/big"

	"github.com/pkg/errors"
)

// ChangeUpperBound fixes a variable to 0. Primal arguments are
// RUP-provable directly; Dual and Symmetry arguments require a
// witness substitution (RED), since they rely on an argument other
// than direct unit propagation to preserve feasibility.
func (e *activeEngine) ChangeUpperBound(val *big.Rat, name string, arg ArgumentType) error {
	if val.Sign() != 0 {
		panic("cert: ChangeUpperBound requires val == 0")
	}
	id := e.reg.allocate()
	one := big.NewInt(1)
	switch arg {
	case Primal:
		return e.fmt.rup([]pbTerm{{CoeffAbs: one, Negated: true, Var: name}}, one)
	case Dual, Symmetry:
		return e.fmt.red([]pbTerm{{CoeffAbs: one, Negated: true, Var: name}}, one,
			[]witness{{Var: name, Value: 0}})
	default:
		return errors.Errorf("cert: unknown argument type %v for id %d", arg, id)
	}
}

// ChangeLowerBound fixes a variable to 1.
func (e *activeEngine) ChangeLowerBound(val *big.Rat, name string, arg ArgumentType) error {
	if val.Cmp(big.NewRat(1, 1)) != 0 {
		panic("cert: ChangeLowerBound requires val == 1")
	}
	id := e.reg.allocate()
	one := big.NewInt(1)
	switch arg {
	case Primal:
		return e.fmt.rup([]pbTerm{{CoeffAbs: one, Negated: false, Var: name}}, one)
	case Dual, Symmetry:
		return e.fmt.red([]pbTerm{{CoeffAbs: one, Negated: false, Var: name}}, one,
			[]witness{{Var: name, Value: 1}})
	default:
		return errors.Errorf("cert: unknown argument type %v for id %d", arg, id)
	}
}

// DominatingColumns records that fixing dominating over dominated
// preserves feasibility, grounded on VeriPb.hpp's dominating_columns.
func (e *activeEngine) DominatingColumns(dominating, dominated int, names []string, colMap []int) error {
	e.reg.allocate()
	one := big.NewInt(1)
	nameDominating := names[colMap[dominating]]
	nameDominated := names[colMap[dominated]]
	terms := []pbTerm{
		{CoeffAbs: one, Negated: false, Var: nameDominating},
		{CoeffAbs: one, Negated: true, Var: nameDominated},
	}
	// The witness here maps each column onto the other, not onto a
	// 0/1 value, since the grammar's witness production also allows
	// "<var> -> <var>".
	return e.fmt.redVarWitness(terms, one, []varWitness{
		{Var: nameDominating, Target: nameDominated},
		{Var: nameDominated, Target: nameDominating},
	})
}
