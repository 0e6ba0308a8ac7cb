// Package sat answers satisfiability and equivalence questions with a
// SAT solver instead of truth-table enumeration, which stays tractable
// when formulas carry many variables.
package sat

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
	"golang.org/x/exp/slices"

	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/truth"
)

// Translate converts a formula into the solver's representation.
// Constant operands fold during translation so the solver only ever
// sees live clauses; NAND and NOR have no solver-side counterpart and
// are expressed through negation.
func Translate(f formula.Formula) bf.Formula {
	switch f := f.(type) {
	case formula.Constant:
		if f.Value {
			return bf.True
		}
		return bf.False
	case formula.Variable:
		return bf.Var(f.Name)
	case formula.Unary:
		return negate(Translate(f.X))
	case formula.Binary:
		return translateBinary(f.Op, Translate(f.Left), Translate(f.Right))
	default:
		panic("sat: invalid formula type")
	}
}

func translateBinary(op formula.BinaryOp, left, right bf.Formula) bf.Formula {
	switch op {
	case formula.OpAnd:
		switch {
		case left == bf.False || right == bf.False:
			return bf.False
		case left == bf.True:
			return right
		case right == bf.True:
			return left
		}
		return bf.And(left, right)
	case formula.OpOr:
		switch {
		case left == bf.True || right == bf.True:
			return bf.True
		case left == bf.False:
			return right
		case right == bf.False:
			return left
		}
		return bf.Or(left, right)
	case formula.OpImplies:
		switch {
		case left == bf.False || right == bf.True:
			return bf.True
		case left == bf.True:
			return right
		case right == bf.False:
			return negate(left)
		}
		return bf.Implies(left, right)
	case formula.OpXor:
		switch {
		case left == bf.True:
			return negate(right)
		case left == bf.False:
			return right
		case right == bf.True:
			return negate(left)
		case right == bf.False:
			return left
		}
		return bf.Xor(left, right)
	case formula.OpIff:
		switch {
		case left == bf.True:
			return right
		case left == bf.False:
			return negate(right)
		case right == bf.True:
			return left
		case right == bf.False:
			return negate(left)
		}
		return bf.Eq(left, right)
	case formula.OpNand:
		return negate(translateBinary(formula.OpAnd, left, right))
	case formula.OpNor:
		return negate(translateBinary(formula.OpOr, left, right))
	default:
		panic(fmt.Sprintf("sat: invalid binary operator %d", int(op)))
	}
}

func negate(f bf.Formula) bf.Formula {
	switch f {
	case bf.True:
		return bf.False
	case bf.False:
		return bf.True
	}
	return bf.Not(f)
}

// Satisfiable reports whether f has a satisfying assignment and returns
// one if it does. The returned model binds every variable of f; the
// solver leaves unconstrained variables out of its assignment and those
// default to false.
func Satisfiable(f formula.Formula) (truth.Model, bool) {
	assignment := bf.Solve(Translate(f))
	if assignment == nil {
		return nil, false
	}
	return completeModel(assignment, formula.Vars(f)), true
}

// Counterexample searches for an assignment on which f and g disagree.
// It returns a model over the union of both variable sets, or false if
// the formulas are equivalent.
func Counterexample(f, g formula.Formula) (truth.Model, bool) {
	assignment := bf.Solve(translateBinary(formula.OpXor, Translate(f), Translate(g)))
	if assignment == nil {
		return nil, false
	}
	names := append(formula.Vars(f), formula.Vars(g)...)
	slices.Sort(names)
	names = slices.Compact(names)
	return completeModel(assignment, names), true
}

// Equivalent reports whether f and g agree on every assignment.
func Equivalent(f, g formula.Formula) bool {
	_, differ := Counterexample(f, g)
	return !differ
}

// Tautology reports whether f holds under every assignment.
func Tautology(f formula.Formula) bool {
	return bf.Solve(negate(Translate(f))) == nil
}

// Contradiction reports whether f holds under no assignment.
func Contradiction(f formula.Formula) bool {
	return bf.Solve(Translate(f)) == nil
}

func completeModel(assignment map[string]bool, names []string) truth.Model {
	model := make(truth.Model, len(names))
	for _, name := range names {
		model[name] = assignment[name]
	}
	return model
}
