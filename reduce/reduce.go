package reduce

import (
	"fmt"

	"github.com/gnolang/tprop/formula"
)

// idiomVar is the reserved variable used when eliminating constants. A
// formula that already uses p keeps its own p: the introduced subtrees
// (p | ~p), (p & ~p) and (p -> p) are constant-valued under either
// binding of p, so the rewrite stays equivalent.
const idiomVar = "p"

// ToNotAndOr rewrites f over the alphabet {~, &, |}. Implication,
// exclusive disjunction, biconditional, NAND, NOR and both constants are
// eliminated; variables and the surviving connectives pass through with
// their operands rewritten.
func ToNotAndOr(f formula.Formula) formula.Formula {
	switch g := f.(type) {
	case formula.Constant:
		p := formula.Var(idiomVar)
		if g.Value {
			// T => (p | ~p)
			return formula.Or(p, formula.Not(p))
		}
		// F => (p & ~p)
		return formula.And(p, formula.Not(p))

	case formula.Variable:
		return g

	case formula.Unary:
		return formula.Unary{Op: g.Op, X: ToNotAndOr(g.X)}

	case formula.Binary:
		left := ToNotAndOr(g.Left)
		right := ToNotAndOr(g.Right)
		switch g.Op {
		case formula.OpAnd, formula.OpOr:
			return formula.Binary{Op: g.Op, Left: left, Right: right}
		case formula.OpImplies:
			// (l -> r) => (~l | r)
			return formula.Or(formula.Not(left), right)
		case formula.OpXor:
			// (l + r) => ((l & ~r) | (~l & r))
			return formula.Or(
				formula.And(left, formula.Not(right)),
				formula.And(formula.Not(left), right),
			)
		case formula.OpIff:
			// (l <-> r) => ((~l | r) & (l | ~r))
			return formula.And(
				formula.Or(formula.Not(left), right),
				formula.Or(left, formula.Not(right)),
			)
		case formula.OpNand:
			// (l -& r) => ~(l & r)
			return formula.Not(formula.And(left, right))
		case formula.OpNor:
			// (l -| r) => ~(l | r)
			return formula.Not(formula.Or(left, right))
		}
	}
	panic("reduce: invalid formula type")
}

// ToNotAnd rewrites f over the alphabet {~, &}. The formula first runs
// through ToNotAndOr; disjunctions are then removed through De Morgan's
// law.
func ToNotAnd(f formula.Formula) formula.Formula {
	return convertOr(ToNotAndOr(f))
}

// convertOr removes disjunctions from a {~, &, |} formula.
func convertOr(f formula.Formula) formula.Formula {
	switch g := f.(type) {
	case formula.Variable:
		return g

	case formula.Unary:
		return formula.Unary{Op: g.Op, X: convertOr(g.X)}

	case formula.Binary:
		left := convertOr(g.Left)
		right := convertOr(g.Right)
		switch g.Op {
		case formula.OpAnd:
			return formula.Binary{Op: g.Op, Left: left, Right: right}
		case formula.OpOr:
			// (l | r) => ~(~l & ~r)
			return formula.Not(formula.And(formula.Not(left), formula.Not(right)))
		}
		panic(fmt.Sprintf("reduce: operator %q outside the {~, &, |} alphabet", g.Op))
	}
	panic(fmt.Sprintf("reduce: %s outside the {~, &, |} alphabet", f))
}

// ToNand rewrites f over the single-operator alphabet {-&}. The formula
// first runs through ToNotAnd; negations then become self-NAND and
// conjunctions a doubled NAND.
func ToNand(f formula.Formula) formula.Formula {
	return convertNand(ToNotAnd(f))
}

// convertNand collapses a {~, &} formula to NAND alone.
func convertNand(f formula.Formula) formula.Formula {
	switch g := f.(type) {
	case formula.Variable:
		return g

	case formula.Unary:
		x := convertNand(g.X)
		// ~x => (x -& x)
		return formula.Nand(x, x)

	case formula.Binary:
		if g.Op == formula.OpAnd {
			// (l & r) => (d -& d) where d = (l -& r)
			d := formula.Nand(convertNand(g.Left), convertNand(g.Right))
			return formula.Nand(d, d)
		}
		panic(fmt.Sprintf("reduce: operator %q outside the {~, &} alphabet", g.Op))
	}
	panic(fmt.Sprintf("reduce: %s outside the {~, &} alphabet", f))
}

// ToImpliesNot rewrites f over the alphabet {->, ~}. A bare constant
// maps straight to its idiom, (p -> p) for T and ~(p -> p) for F. Any
// other formula runs through ToNotAndOr and has conjunctions and
// disjunctions re-expressed through implication.
func ToImpliesNot(f formula.Formula) formula.Formula {
	if c, ok := f.(formula.Constant); ok {
		p := formula.Var(idiomVar)
		if c.Value {
			// T => (p -> p)
			return formula.Implies(p, p)
		}
		// F => ~(p -> p)
		return formula.Not(formula.Implies(p, p))
	}
	return convertImpliesNot(ToNotAndOr(f))
}

// convertImpliesNot removes conjunctions and disjunctions from a
// {~, &, |} formula.
func convertImpliesNot(f formula.Formula) formula.Formula {
	switch g := f.(type) {
	case formula.Variable:
		return g

	case formula.Unary:
		return formula.Unary{Op: g.Op, X: convertImpliesNot(g.X)}

	case formula.Binary:
		left := convertImpliesNot(g.Left)
		right := convertImpliesNot(g.Right)
		switch g.Op {
		case formula.OpAnd:
			// (l & r) => ~(l -> ~r)
			return formula.Not(formula.Implies(left, formula.Not(right)))
		case formula.OpOr:
			// (l | r) => (~l -> r)
			return formula.Implies(formula.Not(left), right)
		}
		panic(fmt.Sprintf("reduce: operator %q outside the {~, &, |} alphabet", g.Op))
	}
	panic(fmt.Sprintf("reduce: %s outside the {~, &, |} alphabet", f))
}

// ToImpliesFalse rewrites f over the alphabet {->, F}. A bare T maps
// straight to (F -> F). Any other formula runs through ToImpliesNot and
// has negations replaced by implication of F.
func ToImpliesFalse(f formula.Formula) formula.Formula {
	if c, ok := f.(formula.Constant); ok && c.Value {
		// T => (F -> F)
		return formula.Implies(formula.False, formula.False)
	}
	return convertImpliesFalse(ToImpliesNot(f))
}

// convertImpliesFalse removes negations; implications and atoms pass
// through.
func convertImpliesFalse(f formula.Formula) formula.Formula {
	switch g := f.(type) {
	case formula.Variable, formula.Constant:
		return g

	case formula.Unary:
		// ~x => (x -> F)
		return formula.Implies(convertImpliesFalse(g.X), formula.False)

	case formula.Binary:
		left := convertImpliesFalse(g.Left)
		right := convertImpliesFalse(g.Right)
		if g.Op == formula.OpImplies {
			return formula.Binary{Op: g.Op, Left: left, Right: right}
		}
		panic(fmt.Sprintf("reduce: operator %q outside the {->, ~} alphabet", g.Op))
	}
	panic("reduce: invalid formula type")
}
