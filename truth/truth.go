// Package truth gives formulas their truth-table semantics: evaluation
// under a model, full tables, and semantic comparison by enumeration.
package truth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnolang/tprop/formula"
)

// Model maps variable names to truth values.
type Model map[string]bool

// String renders the model as space-separated name=T / name=F pairs in
// sorted name order.
func (m Model) String() string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		if m[name] {
			b.WriteString("=T")
		} else {
			b.WriteString("=F")
		}
	}
	return b.String()
}

// Eval evaluates f under the given model. Every variable of f must be
// bound; a missing binding is a programming error and panics.
func Eval(f formula.Formula, model Model) bool {
	switch g := f.(type) {
	case formula.Constant:
		return g.Value
	case formula.Variable:
		val, ok := model[g.Name]
		if !ok {
			panic(fmt.Sprintf("truth: no binding for variable %q", g.Name))
		}
		return val
	case formula.Unary:
		x := Eval(g.X, model)
		switch g.Op {
		case formula.OpNot:
			return !x
		default:
			panic(fmt.Sprintf("truth: invalid unary operator %q", g.Op))
		}
	case formula.Binary:
		left := Eval(g.Left, model)
		right := Eval(g.Right, model)
		return evalBinary(g.Op, left, right)
	}
	panic("truth: invalid formula type")
}

func evalBinary(op formula.BinaryOp, left, right bool) bool {
	switch op {
	case formula.OpAnd:
		return left && right
	case formula.OpOr:
		return left || right
	case formula.OpImplies:
		return !left || right
	case formula.OpXor:
		return left != right
	case formula.OpIff:
		return left == right
	case formula.OpNand:
		return !(left && right)
	case formula.OpNor:
		return !(left || right)
	default:
		panic(fmt.Sprintf("truth: invalid binary operator %q", op))
	}
}
