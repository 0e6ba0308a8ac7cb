package formula

import "sort"

// Equal reports whether a and b are structurally identical.
func Equal(a, b Formula) bool {
	switch x := a.(type) {
	case Constant:
		y, ok := b.(Constant)
		return ok && x.Value == y.Value
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	case Unary:
		y, ok := b.(Unary)
		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	panic("formula: invalid formula type")
}

// Vars returns the distinct variable names of f in sorted order.
func Vars(f Formula) []string {
	set := make(map[string]struct{})
	collectVars(f, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(f Formula, set map[string]struct{}) {
	switch g := f.(type) {
	case Constant:
	case Variable:
		set[g.Name] = struct{}{}
	case Unary:
		collectVars(g.X, set)
	case Binary:
		collectVars(g.Left, set)
		collectVars(g.Right, set)
	default:
		panic("formula: invalid formula type")
	}
}

// Operators returns the distinct operator and constant spellings of f in
// sorted order. Variables contribute nothing; constants contribute "T"
// or "F".
func Operators(f Formula) []string {
	set := make(map[string]struct{})
	collectOperators(f, set)
	ops := make([]string, 0, len(set))
	for op := range set {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func collectOperators(f Formula, set map[string]struct{}) {
	switch g := f.(type) {
	case Constant:
		set[g.String()] = struct{}{}
	case Variable:
	case Unary:
		set[g.Op.String()] = struct{}{}
		collectOperators(g.X, set)
	case Binary:
		set[g.Op.String()] = struct{}{}
		collectOperators(g.Left, set)
		collectOperators(g.Right, set)
	default:
		panic("formula: invalid formula type")
	}
}
