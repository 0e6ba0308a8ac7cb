package truth

import (
	"sort"

	"github.com/gnolang/tprop/formula"
)

// Counterexample searches for a model under which f and g disagree. It
// enumerates every assignment over the union of both variable sets, so
// cost is exponential in the number of distinct variables; the sat
// package covers formulas too wide for enumeration.
func Counterexample(f, g formula.Formula) (Model, bool) {
	vars := unionVars(f, g)
	model := make(Model, len(vars))
	for i := 0; i < 1<<len(vars); i++ {
		for j, name := range vars {
			model[name] = i>>(len(vars)-1-j)&1 == 1
		}
		if Eval(f, model) != Eval(g, model) {
			witness := make(Model, len(vars))
			for name, val := range model {
				witness[name] = val
			}
			return witness, true
		}
	}
	return nil, false
}

// Equivalent reports whether f and g have the same truth table.
func Equivalent(f, g formula.Formula) bool {
	_, differ := Counterexample(f, g)
	return !differ
}

// Tautology reports whether f is true under every assignment.
func Tautology(f formula.Formula) bool {
	return Equivalent(f, formula.True)
}

// Contradiction reports whether f is false under every assignment.
func Contradiction(f formula.Formula) bool {
	return Equivalent(f, formula.False)
}

// Satisfiable searches for a model under which f is true.
func Satisfiable(f formula.Formula) (Model, bool) {
	return Counterexample(f, formula.False)
}

func unionVars(f, g formula.Formula) []string {
	set := make(map[string]struct{})
	for _, name := range formula.Vars(f) {
		set[name] = struct{}{}
	}
	for _, name := range formula.Vars(g) {
		set[name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
