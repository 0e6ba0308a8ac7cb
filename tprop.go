// Package tprop exposes one-call helpers over the formula, reduce and
// truth packages for callers that do not need the full API.
package tprop

import (
	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/reduce"
	"github.com/gnolang/tprop/truth"
)

// Reduce parses source and rewrites it into the target basis.
func Reduce(source string, basis reduce.Basis) (string, error) {
	f, err := formula.Parse(source)
	if err != nil {
		return "", err
	}
	return basis.Reduce(f).String(), nil
}

// ReduceAll rewrites source into every supported basis, keyed by the
// basis name.
func ReduceAll(source string) (map[string]string, error) {
	f, err := formula.Parse(source)
	if err != nil {
		return nil, err
	}
	results := make(map[string]string, len(reduce.Bases()))
	for _, b := range reduce.Bases() {
		results[b.String()] = b.Reduce(f).String()
	}
	return results, nil
}

// Equivalent reports whether two formula strings share a truth table.
func Equivalent(a, b string) (bool, error) {
	f, err := formula.Parse(a)
	if err != nil {
		return false, err
	}
	g, err := formula.Parse(b)
	if err != nil {
		return false, err
	}
	return truth.Equivalent(f, g), nil
}
