package truth

import "github.com/gnolang/tprop/formula"

// Table is the full truth table of a formula.
type Table struct {
	Formula formula.Formula
	Vars    []string
	Rows    []Row
}

// Row is one line of a truth table.
type Row struct {
	Inputs []bool // assignment, parallel to Table.Vars
	Output bool
}

// NewTable computes the truth table of f. Variables appear in sorted
// order; rows are in binary counting order with the first variable most
// significant and false before true. The table has 2^n rows, so callers
// must bound n themselves.
func NewTable(f formula.Formula) *Table {
	vars := formula.Vars(f)
	rows := make([]Row, 0, 1<<len(vars))
	model := make(Model, len(vars))
	for i := 0; i < 1<<len(vars); i++ {
		inputs := make([]bool, len(vars))
		for j, name := range vars {
			val := i>>(len(vars)-1-j)&1 == 1
			inputs[j] = val
			model[name] = val
		}
		rows = append(rows, Row{Inputs: inputs, Output: Eval(f, model)})
	}
	return &Table{Formula: f, Vars: vars, Rows: rows}
}
