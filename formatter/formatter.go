// Package formatter renders formulas, truth tables and verification
// reports for the terminal.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/reduce"
	"github.com/gnolang/tprop/truth"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	basisStyle  = color.New(color.FgYellow, color.Bold)
	okStyle     = color.New(color.FgGreen, color.Bold)
	failStyle   = color.New(color.FgRed, color.Bold)
	trueStyle   = color.New(color.FgGreen)
	falseStyle  = color.New(color.FgRed)
	sourceStyle = color.New(color.FgCyan)
)

// Reduction is one rendered reduction of a source formula.
type Reduction struct {
	Basis   reduce.Basis
	Result  formula.Formula
	Checked bool
	Valid   bool
	Witness truth.Model
}

const reductionTemplate = `{{header .Source}}
{{- range .Reductions}}
{{reductionLine .}}
{{- end}}
`

type reductionData struct {
	Source     formula.Formula
	Reductions []Reduction
}

// FormatReduction renders a source formula followed by one line per
// reduced basis, with a verification verdict when one was computed.
func FormatReduction(source formula.Formula, reductions []Reduction) string {
	funcMap := template.FuncMap{
		"header":        func(f formula.Formula) string { return headerStyle.Sprint(f.String()) },
		"reductionLine": reductionLine,
	}
	tmpl := template.Must(template.New("reduction").Funcs(funcMap).Parse(reductionTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, reductionData{Source: source, Reductions: reductions}); err != nil {
		return fmt.Sprintf("Error formatting reduction: %v", err)
	}
	return buf.String()
}

func reductionLine(r Reduction) string {
	line := basisStyle.Sprintf("  %13s:", r.Basis)
	line += fmt.Sprintf(" %s", r.Result)
	if !r.Checked {
		return line
	}
	if r.Valid {
		return line + okStyle.Sprint(" ok")
	}
	line += failStyle.Sprint(" FAIL")
	if len(r.Witness) > 0 {
		line += fmt.Sprintf(" counterexample: %s", r.Witness)
	}
	return line
}

// FormatTable renders a truth table with one column per variable and the
// formula's value in the last column.
func FormatTable(table *truth.Table) string {
	var builder strings.Builder

	formulaText := table.Formula.String()

	headers := make([]string, 0, len(table.Vars)+1)
	for _, name := range table.Vars {
		headers = append(headers, headerStyle.Sprint(name))
	}
	headers = append(headers, headerStyle.Sprint(formulaText))
	builder.WriteString(strings.Join(headers, " | "))
	builder.WriteByte('\n')

	dividers := make([]string, 0, len(table.Vars)+1)
	for _, name := range table.Vars {
		dividers = append(dividers, strings.Repeat("-", len(name)))
	}
	dividers = append(dividers, strings.Repeat("-", len(formulaText)))
	builder.WriteString(strings.Join(dividers, "-+-"))
	builder.WriteByte('\n')

	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Inputs)+1)
		for i, value := range row.Inputs {
			cells = append(cells, valueCell(value, len(table.Vars[i])))
		}
		cells = append(cells, valueCell(row.Output, len(formulaText)))
		builder.WriteString(strings.TrimRight(strings.Join(cells, " | "), " "))
		builder.WriteByte('\n')
	}

	return builder.String()
}

// valueCell centers a truth value under a header of the given width.
// Widths are computed from unstyled text so alignment survives color
// escape codes.
func valueCell(value bool, width int) string {
	left := (width - 1) / 2
	return strings.Repeat(" ", left) + truthLetter(value) + strings.Repeat(" ", width-1-left)
}

func truthLetter(value bool) string {
	if value {
		return trueStyle.Sprint("T")
	}
	return falseStyle.Sprint("F")
}

// FormatEquivalence renders the verdict for a pair of formulas. When
// they differ, witness must bind the union of both variable sets.
func FormatEquivalence(f, g formula.Formula, witness truth.Model, equivalent bool) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("left:  %s\n", headerStyle.Sprint(f.String())))
	builder.WriteString(fmt.Sprintf("right: %s\n", headerStyle.Sprint(g.String())))

	if equivalent {
		builder.WriteString(okStyle.Sprint("equivalent"))
		builder.WriteByte('\n')
		return builder.String()
	}

	builder.WriteString(failStyle.Sprint("not equivalent"))
	builder.WriteByte('\n')
	if len(witness) > 0 {
		builder.WriteString(fmt.Sprintf("  counterexample: %s\n", witness))
	}
	builder.WriteString(fmt.Sprintf("  left = %s, right = %s\n",
		truthLetter(truth.Eval(f, witness)), truthLetter(truth.Eval(g, witness))))
	return builder.String()
}

// FormatVerification renders failing corpus checks grouped per file,
// followed by a one-line summary.
func FormatVerification(results []corpus.Result) string {
	var builder strings.Builder

	failures := map[string][]corpus.Result{}
	sources := map[string]bool{}
	failed := 0
	for _, r := range results {
		sources[r.Entry.Source()] = true
		if !r.Passed {
			failed++
			failures[r.Entry.Path] = append(failures[r.Entry.Path], r)
		}
	}

	paths := maps.Keys(failures)
	slices.Sort(paths)
	for _, path := range paths {
		for _, r := range failures[path] {
			builder.WriteString(failStyle.Sprint("FAIL "))
			builder.WriteString(sourceStyle.Sprintf("%s: ", r.Entry.Source()))
			builder.WriteString(fmt.Sprintf("%s under %s", r.Entry.Text, basisStyle.Sprint(r.Basis.String())))
			if len(r.Witness) > 0 {
				builder.WriteString(fmt.Sprintf(" (counterexample: %s)", r.Witness))
			}
			builder.WriteByte('\n')
		}
	}

	if failed == 0 {
		builder.WriteString(okStyle.Sprint("PASS "))
	} else {
		builder.WriteString(failStyle.Sprint("FAIL "))
	}
	builder.WriteString(fmt.Sprintf("%d formulas, %d checks, %d failures\n", len(sources), len(results), failed))
	return builder.String()
}
