package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formatter"
	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/reduce"
)

var (
	basisName       string
	allBases        bool
	verifyReduction bool
	satCheck        bool
	fromFiles       bool
	isJson          bool
	jsonOutput      string
)

// source is one formula to reduce, either typed on the command line or
// read from a corpus file.
type source struct {
	label   string
	text    string
	formula formula.Formula
}

// reductionReport is the JSON shape for one source formula.
type reductionReport struct {
	Source     string         `json:"source"`
	Formula    string         `json:"formula"`
	Reductions []reductionRow `json:"reductions"`
}

type reductionRow struct {
	Basis   string `json:"basis"`
	Result  string `json:"result"`
	Checked bool   `json:"checked"`
	Valid   bool   `json:"valid"`
	Witness string `json:"witness,omitempty"`
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [formulas...]",
	Short: "Rewrite formulas into a restricted operator basis",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide formulas to reduce")
			os.Exit(1)
		}

		config := loadConfig()

		bases, err := selectBases(config)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		sources := gatherSources(logger, args, fromFiles)

		check := verifyReduction || satCheck
		checker := corpus.CheckerTruth
		if satCheck {
			checker = corpus.CheckerSat
		}

		allValid := true
		reductions := make([][]formatter.Reduction, 0, len(sources))
		for _, src := range sources {
			rs, ok := buildReductions(src.formula, bases, checker, check)
			if !ok {
				allValid = false
			}
			reductions = append(reductions, rs)
		}

		printReductions(logger, sources, reductions, isJson, jsonOutput)

		if !allValid {
			os.Exit(1)
		}
	},
}

func init() {
	reduceCmd.Flags().StringVarP(&basisName, "basis", "b", "", "Target operator basis (not-and-or, not-and, nand, implies-not, implies-false)")
	reduceCmd.Flags().BoolVar(&allBases, "all", false, "Reduce into every supported basis")
	reduceCmd.Flags().BoolVar(&verifyReduction, "verify", false, "Check each reduction against the source truth table")
	reduceCmd.Flags().BoolVar(&satCheck, "sat", false, "Check each reduction with the SAT solver")
	reduceCmd.Flags().BoolVarP(&fromFiles, "file", "f", false, "Treat arguments as formula files instead of formulas")
	reduceCmd.Flags().BoolVar(&isJson, "json", false, "Output results in JSON format")
	reduceCmd.Flags().StringVarP(&jsonOutput, "output", "o", "", "Output path for JSON results")
}

// selectBases picks the target bases from the --all and --basis flags,
// falling back to the configuration file and then to not-and-or.
func selectBases(config corpus.Config) ([]reduce.Basis, error) {
	if allBases {
		return reduce.Bases(), nil
	}
	name := basisName
	if name == "" {
		name = config.Basis
	}
	if name == "" {
		return []reduce.Basis{reduce.BasisNotAndOr}, nil
	}
	b, err := reduce.ParseBasis(name)
	if err != nil {
		return nil, err
	}
	return []reduce.Basis{b}, nil
}

func gatherSources(logger *zap.Logger, args []string, fromFiles bool) []source {
	if fromFiles {
		entries, err := corpus.LoadAll(args)
		if err != nil {
			logger.Error("Failed to load formula files", zap.Error(err))
			os.Exit(1)
		}
		sources := make([]source, 0, len(entries))
		for _, entry := range entries {
			sources = append(sources, source{label: entry.Source(), text: entry.Text, formula: entry.Formula})
		}
		return sources
	}

	sources := make([]source, 0, len(args))
	for _, arg := range args {
		f, err := formula.Parse(arg)
		if err != nil {
			logger.Error("Failed to parse formula", zap.String("formula", arg), zap.Error(err))
			os.Exit(1)
		}
		sources = append(sources, source{label: arg, text: arg, formula: f})
	}
	return sources
}

// buildReductions reduces f into every target basis and reports whether
// all checked reductions kept the truth table.
func buildReductions(f formula.Formula, bases []reduce.Basis, checker corpus.Checker, check bool) ([]formatter.Reduction, bool) {
	reductions := make([]formatter.Reduction, 0, len(bases))
	ok := true
	for _, b := range bases {
		r := formatter.Reduction{Basis: b, Result: b.Reduce(f)}
		if check {
			r.Checked = true
			witness, differs := checker.Counterexample(f, r.Result)
			r.Valid = !differs
			if differs {
				r.Witness = witness
				ok = false
			}
		}
		reductions = append(reductions, r)
	}
	return reductions, ok
}

func printReductions(logger *zap.Logger, sources []source, reductions [][]formatter.Reduction, isJson bool, jsonOutput string) {
	if !isJson {
		for i, src := range sources {
			if src.label != src.text {
				fmt.Printf("%s:\n", src.label)
			}
			fmt.Println(formatter.FormatReduction(src.formula, reductions[i]))
		}
		return
	}

	reports := make([]reductionReport, 0, len(sources))
	for i, src := range sources {
		reports = append(reports, reductionReport{
			Source:     src.label,
			Formula:    src.text,
			Reductions: reductionRows(reductions[i]),
		})
	}
	d, err := json.Marshal(reports)
	if err != nil {
		logger.Error("Failed to marshal reductions to JSON", zap.Error(err))
		os.Exit(1)
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Failed to create output file", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Failed to write output file", zap.Error(err))
		os.Exit(1)
	}
}

func reductionRows(reductions []formatter.Reduction) []reductionRow {
	rows := make([]reductionRow, 0, len(reductions))
	for _, r := range reductions {
		row := reductionRow{
			Basis:   r.Basis.String(),
			Result:  r.Result.String(),
			Checked: r.Checked,
			Valid:   r.Valid,
		}
		if len(r.Witness) > 0 {
			row.Witness = r.Witness.String()
		}
		rows = append(rows, row)
	}
	return rows
}
