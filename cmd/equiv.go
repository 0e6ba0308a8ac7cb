package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formatter"
	"github.com/gnolang/tprop/formula"
)

var equivSat bool

var equivCmd = &cobra.Command{
	Use:   "equiv <formula> <formula>",
	Short: "Decide whether two formulas have the same truth table",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("error: Please provide exactly two formulas")
			os.Exit(1)
		}

		loadConfig()

		f, err := formula.Parse(args[0])
		if err != nil {
			logger.Error("Failed to parse formula", zap.String("formula", args[0]), zap.Error(err))
			os.Exit(1)
		}
		g, err := formula.Parse(args[1])
		if err != nil {
			logger.Error("Failed to parse formula", zap.String("formula", args[1]), zap.Error(err))
			os.Exit(1)
		}

		checker := corpus.CheckerTruth
		if equivSat {
			checker = corpus.CheckerSat
		}
		witness, differs := checker.Counterexample(f, g)

		fmt.Print(formatter.FormatEquivalence(f, g, witness, !differs))

		if differs {
			os.Exit(1)
		}
	},
}

func init() {
	equivCmd.Flags().BoolVar(&equivSat, "sat", false, "Decide with the SAT solver instead of truth tables")
}
