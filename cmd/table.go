package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/formatter"
	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/truth"
)

// maxTableVars caps truth-table output; above it the table has more
// than 65536 rows and stops being readable.
const maxTableVars = 16

var tableCmd = &cobra.Command{
	Use:   "table [formulas...]",
	Short: "Print the truth table of each formula",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide formulas to tabulate")
			os.Exit(1)
		}

		loadConfig()

		for i, arg := range args {
			f, err := formula.Parse(arg)
			if err != nil {
				logger.Error("Failed to parse formula", zap.String("formula", arg), zap.Error(err))
				os.Exit(1)
			}
			if n := len(formula.Vars(f)); n > maxTableVars {
				fmt.Printf("error: %s has %d variables, truth tables support at most %d\n", arg, n, maxTableVars)
				os.Exit(1)
			}
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(formatter.FormatTable(truth.NewTable(f)))
		}
	},
}
