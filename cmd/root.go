package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
)

var (
	cfgFile string
	timeout time.Duration
	noColor bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "tprop [formulas...]",
	Short:            "tprop - reduce propositional formulas to restricted operator sets",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'tprop' is entered
			_ = cmd.Help()
			return
		}
		// Format: tprop [formula1 formula2 ...] => behaves like the reduce subcommand
		reduceCmd.Run(reduceCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

// loadConfig reads the optional configuration file and applies the
// global color preference. Flags win over file values.
func loadConfig() corpus.Config {
	config, err := corpus.LoadConfig(cfgFile)
	if err != nil {
		logger.Fatal("Failed to read configuration file", zap.Error(err))
	}
	if noColor || config.NoColor {
		color.NoColor = true
	}
	return config
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".tprop.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Timeout for commands")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(equivCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(watchCmd)
}
