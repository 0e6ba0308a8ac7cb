package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formatter"
	"github.com/gnolang/tprop/reduce"
)

var (
	verifyBasis   string
	verifyChecker string
	verifyCache   string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [files or directories...]",
	Short: "Check every reduction of a formula corpus against its source truth table",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide corpus files or directories to verify")
			os.Exit(1)
		}

		config := loadConfig()

		opts, err := verifyOptions(config)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		opts.Progress = !color.NoColor

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		entries, err := corpus.LoadAll(args)
		if err != nil {
			logger.Error("Failed to load corpus", zap.Error(err))
			os.Exit(1)
		}

		results, err := corpus.Verify(ctx, logger, entries, opts)
		if err != nil {
			logger.Error("Verification aborted", zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(formatter.FormatVerification(results))

		for _, r := range results {
			if !r.Passed {
				os.Exit(1)
			}
		}
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyBasis, "basis", "b", "", "Verify a single basis instead of all of them")
	verifyCmd.Flags().StringVar(&verifyChecker, "checker", "", "Equivalence checker to use (truth, sat, both)")
	verifyCmd.Flags().StringVar(&verifyCache, "cache-dir", "", "Directory for cached verification results")

	watchCmd.Flags().StringVarP(&verifyBasis, "basis", "b", "", "Verify a single basis instead of all of them")
	watchCmd.Flags().StringVar(&verifyChecker, "checker", "", "Equivalence checker to use (truth, sat, both)")
	watchCmd.Flags().StringVar(&verifyCache, "cache-dir", "", "Directory for cached verification results")
}

// verifyOptions builds the corpus verification options from the
// command flags, falling back to the configuration file.
func verifyOptions(config corpus.Config) (corpus.VerifyOptions, error) {
	var opts corpus.VerifyOptions

	name := verifyBasis
	if name == "" {
		name = config.Basis
	}
	if name != "" {
		b, err := reduce.ParseBasis(name)
		if err != nil {
			return opts, err
		}
		opts.Bases = []reduce.Basis{b}
	}

	checkerName := verifyChecker
	if checkerName == "" {
		checkerName = config.Checker
	}
	checker, err := corpus.ParseChecker(checkerName)
	if err != nil {
		return opts, err
	}
	opts.Checker = checker

	cacheDir := verifyCache
	if cacheDir == "" {
		cacheDir = config.CacheDir
	}
	if cacheDir != "" {
		cache, err := corpus.NewCache(cacheDir)
		if err != nil {
			return opts, err
		}
		opts.Cache = cache
	}

	return opts, nil
}
