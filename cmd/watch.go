package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formatter"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files or directories...]",
	Short: "Re-verify a formula corpus whenever it changes on disk",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide corpus files or directories to watch")
			os.Exit(1)
		}

		config := loadConfig()

		opts, err := verifyOptions(config)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		runVerification(logger, args, opts)

		watcher, err := corpus.NewWatcher(logger, func(path string) {
			runVerification(logger, []string{path}, opts)
		})
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(args); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
	},
}

// runVerification loads and verifies paths, printing the report. Watch
// mode keeps going after a bad edit, so load failures are only logged.
func runVerification(logger *zap.Logger, paths []string, opts corpus.VerifyOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries, err := corpus.LoadAll(paths)
	if err != nil {
		logger.Error("Failed to load corpus", zap.Error(err))
		return
	}

	results, err := corpus.Verify(ctx, logger, entries, opts)
	if err != nil {
		logger.Error("Verification aborted", zap.Error(err))
		return
	}

	fmt.Print(formatter.FormatVerification(results))
}
