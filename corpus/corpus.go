// Package corpus loads formula collections from disk and batch-verifies
// the operator reductions against them.
package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/reduce"
	"github.com/gnolang/tprop/sat"
	"github.com/gnolang/tprop/truth"
)

// Entry is one formula read from a corpus file.
type Entry struct {
	Path    string
	Line    int
	Text    string
	Formula formula.Formula
}

// Source returns the path:line origin of the entry.
func (e Entry) Source() string {
	return fmt.Sprintf("%s:%d", e.Path, e.Line)
}

// Load reads one corpus file: UTF-8 text, one formula per line, blank
// lines and # comments ignored.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parsed, err := formula.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		entries = append(entries, Entry{Path: path, Line: line, Text: text, Formula: parsed})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entries, nil
}

// LoadAll reads the given corpus files and directories; directories are
// walked for corpus files.
func LoadAll(paths []string) ([]Entry, error) {
	var entries []Entry
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			loaded, err := Load(path)
			if err != nil {
				return nil, err
			}
			entries = append(entries, loaded...)
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && hasCorpusExtension(p) {
				loaded, err := Load(p)
				if err != nil {
					return err
				}
				entries = append(entries, loaded...)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

var corpusExtensions = map[string]bool{
	".prop": true,
}

func hasCorpusExtension(path string) bool {
	return corpusExtensions[filepath.Ext(path)]
}

// Checker selects how reduced formulas are compared with their input.
type Checker string

const (
	CheckerTruth Checker = "truth"
	CheckerSat   Checker = "sat"
	CheckerBoth  Checker = "both"
)

// ParseChecker resolves a checker name; the empty string selects truth
// tables.
func ParseChecker(name string) (Checker, error) {
	switch Checker(name) {
	case "":
		return CheckerTruth, nil
	case CheckerTruth, CheckerSat, CheckerBoth:
		return Checker(name), nil
	}
	return "", fmt.Errorf("unknown checker %q (valid: truth, sat, both)", name)
}

// Counterexample searches for a model separating f from g with the
// selected backend. The both checker cross-validates: truth tables
// first, then the solver.
func (c Checker) Counterexample(f, g formula.Formula) (truth.Model, bool) {
	switch c {
	case CheckerSat:
		return sat.Counterexample(f, g)
	case CheckerBoth:
		if witness, differs := truth.Counterexample(f, g); differs {
			return witness, true
		}
		return sat.Counterexample(f, g)
	default:
		return truth.Counterexample(f, g)
	}
}

// Result is the outcome of one entry reduced under one basis.
type Result struct {
	Entry   Entry
	Basis   reduce.Basis
	Reduced formula.Formula
	Passed  bool
	Witness truth.Model
}

// VerifyOptions control a Verify run.
type VerifyOptions struct {
	Bases    []reduce.Basis // nil means all five
	Checker  Checker        // zero value means truth tables
	Progress bool
	Cache    *Cache // optional; reuses results for unchanged corpus files
}

// Verify reduces every entry under every requested basis and checks that
// each result preserves the truth table of its input. The truth checker
// enumerates 2^n models per formula; corpora with wide formulas should
// select the sat checker instead.
func Verify(ctx context.Context, logger *zap.Logger, entries []Entry, opts VerifyOptions) ([]Result, error) {
	bases := opts.Bases
	if len(bases) == 0 {
		bases = reduce.Bases()
	}
	checker := opts.Checker
	if checker == "" {
		checker = CheckerTruth
	}

	options := cacheKey(bases, checker)
	pending := entries
	var results []Result
	if opts.Cache != nil {
		var cached []Result
		cached, pending = opts.Cache.split(entries, options)
		results = append(results, cached...)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(pending),
			progressbar.OptionSetDescription("verifying"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	resultChan := make(chan []Result, len(pending))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	for _, entry := range pending {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(entry Entry) {
				defer func() { <-sem }()
				resultChan <- verifyEntry(logger, checker, entry, bases)
				if bar != nil {
					bar.Add(1)
				}
			}(entry)
		}
	}

	var fresh []Result
	for range pending {
		fresh = append(fresh, <-resultChan...)
	}
	if bar != nil {
		fmt.Println()
	}

	if opts.Cache != nil {
		opts.Cache.store(logger, options, fresh)
	}
	results = append(results, fresh...)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Entry.Path != results[j].Entry.Path {
			return results[i].Entry.Path < results[j].Entry.Path
		}
		if results[i].Entry.Line != results[j].Entry.Line {
			return results[i].Entry.Line < results[j].Entry.Line
		}
		return results[i].Basis < results[j].Basis
	})
	return results, nil
}

func verifyEntry(logger *zap.Logger, checker Checker, entry Entry, bases []reduce.Basis) []Result {
	results := make([]Result, 0, len(bases))
	for _, b := range bases {
		reduced := b.Reduce(entry.Formula)
		witness, differs := checker.Counterexample(entry.Formula, reduced)
		if differs && logger != nil {
			logger.Warn("reduction changed the truth table",
				zap.String("source", entry.Source()),
				zap.String("formula", entry.Text),
				zap.String("basis", b.String()),
				zap.String("witness", witness.String()))
		}
		results = append(results, Result{
			Entry:   entry,
			Basis:   b,
			Reduced: reduced,
			Passed:  !differs,
			Witness: witness,
		})
	}
	return results
}

// cacheKey fingerprints a bases/checker selection so cached results
// are reused only by identical runs.
func cacheKey(bases []reduce.Basis, checker Checker) string {
	names := make([]string, 0, len(bases))
	for _, b := range bases {
		names = append(names, b.String())
	}
	return strings.Join(names, ",") + "|" + string(checker)
}

// Config is the optional .tprop.yaml configuration.
type Config struct {
	Name     string `yaml:"name"`
	Basis    string `yaml:"basis"`
	Checker  string `yaml:"checker"`
	NoColor  bool   `yaml:"no-color"`
	CacheDir string `yaml:"cache-dir"`
}

// LoadConfig parses a yaml configuration file. A missing or empty file
// yields the zero config.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}
