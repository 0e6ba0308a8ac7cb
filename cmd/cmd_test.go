package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/corpus"
	"github.com/gnolang/tprop/formatter"
	"github.com/gnolang/tprop/formula"
	"github.com/gnolang/tprop/reduce"
	"github.com/gnolang/tprop/truth"
)

func TestSelectBases(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		all      bool
		config   corpus.Config
		expected []reduce.Basis
		wantErr  bool
	}{
		{name: "default", expected: []reduce.Basis{reduce.BasisNotAndOr}},
		{name: "flag selection", flag: "nand", expected: []reduce.Basis{reduce.BasisNand}},
		{name: "config fallback", config: corpus.Config{Basis: "implies-false"}, expected: []reduce.Basis{reduce.BasisImpliesFalse}},
		{name: "flag wins over config", flag: "not-and", config: corpus.Config{Basis: "implies-false"}, expected: []reduce.Basis{reduce.BasisNotAnd}},
		{name: "all bases", all: true, flag: "nand", expected: reduce.Bases()},
		{name: "unknown name", flag: "horn", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basisName = tt.flag
			allBases = tt.all
			defer func() { basisName, allBases = "", false }()

			bases, err := selectBases(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bases)
		})
	}
}

func TestVerifyOptions(t *testing.T) {
	tests := []struct {
		name        string
		basis       string
		checker     string
		config      corpus.Config
		wantBases   []reduce.Basis
		wantChecker corpus.Checker
		wantErr     bool
	}{
		{name: "defaults", wantChecker: corpus.CheckerTruth},
		{name: "single basis", basis: "nand", wantBases: []reduce.Basis{reduce.BasisNand}, wantChecker: corpus.CheckerTruth},
		{name: "checker flag", checker: "sat", wantChecker: corpus.CheckerSat},
		{name: "config fallback", config: corpus.Config{Basis: "not-and", Checker: "both"}, wantBases: []reduce.Basis{reduce.BasisNotAnd}, wantChecker: corpus.CheckerBoth},
		{name: "flags win over config", basis: "implies-not", checker: "truth", config: corpus.Config{Basis: "nand", Checker: "sat"}, wantBases: []reduce.Basis{reduce.BasisImpliesNot}, wantChecker: corpus.CheckerTruth},
		{name: "unknown basis", basis: "horn", wantErr: true},
		{name: "unknown checker", checker: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyBasis = tt.basis
			verifyChecker = tt.checker
			defer func() { verifyBasis, verifyChecker = "", "" }()

			opts, err := verifyOptions(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBases, opts.Bases)
			assert.Equal(t, tt.wantChecker, opts.Checker)
		})
	}
}

func TestBuildReductions(t *testing.T) {
	f := formula.MustParse("p -> q")

	reductions, ok := buildReductions(f, reduce.Bases(), corpus.CheckerTruth, true)
	require.Len(t, reductions, 5)
	assert.True(t, ok)
	for _, r := range reductions {
		assert.True(t, r.Checked)
		assert.True(t, r.Valid)
		assert.Empty(t, r.Witness)
	}
	assert.Equal(t, "(~p | q)", reductions[0].Result.String())

	reductions, ok = buildReductions(f, []reduce.Basis{reduce.BasisNand}, corpus.CheckerSat, false)
	require.Len(t, reductions, 1)
	assert.True(t, ok)
	assert.False(t, reductions[0].Checked)
}

func TestReductionRows(t *testing.T) {
	f := formula.MustParse("p & q")
	reductions, ok := buildReductions(f, []reduce.Basis{reduce.BasisNotAndOr}, corpus.CheckerTruth, true)
	require.True(t, ok)

	rows := reductionRows(reductions)
	require.Len(t, rows, 1)
	assert.Equal(t, "not-and-or", rows[0].Basis)
	assert.Equal(t, "(p & q)", rows[0].Result)
	assert.True(t, rows[0].Checked)
	assert.True(t, rows[0].Valid)
	assert.Empty(t, rows[0].Witness)

	witnessed := []formatter.Reduction{{
		Basis:   reduce.BasisNand,
		Result:  formula.MustParse("p | q"),
		Checked: true,
		Valid:   false,
		Witness: truth.Model{"p": true, "q": false},
	}}
	rows = reductionRows(witnessed)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Valid)
	assert.Equal(t, "p=T q=F", rows[0].Witness)
}

func TestGatherSources(t *testing.T) {
	logger, _ := zap.NewProduction()

	sources := gatherSources(logger, []string{"p -> q", "~p"}, false)
	require.Len(t, sources, 2)
	assert.Equal(t, "p -> q", sources[0].label)
	assert.Equal(t, "(p -> q)", sources[0].formula.String())
	assert.Equal(t, "~p", sources[1].text)

	tempDir, err := os.MkdirTemp("", "gather-sources-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "corpus.prop")
	require.NoError(t, os.WriteFile(path, []byte("p & q\n"), 0o644))

	sources = gatherSources(logger, []string{path}, true)
	require.Len(t, sources, 1)
	assert.Equal(t, path+":1", sources[0].label)
	assert.Equal(t, "p & q", sources[0].text)
}

func TestInitConfigurationFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "init-config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, ".tprop.yaml")
	require.NoError(t, initConfigurationFile(path))

	config, err := corpus.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tprop", config.Name)
	assert.Equal(t, "not-and-or", config.Basis)
	assert.Equal(t, "truth", config.Checker)
	assert.False(t, config.NoColor)
}
