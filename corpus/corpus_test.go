package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/tprop/reduce"
)

func createCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "sample.prop", `# sample corpus

p -> q
  ~(p & q)
p + q
`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 3, entries[0].Line)
	assert.Equal(t, "p -> q", entries[0].Text)
	assert.Equal(t, "(p -> q)", entries[0].Formula.String())
	assert.Equal(t, path+":3", entries[0].Source())

	assert.Equal(t, 4, entries[1].Line)
	assert.Equal(t, "~(p & q)", entries[1].Text)

	assert.Equal(t, 5, entries[2].Line)
	assert.Equal(t, "((p & ~q) | (~p & q))", reduce.ToNotAndOr(entries[2].Formula).String())
}

func TestLoadParseError(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "broken.prop", "# fine so far\np @ q\n")

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":2")
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist.prop"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening corpus")
}

func TestLoadAll(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	createCorpusFile(t, tempDir, "a.prop", "p & q\np | q\n")
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "sub"), 0o755))
	createCorpusFile(t, tempDir, filepath.Join("sub", "b.prop"), "p <-> q\n")
	createCorpusFile(t, tempDir, "notes.txt", "not a formula at all\n")

	extra := createCorpusFile(t, tempDir, "extra.list", "p -& q\n")

	entries, err := LoadAll([]string{tempDir, extra})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// walked files come in lexical order, explicit files keep their place
	assert.Equal(t, filepath.Join(tempDir, "a.prop"), entries[0].Path)
	assert.Equal(t, filepath.Join(tempDir, "sub", "b.prop"), entries[2].Path)
	assert.Equal(t, extra, entries[3].Path)
}

func TestLoadAllMissingPath(t *testing.T) {
	t.Parallel()
	_, err := LoadAll([]string{filepath.Join(os.TempDir(), "no-such-dir-tprop")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessing")
}

func TestLoadAllTestdata(t *testing.T) {
	t.Parallel()
	entries, err := LoadAll([]string{"testdata"})
	require.NoError(t, err)
	assert.Len(t, entries, 11)
	for _, entry := range entries {
		assert.NotNil(t, entry.Formula, "entry %s should parse", entry.Source())
	}
}

func TestParseChecker(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected Checker
		wantErr  bool
	}{
		{name: "empty defaults to truth", input: "", expected: CheckerTruth},
		{name: "truth", input: "truth", expected: CheckerTruth},
		{name: "sat", input: "sat", expected: CheckerSat},
		{name: "both", input: "both", expected: CheckerBoth},
		{name: "unknown", input: "bdd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := ParseChecker(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown checker")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, checker)
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "verify.prop", "p -> q\np + q\nT\n~(p -| q)\n")
	entries, err := Load(path)
	require.NoError(t, err)

	results, err := Verify(ctx, logger, entries, VerifyOptions{})
	require.NoError(t, err)
	require.Len(t, results, len(entries)*len(reduce.Bases()))

	for _, r := range results {
		assert.True(t, r.Passed, "%s under %s", r.Entry.Text, r.Basis)
		assert.Nil(t, r.Witness)
		assert.NotNil(t, r.Reduced)
	}

	// results are sorted by source line, then by basis chain order
	assert.Equal(t, 1, results[0].Entry.Line)
	assert.Equal(t, reduce.BasisNotAndOr, results[0].Basis)
	assert.Equal(t, reduce.BasisImpliesFalse, results[4].Basis)
	assert.Equal(t, 2, results[5].Entry.Line)
}

func TestVerifySelectsBasesAndChecker(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "nand.prop", "p <-> q\nF\n")
	entries, err := Load(path)
	require.NoError(t, err)

	for _, checker := range []Checker{CheckerTruth, CheckerSat, CheckerBoth} {
		results, err := Verify(ctx, logger, entries, VerifyOptions{
			Bases:   []reduce.Basis{reduce.BasisNand},
			Checker: checker,
		})
		require.NoError(t, err)
		require.Len(t, results, len(entries))
		for _, r := range results {
			assert.Equal(t, reduce.BasisNand, r.Basis)
			assert.True(t, r.Passed, "%s with %s checker", r.Entry.Text, checker)
		}
	}
}

func TestVerifyHonorsCancelledContext(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()

	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "cancel.prop", "p & q\n")
	entries, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Verify(ctx, logger, entries, VerifyOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "tprop.yaml", `name: demo
basis: nand
checker: sat
no-color: true
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", config.Name)
	assert.Equal(t, "nand", config.Basis)
	assert.Equal(t, "sat", config.Checker)
	assert.True(t, config.NoColor)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig(filepath.Join(os.TempDir(), "absent-tprop.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, config)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "empty.yaml", "")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{}, config)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()
	tempDir, err := os.MkdirTemp("", "corpus")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := createCorpusFile(t, tempDir, "bad.yaml", "{\n")

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
