package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tprop/formula"
)

func TestBasisString(t *testing.T) {
	tests := []struct {
		basis    Basis
		expected string
	}{
		{basis: BasisNotAndOr, expected: "not-and-or"},
		{basis: BasisNotAnd, expected: "not-and"},
		{basis: BasisNand, expected: "nand"},
		{basis: BasisImpliesNot, expected: "implies-not"},
		{basis: BasisImpliesFalse, expected: "implies-false"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.basis.String())
		})
	}
}

func TestParseBasis(t *testing.T) {
	for _, b := range Bases() {
		parsed, err := ParseBasis(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}

func TestParseBasisUnknown(t *testing.T) {
	_, err := ParseBasis("horn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown basis")
	assert.Contains(t, err.Error(), "nand")
}

func TestBasisReduceDispatch(t *testing.T) {
	f := formula.MustParse("p -> q")

	tests := []struct {
		basis  Basis
		direct formula.Formula
	}{
		{basis: BasisNotAndOr, direct: ToNotAndOr(f)},
		{basis: BasisNotAnd, direct: ToNotAnd(f)},
		{basis: BasisNand, direct: ToNand(f)},
		{basis: BasisImpliesNot, direct: ToImpliesNot(f)},
		{basis: BasisImpliesFalse, direct: ToImpliesFalse(f)},
	}

	for _, tt := range tests {
		t.Run(tt.basis.String(), func(t *testing.T) {
			assert.True(t, formula.Equal(tt.direct, tt.basis.Reduce(f)))
		})
	}
}

func TestBasisOperators(t *testing.T) {
	assert.Equal(t, []string{"~", "&", "|"}, BasisNotAndOr.Operators())
	assert.Equal(t, []string{"~", "&"}, BasisNotAnd.Operators())
	assert.Equal(t, []string{"-&"}, BasisNand.Operators())
	assert.Equal(t, []string{"->", "~"}, BasisImpliesNot.Operators())
	assert.Equal(t, []string{"->", "F"}, BasisImpliesFalse.Operators())
}

func TestBasesOrder(t *testing.T) {
	expected := []Basis{
		BasisNotAndOr,
		BasisNotAnd,
		BasisNand,
		BasisImpliesNot,
		BasisImpliesFalse,
	}
	assert.Equal(t, expected, Bases())

	names := BasisNames()
	require.Len(t, names, len(expected))
	for i, b := range expected {
		assert.Equal(t, b.String(), names[i])
	}
}

func TestBasisPanicsOnUnknownValue(t *testing.T) {
	assert.Panics(t, func() { Basis(0).Reduce(formula.Var("p")) })
	assert.Panics(t, func() { Basis(42).Operators() })
}
