package reduce

import (
	"fmt"
	"strings"

	"github.com/gnolang/tprop/formula"
)

// Basis identifies one of the five target operator alphabets.
type Basis int

const (
	_ Basis = iota
	BasisNotAndOr
	BasisNotAnd
	BasisNand
	BasisImpliesNot
	BasisImpliesFalse
)

// String returns the kebab-case name used on the command line and in
// configuration files.
func (b Basis) String() string {
	switch b {
	case BasisNotAndOr:
		return "not-and-or"
	case BasisNotAnd:
		return "not-and"
	case BasisNand:
		return "nand"
	case BasisImpliesNot:
		return "implies-not"
	case BasisImpliesFalse:
		return "implies-false"
	default:
		return "?"
	}
}

// Reduce applies the reduction targeting b.
func (b Basis) Reduce(f formula.Formula) formula.Formula {
	switch b {
	case BasisNotAndOr:
		return ToNotAndOr(f)
	case BasisNotAnd:
		return ToNotAnd(f)
	case BasisNand:
		return ToNand(f)
	case BasisImpliesNot:
		return ToImpliesNot(f)
	case BasisImpliesFalse:
		return ToImpliesFalse(f)
	default:
		panic(fmt.Sprintf("reduce: invalid basis %d", int(b)))
	}
}

// Operators returns the operator and constant spellings a reduction
// targeting b may leave in its output.
func (b Basis) Operators() []string {
	switch b {
	case BasisNotAndOr:
		return []string{"~", "&", "|"}
	case BasisNotAnd:
		return []string{"~", "&"}
	case BasisNand:
		return []string{"-&"}
	case BasisImpliesNot:
		return []string{"->", "~"}
	case BasisImpliesFalse:
		return []string{"->", "F"}
	default:
		panic(fmt.Sprintf("reduce: invalid basis %d", int(b)))
	}
}

// Bases returns all five bases in chain order.
func Bases() []Basis {
	return []Basis{
		BasisNotAndOr,
		BasisNotAnd,
		BasisNand,
		BasisImpliesNot,
		BasisImpliesFalse,
	}
}

// ParseBasis resolves a basis name as printed by String.
func ParseBasis(name string) (Basis, error) {
	for _, b := range Bases() {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown basis %q (valid: %s)", name, strings.Join(BasisNames(), ", "))
}

// BasisNames returns the names of all five bases in chain order.
func BasisNames() []string {
	bases := Bases()
	names := make([]string, 0, len(bases))
	for _, b := range bases {
		names = append(names, b.String())
	}
	return names
}
