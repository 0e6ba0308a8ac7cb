package formula

// Formula represents a propositional formula.
// The set of node kinds is closed: Constant, Variable, Unary and Binary.
type Formula interface {
	isFormula()
	String() string
}

// Constant represents one of the two truth constants, printed T and F.
type Constant struct {
	Value bool
}

func (Constant) isFormula() {}
func (f Constant) String() string {
	if f.Value {
		return "T"
	}
	return "F"
}

// Variable represents a named propositional variable. The name is opaque
// to every transform; only the parser restricts its surface form.
type Variable struct {
	Name string
}

func (Variable) isFormula() {}
func (f Variable) String() string {
	return f.Name
}

// UnaryOp represents unary operators. Negation is the only one.
type UnaryOp int

const (
	OpNot UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "~"
	default:
		return "?"
	}
}

// Unary represents a unary expression.
type Unary struct {
	Op UnaryOp
	X  Formula
}

func (Unary) isFormula() {}
func (f Unary) String() string {
	return f.Op.String() + f.X.String()
}

// BinaryOp represents binary operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpImplies
	OpXor
	OpIff
	OpNand
	OpNor
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImplies:
		return "->"
	case OpXor:
		return "+"
	case OpIff:
		return "<->"
	case OpNand:
		return "-&"
	case OpNor:
		return "-|"
	default:
		return "?"
	}
}

// Binary represents a binary expression.
type Binary struct {
	Op    BinaryOp
	Left  Formula
	Right Formula
}

func (Binary) isFormula() {}
func (f Binary) String() string {
	return "(" + f.Left.String() + " " + f.Op.String() + " " + f.Right.String() + ")"
}

// Truth constants.
var (
	True  Formula = Constant{Value: true}
	False Formula = Constant{Value: false}
)

// Helper functions to construct formulas

// Var creates a variable reference.
func Var(name string) Formula {
	return Variable{Name: name}
}

// Not creates a negation.
func Not(x Formula) Formula {
	return Unary{Op: OpNot, X: x}
}

// And creates a conjunction.
func And(left, right Formula) Formula {
	return Binary{Op: OpAnd, Left: left, Right: right}
}

// Or creates a disjunction.
func Or(left, right Formula) Formula {
	return Binary{Op: OpOr, Left: left, Right: right}
}

// Implies creates an implication.
func Implies(left, right Formula) Formula {
	return Binary{Op: OpImplies, Left: left, Right: right}
}

// Xor creates an exclusive disjunction.
func Xor(left, right Formula) Formula {
	return Binary{Op: OpXor, Left: left, Right: right}
}

// Iff creates a biconditional.
func Iff(left, right Formula) Formula {
	return Binary{Op: OpIff, Left: left, Right: right}
}

// Nand creates a negated conjunction.
func Nand(left, right Formula) Formula {
	return Binary{Op: OpNand, Left: left, Right: right}
}

// Nor creates a negated disjunction.
func Nor(left, right Formula) Formula {
	return Binary{Op: OpNor, Left: left, Right: right}
}
