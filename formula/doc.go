// Package formula defines the propositional formula AST shared by the
// whole toolkit, together with its textual form.
//
// A formula is one of four node kinds: a truth constant (T or F), a named
// variable, a negation, or a binary expression over one of the seven
// connectives & | -> + <-> -& -|. Nodes are immutable values; transforms
// build fresh trees and never modify their input.
//
// The textual form accepted by Parse follows the printed form of String:
//
//	~p
//	(p & q) -> r
//	x1 <-> ~(y -| z)
//
// Constructor helpers (Var, Not, And, Or, Implies, Xor, Iff, Nand, Nor)
// build the same trees programmatically.
package formula
