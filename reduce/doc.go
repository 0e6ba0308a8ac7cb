// Package reduce implements five operator reductions over propositional
// formulas. Each rewrites its input into a truth-table-equivalent formula
// whose operators come from a restricted target alphabet:
//
//	ToNotAndOr     {~, &, |}
//	ToNotAnd       {~, &}
//	ToNand         {-&}
//	ToImpliesNot   {->, ~}
//	ToImpliesFalse {->, F}
//
// The reductions form a chain: ToNotAnd runs ToNotAndOr before removing
// disjunctions, ToNand runs ToNotAnd before collapsing to NAND, and
// ToImpliesFalse runs ToImpliesNot before removing negations. Every
// public function accepts any well-formed formula.
//
// All reductions are pure: the input tree is never modified and the
// result is built from fresh nodes. Constants are eliminated through
// fixed idioms over the reserved variable p (for example T becomes
// (p | ~p) under ToNotAndOr); the output stays correct even when the
// input uses p itself, because the idiom subtrees are constant-valued
// under either binding. The reductions rewrite one way only; they never
// simplify, so reducing an already-reduced formula grows it (a NAND fed
// to ToNotAndOr comes back as ~(l & r), not as the original NAND).
//
// A formula that reaches an inner conversion stage with an operator
// outside that stage's input alphabet indicates a programming error and
// panics.
package reduce
