// Package dpll implements a Davis-Putnam-Logemann-Loveland satisfiability
// decision procedure for propositional formulas in conjunctive normal form.
package dpll

import "fmt"

// Literal represents a literal of a propositional variable. A positive value
// denotes the variable itself; a negative value denotes its negation. Zero is
// reserved for EmptyLiteral, a sentinel used both as a clause terminator in
// the flat buffer and to mean "no literal".
//
// Variables are numbered 1..V for a CNF declaring V variables; Literal never
// carries variable 0.
type Literal int32

// EmptyLiteral is the sentinel literal. It terminates clauses in the flat
// buffer and stands for "no literal" in queries that may find none. Callers
// never negate it; by convention it is its own negation.
const EmptyLiteral Literal = 0

// Negate returns the complementary literal. EmptyLiteral negates to itself.
func (l Literal) Negate() Literal {
	if l == EmptyLiteral {
		return EmptyLiteral
	}
	return -l
}

// Var returns the variable number the literal refers to, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsEmpty reports whether l is the empty-literal sentinel.
func (l Literal) IsEmpty() bool {
	return l == EmptyLiteral
}

// IsPositive reports whether l denotes the variable itself rather than its
// negation. The empty literal is neither positive nor negative.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Complementary reports whether l and other are negations of one another.
// The empty literal is never complementary to anything.
func (l Literal) Complementary(other Literal) bool {
	if l == EmptyLiteral || other == EmptyLiteral {
		return false
	}
	return l+other == 0
}

func (l Literal) String() string {
	if l == EmptyLiteral {
		return "<empty>"
	}
	return fmt.Sprintf("%d", int(l))
}
