// Package tartlet implements a small dependently typed calculus with
// Π, Σ, equality, natural numbers, Trivial, Absurd, Atom and a universe U,
// checked bidirectionally and normalized by evaluation.
package tartlet

import (
	"strings"
)

type Name = string

// Expr is the abstract syntax of the calculus. Exprs are built directly by
// callers; there is no reader in this package.
type Expr interface {
	isExpr()
	String() string
}

type Var Name

func (Var) isExpr()          {}
func (v Var) String() string { return string(v) }

// Pi is (Π ((Name Dom)) Ran).
type Pi struct {
	Name Name
	Dom  Expr
	Ran  Expr
}

func (Pi) isExpr() {}
func (p Pi) String() string {
	return "(Π ((" + p.Name + " " + p.Dom.String() + ")) " + p.Ran.String() + ")"
}

// Lambda is (λ (Name) Body).
type Lambda struct {
	Name Name
	Body Expr
}

func (Lambda) isExpr() {}
func (l Lambda) String() string {
	return "(λ (" + l.Name + ") " + l.Body.String() + ")"
}

// App is (Rator Rand).
type App struct {
	Rator Expr
	Rand  Expr
}

func (App) isExpr() {}
func (a App) String() string {
	return "(" + a.Rator.String() + " " + a.Rand.String() + ")"
}

// Sigma is (Σ ((Name CarType)) CdrType).
type Sigma struct {
	Name    Name
	CarType Expr
	CdrType Expr
}

func (Sigma) isExpr() {}
func (s Sigma) String() string {
	return "(Σ ((" + s.Name + " " + s.CarType.String() + ")) " + s.CdrType.String() + ")"
}

type Cons struct {
	Car Expr
	Cdr Expr
}

func (Cons) isExpr()          {}
func (c Cons) String() string { return sexp("cons", c.Car, c.Cdr) }

type Car struct{ Pair Expr }

func (Car) isExpr()          {}
func (c Car) String() string { return sexp("car", c.Pair) }

type Cdr struct{ Pair Expr }

func (Cdr) isExpr()          {}
func (c Cdr) String() string { return sexp("cdr", c.Pair) }

type Nat struct{}

func (Nat) isExpr()        {}
func (Nat) String() string { return "Nat" }

type Zero struct{}

func (Zero) isExpr()        {}
func (Zero) String() string { return "zero" }

type Add1 struct{ Pred Expr }

func (Add1) isExpr()          {}
func (a Add1) String() string { return sexp("add1", a.Pred) }

// IndNat is (ind-Nat Target Motive Base Step).
type IndNat struct {
	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func (IndNat) isExpr() {}
func (i IndNat) String() string {
	return sexp("ind-Nat", i.Target, i.Motive, i.Base, i.Step)
}

// Equal is (= Type From To).
type Equal struct {
	Type Expr
	From Expr
	To   Expr
}

func (Equal) isExpr()          {}
func (e Equal) String() string { return sexp("=", e.Type, e.From, e.To) }

type Same struct{}

func (Same) isExpr()        {}
func (Same) String() string { return "same" }

// Replace is (replace Target Motive Base).
type Replace struct {
	Target Expr
	Motive Expr
	Base   Expr
}

func (Replace) isExpr() {}
func (r Replace) String() string {
	return sexp("replace", r.Target, r.Motive, r.Base)
}

type Trivial struct{}

func (Trivial) isExpr()        {}
func (Trivial) String() string { return "Trivial" }

type Sole struct{}

func (Sole) isExpr()        {}
func (Sole) String() string { return "sole" }

type Absurd struct{}

func (Absurd) isExpr()        {}
func (Absurd) String() string { return "Absurd" }

// IndAbsurd is (ind-Absurd Target Motive).
type IndAbsurd struct {
	Target Expr
	Motive Expr
}

func (IndAbsurd) isExpr() {}
func (i IndAbsurd) String() string {
	return sexp("ind-Absurd", i.Target, i.Motive)
}

type Atom struct{}

func (Atom) isExpr()        {}
func (Atom) String() string { return "Atom" }

// Tick is the atom literal 'Sym.
type Tick string

func (Tick) isExpr()          {}
func (t Tick) String() string { return "'" + string(t) }

type U struct{}

func (U) isExpr()        {}
func (U) String() string { return "U" }

// The is the ascription (the Type Expr).
type The struct {
	Type Expr
	Expr Expr
}

func (The) isExpr()          {}
func (t The) String() string { return sexp("the", t.Type, t.Expr) }

func sexp(head string, args ...Expr) string {
	var buf strings.Builder
	buf.WriteString("(")
	buf.WriteString(head)
	for _, a := range args {
		buf.WriteString(" ")
		buf.WriteString(a.String())
	}
	buf.WriteString(")")
	return buf.String()
}
