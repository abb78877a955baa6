// Package simply is a bidirectional type checker and normalizer for the
// simply typed lambda calculus with natural numbers.
package simply

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/nbe/internal/invariant"
)

type Name = string

type Ty interface {
	isType()
	String() string
}

type TyNat struct{}

func (TyNat) isType()        {}
func (TyNat) String() string { return "Nat" }

type TyArr struct {
	From, To Ty
}

func (TyArr) isType() {}
func (t TyArr) String() string {
	return "(" + t.From.String() + " -> " + t.To.String() + ")"
}

func typeEquals(l, r Ty) bool {
	switch r := r.(type) {
	case TyNat:
		_, ok := l.(TyNat)
		return ok
	case TyArr:
		l, ok := l.(TyArr)
		return ok && typeEquals(l.From, r.From) && typeEquals(l.To, r.To)
	}
	return false
}

type Expr interface {
	isExpr()
	String() string
}

type Var Name

func (Var) isExpr()          {}
func (v Var) String() string { return string(v) }

type Lambda struct {
	Name Name
	Body Expr
}

func (Lambda) isExpr() {}
func (l Lambda) String() string {
	return "(λ" + l.Name + "." + l.Body.String() + ")"
}

type App struct {
	Rator Expr
	Rand  Expr
}

func (App) isExpr() {}
func (a App) String() string {
	return "(" + a.Rator.String() + " " + a.Rand.String() + ")"
}

type Zero struct{}

func (Zero) isExpr()        {}
func (Zero) String() string { return "zero" }

type Add1 struct{ Pred Expr }

func (Add1) isExpr()          {}
func (a Add1) String() string { return "(add1 " + a.Pred.String() + ")" }

// Rec is primitive recursion on Nat producing a Type. When Target is zero it
// is Base; when Target is (add1 n) it is (Step n (rec-Nat n Base Step)).
type Rec struct {
	Type   Ty
	Target Expr
	Base   Expr
	Step   Expr
}

func (Rec) isExpr() {}
func (r Rec) String() string {
	return "(rec-Nat " + r.Type.String() + " " + r.Target.String() + " " + r.Base.String() + " " + r.Step.String() + ")"
}

// Ann is a type annotation (the Type Expr).
type Ann struct {
	Expr Expr
	Type Ty
}

func (Ann) isExpr() {}
func (a Ann) String() string {
	return "(the " + a.Type.String() + " " + a.Expr.String() + ")"
}

type binding[T any] struct {
	Name  Name
	Value T
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

func lookup[T any](bs []binding[T], x Name) (T, bool) {
	i := slices.IndexFunc(bs, func(b binding[T]) bool { return b.Name == x })
	if i < 0 {
		var zero T
		return zero, false
	}
	return bs[i].Value, true
}

// Ctx assigns types to names, innermost first.
type Ctx []binding[Ty]

func (ctx Ctx) Extend(x Name, t Ty) Ctx {
	return prepend(binding[Ty]{x, t}, ctx)
}

type Env []binding[Value]

func (env Env) Extend(x Name, v Value) Env {
	return prepend(binding[Value]{x, v}, env)
}

type Value interface {
	isValue()
}

type VZero struct{}

type VAdd1 struct{ Pred Value }

type VClosure struct {
	Env  Env
	Name Name
	Body Expr
}

type VNeutral struct {
	Type Ty
	Neu  Neutral
}

func (VZero) isValue()    {}
func (VAdd1) isValue()    {}
func (VClosure) isValue() {}
func (VNeutral) isValue() {}

type Neutral interface {
	isNeutral()
}

type NVar struct{ Name Name }

type NApp struct {
	Rator Neutral
	Rand  Normal
}

type NRec struct {
	Type   Ty
	Target Neutral
	Base   Normal
	Step   Normal
}

func (NVar) isNeutral() {}
func (NApp) isNeutral() {}
func (NRec) isNeutral() {}

type Normal struct {
	Type  Ty
	Value Value
}

// Eval evaluates e in env. It panics on unbound variables: only checked
// expressions are evaluated.
func Eval(env Env, e Expr) Value {
	switch e := e.(type) {
	case Var:
		v, ok := lookup(env, Name(e))
		if !ok {
			panic(invariant.Violated("eval: missing value", e))
		}
		return v
	case Lambda:
		return VClosure{env, e.Name, e.Body}
	case App:
		return apply(Eval(env, e.Rator), Eval(env, e.Rand))
	case Zero:
		return VZero{}
	case Add1:
		return VAdd1{Eval(env, e.Pred)}
	case Rec:
		return rec(e.Type, Eval(env, e.Target), Eval(env, e.Base), Eval(env, e.Step))
	case Ann:
		return Eval(env, e.Expr)
	}
	panic(invariant.Violated("eval", e))
}

func apply(fun, arg Value) Value {
	switch fun := fun.(type) {
	case VClosure:
		return Eval(fun.Env.Extend(fun.Name, arg), fun.Body)
	case VNeutral:
		if arr, ok := fun.Type.(TyArr); ok {
			return VNeutral{arr.To, NApp{fun.Neu, Normal{arr.From, arg}}}
		}
	}
	panic(invariant.Violated("apply", fun, arg))
}

func rec(t Ty, tgt, base, step Value) Value {
	switch n := tgt.(type) {
	case VZero:
		return base
	case VAdd1:
		return apply(apply(step, n.Pred), rec(t, n.Pred, base, step))
	case VNeutral:
		if _, ok := n.Type.(TyNat); ok {
			return VNeutral{t, NRec{
				Type:   t,
				Target: n.Neu,
				Base:   Normal{t, base},
				Step:   Normal{TyArr{TyNat{}, TyArr{t, t}}, step},
			}}
		}
	}
	panic(invariant.Violated("rec-Nat", tgt))
}

func freshen(used []Name, x Name) Name {
	if slices.Contains(used, x) {
		return freshen(used, x+"'")
	}
	return x
}

// ReadBack converts v, of type t, into its eta-long normal form.
func ReadBack(used []Name, t Ty, v Value) Expr {
	switch t := t.(type) {
	case TyNat:
		switch v := v.(type) {
		case VZero:
			return Zero{}
		case VAdd1:
			return Add1{ReadBack(used, t, v.Pred)}
		}
	case TyArr:
		x := "x"
		if c, ok := v.(VClosure); ok {
			x = c.Name
		}
		x = freshen(used, x)
		xVal := VNeutral{t.From, NVar{x}}
		return Lambda{x, ReadBack(prepend(x, used), t.To, apply(v, xVal))}
	}
	if n, ok := v.(VNeutral); ok {
		if !typeEquals(t, n.Type) {
			panic(invariant.Violated("read-back", t, n.Type))
		}
		return readBackNeutral(used, n.Neu)
	}
	panic(invariant.Violated("read-back", t, v))
}

func readBackNeutral(used []Name, neu Neutral) Expr {
	switch neu := neu.(type) {
	case NVar:
		return Var(neu.Name)
	case NApp:
		return App{readBackNeutral(used, neu.Rator), ReadBack(used, neu.Rand.Type, neu.Rand.Value)}
	case NRec:
		return Rec{
			neu.Type,
			readBackNeutral(used, neu.Target),
			ReadBack(used, neu.Base.Type, neu.Base.Value),
			ReadBack(used, neu.Step.Type, neu.Step.Value),
		}
	}
	panic(invariant.Violated("read-back neutral", neu))
}

// Definition is a named top-level expression. Its type must be synthesizable.
type Definition struct {
	Name Name
	Expr Expr
}

// Defs are checked definitions in order, innermost first.
type Defs []binding[Normal]

func (defs Defs) Ctx() Ctx {
	return lo.Map(defs, func(d binding[Normal], _ int) binding[Ty] {
		return binding[Ty]{d.Name, d.Value.Type}
	})
}

func (defs Defs) Env() Env {
	return lo.Map(defs, func(d binding[Normal], _ int) binding[Value] {
		return binding[Value]{d.Name, d.Value.Value}
	})
}

func (defs Defs) Names() []Name {
	return lo.Map(defs, func(d binding[Normal], _ int) Name { return d.Name })
}

// Normal synthesizes the type of e and evaluates it.
func (defs Defs) Normal(e Expr) (Normal, error) {
	t, err := Synth(defs.Ctx(), e)
	if err != nil {
		return Normal{}, err
	}
	return Normal{t, Eval(defs.Env(), e)}, nil
}

func AddDefs(ds []Definition) (Defs, error) {
	var defs Defs
	for _, d := range ds {
		n, err := defs.Normal(d.Expr)
		if err != nil {
			return nil, err
		}
		defs = prepend(binding[Normal]{d.Name, n}, defs)
	}
	return defs, nil
}

type Program struct {
	Defs []Definition
	Body Expr
}

// Run checks the definitions and the body, and returns the body's normal
// form.
func (p Program) Run() (Expr, error) {
	defs, err := AddDefs(p.Defs)
	if err != nil {
		return nil, err
	}
	n, err := defs.Normal(p.Body)
	if err != nil {
		return nil, err
	}
	return ReadBack(defs.Names(), n.Type, n.Value), nil
}
