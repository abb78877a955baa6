// Package untyped normalizes untyped lambda calculus terms by evaluation.
package untyped

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/nbe/internal/invariant"
)

type Name = string

type NotFoundError struct {
	Name Name
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Name)
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

type binding struct {
	Name  Name
	Value Value
}

// Env is searched innermost first. Extending it copies, so an Env captured
// by a closure never changes.
type Env []binding

func (env Env) Extend(x Name, v Value) Env {
	return prepend(binding{x, v}, env)
}

func (env Env) Lookup(x Name) (Value, bool) {
	i := slices.IndexFunc(env, func(b binding) bool { return b.Name == x })
	if i < 0 {
		return nil, false
	}
	return env[i].Value, true
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

// Value is either a Closure or a Neutral.
type Value interface {
	isValue()
}

type Closure struct {
	Env  Env
	Name Name
	Body Expr
}

func (Closure) isValue() {}

type Neutral interface {
	Value
	isNeutral()
}

type NVar struct{ Name Name }

func (NVar) isValue()   {}
func (NVar) isNeutral() {}

type NApp struct {
	Rator Neutral
	Rand  Value
}

func (NApp) isValue()   {}
func (NApp) isNeutral() {}

func (env Env) Eval(e Expr) (Value, error) {
	switch e := e.(type) {
	case Var:
		v, ok := env.Lookup(Name(e))
		if !ok {
			return nil, &NotFoundError{Name(e)}
		}
		return v, nil
	case Lambda:
		return Closure{env, e.Name, e.Body}, nil
	case App:
		fun, err := env.Eval(e.Rator)
		if err != nil {
			return nil, err
		}
		arg, err := env.Eval(e.Rand)
		if err != nil {
			return nil, err
		}
		return apply(fun, arg)
	}
	panic(invariant.Violated("eval", e))
}

func apply(fun, arg Value) (Value, error) {
	switch fun := fun.(type) {
	case Closure:
		return fun.Env.Extend(fun.Name, arg).Eval(fun.Body)
	case Neutral:
		return NApp{fun, arg}, nil
	}
	panic(invariant.Violated("apply", fun, arg))
}

func pickFreshName(used []Name, x Name) Name {
	if slices.Contains(used, x) {
		return pickFreshName(used, x+"'")
	}
	return x
}

// ReadBack converts v back into an expression, renaming binders so that
// none of them captures a name in used.
func ReadBack(used []Name, v Value) (Expr, error) {
	switch v := v.(type) {
	case Closure:
		x := pickFreshName(used, v.Name)
		body, err := apply(v, NVar{x})
		if err != nil {
			return nil, err
		}
		b, err := ReadBack(prepend(x, used), body)
		if err != nil {
			return nil, err
		}
		return Lambda{x, b}, nil
	case NVar:
		return Var(v.Name), nil
	case NApp:
		rator, err := ReadBack(used, v.Rator)
		if err != nil {
			return nil, err
		}
		rand, err := ReadBack(used, v.Rand)
		if err != nil {
			return nil, err
		}
		return App{rator, rand}, nil
	}
	panic(invariant.Violated("read-back", v))
}

// Normalize evaluates a closed expression and reads it back.
func Normalize(e Expr) (Expr, error) {
	v, err := Env(nil).Eval(e)
	if err != nil {
		return nil, err
	}
	return ReadBack(nil, v)
}

type Definition struct {
	Name Name
	Expr Expr
}

// Program is a sequence of definitions, each evaluated in the environment
// of the ones before it, and a body to normalize.
type Program struct {
	Defs []Definition
	Body Expr
}

func (p Program) Env() (Env, error) {
	var env Env
	for _, d := range p.Defs {
		v, err := env.Eval(d.Expr)
		if err != nil {
			return nil, err
		}
		env = env.Extend(d.Name, v)
	}
	return env, nil
}

func (p Program) Run() (Expr, error) {
	env, err := p.Env()
	if err != nil {
		return nil, err
	}
	v, err := env.Eval(p.Body)
	if err != nil {
		return nil, err
	}
	used := lo.Map(p.Defs, func(d Definition, _ int) Name { return d.Name })
	return ReadBack(used, v)
}
