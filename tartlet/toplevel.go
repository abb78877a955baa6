package tartlet

import (
	"github.com/pkg/errors"
)

// Definition is a named top-level expression.
type Definition struct {
	Name Name
	Expr Expr
}

// Define checks e and adds it to the context under name.
func (ctx Ctx) Define(name Name, e Expr) (Ctx, error) {
	if _, ok := ctx.lookup(name); ok {
		return nil, &AlreadyDefinedError{name}
	}
	t, err := ctx.Synth(e)
	if err != nil {
		return nil, err
	}
	tracef("define %s", name)
	return ctx.define(name, t, ctx.eval(e)), nil
}

// Elaborate defines each definition in order, each one seeing only the ones
// before it. It stops at the first definition that fails to check.
func Elaborate(defs []Definition) (Ctx, error) {
	var ctx Ctx
	for _, d := range defs {
		next, err := ctx.Define(d.Name, d.Expr)
		if err != nil {
			return nil, errors.Wrapf(err, "definition %q", d.Name)
		}
		ctx = next
	}
	return ctx, nil
}

// Run synthesizes the type of example and normalizes it, returning
// (the type normal-form) with both parts read back.
func (ctx Ctx) Run(example Expr) (The, error) {
	t, err := ctx.Synth(example)
	if err != nil {
		return The{}, err
	}
	v := ctx.eval(example)
	return The{Type: ctx.ReadBack(VU{}, t), Expr: ctx.ReadBack(t, v)}, nil
}

// Normalize returns the normal form of e.
func (ctx Ctx) Normalize(e Expr) (Expr, error) {
	the, err := ctx.Run(e)
	if err != nil {
		return nil, err
	}
	return the.Expr, nil
}

// Program is a list of definitions followed by an expression to run.
type Program struct {
	Defs []Definition
	Body Expr
}

func (p Program) Run() (The, error) {
	ctx, err := Elaborate(p.Defs)
	if err != nil {
		return The{}, err
	}
	return ctx.Run(p.Body)
}
