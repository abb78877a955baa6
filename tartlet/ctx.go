package tartlet

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/nbe/internal/invariant"
)

type Binding interface {
	isBinding()
}

// VarBinding is a variable of a known type with no known value. Neutral
// names the variable inside values; it differs from the entry's name when
// the entry shadows a name already in scope.
type VarBinding struct {
	Type    Type
	Neutral Name
}

func (VarBinding) isBinding() {}

// DefBinding is a checked top-level definition.
type DefBinding struct {
	Type  Type
	Value Value
}

func (DefBinding) isBinding() {}

type Entry struct {
	Name    Name
	Binding Binding

	env Env
}

// Ctx is a typing context, innermost binding first. Extending a Ctx never
// modifies it.
type Ctx []Entry

// Extend adds a variable x of type t.
func (ctx Ctx) Extend(x Name, t Type) Ctx {
	ctx, _ = ctx.bind(x, t)
	return ctx
}

// bind adds a variable x of type t and returns the neutral value standing
// for it. The neutral's name is fresh for ctx, even when x shadows.
func (ctx Ctx) bind(x Name, t Type) (Ctx, Value) {
	y := ctx.fresh(x)
	v := VNeutral{t, NVar{y}}
	return prepend(Entry{x, VarBinding{t, y}, ctx.Env().Extend(x, v)}, ctx), v
}

func (ctx Ctx) define(x Name, t Type, v Value) Ctx {
	return prepend(Entry{x, DefBinding{t, v}, ctx.Env().Extend(x, v)}, ctx)
}

func (ctx Ctx) lookup(x Name) (Binding, bool) {
	i := slices.IndexFunc(ctx, func(e Entry) bool { return e.Name == x })
	if i < 0 {
		return nil, false
	}
	return ctx[i].Binding, true
}

func (ctx Ctx) LookupType(x Name) (Type, error) {
	b, ok := ctx.lookup(x)
	if !ok {
		return nil, &UnboundVariableError{x}
	}
	switch b := b.(type) {
	case VarBinding:
		return b.Type, nil
	case DefBinding:
		return b.Type, nil
	}
	panic(invariant.Violated("lookup", b))
}

// Names lists every name in scope, including the names of neutral values.
func (ctx Ctx) Names() []Name {
	names := lo.Map(ctx, func(e Entry, _ int) Name { return e.Name })
	for _, e := range ctx {
		if b, ok := e.Binding.(VarBinding); ok && b.Neutral != e.Name {
			names = append(names, b.Neutral)
		}
	}
	return names
}

// Env gives every definition its value and every variable a neutral value
// standing for it.
func (ctx Ctx) Env() Env {
	if len(ctx) == 0 {
		return NewEnv()
	}
	return ctx[0].env
}

func (ctx Ctx) eval(e Expr) Value {
	return ctx.Env().Eval(e)
}

func freshen(used []Name, x Name) Name {
	if slices.Contains(used, x) {
		return freshen(used, x+"'")
	}
	return x
}

func (ctx Ctx) fresh(x Name) Name {
	if x == "" {
		x = "x"
	}
	return freshen(ctx.Names(), x)
}

// ReadBack converts v, a value of type t, into an eta-long normal form.
func (ctx Ctx) ReadBack(t Type, v Value) Expr {
	switch t := t.(type) {
	case VNat:
		switch v := v.(type) {
		case VZero:
			return Zero{}
		case VAdd1:
			return Add1{ctx.ReadBack(t, v.Pred)}
		}
	case VPi:
		x := ctx.fresh(t.Ran.Name)
		xVal := VNeutral{t.Dom, NVar{x}}
		return Lambda{x, ctx.Extend(x, t.Dom).ReadBack(t.Ran.Instantiate(xVal), doApply(v, xVal))}
	case VSigma:
		car := doCar(v)
		return Cons{ctx.ReadBack(t.CarType, car), ctx.ReadBack(t.CdrType.Instantiate(car), doCdr(v))}
	case VTrivial:
		return Sole{}
	case VAbsurd:
		if v, ok := v.(VNeutral); ok {
			if _, ok := v.Type.(VAbsurd); ok {
				return The{Absurd{}, ctx.readBackNeutral(v.Neu)}
			}
		}
	case VEq:
		if _, ok := v.(VSame); ok {
			return Same{}
		}
	case VAtom:
		if v, ok := v.(VTick); ok {
			return Tick(v.Sym)
		}
	case VU:
		if e, ok := ctx.readBackType(v); ok {
			return e
		}
	}
	if v, ok := v.(VNeutral); ok {
		return ctx.readBackNeutral(v.Neu)
	}
	panic(invariant.Violated("read-back", t, v))
}

func (ctx Ctx) readBackType(v Value) (Expr, bool) {
	switch v := v.(type) {
	case VNat:
		return Nat{}, true
	case VAtom:
		return Atom{}, true
	case VTrivial:
		return Trivial{}, true
	case VAbsurd:
		return Absurd{}, true
	case VU:
		return U{}, true
	case VEq:
		return Equal{
			ctx.ReadBack(VU{}, v.Type),
			ctx.ReadBack(v.Type, v.From),
			ctx.ReadBack(v.Type, v.To),
		}, true
	case VSigma:
		x := ctx.fresh(v.CdrType.Name)
		cdrT := v.CdrType.Instantiate(VNeutral{v.CarType, NVar{x}})
		return Sigma{x, ctx.ReadBack(VU{}, v.CarType), ctx.Extend(x, v.CarType).ReadBack(VU{}, cdrT)}, true
	case VPi:
		x := ctx.fresh(v.Ran.Name)
		ranT := v.Ran.Instantiate(VNeutral{v.Dom, NVar{x}})
		return Pi{x, ctx.ReadBack(VU{}, v.Dom), ctx.Extend(x, v.Dom).ReadBack(VU{}, ranT)}, true
	}
	return nil, false
}

func (ctx Ctx) readBackNeutral(neu Neutral) Expr {
	switch neu := neu.(type) {
	case NVar:
		return Var(neu.Name)
	case NApp:
		return App{ctx.readBackNeutral(neu.Rator), ctx.readBackNormal(neu.Rand)}
	case NCar:
		return Car{ctx.readBackNeutral(neu.Pair)}
	case NCdr:
		return Cdr{ctx.readBackNeutral(neu.Pair)}
	case NIndNat:
		return IndNat{
			ctx.readBackNeutral(neu.Target),
			ctx.readBackNormal(neu.Motive),
			ctx.readBackNormal(neu.Base),
			ctx.readBackNormal(neu.Step),
		}
	case NReplace:
		return Replace{
			ctx.readBackNeutral(neu.Target),
			ctx.readBackNormal(neu.Motive),
			ctx.readBackNormal(neu.Base),
		}
	case NIndAbsurd:
		return IndAbsurd{
			The{Absurd{}, ctx.readBackNeutral(neu.Target)},
			ctx.readBackNormal(neu.Motive),
		}
	}
	panic(invariant.Violated("read-back neutral", neu))
}

func (ctx Ctx) readBackNormal(n Normal) Expr {
	return ctx.ReadBack(n.Type, n.Value)
}
