package tartlet

import "github.com/smasher164/nbe/internal/invariant"

// Value is the semantic domain produced by evaluation.
type Value interface {
	isValue()
}

// Type is a Value used as a type.
type Type = Value

type VPi struct {
	Dom Type
	Ran Closure
}

type VLambda struct {
	Body Closure
}

type VSigma struct {
	CarType Type
	CdrType Closure
}

type VPair struct {
	Car Value
	Cdr Value
}

type VNat struct{}

type VZero struct{}

type VAdd1 struct {
	Pred Value
}

type VEq struct {
	Type Type
	From Value
	To   Value
}

type VSame struct{}

type VTrivial struct{}

type VSole struct{}

type VAbsurd struct{}

type VAtom struct{}

type VTick struct {
	Sym string
}

type VU struct{}

// VNeutral is a computation stuck on a free variable, together with the
// type it has. The type is needed to read it back.
type VNeutral struct {
	Type Type
	Neu  Neutral
}

func (VPi) isValue()      {}
func (VLambda) isValue()  {}
func (VSigma) isValue()   {}
func (VPair) isValue()    {}
func (VNat) isValue()     {}
func (VZero) isValue()    {}
func (VAdd1) isValue()    {}
func (VEq) isValue()      {}
func (VSame) isValue()    {}
func (VTrivial) isValue() {}
func (VSole) isValue()    {}
func (VAbsurd) isValue()  {}
func (VAtom) isValue()    {}
func (VTick) isValue()    {}
func (VU) isValue()       {}
func (VNeutral) isValue() {}

// Neutral is an eliminator blocked on a variable. Every chain of neutrals
// ends in an NVar.
type Neutral interface {
	isNeutral()
}

type NVar struct {
	Name Name
}

type NApp struct {
	Rator Neutral
	Rand  Normal
}

type NCar struct {
	Pair Neutral
}

type NCdr struct {
	Pair Neutral
}

type NIndNat struct {
	Target Neutral
	Motive Normal
	Base   Normal
	Step   Normal
}

type NReplace struct {
	Target Neutral
	Motive Normal
	Base   Normal
}

type NIndAbsurd struct {
	Target Neutral
	Motive Normal
}

func (NVar) isNeutral()       {}
func (NApp) isNeutral()       {}
func (NCar) isNeutral()       {}
func (NCdr) isNeutral()       {}
func (NIndNat) isNeutral()    {}
func (NReplace) isNeutral()   {}
func (NIndAbsurd) isNeutral() {}

// Normal pairs a value with its type so it can be read back.
type Normal struct {
	Type  Type
	Value Value
}

// Closure is a body waiting for the value of Name.
type Closure struct {
	Env  Env
	Name Name
	Body Expr
}

// Instantiate evaluates the body with Name bound to v.
func (c Closure) Instantiate(v Value) Value {
	return c.Env.Extend(c.Name, v).Eval(c.Body)
}

func doApply(fun, arg Value) Value {
	switch fun := fun.(type) {
	case VLambda:
		return fun.Body.Instantiate(arg)
	case VNeutral:
		if pi, ok := fun.Type.(VPi); ok {
			return VNeutral{
				Type: pi.Ran.Instantiate(arg),
				Neu:  NApp{fun.Neu, Normal{pi.Dom, arg}},
			}
		}
	}
	panic(invariant.Violated("apply", fun, arg))
}

func doCar(pair Value) Value {
	switch pair := pair.(type) {
	case VPair:
		return pair.Car
	case VNeutral:
		if sigma, ok := pair.Type.(VSigma); ok {
			return VNeutral{sigma.CarType, NCar{pair.Neu}}
		}
	}
	panic(invariant.Violated("car", pair))
}

func doCdr(pair Value) Value {
	switch p := pair.(type) {
	case VPair:
		return p.Cdr
	case VNeutral:
		if sigma, ok := p.Type.(VSigma); ok {
			return VNeutral{sigma.CdrType.Instantiate(doCar(pair)), NCdr{p.Neu}}
		}
	}
	panic(invariant.Violated("cdr", pair))
}

// indNatStepType is (Π ((n-1 Nat)) (Π ((almost (mot n-1))) (mot (add1 n-1)))).
func indNatStepType(mot Value) Type {
	return NewEnv().Extend("mot", mot).Eval(
		Pi{"n-1", Nat{},
			Pi{"almost", App{Var("mot"), Var("n-1")},
				App{Var("mot"), Add1{Var("n-1")}}}})
}

func doIndNat(tgt, mot, base, step Value) Value {
	switch t := tgt.(type) {
	case VZero:
		return base
	case VAdd1:
		return doApply(doApply(step, t.Pred), doIndNat(t.Pred, mot, base, step))
	case VNeutral:
		if _, ok := t.Type.(VNat); ok {
			motT := VPi{VNat{}, Closure{NewEnv(), "k", U{}}}
			return VNeutral{
				Type: doApply(mot, tgt),
				Neu: NIndNat{
					Target: t.Neu,
					Motive: Normal{motT, mot},
					Base:   Normal{doApply(mot, VZero{}), base},
					Step:   Normal{indNatStepType(mot), step},
				},
			}
		}
	}
	panic(invariant.Violated("ind-Nat", tgt, mot))
}

func doReplace(tgt, mot, base Value) Value {
	switch t := tgt.(type) {
	case VSame:
		return base
	case VNeutral:
		if eq, ok := t.Type.(VEq); ok {
			motT := VPi{eq.Type, Closure{NewEnv(), "x", U{}}}
			return VNeutral{
				Type: doApply(mot, eq.To),
				Neu: NReplace{
					Target: t.Neu,
					Motive: Normal{motT, mot},
					Base:   Normal{doApply(mot, eq.From), base},
				},
			}
		}
	}
	panic(invariant.Violated("replace", tgt, mot))
}

// doIndAbsurd only ever gets stuck: Absurd has no constructors.
func doIndAbsurd(tgt, mot Value) Value {
	if t, ok := tgt.(VNeutral); ok {
		if _, ok := t.Type.(VAbsurd); ok {
			return VNeutral{mot, NIndAbsurd{t.Neu, Normal{VU{}, mot}}}
		}
	}
	panic(invariant.Violated("ind-Absurd", tgt, mot))
}
