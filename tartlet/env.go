package tartlet

import (
	"hash/fnv"

	"github.com/raviqqe/hamt"

	"github.com/smasher164/nbe/internal/invariant"
)

type key Name

func (k key) Hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte(k))
	return h.Sum32()
}

func (k key) Equal(e hamt.Entry) bool {
	other, ok := e.(key)
	return ok && other == k
}

// Env maps names to values. Extending an Env returns a new Env and leaves
// the receiver untouched, so closures may share the Env they captured.
type Env struct {
	m hamt.Map
}

func NewEnv() Env {
	return Env{hamt.NewMap()}
}

// Extend binds x to v, shadowing any earlier binding of x.
func (env Env) Extend(x Name, v Value) Env {
	return Env{env.m.Insert(key(x), v)}
}

func (env Env) Lookup(x Name) (Value, bool) {
	v := env.m.Find(key(x))
	if v == nil {
		return nil, false
	}
	return v.(Value), true
}

func (env Env) Size() int {
	return env.m.Size()
}

// Eval evaluates e to a value. Every free variable of e must be bound in env;
// the checker guarantees this for anything it accepted.
func (env Env) Eval(e Expr) Value {
	switch e := e.(type) {
	case Var:
		v, ok := env.Lookup(Name(e))
		if !ok {
			panic(invariant.Violated("eval: missing value", e))
		}
		return v
	case Pi:
		return VPi{env.Eval(e.Dom), Closure{env, e.Name, e.Ran}}
	case Lambda:
		return VLambda{Closure{env, e.Name, e.Body}}
	case App:
		return doApply(env.Eval(e.Rator), env.Eval(e.Rand))
	case Sigma:
		return VSigma{env.Eval(e.CarType), Closure{env, e.Name, e.CdrType}}
	case Cons:
		return VPair{env.Eval(e.Car), env.Eval(e.Cdr)}
	case Car:
		return doCar(env.Eval(e.Pair))
	case Cdr:
		return doCdr(env.Eval(e.Pair))
	case Nat:
		return VNat{}
	case Zero:
		return VZero{}
	case Add1:
		return VAdd1{env.Eval(e.Pred)}
	case IndNat:
		return doIndNat(env.Eval(e.Target), env.Eval(e.Motive), env.Eval(e.Base), env.Eval(e.Step))
	case Equal:
		return VEq{env.Eval(e.Type), env.Eval(e.From), env.Eval(e.To)}
	case Same:
		return VSame{}
	case Replace:
		return doReplace(env.Eval(e.Target), env.Eval(e.Motive), env.Eval(e.Base))
	case Trivial:
		return VTrivial{}
	case Sole:
		return VSole{}
	case Absurd:
		return VAbsurd{}
	case IndAbsurd:
		return doIndAbsurd(env.Eval(e.Target), env.Eval(e.Motive))
	case Atom:
		return VAtom{}
	case Tick:
		return VTick{string(e)}
	case U:
		return VU{}
	case The:
		return env.Eval(e.Expr)
	}
	panic(invariant.Violated("eval", e))
}
