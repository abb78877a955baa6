package tartlet

import (
	"golang.org/x/exp/slices"

	"github.com/smasher164/nbe/internal/invariant"
)

// level records the binder depth at which a name was introduced.
type level struct {
	Name  Name
	Depth int
}

func lookupLevel(ns []level, x Name) (int, bool) {
	i := slices.IndexFunc(ns, func(l level) bool { return l.Name == x })
	if i < 0 {
		return 0, false
	}
	return ns[i].Depth, true
}

// AlphaEquiv reports whether e1 and e2 are the same up to consistent renaming
// of bound variables. Free variables must match by name. Any two
// (the Absurd _) expressions are considered equivalent.
func AlphaEquiv(e1, e2 Expr) bool {
	return alphaEquiv(0, nil, e1, nil, e2)
}

func alphaEquiv(i int, ns1 []level, e1 Expr, ns2 []level, e2 Expr) bool {
	same := func(a, b Expr) bool { return alphaEquiv(i, ns1, a, ns2, b) }
	under := func(x Name, a Expr, y Name, b Expr) bool {
		return alphaEquiv(i+1, prepend(level{x, i}, ns1), a, prepend(level{y, i}, ns2), b)
	}
	switch e1 := e1.(type) {
	case Var:
		e2, ok := e2.(Var)
		if !ok {
			return false
		}
		d1, bound1 := lookupLevel(ns1, Name(e1))
		d2, bound2 := lookupLevel(ns2, Name(e2))
		switch {
		case !bound1 && !bound2:
			return e1 == e2
		case bound1 && bound2:
			return d1 == d2
		}
		return false
	case Pi:
		e2, ok := e2.(Pi)
		return ok && same(e1.Dom, e2.Dom) && under(e1.Name, e1.Ran, e2.Name, e2.Ran)
	case Lambda:
		e2, ok := e2.(Lambda)
		return ok && under(e1.Name, e1.Body, e2.Name, e2.Body)
	case App:
		e2, ok := e2.(App)
		return ok && same(e1.Rator, e2.Rator) && same(e1.Rand, e2.Rand)
	case Sigma:
		e2, ok := e2.(Sigma)
		return ok && same(e1.CarType, e2.CarType) && under(e1.Name, e1.CdrType, e2.Name, e2.CdrType)
	case Cons:
		e2, ok := e2.(Cons)
		return ok && same(e1.Car, e2.Car) && same(e1.Cdr, e2.Cdr)
	case Car:
		e2, ok := e2.(Car)
		return ok && same(e1.Pair, e2.Pair)
	case Cdr:
		e2, ok := e2.(Cdr)
		return ok && same(e1.Pair, e2.Pair)
	case Add1:
		e2, ok := e2.(Add1)
		return ok && same(e1.Pred, e2.Pred)
	case IndNat:
		e2, ok := e2.(IndNat)
		return ok &&
			same(e1.Target, e2.Target) &&
			same(e1.Motive, e2.Motive) &&
			same(e1.Base, e2.Base) &&
			same(e1.Step, e2.Step)
	case Equal:
		e2, ok := e2.(Equal)
		return ok && same(e1.Type, e2.Type) && same(e1.From, e2.From) && same(e1.To, e2.To)
	case Replace:
		e2, ok := e2.(Replace)
		return ok && same(e1.Target, e2.Target) && same(e1.Motive, e2.Motive) && same(e1.Base, e2.Base)
	case IndAbsurd:
		e2, ok := e2.(IndAbsurd)
		return ok && same(e1.Target, e2.Target) && same(e1.Motive, e2.Motive)
	case Tick:
		e2, ok := e2.(Tick)
		return ok && e1 == e2
	case The:
		e2, ok := e2.(The)
		if !ok {
			return false
		}
		_, absurd1 := e1.Type.(Absurd)
		_, absurd2 := e2.Type.(Absurd)
		if absurd1 && absurd2 {
			return true
		}
		return same(e1.Type, e2.Type) && same(e1.Expr, e2.Expr)
	case Nat, Zero, Same, Trivial, Sole, Absurd, Atom, U:
		// Nullary forms: equal iff the constructors match.
		return e1 == e2
	}
	panic(invariant.Violated("alphaEquiv", e1, e2))
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}
