package tartlet

import (
	"testing"

	"github.com/smasher164/nbe/internal/invariant"
)

// double = λn. ind-Nat n (λ_. Nat) zero (λn-1. λalmost. add1 (add1 almost))
var (
	doubleMotive = Lambda{"_", Nat{}}
	doubleStep   = Lambda{"n-1", Lambda{"almost", Add1{Add1{Var("almost")}}}}
)

func num(n int) Expr {
	var e Expr = Zero{}
	for i := 0; i < n; i++ {
		e = Add1{e}
	}
	return e
}

func TestIndNatZero(t *testing.T) {
	env := NewEnv()
	base := env.Eval(num(7))
	got := doIndNat(VZero{}, env.Eval(doubleMotive), base, env.Eval(doubleStep))
	expectExpr(t, num(7), Ctx(nil).ReadBack(VNat{}, got))
}

func TestIndNatAdd1(t *testing.T) {
	env := NewEnv()
	mot, base, step := env.Eval(doubleMotive), env.Eval(Zero{}), env.Eval(doubleStep)
	for n := 0; n < 5; n++ {
		pred := env.Eval(num(n))
		lhs := doIndNat(VAdd1{pred}, mot, base, step)
		rhs := doApply(doApply(step, pred), doIndNat(pred, mot, base, step))
		l := Ctx(nil).ReadBack(VNat{}, lhs)
		r := Ctx(nil).ReadBack(VNat{}, rhs)
		if !AlphaEquiv(l, r) {
			t.Errorf("n=%d: %v and %v differ", n, l, r)
		}
		expectExpr(t, num(2*(n+1)), l)
	}
}

func TestIndNatStuck(t *testing.T) {
	env := NewEnv()
	n := VNeutral{VNat{}, NVar{"n"}}
	got := doIndNat(n, env.Eval(doubleMotive), VZero{}, env.Eval(doubleStep))
	want := IndNat{
		Var("n"),
		Lambda{"k", Nat{}},
		Zero{},
		Lambda{"n-1", Lambda{"almost", Add1{Add1{Var("almost")}}}},
	}
	expectExpr(t, want, Ctx(nil).Extend("n", VNat{}).ReadBack(VNat{}, got))
}

func TestEvalDeterministic(t *testing.T) {
	e := App{
		The{Pi{"n", Nat{}, Nat{}}, Lambda{"n", IndNat{Var("n"), doubleMotive, Zero{}, doubleStep}}},
		num(3),
	}
	a := Ctx(nil).ReadBack(VNat{}, NewEnv().Eval(e))
	b := Ctx(nil).ReadBack(VNat{}, NewEnv().Eval(e))
	if !AlphaEquiv(a, b) {
		t.Errorf("%v and %v differ", a, b)
	}
}

func TestNormalFormIdempotent(t *testing.T) {
	tests := []struct {
		typ  Expr
		expr Expr
	}{
		{Nat{}, App{The{Pi{"n", Nat{}, Nat{}}, Lambda{"n", IndNat{Var("n"), doubleMotive, Zero{}, doubleStep}}}, num(2)}},
		{Pi{"n", Nat{}, Nat{}}, Lambda{"m", IndNat{Var("m"), doubleMotive, Zero{}, doubleStep}}},
		{Sigma{"n", Nat{}, Equal{Nat{}, Var("n"), Var("n")}}, Cons{num(1), Same{}}},
		{Pi{"t", Trivial{}, Trivial{}}, Lambda{"t", Var("t")}},
		{U{}, Pi{"A", U{}, Pi{"a", Var("A"), Var("A")}}},
	}
	for _, tt := range tests {
		if err := Ctx(nil).Check(tt.expr, NewEnv().Eval(tt.typ)); err != nil {
			t.Fatalf("%v: %v", tt.expr, err)
		}
		typ := NewEnv().Eval(tt.typ)
		once := Ctx(nil).ReadBack(typ, NewEnv().Eval(tt.expr))
		twice := Ctx(nil).ReadBack(typ, NewEnv().Eval(once))
		if !AlphaEquiv(once, twice) {
			t.Errorf("normalizing %v changed it to %v", once, twice)
		}
	}
}

func TestClosureCapturesEnv(t *testing.T) {
	env := NewEnv().Extend("y", VZero{})
	c := Closure{env, "x", Var("y")}
	shadowed := env.Extend("y", VAdd1{VZero{}})
	if _, ok := c.Instantiate(VSole{}).(VZero); !ok {
		t.Error("closure saw a later extension of its environment")
	}
	if v, _ := shadowed.Lookup("y"); v != Value(VAdd1{VZero{}}) {
		t.Errorf("innermost binding should win, got %v", v)
	}
	if env.Size() != 1 || shadowed.Size() != 1 {
		t.Errorf("unexpected sizes %d and %d", env.Size(), shadowed.Size())
	}
}

func TestEvalMissingVariable(t *testing.T) {
	defer func() {
		if _, ok := recover().(*invariant.Error); !ok {
			t.Fatal("expected an invariant violation")
		}
	}()
	NewEnv().Eval(Var("nowhere"))
}

func TestApplyNonFunction(t *testing.T) {
	defer func() {
		if _, ok := recover().(*invariant.Error); !ok {
			t.Fatal("expected an invariant violation")
		}
	}()
	doApply(VZero{}, VZero{})
}
