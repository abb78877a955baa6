package tartlet

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/smasher164/nbe/internal/invariant"
)

func expectExpr(t *testing.T, want, got Expr) {
	t.Helper()
	if d := pretty.Diff(want, got); len(d) > 0 {
		t.Errorf("want %v, got %v\n%s", want, got, strings.Join(d, "\n"))
	}
}

var natToNat = VPi{VNat{}, Closure{NewEnv(), "x", Nat{}}}

func TestEtaFunction(t *testing.T) {
	f := VNeutral{natToNat, NVar{"f"}}
	ctx := Ctx(nil).Extend("f", natToNat)
	expectExpr(t, Lambda{"x", App{Var("f"), Var("x")}}, ctx.ReadBack(natToNat, f))
}

func TestEtaFunctionAvoidsCapture(t *testing.T) {
	f := VNeutral{natToNat, NVar{"x"}}
	ctx := Ctx(nil).Extend("x", natToNat)
	expectExpr(t, Lambda{"x'", App{Var("x"), Var("x'")}}, ctx.ReadBack(natToNat, f))
}

func TestEtaPair(t *testing.T) {
	pairT := VSigma{VNat{}, Closure{NewEnv(), "a", Atom{}}}
	p := VNeutral{pairT, NVar{"p"}}
	ctx := Ctx(nil).Extend("p", pairT)
	expectExpr(t, Cons{Car{Var("p")}, Cdr{Var("p")}}, ctx.ReadBack(pairT, p))
}

func TestEtaTrivial(t *testing.T) {
	for _, v := range []Value{
		VSole{},
		VNeutral{VTrivial{}, NVar{"t"}},
		VNeutral{VTrivial{}, NCar{NVar{"p"}}},
	} {
		expectExpr(t, Sole{}, Ctx(nil).ReadBack(VTrivial{}, v))
	}
}

func TestReadBackAbsurd(t *testing.T) {
	v := VNeutral{VAbsurd{}, NVar{"nope"}}
	expectExpr(t, The{Absurd{}, Var("nope")}, Ctx(nil).ReadBack(VAbsurd{}, v))

	stuck := doIndAbsurd(v, VNat{})
	expectExpr(t, IndAbsurd{The{Absurd{}, Var("nope")}, Nat{}}, Ctx(nil).ReadBack(VNat{}, stuck))
}

func TestReadBackTypes(t *testing.T) {
	tests := []Expr{
		Nat{},
		Atom{},
		Trivial{},
		Absurd{},
		U{},
		Equal{Nat{}, Zero{}, Add1{Zero{}}},
		Pi{"n", Nat{}, Equal{Nat{}, Var("n"), Var("n")}},
		Sigma{"a", Atom{}, Pi{"b", Atom{}, Equal{Atom{}, Var("a"), Var("b")}}},
		Pi{"A", U{}, Pi{"x", Var("A"), Var("A")}},
	}
	for _, e := range tests {
		got := Ctx(nil).ReadBack(VU{}, NewEnv().Eval(e))
		expectExpr(t, e, got)
	}
}

func TestReadBackFreshensTypeBinders(t *testing.T) {
	ctx := Ctx(nil).Extend("n", VNat{})
	got := ctx.ReadBack(VU{}, NewEnv().Eval(Pi{"n", Nat{}, Equal{Nat{}, Var("n"), Var("n")}}))
	expectExpr(t, Pi{"n'", Nat{}, Equal{Nat{}, Var("n'"), Var("n'")}}, got)
}

func TestReadBackTick(t *testing.T) {
	expectExpr(t, Tick("rutabaga"), Ctx(nil).ReadBack(VAtom{}, VTick{"rutabaga"}))
}

func TestReadBackInvariant(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*invariant.Error); !ok {
			t.Fatalf("expected an invariant violation, got %v", r)
		}
	}()
	Ctx(nil).ReadBack(VNat{}, VSole{})
}
