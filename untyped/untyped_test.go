package untyped_test

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/smasher164/nbe/internal/invariant"
	. "github.com/smasher164/nbe/untyped"
)

func expect(t *testing.T, want, got Expr) {
	t.Helper()
	if d := pretty.Diff(want, got); len(d) > 0 {
		t.Errorf("want %v, got %v\n%s", want, got, strings.Join(d, "\n"))
	}
}

func TestChurchAddition(t *testing.T) {
	for _, tc := range [][2]int{{2, 3}, {0, 0}, {0, 4}, {1, 0}} {
		got, err := Program{
			Defs: ChurchDefs,
			Body: App{App{Var("+"), ToChurch(tc[0])}, ToChurch(tc[1])},
		}.Run()
		if err != nil {
			t.Fatal(err)
		}
		expect(t, Church(tc[0]+tc[1]), got)
	}
}

func TestMissingDefinition(t *testing.T) {
	_, err := Program{
		Body: App{App{Var("+"), ToChurch(2)}, ToChurch(3)},
	}.Run()
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected a NotFoundError, got %v", err)
	}
	if notFound.Name != "+" {
		t.Errorf("expected + to be missing, got %s", notFound.Name)
	}
}

func TestUnboundVariable(t *testing.T) {
	_, err := Normalize(Var("x"))
	if err == nil || err.Error() != "not found: x" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want Expr
	}{
		{Lambda{"x", Var("x")}, Lambda{"x", Var("x")}},
		{App{Lambda{"x", Var("x")}, Lambda{"y", Var("y")}}, Lambda{"y", Var("y")}},
		// λx.(λy.λx.y) x must not capture the inner x.
		{
			Lambda{"x", App{Lambda{"y", Lambda{"x", Var("y")}}, Var("x")}},
			Lambda{"x", Lambda{"x'", Var("x")}},
		},
		{
			Lambda{"f", Lambda{"x", App{Var("f"), App{Lambda{"y", Var("y")}, Var("x")}}}},
			Lambda{"f", Lambda{"x", App{Var("f"), Var("x")}}},
		},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		expect(t, tt.want, got)
	}
}

func TestReadBackAvoidsDefinedNames(t *testing.T) {
	got, err := Program{
		Defs: []Definition{{"x", Lambda{"a", Var("a")}}},
		Body: Lambda{"x", Var("x")},
	}.Run()
	if err != nil {
		t.Fatal(err)
	}
	expect(t, Lambda{"x'", Var("x'")}, got)
}

func TestEnvIsImmutable(t *testing.T) {
	env := Env(nil).Extend("foo", NVar{"bar"})
	newEnv := env.Extend("baz", NVar{"qux"})
	if _, ok := env.Lookup("baz"); ok {
		t.Error("extending an Env changed it")
	}
	for _, name := range []string{"foo", "baz"} {
		if _, ok := newEnv.Lookup(name); !ok {
			t.Errorf("%s missing from extended Env", name)
		}
	}
}

func TestEvalForeignExpr(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*invariant.Error); !ok {
			t.Fatalf("expected an invariant violation, got %v", r)
		}
	}()
	Env(nil).Eval(nil)
}
