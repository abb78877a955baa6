package untyped

// ChurchDefs defines Church-encoded zero, add1 and +.
var ChurchDefs = []Definition{
	{"zero", Lambda{"f", Lambda{"x", Var("x")}}},
	{"add1", Lambda{"n", Lambda{"f", Lambda{"x",
		App{Var("f"), App{App{Var("n"), Var("f")}, Var("x")}}}}}},
	{"+", Lambda{"j", Lambda{"k", Lambda{"f", Lambda{"x",
		App{App{Var("j"), Var("f")}, App{App{Var("k"), Var("f")}, Var("x")}}}}}}},
}

// ToChurch builds n as applications of add1 to zero, referring to the
// names in ChurchDefs.
func ToChurch(n int) Expr {
	if n <= 0 {
		return Var("zero")
	}
	return App{Var("add1"), ToChurch(n - 1)}
}

// Church is the normal form of the Church numeral n: λf.λx.f (f ... x).
func Church(n int) Expr {
	var body Expr = Var("x")
	for i := 0; i < n; i++ {
		body = App{Var("f"), body}
	}
	return Lambda{"f", Lambda{"x", body}}
}
