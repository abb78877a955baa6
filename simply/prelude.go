package simply

// Arithmetic defines two, three and + on Nat.
var Arithmetic = []Definition{
	{"two", Ann{Add1{Add1{Zero{}}}, TyNat{}}},
	{"three", Ann{Add1{Add1{Add1{Zero{}}}}, TyNat{}}},
	{"+", Ann{
		Lambda{"n", Lambda{"k", Rec{
			TyNat{},
			Var("n"),
			Var("k"),
			Lambda{"pred", Lambda{"almostSum", Add1{Var("almostSum")}}},
		}}},
		TyArr{TyNat{}, TyArr{TyNat{}, TyNat{}}},
	}},
}

// ToNat builds the literal n.
func ToNat(n int) Expr {
	var e Expr = Zero{}
	for i := 0; i < n; i++ {
		e = Add1{e}
	}
	return e
}
