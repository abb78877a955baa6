package tartlet

// Consequences defines what it means for two Nats to be equal and proves
// that equal Nats have those consequences.
var Consequences = []Definition{
	{"two", The{Nat{}, Add1{Add1{Zero{}}}}},
	{"three", The{Nat{}, Add1{Add1{Add1{Zero{}}}}}},
	// (nat=consequence j k) is Trivial when both are zero, Absurd when
	// exactly one is zero, and (= Nat j-1 k-1) otherwise.
	{"nat=consequence", The{
		Pi{"j", Nat{}, Pi{"k", Nat{}, U{}}},
		Lambda{"j", Lambda{"k",
			IndNat{
				Var("j"),
				Lambda{"_", U{}},
				IndNat{Var("k"), Lambda{"_", U{}}, Trivial{}, Lambda{"_", Lambda{"_", Absurd{}}}},
				Lambda{"j-1", Lambda{"_",
					IndNat{
						Var("k"),
						Lambda{"_", U{}},
						Absurd{},
						Lambda{"k-1", Lambda{"_", Equal{Nat{}, Var("j-1"), Var("k-1")}}},
					}}},
			}}},
	}},
	{"nat=consequence-refl", The{
		Pi{"n", Nat{}, App{App{Var("nat=consequence"), Var("n")}, Var("n")}},
		Lambda{"n",
			IndNat{
				Var("n"),
				Lambda{"k", App{App{Var("nat=consequence"), Var("k")}, Var("k")}},
				Sole{},
				Lambda{"n-1", Lambda{"_", Same{}}},
			}},
	}},
	{"there-are-consequences", The{
		Pi{"j", Nat{},
			Pi{"k", Nat{},
				Pi{"j=k", Equal{Nat{}, Var("j"), Var("k")},
					App{App{Var("nat=consequence"), Var("j")}, Var("k")}}}},
		Lambda{"j", Lambda{"k", Lambda{"j=k",
			Replace{
				Var("j=k"),
				Lambda{"n", App{App{Var("nat=consequence"), Var("j")}, Var("n")}},
				App{Var("nat=consequence-refl"), Var("j")},
			}}}},
	}},
}
