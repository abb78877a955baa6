package tartlet

// Synth finds the type of an expression whose shape determines it.
func (ctx Ctx) Synth(e Expr) (Type, error) {
	tracef("synth %v", e)
	switch e := e.(type) {
	case Var:
		return ctx.LookupType(Name(e))
	case Pi:
		if err := ctx.Check(e.Dom, VU{}); err != nil {
			return nil, err
		}
		if err := ctx.Extend(e.Name, ctx.eval(e.Dom)).Check(e.Ran, VU{}); err != nil {
			return nil, err
		}
		return VU{}, nil
	case Sigma:
		if err := ctx.Check(e.CarType, VU{}); err != nil {
			return nil, err
		}
		if err := ctx.Extend(e.Name, ctx.eval(e.CarType)).Check(e.CdrType, VU{}); err != nil {
			return nil, err
		}
		return VU{}, nil
	case App:
		funT, err := ctx.Synth(e.Rator)
		if err != nil {
			return nil, err
		}
		pi, err := ctx.isPi(funT)
		if err != nil {
			return nil, err
		}
		if err := ctx.Check(e.Rand, pi.Dom); err != nil {
			return nil, err
		}
		return pi.Ran.Instantiate(ctx.eval(e.Rand)), nil
	case Car:
		pairT, err := ctx.Synth(e.Pair)
		if err != nil {
			return nil, err
		}
		sigma, err := ctx.isSigma(pairT)
		if err != nil {
			return nil, err
		}
		return sigma.CarType, nil
	case Cdr:
		pairT, err := ctx.Synth(e.Pair)
		if err != nil {
			return nil, err
		}
		sigma, err := ctx.isSigma(pairT)
		if err != nil {
			return nil, err
		}
		return sigma.CdrType.Instantiate(doCar(ctx.eval(e.Pair))), nil
	case Nat, Trivial, Absurd, Atom, U:
		return VU{}, nil
	case IndNat:
		tgtT, err := ctx.Synth(e.Target)
		if err != nil {
			return nil, err
		}
		if err := ctx.isNat(tgtT); err != nil {
			return nil, err
		}
		if err := ctx.Check(e.Motive, VPi{VNat{}, Closure{NewEnv(), "k", U{}}}); err != nil {
			return nil, err
		}
		mot := ctx.eval(e.Motive)
		if err := ctx.Check(e.Base, doApply(mot, VZero{})); err != nil {
			return nil, err
		}
		if err := ctx.Check(e.Step, indNatStepType(mot)); err != nil {
			return nil, err
		}
		return doApply(mot, ctx.eval(e.Target)), nil
	case Equal:
		if err := ctx.Check(e.Type, VU{}); err != nil {
			return nil, err
		}
		t := ctx.eval(e.Type)
		if err := ctx.Check(e.From, t); err != nil {
			return nil, err
		}
		if err := ctx.Check(e.To, t); err != nil {
			return nil, err
		}
		return VU{}, nil
	case Replace:
		tgtT, err := ctx.Synth(e.Target)
		if err != nil {
			return nil, err
		}
		eq, err := ctx.isEqual(tgtT)
		if err != nil {
			return nil, err
		}
		motT := NewEnv().Extend("A", eq.Type).Eval(Pi{"x", Var("A"), U{}})
		if err := ctx.Check(e.Motive, motT); err != nil {
			return nil, err
		}
		mot := ctx.eval(e.Motive)
		if err := ctx.Check(e.Base, doApply(mot, eq.From)); err != nil {
			return nil, err
		}
		return doApply(mot, eq.To), nil
	case IndAbsurd:
		tgtT, err := ctx.Synth(e.Target)
		if err != nil {
			return nil, err
		}
		if err := ctx.isAbsurd(tgtT); err != nil {
			return nil, err
		}
		if err := ctx.Check(e.Motive, VU{}); err != nil {
			return nil, err
		}
		return ctx.eval(e.Motive), nil
	case The:
		if err := ctx.Check(e.Type, VU{}); err != nil {
			return nil, err
		}
		t := ctx.eval(e.Type)
		if err := ctx.Check(e.Expr, t); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, &CannotSynthesizeError{e}
}

// Check verifies that e has type t.
func (ctx Ctx) Check(e Expr, t Type) error {
	tracef("check %v", e)
	switch e := e.(type) {
	case Lambda:
		pi, err := ctx.isPi(t)
		if err != nil {
			return err
		}
		inner, x := ctx.bind(e.Name, pi.Dom)
		return inner.Check(e.Body, pi.Ran.Instantiate(x))
	case Cons:
		sigma, err := ctx.isSigma(t)
		if err != nil {
			return err
		}
		if err := ctx.Check(e.Car, sigma.CarType); err != nil {
			return err
		}
		return ctx.Check(e.Cdr, sigma.CdrType.Instantiate(ctx.eval(e.Car)))
	case Zero:
		return ctx.isNat(t)
	case Add1:
		if err := ctx.isNat(t); err != nil {
			return err
		}
		return ctx.Check(e.Pred, VNat{})
	case Same:
		eq, err := ctx.isEqual(t)
		if err != nil {
			return err
		}
		return ctx.convert(eq.Type, eq.From, eq.To)
	case Sole:
		return ctx.isTrivial(t)
	case Tick:
		return ctx.isAtom(t)
	}
	synthT, err := ctx.Synth(e)
	if err != nil {
		return err
	}
	return ctx.convert(VU{}, synthT, t)
}

// convert decides definitional equality: v1 and v2 are the same t when
// their normal forms are alpha-equivalent.
func (ctx Ctx) convert(t Type, v1, v2 Value) error {
	e1 := ctx.ReadBack(t, v1)
	e2 := ctx.ReadBack(t, v2)
	if AlphaEquiv(e1, e2) {
		return nil
	}
	tracef("convert failed: %v vs %v", e1, e2)
	return &NotSameTypeError{e1, e2}
}

func (ctx Ctx) incorrectType(want string, t Type) error {
	return &IncorrectTypeError{want, ctx.ReadBack(VU{}, t)}
}

func (ctx Ctx) isPi(t Type) (VPi, error) {
	if pi, ok := t.(VPi); ok {
		return pi, nil
	}
	return VPi{}, ctx.incorrectType("Π", t)
}

func (ctx Ctx) isSigma(t Type) (VSigma, error) {
	if sigma, ok := t.(VSigma); ok {
		return sigma, nil
	}
	return VSigma{}, ctx.incorrectType("Σ", t)
}

func (ctx Ctx) isEqual(t Type) (VEq, error) {
	if eq, ok := t.(VEq); ok {
		return eq, nil
	}
	return VEq{}, ctx.incorrectType("=", t)
}

func (ctx Ctx) isNat(t Type) error {
	if _, ok := t.(VNat); ok {
		return nil
	}
	return ctx.incorrectType("Nat", t)
}

func (ctx Ctx) isTrivial(t Type) error {
	if _, ok := t.(VTrivial); ok {
		return nil
	}
	return ctx.incorrectType("Trivial", t)
}

func (ctx Ctx) isAbsurd(t Type) error {
	if _, ok := t.(VAbsurd); ok {
		return nil
	}
	return ctx.incorrectType("Absurd", t)
}

func (ctx Ctx) isAtom(t Type) error {
	if _, ok := t.(VAtom); ok {
		return nil
	}
	return ctx.incorrectType("Atom", t)
}
