package simply

import "fmt"

type NotFoundError struct{ Name Name }

func (e *NotFoundError) Error() string { return "not found: " + e.Name }

type CannotTypeError struct{ Expr Expr }

func (e *CannotTypeError) Error() string {
	return fmt.Sprintf("cannot synthesize a type for %v", e.Expr)
}

// IncorrectTypeError reports a constructor checked against a type it cannot
// have, for instance zero against an arrow.
type IncorrectTypeError struct {
	Name     string
	Expected Ty
	Got      Ty
}

func (e *IncorrectTypeError) Error() string {
	return fmt.Sprintf("%s expects %v, got %v", e.Name, e.Expected, e.Got)
}

type LambdaRequiresArrowError struct{ Got Ty }

func (e *LambdaRequiresArrowError) Error() string {
	return fmt.Sprintf("a lambda requires an arrow type, got %v", e.Got)
}

type NotAFunctionError struct{ Got Ty }

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("not a function type: %v", e.Got)
}

type NotANatError struct{ Got Ty }

func (e *NotANatError) Error() string {
	return fmt.Sprintf("not the type Nat: %v", e.Got)
}

type UnexpectedTypeError struct {
	Expected Ty
	Got      Ty
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("expected %v, got %v", e.Expected, e.Got)
}

// Synth finds the type of e. Only variables, applications, rec-Nat and
// annotations synthesize.
func Synth(ctx Ctx, e Expr) (Ty, error) {
	switch e := e.(type) {
	case Var:
		t, ok := lookup(ctx, Name(e))
		if !ok {
			return nil, &NotFoundError{Name(e)}
		}
		return t, nil
	case App:
		t, err := Synth(ctx, e.Rator)
		if err != nil {
			return nil, err
		}
		arr, ok := t.(TyArr)
		if !ok {
			return nil, &NotAFunctionError{t}
		}
		if err := Check(ctx, e.Rand, arr.From); err != nil {
			return nil, err
		}
		return arr.To, nil
	case Rec:
		t, err := Synth(ctx, e.Target)
		if err != nil {
			return nil, err
		}
		if _, ok := t.(TyNat); !ok {
			return nil, &NotANatError{t}
		}
		if err := Check(ctx, e.Base, e.Type); err != nil {
			return nil, err
		}
		if err := Check(ctx, e.Step, TyArr{TyNat{}, TyArr{e.Type, e.Type}}); err != nil {
			return nil, err
		}
		return e.Type, nil
	case Ann:
		if err := Check(ctx, e.Expr, e.Type); err != nil {
			return nil, err
		}
		return e.Type, nil
	}
	return nil, &CannotTypeError{e}
}

// Check checks e against t, falling back to synthesis.
func Check(ctx Ctx, e Expr, t Ty) error {
	switch e := e.(type) {
	case Lambda:
		arr, ok := t.(TyArr)
		if !ok {
			return &LambdaRequiresArrowError{t}
		}
		return Check(ctx.Extend(e.Name, arr.From), e.Body, arr.To)
	case Zero:
		if _, ok := t.(TyNat); !ok {
			return &IncorrectTypeError{"Zero", TyNat{}, t}
		}
		return nil
	case Add1:
		if _, ok := t.(TyNat); !ok {
			return &IncorrectTypeError{"Add1", TyNat{}, t}
		}
		return Check(ctx, e.Pred, TyNat{})
	}
	got, err := Synth(ctx, e)
	if err != nil {
		return err
	}
	if !typeEquals(got, t) {
		return &UnexpectedTypeError{t, got}
	}
	return nil
}
