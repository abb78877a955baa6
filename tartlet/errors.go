package tartlet

import "fmt"

type UnboundVariableError struct {
	Name Name
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

type AlreadyDefinedError struct {
	Name Name
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("the name %s is already defined", e.Name)
}

// CannotSynthesizeError is returned by Synth for constructor forms that need
// an annotation.
type CannotSynthesizeError struct {
	Expr Expr
}

func (e *CannotSynthesizeError) Error() string {
	return fmt.Sprintf("unable to synthesize a type for %v, try adding a the-annotation", e.Expr)
}

// NotSameTypeError is a failed conversion check. Left and Right are the
// read-back forms of the two values.
type NotSameTypeError struct {
	Left  Expr
	Right Expr
}

func (e *NotSameTypeError) Error() string {
	return fmt.Sprintf("%v is not the same as %v", e.Left, e.Right)
}

// IncorrectTypeError reports a type that does not have the shape an
// eliminator or constructor needs. Want names the expected type former.
type IncorrectTypeError struct {
	Want string
	Got  Expr
}

func (e *IncorrectTypeError) Error() string {
	return fmt.Sprintf("not a %s type: %v", e.Want, e.Got)
}
