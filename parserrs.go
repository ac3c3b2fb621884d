package mathexpr

import "strconv"

// SyntaxError is an error indicating a token in a place where the grammar
// does not allow it. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Reason classifies the error.
	Reason SyntaxReason
	// Found describes the offending token, e.g. `")"` or "end of input".
	Found string
	// Open is the position of the unclosed open bracket, for
	// UnterminatedGroup errors.
	Open int
}

// SyntaxReason classifies syntax errors.
type SyntaxReason int8

const (
	// ExpressionExpected means a term was required, e.g. after an operator.
	ExpressionExpected SyntaxReason = iota
	// UnexpectedToken means a token appeared that the parser could not
	// match where it appeared.
	UnexpectedToken
	// UnterminatedGroup means an open bracket had no matching close bracket.
	UnterminatedGroup
	// TrailingInput means a complete expression was followed by more tokens.
	TrailingInput
)

func (err *SyntaxError) Error() string {
	switch err.Reason {
	case ExpressionExpected:
		return errpos(err.Col, "expression expected, found "+err.Found)
	case UnterminatedGroup:
		return errpos(err.Col, "open bracket at "+strconv.Itoa(err.Open)+" with no close bracket, found "+err.Found)
	case TrailingInput:
		return errpos(err.Col, "unexpected "+err.Found+" after end of expression")
	default:
		return errpos(err.Col, "unexpected "+err.Found)
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier which names no parameter and
// no constant or function in any module. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier as written.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unresolved identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the function call tried to imply.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// ConfigError is an error indicating a bad parameter list or module list. It
// is detected before parsing begins, so it carries no position.
type ConfigError struct {
	// Name is the offending parameter name. It is empty for errors about
	// modules alone.
	Name string
	// Problem describes what is wrong.
	Problem string
}

func (err *ConfigError) Error() string {
	if err.Name == "" {
		return "bad configuration: " + err.Problem
	}
	return "bad parameter " + strconv.Quote(err.Name) + ": " + err.Problem
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the rune offset of the start
	// of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*LexError)(nil)
)
