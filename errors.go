package abacus

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression and ErrDivisionByZero classify every error produced by
// the evaluator. Errors from parsing malformed input match
// ErrInvalidExpression with errors.Is; a division whose divisor evaluates to
// exactly zero matches ErrDivisionByZero.
var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDivisionByZero    = errors.New("division by zero")
)

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// OperatorError is an error indicating an operator token in a position where
// the parser cannot apply it. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that could not be applied.
	Operator string
	// Unary is whether the parser expected an operand at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "cannot use "+strconv.Quote(err.Operator)+" as a "+s+" operator")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Left is the opening parenthesis, or empty if a close parenthesis had no
	// matching open.
	Left string
	// Right is the token found where the close parenthesis was expected, or
	// empty at end of input.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren with no open paren")
	}
	if err.Right == "" {
		return errpos(err.Col, "open paren with no close paren")
	}
	return errpos(err.Col, "expected close paren, found "+strconv.Quote(err.Right))
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// FuncError is an error indicating an unknown function name, or a known
// function used without a parenthesized argument. It implements InputError.
type FuncError struct {
	// Col is the position of the function name.
	Col int
	// Name is the function name.
	Name string
	// Known is whether the name is a recognized function.
	Known bool
}

func (err *FuncError) Error() string {
	if !err.Known {
		return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
	}
	return errpos(err.Col, err.Name+" requires a parenthesized argument")
}

func (err *FuncError) Pos() int {
	return err.Col
}

func (err *FuncError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g. an
// operand missing between two operators. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// TrailingTokenError is an error indicating input left over after a complete
// expression, e.g. two numbers with no operator between them. It implements
// InputError.
type TrailingTokenError struct {
	// Col is the position of the leftover token.
	Col int
	// Token is the leftover token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

func (err *TrailingTokenError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// DepthError is an error indicating that an expression nests deeper than the
// parser permits. It implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nests too deeply")
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*DepthError)(nil)
)
