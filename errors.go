package tinylisp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrUnbalancedParens     = errors.New("unbalanced parentheses")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrMalformedSpecialForm = errors.New("malformed special form")
	ErrUnboundSymbol        = errors.New("unbound symbol")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrArityMismatch        = errors.New("arity mismatch")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrEmptyForm            = errors.New("empty form")
	ErrRecursionDepth       = errors.New("maximum recursion depth exceeded")
)

// LexError reports input the lexer cannot turn into tokens.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

func (e *LexError) Unwrap() error {
	return ErrInvalidCharacter
}

// ParseError reports a structural problem in the token stream. Err is one of
// ErrUnbalancedParens, ErrUnexpectedEOF or ErrMalformedSpecialForm.
type ParseError struct {
	Pos int
	Err error
	Msg string

	// eof is set when more input could complete the form.
	eof bool
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("parse error at %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("parse error at %d: %v: %s", e.Pos, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.eof && e.Err != ErrUnexpectedEOF {
		return []error{e.Err, ErrUnexpectedEOF}
	}
	return []error{e.Err}
}

// EvalError reports a failure while evaluating an expression.
type EvalError struct {
	Pos int
	Err error
	Msg string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("eval error at %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("eval error at %d: %v: %s", e.Pos, e.Err, e.Msg)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalErrorf(node *Expr, err error, format string, args ...interface{}) error {
	pos := -1
	if node != nil {
		pos = node.pos
	}
	return &EvalError{Pos: pos, Err: err, Msg: fmt.Sprintf(format, args...)}
}

func malformed(node *Expr, format string, args ...interface{}) error {
	return &ParseError{Pos: node.pos, Err: ErrMalformedSpecialForm, Msg: fmt.Sprintf(format, args...)}
}
