package tinylisp

import (
	"io"
)

// EvalAll evaluates forms in order and returns the value of the last one.
// The first error stops evaluation.
func (e *Env) EvalAll(forms []*Expr) (*Value, error) {
	return evalSequence(e, forms)
}

// Run lexes, parses and evaluates src in e. Nothing is evaluated unless the
// whole of src parses.
func (e *Env) Run(src string) (*Value, error) {
	forms, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return e.EvalAll(forms)
}

// RunReader is like Run but reads the program from r.
func (e *Env) RunReader(r io.Reader) (*Value, error) {
	tokens, err := NewLexer(r).Tokens()
	if err != nil {
		return nil, err
	}
	forms, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return e.EvalAll(forms)
}
