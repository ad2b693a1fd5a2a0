package tinylisp

import (
	"io"
	"os"
)

const DefaultMaxDepth = 1000

// calls tracks closure call nesting for every frame of one interpreter.
type calls struct {
	depth    int
	maxDepth int
}

// Env is one frame of the environment chain. The zero frame, created with a
// nil parent, is the global environment.
type Env struct {
	vars  map[string]*Value
	env   *Env
	out   io.Writer
	calls *calls
}

func NewEnv(env *Env) *Env {
	var out io.Writer = os.Stdout
	c := &calls{maxDepth: DefaultMaxDepth}
	if env != nil {
		out = env.out
		c = env.calls
	}
	return &Env{
		vars:  make(map[string]*Value),
		env:   env,
		out:   out,
		calls: c,
	}
}

// SetOutput sets the writer print writes to. Frames created afterwards
// inherit it.
func (e *Env) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Env) Output() io.Writer {
	return e.out
}

// SetMaxDepth limits how deeply closure calls may nest. n <= 0 restores the
// default.
func (e *Env) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	e.calls.maxDepth = n
}

func (e *Env) MaxDepth() int {
	return e.calls.maxDepth
}

// Define binds name in this frame, replacing any earlier binding.
func (e *Env) Define(name string, v *Value) {
	e.vars[name] = v
}

func (e *Env) find(name string) (*Value, bool) {
	for env := e; env != nil; env = env.env {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup returns the innermost binding of name.
func (e *Env) Lookup(name string) (*Value, error) {
	v, ok := e.find(name)
	if !ok {
		return nil, &EvalError{Pos: -1, Err: ErrUnboundSymbol, Msg: name}
	}
	return v, nil
}

func (e *Env) Bound(name string) bool {
	_, ok := e.find(name)
	return ok
}

// Len returns the number of bindings in this frame only.
func (e *Env) Len() int {
	return len(e.vars)
}

func (e *Env) Parent() *Env {
	return e.env
}

func (e *Env) Root() *Env {
	env := e
	for env.env != nil {
		env = env.env
	}
	return env
}
