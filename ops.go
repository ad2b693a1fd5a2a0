package tinylisp

import (
	"fmt"
	"strings"
)

type Ft int

const (
	// FtSpecial forms receive their operands unevaluated.
	FtSpecial Ft = iota
	// FtBuiltin forms receive their operands evaluated left to right.
	FtBuiltin
)

// Fn implements a special form. node is the whole form; args holds the
// evaluated operands of builtins and is nil for special forms.
type Fn func(env *Env, node *Expr, args []*Value) (*Value, error)

type FnInfo struct {
	ft    Ft
	fn    Fn
	check func(node *Expr) error
}

var ops map[string]FnInfo

func makeFn(ft Ft, fn Fn, check func(*Expr) error) FnInfo {
	return FnInfo{ft: ft, fn: fn, check: check}
}

func init() {
	ops = make(map[string]FnInfo)
	ops["let"] = makeFn(FtSpecial, doLet, checkLet)
	ops["fn"] = makeFn(FtSpecial, doFn, checkFn)
	ops["if"] = makeFn(FtSpecial, doIf, exactly(3))
	ops["and"] = makeFn(FtSpecial, doAnd, atLeast(1))
	ops["or"] = makeFn(FtSpecial, doOr, atLeast(1))
	ops["not"] = makeFn(FtBuiltin, doNot, exactly(1))
	ops["+"] = makeFn(FtBuiltin, doPlus, atLeast(1))
	ops["-"] = makeFn(FtBuiltin, doMinus, atLeast(1))
	ops["*"] = makeFn(FtBuiltin, doMul, atLeast(1))
	ops["/"] = makeFn(FtBuiltin, doDiv, atLeast(1))
	ops["="] = makeFn(FtBuiltin, doEqual, exactly(2))
	ops["!="] = makeFn(FtBuiltin, doNotEqual, exactly(2))
	ops["print"] = makeFn(FtSpecial, doPrint, atLeast(1))
}

// Reserved reports whether name cannot be bound with let or fn.
func Reserved(name string) bool {
	if name == "True" || name == "False" {
		return true
	}
	_, ok := ops[name]
	return ok
}

func exactly(n int) func(*Expr) error {
	return func(node *Expr) error {
		if len(node.list)-1 != n {
			return malformed(node, "%v expects %d operands, got %d", node.list[0], n, len(node.list)-1)
		}
		return nil
	}
}

func atLeast(n int) func(*Expr) error {
	return func(node *Expr) error {
		if len(node.list)-1 < n {
			return malformed(node, "%v expects at least %d operands, got %d", node.list[0], n, len(node.list)-1)
		}
		return nil
	}
}

func checkName(name *Expr, what string) error {
	if name.t != ExprAtom {
		return malformed(name, "%s name must be a symbol: %v", what, name)
	}
	if Reserved(name.v.(string)) {
		return malformed(name, "reserved name: %v", name)
	}
	return nil
}

// (let name expr)
func checkLet(node *Expr) error {
	if len(node.list) != 3 {
		return malformed(node, "must be (let name expr)")
	}
	return checkName(node.list[1], "variable")
}

// (fn name (params...) body)
func checkFn(node *Expr) error {
	if len(node.list) != 4 {
		return malformed(node, "must be (fn name (params...) body)")
	}
	if err := checkName(node.list[1], "function"); err != nil {
		return err
	}
	params := node.list[2]
	if params.t != ExprList {
		return malformed(params, "parameters must be a list: %v", params)
	}
	seen := make(map[string]bool)
	for _, p := range params.list {
		if err := checkName(p, "parameter"); err != nil {
			return err
		}
		if seen[p.v.(string)] {
			return malformed(p, "duplicate parameter: %v", p)
		}
		seen[p.v.(string)] = true
	}
	return nil
}

// Check validates the shape of every special form in node.
func Check(node *Expr) error {
	if node.t != ExprList {
		return nil
	}
	if len(node.list) > 0 && node.list[0].t == ExprAtom {
		if fi, ok := ops[node.list[0].v.(string)]; ok {
			if err := fi.check(node); err != nil {
				return err
			}
		}
	}
	for _, c := range node.list {
		if err := Check(c); err != nil {
			return err
		}
	}
	return nil
}

func doLet(env *Env, node *Expr, _ []*Value) (*Value, error) {
	name := node.list[1].v.(string)
	v, err := eval(env, node.list[2])
	if err != nil {
		return nil, err
	}
	if v.t == ValueUnit {
		return nil, evalErrorf(node.list[2], ErrTypeMismatch, "cannot bind unit to %s", name)
	}
	env.Define(name, v)
	return unit, nil
}

func doFn(env *Env, node *Expr, _ []*Value) (*Value, error) {
	name := node.list[1].v.(string)
	params := make([]string, len(node.list[2].list))
	for i, p := range node.list[2].list {
		params[i] = p.v.(string)
	}
	env.Define(name, ClosureValue(&Closure{
		Name:   name,
		Params: params,
		Body:   node.list[3],
		Env:    env,
	}))
	return unit, nil
}

func truthy(node *Expr, v *Value) (bool, error) {
	switch v.t {
	case ValueUnit:
		return false, evalErrorf(node, ErrTypeMismatch, "predicate has no value: %v", node)
	case ValueBool:
		return v.v.(bool), nil
	}
	return true, nil
}

// (if pred then else)
func doIf(env *Env, node *Expr, _ []*Value) (*Value, error) {
	v, err := eval(env, node.list[1])
	if err != nil {
		return nil, err
	}
	test, err := truthy(node.list[1], v)
	if err != nil {
		return nil, err
	}
	if test {
		return eval(env, node.list[2])
	}
	return eval(env, node.list[3])
}

func evalBool(env *Env, node *Expr) (bool, error) {
	v, err := eval(env, node)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, evalErrorf(node, ErrTypeMismatch, "expected bool, got %v %v", v.t, node)
	}
	return b, nil
}

func doAnd(env *Env, node *Expr, _ []*Value) (*Value, error) {
	for _, c := range node.list[1:] {
		b, err := evalBool(env, c)
		if err != nil {
			return nil, err
		}
		if !b {
			return valFalse, nil
		}
	}
	return valTrue, nil
}

func doOr(env *Env, node *Expr, _ []*Value) (*Value, error) {
	for _, c := range node.list[1:] {
		b, err := evalBool(env, c)
		if err != nil {
			return nil, err
		}
		if b {
			return valTrue, nil
		}
	}
	return valFalse, nil
}

func doNot(env *Env, node *Expr, args []*Value) (*Value, error) {
	b, ok := args[0].Bool()
	if !ok {
		return nil, evalErrorf(node.list[1], ErrTypeMismatch, "expected bool, got %v %v", args[0].t, node.list[1])
	}
	return BoolValue(!b), nil
}

func numbers(node *Expr, args []*Value) ([]float64, error) {
	ns := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.Number()
		if !ok {
			return nil, evalErrorf(node.list[i+1], ErrTypeMismatch, "expected number, got %v %v", a.t, node.list[i+1])
		}
		ns[i] = n
	}
	return ns, nil
}

func fold(node *Expr, args []*Value, f func(r, x float64) float64) (*Value, error) {
	ns, err := numbers(node, args)
	if err != nil {
		return nil, err
	}
	r := ns[0]
	for _, x := range ns[1:] {
		r = f(r, x)
	}
	return NumberValue(r), nil
}

func doPlus(env *Env, node *Expr, args []*Value) (*Value, error) {
	return fold(node, args, func(r, x float64) float64 { return r + x })
}

func doMinus(env *Env, node *Expr, args []*Value) (*Value, error) {
	return fold(node, args, func(r, x float64) float64 { return r - x })
}

func doMul(env *Env, node *Expr, args []*Value) (*Value, error) {
	return fold(node, args, func(r, x float64) float64 { return r * x })
}

func doDiv(env *Env, node *Expr, args []*Value) (*Value, error) {
	ns, err := numbers(node, args)
	if err != nil {
		return nil, err
	}
	r := ns[0]
	for i, x := range ns[1:] {
		if x == 0 {
			return nil, evalErrorf(node.list[i+2], ErrDivisionByZero, "%v", node)
		}
		r /= x
	}
	return NumberValue(r), nil
}

func doEqual(env *Env, node *Expr, args []*Value) (*Value, error) {
	return BoolValue(args[0].Equal(args[1])), nil
}

func doNotEqual(env *Env, node *Expr, args []*Value) (*Value, error) {
	return BoolValue(!args[0].Equal(args[1])), nil
}

// doPrint writes its operands separated by spaces. A bare symbol with no
// binding prints as its own name.
func doPrint(env *Env, node *Expr, _ []*Value) (*Value, error) {
	out := make([]string, len(node.list)-1)
	for i, c := range node.list[1:] {
		if c.t == ExprAtom && !Reserved(c.v.(string)) && !env.Bound(c.v.(string)) {
			out[i] = c.v.(string)
			continue
		}
		v, err := eval(env, c)
		if err != nil {
			return nil, err
		}
		out[i] = v.String()
	}
	if _, err := fmt.Fprintln(env.out, strings.Join(out, " ")); err != nil {
		return nil, err
	}
	return unit, nil
}
