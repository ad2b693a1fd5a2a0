package tinylisp

// Eval evaluates node in e.
func (e *Env) Eval(node *Expr) (*Value, error) {
	return eval(e, node)
}

func eval(env *Env, node *Expr) (*Value, error) {
	switch node.t {
	case ExprNumber:
		return NumberValue(node.v.(float64)), nil
	case ExprAtom:
		name := node.v.(string)
		switch name {
		case "True":
			return valTrue, nil
		case "False":
			return valFalse, nil
		}
		v, ok := env.find(name)
		if !ok {
			return nil, evalErrorf(node, ErrUnboundSymbol, "%s", name)
		}
		return v, nil
	case ExprList:
		if len(node.list) == 0 {
			return nil, evalErrorf(node, ErrEmptyForm, "()")
		}
		return call(env, node)
	}
	return nil, evalErrorf(node, ErrTypeMismatch, "unknown expression %v", node)
}

func evalList(env *Env, nodes []*Expr) ([]*Value, error) {
	vals := make([]*Value, len(nodes))
	for i, n := range nodes {
		v, err := eval(env, n)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalSequence evaluates every form in env and returns the last value.
func evalSequence(env *Env, nodes []*Expr) (*Value, error) {
	ret := unit
	for _, n := range nodes {
		v, err := eval(env, n)
		if err != nil {
			return nil, err
		}
		ret = v
	}
	return ret, nil
}

func call(env *Env, node *Expr) (*Value, error) {
	head := node.list[0]
	switch head.t {
	case ExprAtom:
		if fi, ok := ops[head.v.(string)]; ok {
			if err := fi.check(node); err != nil {
				return nil, err
			}
			if fi.ft == FtSpecial {
				return fi.fn(env, node, nil)
			}
			args, err := evalList(env, node.list[1:])
			if err != nil {
				return nil, err
			}
			return fi.fn(env, node, args)
		}
	case ExprList:
		return evalSequence(env, node.list)
	}

	fv, err := eval(env, head)
	if err != nil {
		return nil, err
	}
	c, ok := fv.Closure()
	if !ok {
		if len(node.list) == 1 {
			return fv, nil
		}
		return nil, evalErrorf(head, ErrTypeMismatch, "%v is a %v, not a function", head, fv.t)
	}
	args, err := evalList(env, node.list[1:])
	if err != nil {
		return nil, err
	}
	return apply(env, node, c, args)
}

func apply(env *Env, node *Expr, c *Closure, args []*Value) (*Value, error) {
	if len(args) != len(c.Params) {
		return nil, evalErrorf(node, ErrArityMismatch, "%s expects %d arguments, got %d", c.Name, len(c.Params), len(args))
	}
	for i, a := range args {
		if a.t == ValueUnit {
			return nil, evalErrorf(node.list[i+1], ErrTypeMismatch, "cannot pass unit as argument %s of %s", c.Params[i], c.Name)
		}
	}

	calls := env.calls
	if calls.depth >= calls.maxDepth {
		return nil, evalErrorf(node, ErrRecursionDepth, "%d calls deep in %s", calls.depth, c.Name)
	}
	calls.depth++
	defer func() { calls.depth-- }()

	scope := NewEnv(c.Env)
	for i, p := range c.Params {
		scope.Define(p, args[i])
	}
	return eval(scope, c.Body)
}
