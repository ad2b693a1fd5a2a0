package tinylisp

import (
	"fmt"
	"strconv"
)

type ValueType int

const (
	ValueUnit ValueType = iota
	ValueNumber
	ValueBool
	ValueText
	ValueClosure
)

func (t ValueType) String() string {
	switch t {
	case ValueUnit:
		return "unit"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "bool"
	case ValueText:
		return "text"
	case ValueClosure:
		return "function"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is a runtime value. v holds float64, bool, string or *Closure
// depending on t.
type Value struct {
	t ValueType
	v interface{}
}

// Closure is a user defined function together with the environment it was
// defined in.
type Closure struct {
	Name   string
	Params []string
	Body   *Expr
	Env    *Env
}

var (
	unit     = &Value{t: ValueUnit}
	valTrue  = &Value{t: ValueBool, v: true}
	valFalse = &Value{t: ValueBool, v: false}
)

func Unit() *Value {
	return unit
}

func NumberValue(n float64) *Value {
	return &Value{t: ValueNumber, v: n}
}

func BoolValue(b bool) *Value {
	if b {
		return valTrue
	}
	return valFalse
}

func TextValue(s string) *Value {
	return &Value{t: ValueText, v: s}
}

func ClosureValue(c *Closure) *Value {
	return &Value{t: ValueClosure, v: c}
}

func (v *Value) Type() ValueType {
	return v.t
}

func (v *Value) Number() (float64, bool) {
	n, ok := v.v.(float64)
	return n, ok && v.t == ValueNumber
}

func (v *Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok && v.t == ValueBool
}

func (v *Value) Text() (string, bool) {
	s, ok := v.v.(string)
	return s, ok && v.t == ValueText
}

func (v *Value) Closure() (*Closure, bool) {
	c, ok := v.v.(*Closure)
	return c, ok && v.t == ValueClosure
}

// Equal compares values structurally. Values of different types are never
// equal; closures are equal only to themselves.
func (v *Value) Equal(o *Value) bool {
	if v.t != o.t {
		return false
	}
	switch v.t {
	case ValueUnit:
		return true
	case ValueClosure:
		return v.v.(*Closure) == o.v.(*Closure)
	}
	return v.v == o.v
}

// String returns the display form written by print. Unit displays as "".
func (v *Value) String() string {
	switch v.t {
	case ValueUnit:
		return ""
	case ValueNumber:
		return formatNumber(v.v.(float64))
	case ValueBool:
		if v.v.(bool) {
			return "True"
		}
		return "False"
	case ValueText:
		return v.v.(string)
	case ValueClosure:
		return fmt.Sprintf("<fn %s>", v.v.(*Closure).Name)
	}
	return fmt.Sprint(v.v)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
