package tinylisp

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{
			input: "",
			want:  nil,
		},
		{
			input: "1",
			want:  []string{"1"},
		},
		{
			input: "(1)(2)",
			want:  []string{"(1)", "(2)"},
		},
		{
			input: "()",
			want:  []string{"()"},
		},
		{
			input: "(+ 1 (* 1 1))",
			want:  []string{"(+ 1 (* 1 1))"},
		},
		{
			input: "((let x 1.50)\n (print x))",
			want:  []string{"((let x 1.5) (print x))"},
		},
		{
			input: "True x (fn f (a b) (+ a b))",
			want:  []string{"True", "x", "(fn f (a b) (+ a b))"},
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		forms, err := ParseString(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		var got []string
		for _, form := range forms {
			got = append(got, form.String())
		}

		if strings.Join(got, "|") != strings.Join(test.want, "|") {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseTree(t *testing.T) {
	forms, err := ParseString("(fn f (a) (+ a 2))")
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 1 {
		t.Fatalf("want 1 form but got %d", len(forms))
	}
	fn := forms[0]
	if fn.Type() != ExprList || len(fn.Children()) != 4 {
		t.Fatalf("unexpected tree %v", fn)
	}
	body := fn.Children()[3]
	if body.Pos() != 10 {
		t.Errorf("want body at 10 but got %d", body.Pos())
	}
	two := body.Children()[2]
	if two.Type() != ExprNumber || two.Num() != 2 {
		t.Errorf("want number 2 but got %v", two)
	}
	if a := fn.Children()[2].Children()[0]; a.Type() != ExprAtom || a.Text() != "a" {
		t.Errorf("want atom a but got %v", a)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		eof   bool
		pos   int
	}{
		{input: "(let x 1", want: ErrUnbalancedParens, eof: true, pos: 0},
		{input: "(a (b c)", want: ErrUnbalancedParens, eof: true, pos: 0},
		{input: "(a) (b (c)", want: ErrUnbalancedParens, eof: true, pos: 4},
		{input: ")", want: ErrUnbalancedParens, pos: 0},
		{input: "(a))", want: ErrUnbalancedParens, pos: 3},
		{input: "(let x)", want: ErrMalformedSpecialForm, pos: 0},
	}
	for _, test := range tests {
		forms, err := ParseString(test.input)
		if forms != nil {
			t.Errorf("%q: want no forms but got %v", test.input, forms)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%q: want %v but got %v", test.input, test.want, err)
			continue
		}
		if errors.Is(err, ErrUnexpectedEOF) != test.eof {
			t.Errorf("%q: unexpected EOF classification for %v", test.input, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: want ParseError but got %T", test.input, err)
			continue
		}
		if pe.Pos != test.pos {
			t.Errorf("%q: want position %d but got %d", test.input, test.pos, pe.Pos)
		}
	}
}
