package tinylisp

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  nil,
		},
		{
			input: " \n\t ",
			want:  nil,
		},
		{
			input: "(+ 1 2)",
			want: []Token{
				{Type: TokenLParen, Text: "(", Pos: 0},
				{Type: TokenSymbol, Text: "+", Pos: 1},
				{Type: TokenNumber, Text: "1", Pos: 3},
				{Type: TokenNumber, Text: "2", Pos: 5},
				{Type: TokenRParen, Text: ")", Pos: 6},
			},
		},
		{
			input: "(print Success-1)(x)",
			want: []Token{
				{Type: TokenLParen, Text: "(", Pos: 0},
				{Type: TokenSymbol, Text: "print", Pos: 1},
				{Type: TokenSymbol, Text: "Success-1", Pos: 7},
				{Type: TokenRParen, Text: ")", Pos: 16},
				{Type: TokenLParen, Text: "(", Pos: 17},
				{Type: TokenSymbol, Text: "x", Pos: 18},
				{Type: TokenRParen, Text: ")", Pos: 19},
			},
		},
		{
			input: "-2.5 1e3 .5 Inf NaN 0x10 - !=",
			want: []Token{
				{Type: TokenNumber, Text: "-2.5", Pos: 0},
				{Type: TokenNumber, Text: "1e3", Pos: 5},
				{Type: TokenNumber, Text: ".5", Pos: 9},
				{Type: TokenSymbol, Text: "Inf", Pos: 12},
				{Type: TokenSymbol, Text: "NaN", Pos: 16},
				{Type: TokenSymbol, Text: "0x10", Pos: 20},
				{Type: TokenSymbol, Text: "-", Pos: 25},
				{Type: TokenSymbol, Text: "!=", Pos: 27},
			},
		},
		{
			input: "(let λ\n  True)",
			want: []Token{
				{Type: TokenLParen, Text: "(", Pos: 0},
				{Type: TokenSymbol, Text: "let", Pos: 1},
				{Type: TokenSymbol, Text: "λ", Pos: 5},
				{Type: TokenSymbol, Text: "True", Pos: 10},
				{Type: TokenRParen, Text: ")", Pos: 14},
			},
		},
	}
	for _, test := range tests {
		got, err := Tokenize(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{input: "(a \x00)", pos: 3},
		{input: "(ab\x07c)", pos: 3},
		{input: "(a \xff)", pos: 3},
	}
	for _, test := range tests {
		_, err := Tokenize(test.input)
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("%q: want LexError but got %v", test.input, err)
			continue
		}
		if le.Pos != test.pos {
			t.Errorf("%q: want position %d but got %d", test.input, test.pos, le.Pos)
		}
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("%q: want ErrInvalidCharacter but got %v", test.input, err)
		}
	}
}

func TestLexerNext(t *testing.T) {
	l := NewLexer(strings.NewReader("(a)"))
	var got []string
	for {
		tok, err := l.Next()
		if err != nil {
			break
		}
		got = append(got, tok.Type.String())
	}
	if diff := cmp.Diff([]string{"(", "symbol", ")"}, got); diff != "" {
		t.Error(diff)
	}
	if l.Pos() != 3 {
		t.Errorf("want position 3 but got %d", l.Pos())
	}
}
