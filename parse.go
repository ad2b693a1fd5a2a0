package tinylisp

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

type ExprType int

const (
	ExprAtom ExprType = iota
	ExprNumber
	ExprList
)

// Expr is a node of the syntax tree. Depending on t, v holds the atom text
// (string) or the number (float64); list holds the children of ExprList.
type Expr struct {
	t    ExprType
	v    interface{}
	list []*Expr
	pos  int
}

func Atom(s string) *Expr {
	return &Expr{t: ExprAtom, v: s}
}

func Number(n float64) *Expr {
	return &Expr{t: ExprNumber, v: n}
}

func List(children ...*Expr) *Expr {
	return &Expr{t: ExprList, list: children}
}

func (x *Expr) Type() ExprType {
	return x.t
}

// Pos is the byte offset of the token the expression starts at.
func (x *Expr) Pos() int {
	return x.pos
}

// Text returns the atom text, or "" for other expressions.
func (x *Expr) Text() string {
	s, _ := x.v.(string)
	return s
}

func (x *Expr) Num() float64 {
	n, _ := x.v.(float64)
	return n
}

func (x *Expr) Children() []*Expr {
	return x.list
}

func (x *Expr) String() string {
	if x == nil {
		return "()"
	}
	var buf bytes.Buffer
	switch x.t {
	case ExprList:
		fmt.Fprint(&buf, "(")
		for i, c := range x.list {
			if i > 0 {
				fmt.Fprint(&buf, " ")
			}
			fmt.Fprint(&buf, c)
		}
		fmt.Fprint(&buf, ")")
	case ExprNumber:
		fmt.Fprint(&buf, formatNumber(x.v.(float64)))
	default:
		fmt.Fprint(&buf, x.v)
	}
	return buf.String()
}

type Parser struct {
	tokens []Token
	idx    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds one expression per top-level form of tokens and checks the
// shape of every special form.
func Parse(tokens []Token) ([]*Expr, error) {
	p := NewParser(tokens)
	var forms []*Expr
	for {
		x, err := p.ParseAny()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, x)
	}
	for _, x := range forms {
		if err := Check(x); err != nil {
			return nil, err
		}
	}
	return forms, nil
}

// ParseString tokenizes and parses src.
func ParseString(src string) ([]*Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) peek() (Token, bool) {
	if p.idx >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.idx], true
}

// ParseAny parses the next expression. It returns io.EOF when no tokens are
// left.
func (p *Parser) ParseAny() (*Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, io.EOF
	}
	p.idx++
	switch tok.Type {
	case TokenLParen:
		return p.ParseParen(tok)
	case TokenRParen:
		return nil, &ParseError{Pos: tok.Pos, Err: ErrUnbalancedParens, Msg: "unexpected )"}
	case TokenNumber:
		if n, err := strconv.ParseFloat(tok.Text, 64); err == nil {
			return &Expr{t: ExprNumber, v: n, pos: tok.Pos}, nil
		}
	}
	return &Expr{t: ExprAtom, v: tok.Text, pos: tok.Pos}, nil
}

// ParseParen parses the children of the list opened by open, consuming the
// matching ).
func (p *Parser) ParseParen(open Token) (*Expr, error) {
	x := &Expr{t: ExprList, pos: open.Pos}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, &ParseError{
				Pos: open.Pos,
				Err: ErrUnbalancedParens,
				Msg: fmt.Sprintf("expecting matching ) for ( at %d", open.Pos),
				eof: true,
			}
		}
		if tok.Type == TokenRParen {
			p.idx++
			return x, nil
		}
		child, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		x.list = append(x.list, child)
	}
}
