package tinylisp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenNumber
	TokenSymbol
)

func (t TokenType) String() string {
	switch t {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenNumber:
		return "number"
	case TokenSymbol:
		return "symbol"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical unit. Pos is the byte offset of its first character.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

func (t Token) String() string {
	return t.Text
}

type Lexer struct {
	buf *bufio.Reader
	pos int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

// Tokenize splits src into tokens.
func Tokenize(src string) ([]Token, error) {
	return NewLexer(strings.NewReader(src)).Tokens()
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	if err != nil {
		return r, err
	}
	if r == utf8.RuneError && n == 1 {
		return r, &LexError{Pos: l.pos, Msg: "invalid UTF-8 encoding"}
	}
	l.pos += n
	return r, nil
}

func (l *Lexer) unreadRune(r rune) error {
	err := l.buf.UnreadRune()
	l.pos -= utf8.RuneLen(r)
	return err
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return l.unreadRune(r)
		}
	}
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhite(); err != nil {
		return Token{}, err
	}
	start := l.pos
	r, err := l.readRune()
	if err != nil {
		return Token{}, err
	}
	switch r {
	case '(':
		return Token{Type: TokenLParen, Text: "(", Pos: start}, nil
	case ')':
		return Token{Type: TokenRParen, Text: ")", Pos: start}, nil
	}

	var buf bytes.Buffer
	for {
		if unicode.IsControl(r) {
			return Token{}, &LexError{Pos: l.pos - utf8.RuneLen(r), Msg: fmt.Sprintf("control character %U", r)}
		}
		buf.WriteRune(r)
		r, err = l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if isDelimiter(r) {
			l.unreadRune(r)
			break
		}
	}

	s := buf.String()
	if isNumber(s) {
		return Token{Type: TokenNumber, Text: s, Pos: start}, nil
	}
	return Token{Type: TokenSymbol, Text: s, Pos: start}, nil
}

// Tokens reads the whole input.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// isNumber accepts decimal literals only; ParseFloat would also take "Inf",
// "NaN" and hex floats.
func isNumber(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return false
		}
	}
	return true
}
