package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/tinylisp"
)

const (
	newprompt  = "> "
	contprompt = ". "
)

// session accumulates lines until they form complete top-level forms and
// evaluates them against one global environment.
type session struct {
	env     *tinylisp.Env
	out     io.Writer
	pending string
}

// feed adds a line of input. It reports whether more input is needed to
// complete the pending forms.
func (s *session) feed(line string) bool {
	src := line
	if s.pending != "" {
		src = s.pending + "\n" + line
	}
	if strings.TrimSpace(src) == "" {
		return false
	}

	forms, err := tinylisp.ParseString(src)
	if errors.Is(err, tinylisp.ErrUnexpectedEOF) {
		s.pending = src
		return true
	}
	s.pending = ""
	if err != nil {
		fmt.Fprintln(s.out, err)
		return false
	}
	for _, form := range forms {
		v, err := s.env.Eval(form)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		if str := v.String(); str != "" {
			fmt.Fprintln(s.out, str)
		}
	}
	return false
}

func (s *session) reset() {
	s.pending = ""
}

func repl(opts *options) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       opts.history,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	env, err := newEnv(opts, l.Stdout())
	if err != nil {
		return err
	}
	s := &session{env: env, out: l.Stderr()}

	if !opts.quiet {
		fmt.Fprintln(l.Stdout(), "Welcome to tinylisp!")
	}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if s.pending == "" && line == "" {
				return nil
			}
			s.reset()
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if s.feed(line) {
			l.SetPrompt(contprompt)
		} else {
			l.SetPrompt(newprompt)
		}
	}
}
