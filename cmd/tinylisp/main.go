package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/tinylisp"
	"github.com/spf13/cobra"
)

type options struct {
	expression string
	maxDepth   int
	noPrelude  bool
	history    string
	quiet      bool
}

func newEnv(opts *options, out io.Writer) (*tinylisp.Env, error) {
	env := tinylisp.NewEnv(nil)
	env.SetOutput(out)
	env.SetMaxDepth(opts.maxDepth)
	if !opts.noPrelude {
		if err := tinylisp.LoadLib(env); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	var src io.Reader
	switch {
	case opts.expression != "":
		src = strings.NewReader(opts.expression)
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return repl(opts)
	default:
		src = os.Stdin
	}

	env, err := newEnv(opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, err = env.RunReader(src)
	return err
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tinylisp [file]",
		Short: "Run tinylisp programs",
		Long: `Run a tinylisp program from a file, from -e, or from standard input.
Without arguments and with a terminal on standard input an interactive
session is started.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.expression, "expression", "e", "", "evaluate the given program text")
	flags.IntVar(&opts.maxDepth, "max-depth", tinylisp.DefaultMaxDepth, "maximum nesting of function calls")
	flags.BoolVar(&opts.noPrelude, "no-prelude", false, "do not load the builtin library")
	flags.StringVar(&opts.history, "history", defaultHistory(), "history file of the interactive session")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the banner")
	return cmd
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tinylisp_history")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tinylisp: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
