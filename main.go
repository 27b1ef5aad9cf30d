package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/smorth/internal/logio"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run implements the command: with file arguments, each is evaluated in turn;
// otherwise stdin is either the program, or the terminal for a REPL. It
// returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var log logio.Logger
	log.SetOutput(stderr)

	var (
		configFile string
		timeout    time.Duration
		dump       bool
		set        = defaultConfig()
	)
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %v [flags] [file ...]\n", flags.Name())
		flags.PrintDefaults()
	}
	flags.StringVar(&configFile, "config", "", "load settings from a YAML file")
	flags.StringVar(&set.History, "history", set.History, "REPL history file")
	flags.StringVar(&set.Prompt, "prompt", set.Prompt, "REPL prompt, following the stack")
	flags.IntVar(&set.MaxDepth, "max-depth", set.MaxDepth, "limit call and branch nesting; 0 for no limit")
	flags.BoolVar(&set.FlatConditionals, "flat-if", false, "end branches at the first else or then, ignoring nesting")
	flags.BoolVar(&set.Trace, "trace", false, "enable trace logging")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&dump, "dump", false, "dump VM state to stderr when done")
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := defaultConfig()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "history":
			cfg.History = set.History
		case "prompt":
			cfg.Prompt = set.Prompt
		case "max-depth":
			cfg.MaxDepth = set.MaxDepth
		case "flat-if":
			cfg.FlatConditionals = set.FlatConditionals
		case "trace":
			cfg.Trace = set.Trace
		}
	})

	opts := append([]VMOption{
		WithInput(stdin),
		WithOutput(stdout),
	}, cfg.vmOptions()...)
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	files := append(cfg.Prelude, flags.Args()...)
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		opts = append(opts, WithSource(f))
	}

	interactive := false
	if flags.NArg() == 0 {
		if isTerminal(stdin) {
			interactive = true
		} else {
			opts = append(opts, WithNamedSource("<stdin>", stdin))
		}
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	vm := New(opts...)
	defer func() {
		log.ErrorIf(vm.Close())
	}()
	if dump {
		defer vmDumper{vm: vm, out: &logio.Writer{Logf: log.Leveledf("DUMP")}}.dump()
	}

	err := vm.Run(ctx)
	if err == nil && interactive {
		err = repl{vm: vm, cfg: cfg, out: stdout, log: &log}.run(ctx)
	}

	var exit ExitError
	if errors.As(err, &exit) {
		return exit.Code()
	}
	log.ErrorIf(err)
	return log.ExitCode()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
