package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jcorbin/smorth/internal/logio"
)

// stackPrompt lists each stack value followed by a space, then suffix.
func stackPrompt(values []int64, suffix string) string {
	var sb strings.Builder
	for _, val := range values {
		sb.WriteString(strconv.FormatInt(val, 10))
		sb.WriteByte(' ')
	}
	sb.WriteString(suffix)
	return sb.String()
}

// repl evaluates lines from readline until end of input, interrupt on an empty
// line, or exit. Other errors are logged, leaving the session to continue.
type repl struct {
	vm  *VM
	cfg Config
	out io.Writer
	log *logio.Logger
}

func (r repl) run(ctx context.Context) error {
	if _, err := os.Stat(r.cfg.History); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(r.out, "No previous history.")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            stackPrompt(r.vm.stack, r.cfg.Prompt),
		HistoryFile:       r.cfg.History,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(stackPrompt(r.vm.stack, r.cfg.Prompt))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := r.vm.Eval(ctx, line); err != nil {
			if r.fatal(ctx, err) {
				return err
			}
			r.log.Printf("ERROR", "%v", err)
		}
	}
}

// fatal returns true for errors that end the session.
func (r repl) fatal(ctx context.Context, err error) bool {
	var exit ExitError
	return errors.As(err, &exit) || ctx.Err() != nil
}
