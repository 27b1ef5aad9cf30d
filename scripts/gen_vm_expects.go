package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	formatter = flag.String("fmt", "goimports", "formatting command to pipe output through")
	timeout   = flag.Duration("timeout", 5*time.Second, "time limit")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

// gen_vm_expects writes a functional wrapper, usable with vmTestCase.apply,
// for every vmTestCase with* or expect* method that takes arguments.
func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		if *formatter == "" {
			close(ready)
			return nil
		}

		fmtCmd := exec.CommandContext(ctx, *formatter)
		fmtPipe, err := fmtCmd.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		fmtCmd.Stdout = out
		fmtCmd.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := fmtCmd.Run(); err != nil {
			return fmt.Errorf("%v run failed: %w", *formatter, err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var expectMethod = regexp.MustCompile(`func \(vmt vmTestCase\) (expect|with)(.+?)\((.+?)\) vmTestCase`)

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_vm_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := expectMethod.FindSubmatch(sc.Bytes()); len(match) > 0 {
			var (
				baseName = match[1]
				whatName = match[2]
				params   = match[3]
			)
			args, err := callArgs(params)
			if err != nil {
				return fmt.Errorf("%s%s: %w", baseName, whatName, err)
			}
			fmt.Fprintf(&buf, "func %sVM%s(%s) func(vmTestCase) vmTestCase {\n", baseName, whatName, params)
			fmt.Fprintf(&buf, "\treturn func(vmt vmTestCase) vmTestCase {\n")
			fmt.Fprintf(&buf, "\t\treturn vmt.%s%s(%s)\n", baseName, whatName, args)
			fmt.Fprintf(&buf, "\t}\n")
			fmt.Fprintf(&buf, "}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// callArgs turns a parameter list like "name string, body ...string" into the
// matching argument list "name, body...". Grouped parameters, as in "a, b int",
// take their type from the next typed parameter.
func callArgs(params []byte) ([]byte, error) {
	parts := bytes.Split(params, []byte(","))
	names := make([][]byte, len(parts))
	variadic := false
	for i, part := range parts {
		fields := bytes.Fields(part)
		switch len(fields) {
		case 1:
			names[i] = fields[0]
		case 2:
			names[i] = fields[0]
			variadic = bytes.HasPrefix(fields[1], []byte("..."))
		default:
			return nil, errors.New("unsupported parameter " + string(part))
		}
	}
	if len(bytes.Fields(parts[len(parts)-1])) != 2 {
		return nil, errors.New("last parameter has no type")
	}
	args := bytes.Join(names, []byte(", "))
	if variadic {
		args = append(args, "..."...)
	}
	return args, nil
}
