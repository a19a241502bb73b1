package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/zephyrtronium/stepcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname       string
		nl, interact bool
		opts         options
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&opts.explain, "explain", false, "show each step of the calculation")
	flag.BoolVar(&opts.echo, "echo", false, "print parse trees")
	flag.BoolVar(&interact, "i", false, "read expressions interactively")
	flag.Parse()

	if interact || (inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd()))) {
		repl(os.Stdout, opts)
		return
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readexprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	ok := true
	for _, src := range srcs {
		ok = calc(os.Stdout, src, opts) && ok
	}
	if !ok {
		os.Exit(1)
	}
}

// options controls how results are printed.
type options struct {
	explain bool
	echo    bool
}

// calc computes one expression and prints the result, or its explanation, to
// w. Returns whether the expression could be computed.
func calc(w io.Writer, src string, opts options) bool {
	if opts.echo {
		if a, err := stepcalc.ParseString(src); err == nil {
			fmt.Fprintf(w, "%v : ", a)
		}
	}
	if opts.explain {
		e := stepcalc.Explain(src)
		if _, err := e.WriteTo(w); err != nil {
			log.Fatal(err)
		}
		return e.Err == nil
	}
	r, err := stepcalc.EvalString(src)
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return false
	}
	fmt.Fprintln(w, r.Value)
	return true
}

// readexprs reads the expressions in an input. If lines is true, each
// non-blank line is an expression; otherwise the whole input is one.
func readexprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

const helpText = `Enter an expression such as (2+3)*4 to compute it.
Commands:
  :explain [on|off]  show each step of the calculation
  :help              show this message
  :quit              exit
`

// repl reads expressions from the terminal until EOF, Ctrl-C, or :quit.
func repl(w io.Writer, opts options) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	fmt.Fprint(w, helpText)
	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				log.Print(err)
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if command(w, line, &opts) {
				return
			}
			continue
		}
		calc(w, line, opts)
	}
}

// command runs an interactive command. Returns true if the session should end.
func command(w io.Writer, line string, opts *options) bool {
	f := strings.Fields(strings.ToLower(line))
	switch f[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprint(w, helpText)
	case ":explain":
		switch {
		case len(f) == 1:
			opts.explain = !opts.explain
		case f[1] == "on":
			opts.explain = true
		case f[1] == "off":
			opts.explain = false
		default:
			fmt.Fprintf(w, "usage: :explain [on|off]\n")
			return false
		}
		if opts.explain {
			fmt.Fprintln(w, "explanations on")
		} else {
			fmt.Fprintln(w, "explanations off")
		}
	default:
		fmt.Fprintf(w, "unknown command %s. Type :help for help.\n", f[0])
	}
	return false
}
