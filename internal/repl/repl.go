// Package repl implements the interactive read-eval-print loop around
// the lex, parse and evaluate stages.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"arith/internal/diag"
	"arith/internal/interp"
	"arith/internal/lexer"
	"arith/internal/parser"
)

// Options configure a Session.
type Options struct {
	Prompt  string
	History string // history file path; empty disables persistence
	Stdout  io.Writer
	Stderr  io.Writer
}

// Session reads lines, evaluates them and prints the value or a
// positioned diagnostic. It is the sole recovery point: any lex, parse
// or evaluation failure is rendered and the loop moves on to the next
// line. The only state it keeps across lines is "has input ended".
type Session struct {
	opts Options
}

// New creates a session. Missing writers default to the process
// streams, a missing prompt to "> ".
func New(opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Session{opts: opts}
}

// EvalLine runs one line through lex, parse and evaluate. Lex and parse
// failures come back wrapped in the composite diag.Error; evaluation
// faults are returned as-is.
func EvalLine(input string) (int64, error) {
	toks, lexErr := lexer.Lex(input)
	if lexErr != nil {
		return 0, diag.FromLex(lexErr)
	}
	expr, parseErr := parser.Parse(toks)
	if parseErr != nil {
		return 0, diag.FromParse(parseErr)
	}
	value, evalErr := interp.Evaluate(expr)
	if evalErr != nil {
		return 0, evalErr
	}
	return value, nil
}

// Run reads and evaluates lines from stdin until end of input.
// Interactive terminals get line editing and history; everything else
// falls back to a plain buffered reader so the loop stays pipeable.
func (s *Session) Run(stdin *os.File) error {
	if term.IsTerminal(int(stdin.Fd())) {
		return s.runInteractive(stdin)
	}
	return s.RunPlain(stdin)
}

func (s *Session) runInteractive(stdin *os.File) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.opts.Prompt,
		HistoryFile:     s.opts.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize line reader: %w", err)
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s.handle(line)
	}
}

// RunPlain evaluates lines from r without line editing, prompting
// before each read.
func (s *Session) RunPlain(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.opts.Stdout, s.opts.Prompt)
		if !sc.Scan() {
			break
		}
		s.handle(sc.Text())
	}
	return sc.Err()
}

func (s *Session) handle(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	value, err := EvalLine(line)
	if err != nil {
		diag.ShowDiagnostic(s.opts.Stderr, err, line)
		return
	}
	fmt.Fprintln(s.opts.Stdout, value)
}
