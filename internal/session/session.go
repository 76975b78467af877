// Package session implements the interactive read-compute-print loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sivchari/calc/internal/arith"
	"github.com/sivchari/calc/internal/config"
	"github.com/sivchari/calc/internal/report"
)

// Session owns the input and output streams of one calculator run.
type Session struct {
	reader       *bufio.Reader
	reporter     *report.Generator
	normalizer   *normalizer
	division     arith.Operation
	allowDecimal bool
	verbose      bool
}

// iteration holds the values of a single pass through the loop. A fresh
// iteration is started for every command so nothing carries over.
type iteration struct {
	op   arith.Operation
	a, b float64
}

// New creates a session reading commands from in and writing to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) *Session {
	division, _ := arith.Lookup("division")
	if cfg.Compat.LegacyDivision {
		division = arith.LegacyDivision()
	}

	return &Session{
		reader:       bufio.NewReader(in),
		reporter:     report.New(cfg, out),
		normalizer:   newNormalizer(),
		division:     division,
		allowDecimal: cfg.Input.AllowDecimal,
		verbose:      cfg.Verbose,
	}
}

// Run drives the session until the quit command or the end of input.
// It returns nil on a normal exit. Failures reading input or writing
// output are returned, as is ctx.Err() once the context is done.
func (s *Session) Run(ctx context.Context) error {
	s.logf("Session started")

	var (
		state = AwaitingCommand
		it    iteration
	)

	for state != Terminated {
		if state == AwaitingCommand {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		next, err := s.step(state, &it)
		if errors.Is(err, io.EOF) {
			s.logf("End of input reached in state %q", state)

			break
		}

		if err != nil {
			return err
		}

		if next == AwaitingCommand {
			it = iteration{}
		}

		state = next
	}

	s.logf("Session terminated")

	return nil
}

func (s *Session) step(state State, it *iteration) (State, error) {
	switch state {
	case AwaitingCommand:
		return s.readCommand(it)
	case AwaitingOperand1:
		return s.readOperand(1, &it.a, AwaitingOperand2)
	case AwaitingOperand2:
		return s.readOperand(2, &it.b, ComputingAndPrinting)
	case ComputingAndPrinting:
		return AwaitingCommand, s.compute(it)
	}

	return Terminated, fmt.Errorf("unexpected session state %q", state)
}

func (s *Session) readCommand(it *iteration) (State, error) {
	if err := s.reporter.Prompt(); err != nil {
		return Terminated, err
	}

	line, err := s.readLine()
	if err != nil {
		return Terminated, err
	}

	token := s.normalizer.command(line)
	if token == QuitToken {
		return Terminated, nil
	}

	op, ok := s.lookup(token)
	if !ok {
		s.logf("Ignoring unrecognized command %q", token)

		return AwaitingCommand, nil
	}

	s.logf("Selected %s", op.Kind)
	it.op = op

	return AwaitingOperand1, nil
}

func (s *Session) readOperand(n int, dst *float64, next State) (State, error) {
	for {
		if err := s.reporter.OperandPrompt(n); err != nil {
			return Terminated, err
		}

		line, err := s.readLine()
		if err != nil {
			return Terminated, err
		}

		v, err := parseOperand(line, s.allowDecimal)
		if err == nil {
			*dst = v

			return next, nil
		}

		s.logf("Rejected operand %d: %v", n, err)

		if err := s.reporter.InvalidNumber(); err != nil {
			return Terminated, err
		}
	}
}

func (s *Session) compute(it *iteration) error {
	result, err := it.op.Apply(it.a, it.b)
	if errors.Is(err, arith.ErrDivisionByZero) {
		return s.reporter.DivisionByZero()
	}

	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", it.op.Name, err)
	}

	return s.reporter.Result(it.op, result)
}

func (s *Session) lookup(token string) (arith.Operation, bool) {
	op, ok := arith.Lookup(token)
	if ok && op.Kind == arith.KindDivision {
		return s.division, true
	}

	return op, ok
}

func (s *Session) readLine() (string, error) {
	// Lines of any length are returned whole so an oversized command or
	// operand is rejected like any other bad token.
	line, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if err != nil && line == "" {
		return "", io.EOF
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) logf(format string, args ...any) {
	if s.verbose {
		log.Printf(format, args...)
	}
}
