// Package report renders everything the calculator prints.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sivchari/calc/internal/arith"
	"github.com/sivchari/calc/internal/config"
)

// CommandPrompt lists every operation offered by arith.Operations.
var CommandPrompt = commandPrompt(arith.Operations())

// Messages printed by the calculator.
const (
	FirstOperandPrompt  = "Enter 1st number: "
	SecondOperandPrompt = "Enter 2nd number: "
	DivisionByZero      = "Cannot divide by zero..."
	InvalidNumber       = "Invalid number, please enter a valid number."
)

func commandPrompt(ops []arith.Operation) string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}

	return "Choose method of Calculation: " + strings.Join(names, ", ") + " or 'q' to exit."
}

// Generator writes prompts and results to an output stream.
type Generator struct {
	out        io.Writer
	blankAfter bool
}

// New creates a new report generator writing to out.
func New(cfg *config.Config, out io.Writer) *Generator {
	return &Generator{
		out:        out,
		blankAfter: cfg.Output.BlankLineAfterResult(),
	}
}

// Prompt prints the command menu.
func (g *Generator) Prompt() error {
	return g.line(CommandPrompt)
}

// OperandPrompt prints the prompt for the n-th operand, starting at 1.
func (g *Generator) OperandPrompt(n int) error {
	if n == 1 {
		return g.line(FirstOperandPrompt)
	}

	return g.line(SecondOperandPrompt)
}

// Result prints the labeled result of op.
func (g *Generator) Result(op arith.Operation, value float64) error {
	if err := g.line(op.Label + FormatNumber(value)); err != nil {
		return err
	}

	if g.blankAfter {
		return g.line("")
	}

	return nil
}

// DivisionByZero prints the zero-divisor message.
func (g *Generator) DivisionByZero() error {
	return g.line(DivisionByZero)
}

// InvalidNumber prints the malformed operand message.
func (g *Generator) InvalidNumber() error {
	return g.line(InvalidNumber)
}

func (g *Generator) line(s string) error {
	if _, err := fmt.Fprintln(g.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// FormatNumber renders v in classic double notation. Integral values keep a
// ".0" suffix; magnitudes outside [1e-3, 1e7) use scientific notation such as 1.0E7.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")

	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}

// FormatRounded renders v rounded to at most places decimals, dropping
// trailing zeros.
func FormatRounded(v float64, places int) string {
	p := math.Pow10(places)

	r := math.Round(v*p) / p
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
