package formula

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sivchari/calc/internal/arith"
)

// ErrUnknownFormula is returned by LookupPhysics for an unsupported name.
var ErrUnknownFormula = errors.New("unknown formula")

// Field is one named input of a physics formula.
type Field struct {
	Name  string
	Label string
}

// Physics is a two-input mechanics formula.
type Physics struct {
	Key      string
	Name     string
	Equation string
	Fields   []Field
	Unit     string

	calc func(a, b float64) (float64, error)
}

// Eval evaluates the formula with values given in Fields order.
func (p Physics) Eval(values ...float64) (float64, error) {
	if len(values) != len(p.Fields) {
		return 0, fmt.Errorf("%s expects %d values, got %d", p.Key, len(p.Fields), len(values))
	}

	return p.calc(values[0], values[1])
}

var physics = []Physics{
	{
		Key:      "velocity",
		Name:     "Velocity",
		Equation: "v = d / t",
		Fields:   []Field{{"d", "Distance (m)"}, {"t", "Time (s)"}},
		Unit:     "m/s",
		calc:     arith.Divide,
	},
	{
		Key:      "displacement",
		Name:     "Displacement",
		Equation: "d = v × t",
		Fields:   []Field{{"v", "Velocity (m/s)"}, {"t", "Time (s)"}},
		Unit:     "m",
		calc:     product,
	},
	{
		Key:      "force",
		Name:     "Force",
		Equation: "F = m × a",
		Fields:   []Field{{"m", "Mass (kg)"}, {"a", "Acceleration (m/s²)"}},
		Unit:     "N",
		calc:     product,
	},
	{
		Key:      "kinetic",
		Name:     "Kinetic Energy",
		Equation: "KE = 0.5 × m × v²",
		Fields:   []Field{{"m", "Mass (kg)"}, {"v", "Velocity (m/s)"}},
		Unit:     "J",
		calc: func(m, v float64) (float64, error) {
			return arith.Multiply(0.5*m, arith.Multiply(v, v)), nil
		},
	},
}

func product(a, b float64) (float64, error) {
	return arith.Multiply(a, b), nil
}

// PhysicsFormulas returns every supported formula.
func PhysicsFormulas() []Physics {
	return slices.Clone(physics)
}

// LookupPhysics returns the formula with the given key.
func LookupPhysics(key string) (Physics, error) {
	for _, p := range physics {
		if p.Key == key {
			return p, nil
		}
	}

	return Physics{}, fmt.Errorf("%w %q", ErrUnknownFormula, key)
}
