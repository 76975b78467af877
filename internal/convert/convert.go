// Package convert converts values between units of the same category.
package convert

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownCategory is returned for a category that is not supported.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownUnit is returned for a unit outside the selected category.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Category is a family of interchangeable units.
type Category struct {
	Name  string
	Units []string

	toBase   func(v float64, unit string) float64
	fromBase func(v float64, unit string) float64
}

func scaled(table map[string]float64) (to, from func(float64, string) float64) {
	to = func(v float64, unit string) float64 { return v * table[unit] }
	from = func(v float64, unit string) float64 { return v / table[unit] }

	return to, from
}

// Meters per unit.
var lengthTable = map[string]float64{
	"meter": 1, "kilometer": 1000, "centimeter": 0.01, "millimeter": 0.001,
	"inch": 0.0254, "foot": 0.3048, "yard": 0.9144, "mile": 1609.34,
}

// Grams per unit.
var massTable = map[string]float64{
	"kilogram": 1000, "gram": 1, "milligram": 0.001, "pound": 453.592, "ounce": 28.3495,
}

// Units of currency per US dollar. These are fixed approximations, not live rates.
var currencyRates = map[string]float64{
	"usd": 1, "eur": 0.91, "gbp": 0.76, "jpy": 142.5, "cad": 1.35, "aud": 1.50, "zar": 18.50,
}

func celsius(v float64, unit string) float64 {
	switch unit {
	case "fahrenheit":
		return (v - 32) * 5 / 9
	case "kelvin":
		return v - 273.15
	}

	return v
}

func fromCelsius(v float64, unit string) float64 {
	switch unit {
	case "fahrenheit":
		return v*9/5 + 32
	case "kelvin":
		return v + 273.15
	}

	return v
}

func degrees(v float64, unit string) float64 {
	switch unit {
	case "radian":
		return v * 180 / math.Pi
	case "gradian":
		return v * 0.9
	}

	return v
}

func fromDegrees(v float64, unit string) float64 {
	switch unit {
	case "radian":
		return v * math.Pi / 180
	case "gradian":
		return v / 0.9
	}

	return v
}

func newCategories() []Category {
	lengthTo, lengthFrom := scaled(lengthTable)
	massTo, massFrom := scaled(massTable)

	return []Category{
		{
			Name:     "length",
			Units:    []string{"meter", "kilometer", "centimeter", "millimeter", "inch", "foot", "yard", "mile"},
			toBase:   lengthTo,
			fromBase: lengthFrom,
		},
		{
			Name:     "mass",
			Units:    []string{"kilogram", "gram", "milligram", "pound", "ounce"},
			toBase:   massTo,
			fromBase: massFrom,
		},
		{
			Name:     "temperature",
			Units:    []string{"celsius", "fahrenheit", "kelvin"},
			toBase:   celsius,
			fromBase: fromCelsius,
		},
		{
			Name:     "degrees",
			Units:    []string{"degree", "radian", "gradian"},
			toBase:   degrees,
			fromBase: fromDegrees,
		},
		{
			Name:  "currency",
			Units: []string{"usd", "eur", "gbp", "jpy", "cad", "aud", "zar"},
			// Rates are quoted per dollar, so the base conversion divides.
			toBase:   func(v float64, unit string) float64 { return v / currencyRates[unit] },
			fromBase: func(v float64, unit string) float64 { return v * currencyRates[unit] },
		},
	}
}

var categories = newCategories()

// Categories returns the supported categories.
func Categories() []Category {
	return slices.Clone(categories)
}

// Converter converts values. Names are matched case-insensitively.
type Converter struct {
	caser cases.Caser
}

// New creates a converter.
func New() *Converter {
	return &Converter{caser: cases.Lower(language.Und)}
}

// Convert converts value from one unit to another within category.
func (c *Converter) Convert(category string, value float64, from, to string) (float64, error) {
	cat, err := c.lookup(category)
	if err != nil {
		return 0, err
	}

	from, to = c.caser.String(strings.TrimSpace(from)), c.caser.String(strings.TrimSpace(to))

	for _, unit := range []string{from, to} {
		if !slices.Contains(cat.Units, unit) {
			return 0, fmt.Errorf("%w %q for %s (expected one of %s)", ErrUnknownUnit, unit, cat.Name, strings.Join(cat.Units, ", "))
		}
	}

	return cat.fromBase(cat.toBase(value, from), to), nil
}

func (c *Converter) lookup(name string) (Category, error) {
	name = c.caser.String(strings.TrimSpace(name))
	if name == "angle" {
		name = "degrees"
	}

	for _, cat := range categories {
		if cat.Name == name {
			return cat, nil
		}
	}

	return Category{}, fmt.Errorf("%w %q", ErrUnknownCategory, name)
}
