// Package formula implements the calculator's fixed-formula tools:
// body mass index, basic mechanics and personal finance.
package formula

import (
	"errors"
	"fmt"

	"github.com/sivchari/calc/internal/arith"
)

// ErrNonPositive is returned when a quantity that must be positive is not.
var ErrNonPositive = errors.New("value must be positive")

// BMIResult is a body mass index and its weight category.
type BMIResult struct {
	Value    float64
	Category string
}

// BMI computes the body mass index for a weight in kilograms and a height in centimeters.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 {
		return BMIResult{}, fmt.Errorf("weight: %w", ErrNonPositive)
	}

	if heightCm <= 0 {
		return BMIResult{}, fmt.Errorf("height: %w", ErrNonPositive)
	}

	meters := heightCm / 100

	bmi, err := arith.Divide(weightKg, arith.Multiply(meters, meters))
	if err != nil {
		return BMIResult{}, err
	}

	return BMIResult{Value: bmi, Category: BMICategory(bmi)}, nil
}

// BMICategory classifies a body mass index.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
