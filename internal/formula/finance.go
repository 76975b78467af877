package formula

import (
	"fmt"
	"math"
)

// YearPoint is a balance snapshot at the start of a year.
type YearPoint struct {
	Year     int
	Balance  float64
	Invested float64
}

// Investment summarizes compound growth with monthly contributions.
type Investment struct {
	Total    float64
	Interest float64
	Invested float64
	Yearly   []YearPoint
}

// GrowInvestment compounds principal monthly at an annual ratePct for years,
// adding monthly at the end of every month.
func GrowInvestment(principal, monthly, ratePct float64, years int) (Investment, error) {
	if years < 0 {
		return Investment{}, fmt.Errorf("years: %w", ErrNonPositive)
	}

	r := ratePct / 100 / 12
	months := years * 12
	balance, invested := principal, principal

	var yearly []YearPoint

	for month := 0; ; month++ {
		if month%12 == 0 {
			yearly = append(yearly, YearPoint{Year: month / 12, Balance: math.Round(balance), Invested: math.Round(invested)})
		}

		if month == months {
			break
		}

		balance = balance*(1+r) + monthly
		invested += monthly
	}

	return Investment{
		Total:    math.Round(balance),
		Interest: math.Round(balance - invested),
		Invested: math.Round(invested),
		Yearly:   yearly,
	}, nil
}

// Loan summarizes a fixed-rate amortized loan.
type Loan struct {
	Monthly       float64
	TotalPayment  float64
	TotalInterest float64
	Yearly        []YearPoint
}

// AmortizeLoan computes the monthly payment for amount borrowed at an annual
// ratePct over years, and the remaining balance at each year start.
func AmortizeLoan(amount, ratePct float64, years int) (Loan, error) {
	if years <= 0 {
		return Loan{}, fmt.Errorf("years: %w", ErrNonPositive)
	}

	r := ratePct / 100 / 12
	n := float64(years * 12)

	payment := amount / n
	if r > 0 {
		growth := math.Pow(1+r, n)
		payment = amount * r * growth / (growth - 1)
	}

	var yearly []YearPoint

	balance := amount
	for year := 0; year <= years; year++ {
		yearly = append(yearly, YearPoint{Year: year, Balance: math.Round(balance)})

		for month := 0; month < 12; month++ {
			if balance > 0 {
				balance -= payment - balance*r
			}
		}
	}

	return Loan{
		Monthly:       math.Round(payment),
		TotalPayment:  math.Round(payment * n),
		TotalInterest: math.Round(payment*n - amount),
		Yearly:        yearly,
	}, nil
}

// Salary breaks an hourly wage down by period. A week has five working days.
type Salary struct {
	Annual  float64
	Monthly float64
	Weekly  float64
	Daily   float64
}

// SalaryFromHourly computes earnings for hourly pay, hours per week and weeks per year.
func SalaryFromHourly(hourly, hoursPerWeek, weeksPerYear float64) Salary {
	annual := hourly * hoursPerWeek * weeksPerYear
	weekly := annual / 52

	return Salary{
		Annual:  annual,
		Monthly: annual / 12,
		Weekly:  weekly,
		Daily:   weekly / 5,
	}
}
